package question

import "time"

// Tag 标签表
type Tag struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// name 是自然去重键，find-or-create 依赖这里的唯一索引
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionTag 问题-标签关联表
// 复合主键保证同一问题不会重复挂同一个标签
type QuestionTag struct {
	QuestionID uint      `gorm:"primaryKey;index" json:"question_id"`
	TagID      uint      `gorm:"primaryKey;index" json:"tag_id"`
	Tag        Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:RESTRICT" json:"tag,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
