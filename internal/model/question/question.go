// Package question 问题相关模型
package question

import (
	"time"
)

// Question 问题表
type Question struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	Text  string `gorm:"type:text;not null" json:"text"`
	// 发布时间（UTC），创建后不再修改
	DatePosted time.Time `gorm:"not null;index" json:"date_posted"`

	// 关联：删除问题不会级联到 Tag/User，外键统一 RESTRICT
	QuestionTags []QuestionTag `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"question_tags,omitempty"`
	Likes        []Like        `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"likes,omitempty"`
	Answers      []Answer      `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
