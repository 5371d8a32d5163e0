package question

import (
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
)

// Answer 回答表
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       user.User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
