package question

import (
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
)

// Like 点赞表
// 复合主键 (question_id, user_id) 是幂等性的唯一保证：
// 同一用户对同一问题的第二次点赞在存储层被拒绝/忽略
type Like struct {
	QuestionID uint      `gorm:"primaryKey" json:"question_id"`
	UserID     uint      `gorm:"primaryKey;index" json:"user_id"`
	User       user.User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
