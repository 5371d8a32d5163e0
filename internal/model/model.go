package model

import (
	"fmt"

	"github.com/ChanieT/WannabeStackOverflow/internal/model/question"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"

	"gorm.io/gorm"
)

// GetModels 返回所有需要迁移的模型
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&question.Question{},
		&question.Tag{},
		&question.QuestionTag{},
		&question.Like{},
		&question.Answer{},
	}
}

func InitTable(db *gorm.DB) error {
	models := GetModels()

	// 执行自动迁移
	err := db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("数据库表迁移失败: %v", err)
	}

	return nil
}
