package question

import (
	"github.com/ChanieT/WannabeStackOverflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupQuestionRoutes 设置问题相关路由
func SetupQuestionRoutes(r *gin.RouterGroup, db *gorm.DB) {
	// 初始化handler（内部会自动初始化所有依赖）
	questionHandler := NewQuestionHandler(db)

	// 问题路由 - 需要认证
	questionsAuth := r.Group("/questions")
	questionsAuth.Use(middleware.JWTAuth())
	{
		questionsAuth.POST("", questionHandler.CreateQuestion)            // 提问（需要认证）
		questionsAuth.POST("/:id/like", questionHandler.AddLike)          // 点赞（需要认证）
		questionsAuth.POST("/:id/answers", questionHandler.AddAnswer)     // 回答（需要认证）
	}

	// 问题路由 - 可选认证（登录时详情带已点赞标记）
	questionsOptional := r.Group("/questions")
	questionsOptional.Use(middleware.OptionalJWTAuth())
	{
		questionsOptional.GET("", questionHandler.ListQuestions)          // 问题列表
		questionsOptional.GET("/:id", questionHandler.GetQuestion)        // 问题详情
		questionsOptional.GET("/:id/tags", questionHandler.ListTags)      // 问题标签
		questionsOptional.GET("/:id/likes", questionHandler.CountLikes)   // 点赞数
		questionsOptional.GET("/:id/answers", questionHandler.ListAnswers) // 回答列表
	}
}
