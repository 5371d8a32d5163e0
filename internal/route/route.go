package route

import (
	"os"

	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/login"
	"github.com/ChanieT/WannabeStackOverflow/internal/logout"
	"github.com/ChanieT/WannabeStackOverflow/internal/me"
	"github.com/ChanieT/WannabeStackOverflow/internal/question"
	"github.com/ChanieT/WannabeStackOverflow/internal/refresh"
	"github.com/ChanieT/WannabeStackOverflow/internal/register"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func initRoute(r *gin.Engine) {
	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		register.RegisterRoutes(authGroup)
		login.RegisterRoutes(authGroup)
		logout.RegisterRoutes(authGroup)
		refresh.RegisterRoutes(authGroup)
		me.RegisterRoutes(authGroup)

		question.SetupQuestionRoutes(apiV1, database.GetDB())
	}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
