package refresh

import (
	"github.com/ChanieT/WannabeStackOverflow/internal/database"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	repo := NewRefreshTokenRepository(database.RedisDB)
	service := NewRefreshTokenService(repo)
	handler := NewRefreshTokenHandler(service)
	r.POST("/refresh", handler.Handle)
}
