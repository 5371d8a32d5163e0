package logout

import (
	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/refresh"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct{}

// Logout 用户退出登录
// 清除 access_token 和 refresh_token Cookie，并撤销 Redis 中的刷新令牌
func (h *LogoutHandler) Logout(c *gin.Context) {
	// 撤销 refresh token（cookie 可能已经不存在，忽略错误）
	if refreshToken, err := c.Cookie("refresh_token"); err == nil && refreshToken != "" {
		repo := refresh.NewRefreshTokenRepository(database.RedisDB)
		repo.Delete(refreshToken)
	}

	// 清除 access_token Cookie
	c.SetCookie(
		"access_token",
		"",
		-1, // 立即过期
		"/",
		"",
		false,
		true,
	)

	// 清除 refresh_token Cookie
	c.SetCookie(
		"refresh_token",
		"",
		-1, // 立即过期
		"/",
		"",
		false,
		true,
	)

	dto.SuccessResponse(c, gin.H{
		"message": "退出成功",
	})
}
