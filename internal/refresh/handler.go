package refresh

import (
	"github.com/ChanieT/WannabeStackOverflow/config"
	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"github.com/gin-gonic/gin"
)

type RefreshTokenHandler struct {
	service *RefreshTokenService
}

func NewRefreshTokenHandler(service *RefreshTokenService) *RefreshTokenHandler {
	return &RefreshTokenHandler{
		service: service,
	}
}

// Handle 刷新访问令牌
// 使用 Cookie 中的刷新令牌获取新的访问令牌，新的刷新令牌会自动更新到 Cookie 中
func (h *RefreshTokenHandler) Handle(c *gin.Context) {
	// 从 cookie 中获取 refresh token
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未找到刷新令牌"),
		))
		return
	}

	// 调用服务层
	result, bizErr := h.service.RefreshToken(RefreshTokenRequest{RefreshToken: refreshToken})
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 更新 cookie (httpOnly)
	c.SetCookie("access_token", result.AccessToken, 3600*config.Conf.JWT.ExpireTime, "/", "", false, true)
	c.SetCookie("refresh_token", result.NewRefreshToken, 3600*24*7, "/", "", false, true)

	// 只返回 access token（refresh token 不暴露给前端）
	dto.SuccessResponse(c, RefreshTokenResponse{
		AccessToken: result.AccessToken,
	})
}
