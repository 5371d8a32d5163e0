package login

import (
	"github.com/ChanieT/WannabeStackOverflow/config"
	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	service *LoginService
}

func (h *LoginHandler) handle(c *gin.Context) {
	// 解析参数
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	// 调用登录服务
	result, err := h.service.Login(req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 设置 Cookie（httpOnly，token 不暴露给前端脚本）
	c.SetCookie("access_token", result.AccessToken, 3600*config.Conf.JWT.ExpireTime, "/", "", false, true)
	c.SetCookie("refresh_token", result.RefreshToken, 3600*24*7, "/", "", false, true)

	dto.SuccessResponse(c, gin.H{
		"redirect_url": result.RedirectUrl,
	})
}
