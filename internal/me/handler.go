package me

import (
	"errors"

	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeHandler struct{}

// GetCurrentUser 获取当前登录用户信息
// 会话里只带邮箱身份，这里用邮箱把会话解析回数据库里的用户
func (h *MeHandler) GetCurrentUser(c *gin.Context) {
	// 从上下文获取用户信息（由中间件设置）
	email, exists := c.Get("email")
	if !exists {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未登录"),
		))
		return
	}

	var foundUser user.User
	err := database.PostgresDB.Where("email = ?", email).First(&foundUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
		))
		return
	}

	dto.SuccessResponse(c, UserInfoResponse{
		UserID: foundUser.ID,
		Name:   foundUser.Name,
		Email:  foundUser.Email,
	})
}
