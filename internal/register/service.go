package register

import (
	"errors"
	"regexp"

	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

type RegisterService struct{}

// 只支持邮箱密码注册
func (s *RegisterService) Register(req RegisterRequest) (RegisterResponse, *response.BusinessError) {
	// 1. 参数校验
	if err := s.validateRequest(req); err != nil {
		return RegisterResponse{}, err
	}

	// 2. 检查邮箱是否已被注册
	var existingUser user.User
	err := database.PostgresDB.Where("email = ?", req.Email).First(&existingUser).Error
	if err == nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("注册失败"),
			response.WithError(err),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	// 4. 创建用户
	// email 上的唯一索引兜底：并发注册同一邮箱在这里被拒绝
	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := database.PostgresDB.Create(&newUser).Error; err != nil {
		return RegisterResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
		)
	}

	// 5. 返回结果，前端跳转到登录页
	return RegisterResponse{
		RedirectUrl: "/login",
	}, nil
}

// 参数校验
func (s *RegisterService) validateRequest(req RegisterRequest) *response.BusinessError {
	// 校验昵称
	if req.Name == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("昵称不能为空"),
		)
	}
	if len(req.Name) > 100 {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("昵称长度不能超过100个字符"),
		)
	}

	// 校验邮箱
	if req.Email == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱不能为空"),
		)
	}
	if !emailRegex.MatchString(req.Email) {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱格式不正确"),
		)
	}

	// 校验密码
	if req.Password == "" {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码不能为空"),
		)
	}
	if len(req.Password) < 8 {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码长度不能少于8个字符"),
		)
	}
	if !upperRegex.MatchString(req.Password) || !lowerRegex.MatchString(req.Password) || !digitRegex.MatchString(req.Password) {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("密码必须包含大写字母、小写字母和数字"),
		)
	}
	if req.Password != req.ConfirmPassword {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("两次输入的密码不一致"),
		)
	}

	return nil
}
