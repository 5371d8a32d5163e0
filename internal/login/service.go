package login

import (
	"errors"

	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
	"github.com/ChanieT/WannabeStackOverflow/internal/pkg"
	"github.com/ChanieT/WannabeStackOverflow/internal/refresh"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginService struct {
	refreshTokenRepo *refresh.RefreshTokenRepository
}

// getRefreshTokenRepo 延迟初始化 refreshTokenRepo
func (s *LoginService) getRefreshTokenRepo() *refresh.RefreshTokenRepository {
	if s.refreshTokenRepo == nil {
		s.refreshTokenRepo = refresh.NewRefreshTokenRepository(database.RedisDB)
	}
	return s.refreshTokenRepo
}

// Login 邮箱密码登录
// 登录失败统一返回"邮箱或密码错误"，不泄露账号是否存在
func (s *LoginService) Login(req LoginRequest) (LoginResponse, *response.BusinessError) {
	// 1. 检查参数
	if req.Email == "" || req.Password == "" {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("邮箱和密码不能为空"),
		)
	}

	// 2. 按邮箱查询用户
	var foundUser user.User
	result := database.PostgresDB.Where("email = ?", req.Email).First(&foundUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return LoginResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("邮箱或密码错误"),
			)
		}
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登录失败"),
		)
	}

	// 3. 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	// 4. 生成 refresh token
	token, err := pkg.GenerateRandomToken()
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成令牌失败"),
		)
	}

	// 5. 生成 access token (JWT)
	accessToken, err := pkg.GenerateAccessToken(foundUser.ID, foundUser.Name, foundUser.Email)
	if err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	// 6. 存储 refresh token
	if err := s.getRefreshTokenRepo().Create(token, refresh.TokenData{
		UserID: foundUser.ID,
		Name:   foundUser.Name,
		Email:  foundUser.Email,
	}); err != nil {
		return LoginResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储刷新令牌失败"),
		)
	}

	return LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: token,
		RedirectUrl:  "/",
	}, nil
}
