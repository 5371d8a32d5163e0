package login

import (
	"testing"

	"github.com/ChanieT/WannabeStackOverflow/config"
	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginService_Login(t *testing.T) {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 2,
		},
	}

	db := testutils.SetupTestDB(t)
	// 让服务走事务连接，测试结束自动回滚
	database.PostgresDB = db

	if database.RedisDB == nil {
		t.Skip("Redis is not available, skipping login tests")
	}

	service := &LoginService{}
	testUser := testutils.CreateTestUser(db, testutils.WithPassword("Password123"))

	tests := []struct {
		name        string
		req         LoginRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "正确的邮箱和密码登录成功",
			req: LoginRequest{
				Email:    testUser.Email,
				Password: "Password123",
			},
			expectError: false,
		},
		{
			name: "密码错误",
			req: LoginRequest{
				Email:    testUser.Email,
				Password: "WrongPassword1",
			},
			expectError: true,
			errorMsg:    "邮箱或密码错误",
		},
		{
			name: "邮箱不存在",
			req: LoginRequest{
				Email:    "nobody@example.com",
				Password: "Password123",
			},
			expectError: true,
			errorMsg:    "邮箱或密码错误",
		},
		{
			name: "邮箱为空",
			req: LoginRequest{
				Email:    "",
				Password: "Password123",
			},
			expectError: true,
			errorMsg:    "邮箱和密码不能为空",
		},
		{
			name: "密码为空",
			req: LoginRequest{
				Email:    testUser.Email,
				Password: "",
			},
			expectError: true,
			errorMsg:    "邮箱和密码不能为空",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.Login(tt.req)

			if tt.expectError {
				require.NotNil(t, bizErr)
				assert.Contains(t, bizErr.Msg, tt.errorMsg)
			} else {
				require.Nil(t, bizErr)
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
				assert.Equal(t, "/", resp.RedirectUrl)
			}
		})
	}
}
