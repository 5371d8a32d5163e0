package register

import (
	"testing"

	"github.com/ChanieT/WannabeStackOverflow/internal/database"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"
	"github.com/ChanieT/WannabeStackOverflow/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterService_validateRequest(t *testing.T) {
	service := &RegisterService{}

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "有效的注册请求",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "Test123456",
				ConfirmPassword: "Test123456",
			},
			wantErr: false,
		},
		{
			name: "昵称为空",
			req: RegisterRequest{
				Name:            "",
				Email:           "test@example.com",
				Password:        "Test123456",
				ConfirmPassword: "Test123456",
			},
			wantErr: true,
			errMsg:  "昵称不能为空",
		},
		{
			name: "邮箱为空",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "",
				Password:        "Test123456",
				ConfirmPassword: "Test123456",
			},
			wantErr: true,
			errMsg:  "邮箱不能为空",
		},
		{
			name: "邮箱格式不正确",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "invalid-email",
				Password:        "Test123456",
				ConfirmPassword: "Test123456",
			},
			wantErr: true,
			errMsg:  "邮箱格式不正确",
		},
		{
			name: "密码为空",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "",
				ConfirmPassword: "",
			},
			wantErr: true,
			errMsg:  "密码不能为空",
		},
		{
			name: "密码太短",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "Abc123",
				ConfirmPassword: "Abc123",
			},
			wantErr: true,
			errMsg:  "密码长度不能少于8个字符",
		},
		{
			name: "密码缺少大写字母",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "test123456",
				ConfirmPassword: "test123456",
			},
			wantErr: true,
			errMsg:  "密码必须包含大写字母、小写字母和数字",
		},
		{
			name: "密码缺少数字",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "TestPassword",
				ConfirmPassword: "TestPassword",
			},
			wantErr: true,
			errMsg:  "密码必须包含大写字母、小写字母和数字",
		},
		{
			name: "两次密码不一致",
			req: RegisterRequest{
				Name:            "testuser",
				Email:           "test@example.com",
				Password:        "Test123456",
				ConfirmPassword: "Test654321",
			},
			wantErr: true,
			errMsg:  "两次输入的密码不一致",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.validateRequest(tt.req)

			if tt.wantErr {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errMsg, err.Msg)
				assert.Equal(t, response.ParseError, err.Code)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestRegisterService_Register(t *testing.T) {
	db := testutils.SetupTestDB(t)
	// 让服务走事务连接，测试结束自动回滚
	database.PostgresDB = db

	service := &RegisterService{}

	t.Run("注册后可以按邮箱找回用户", func(t *testing.T) {
		resp, bizErr := service.Register(RegisterRequest{
			Name:            "alice",
			Email:           "alice@example.com",
			Password:        "Test123456",
			ConfirmPassword: "Test123456",
		})
		require.Nil(t, bizErr)
		assert.Equal(t, "/login", resp.RedirectUrl)

		var created user.User
		err := db.Where("email = ?", "alice@example.com").First(&created).Error
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Name)

		// 密码以 bcrypt 哈希存储，原文不落库
		assert.NotEqual(t, "Test123456", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Test123456")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("WrongPassword1")))
	})

	t.Run("邮箱已被注册时拒绝", func(t *testing.T) {
		existing := testutils.CreateTestUser(db)

		_, bizErr := service.Register(RegisterRequest{
			Name:            "bob",
			Email:           existing.Email,
			Password:        "Test123456",
			ConfirmPassword: "Test123456",
		})
		require.NotNil(t, bizErr)
		assert.Equal(t, "邮箱已被注册", bizErr.Msg)
		assert.Equal(t, response.Fail, bizErr.Code)
	})
}
