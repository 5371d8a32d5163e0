package register

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name            string `json:"name" binding:"required" example:"newuser"`                 // 昵称
	Email           string `json:"email" binding:"required,email" example:"user@example.com"` // 邮箱（登录账号）
	Password        string `json:"password" binding:"required" example:"password123"`         // 密码
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"password123"` // 确认密码
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	RedirectUrl string `json:"redirect_url" example:"/login"` // 注册成功后跳转到登录页
}
