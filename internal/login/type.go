package login

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"` // 登录邮箱
	Password string `json:"password" binding:"required" example:"password123"`         // 密码
}

// LoginResponse 登录响应（内部使用，token 会写入 cookie）
type LoginResponse struct {
	AccessToken  string `json:"access_token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // JWT 访问令牌（将存入cookie）
	RefreshToken string `json:"refresh_token,omitempty" example:"refresh_token_xxx"`                      // 刷新令牌（将存入cookie）
	RedirectUrl  string `json:"redirect_url,omitempty" example:"/"`                                       // 重定向 URL
}
