package me

// UserInfoResponse 用户信息响应
type UserInfoResponse struct {
	UserID uint   `json:"user_id" example:"1"`
	Name   string `json:"name" example:"testuser"`
	Email  string `json:"email" example:"test@example.com"`
}
