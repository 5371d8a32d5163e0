package dto

import (
	"encoding/json"
)

// StringSlice 自定义字符串切片类型，支持空字符串解析
type StringSlice []string

// UnmarshalJSON 实现自定义JSON解析，处理空字符串情况
func (s *StringSlice) UnmarshalJSON(data []byte) error {
	// 处理空字符串的情况
	if string(data) == `""` || string(data) == `null` {
		*s = []string{}
		return nil
	}

	// 正常解析数组
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*s = arr
	return nil
}

// CreateQuestionRequest 创建问题请求
type CreateQuestionRequest struct {
	Title string      `json:"title" binding:"required,max=255"`
	Text  string      `json:"text" binding:"required"`
	Tags  StringSlice `json:"tags"`
}

// AddAnswerRequest 添加回答请求
type AddAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// TagResponse 标签响应
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AnswerResponse 回答响应
type AnswerResponse struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	QuestionID uint   `json:"question_id"`
	UserID     uint   `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

// QuestionResponse 问题列表项响应
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	DatePosted string `json:"date_posted"`
}

// QuestionDetailResponse 问题详情响应
// 对应原始页面的视图模型：问题 + 标签 + 回答 + 点赞信息
type QuestionDetailResponse struct {
	ID         uint             `json:"id"`
	Title      string           `json:"title"`
	Text       string           `json:"text"`
	DatePosted string           `json:"date_posted"`
	Tags       []TagResponse    `json:"tags"`
	Answers    []AnswerResponse `json:"answers"`
	LikeCount  int64            `json:"like_count"`
	// 登录用户才有：是否已点赞（用于前端隐藏点赞按钮）
	LikedByMe *bool `json:"liked_by_me,omitempty"`
}
