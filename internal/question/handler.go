package question

import (
	"errors"
	"strconv"

	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	questionService *QuestionService
}

func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	questionRepo := NewQuestionRepository(db)
	tagRepo := NewTagRepository(db)
	likeRepo := NewLikeRepository(db)
	answerRepo := NewAnswerRepository(db)
	userRepo := NewUserRepository(db)

	return &QuestionHandler{
		questionService: NewQuestionService(questionRepo, tagRepo, likeRepo, answerRepo, userRepo),
	}
}

// parseQuestionID 解析路径里的问题ID
func parseQuestionID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的问题ID"),
		))
		return 0, false
	}
	return uint(id), true
}

// notFoundOrFail 把存储层错误翻译成业务错误
func notFoundOrFail(c *gin.Context, err error, failMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrQuestionNotFound) {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("问题不存在"),
		))
		return
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(failMsg),
	))
}

// ListQuestions 获取问题列表（按发布时间倒序）
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	result, err := h.questionService.ListQuestions()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("获取问题列表失败"),
		))
		return
	}

	dto.SuccessResponse(c, result)
}

// CreateQuestion 创建问题（需要认证）
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.questionService.CreateQuestion(req)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建问题失败: "+err.Error()),
		))
		return
	}

	dto.SuccessResponse(c, result)
}

// GetQuestion 获取问题详情（可选认证，登录时带已点赞标记）
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	// 可选认证：有会话时取邮箱
	userEmail := ""
	if email, exists := c.Get("email"); exists {
		userEmail = email.(string)
	}

	result, err := h.questionService.GetQuestion(questionID, userEmail)
	if err != nil {
		notFoundOrFail(c, err, "获取问题详情失败")
		return
	}

	dto.SuccessResponse(c, result)
}

// AddLike 点赞（需要认证，重复点赞是无操作的成功）
func (h *QuestionHandler) AddLike(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	email, _ := c.Get("email")

	if err := h.questionService.AddLike(questionID, email.(string)); err != nil {
		notFoundOrFail(c, err, "点赞失败")
		return
	}

	dto.SuccessResponse(c, gin.H{
		"redirect_url": "/questions/" + strconv.FormatUint(uint64(questionID), 10),
	})
}

// CountLikes 获取问题点赞数
func (h *QuestionHandler) CountLikes(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	count, err := h.questionService.CountLikes(questionID)
	if err != nil {
		notFoundOrFail(c, err, "获取点赞数失败")
		return
	}

	dto.SuccessResponse(c, gin.H{
		"like_count": count,
	})
}

// AddAnswer 添加回答（需要认证）
func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	var req dto.AddAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	answer, err := h.questionService.AddAnswer(questionID, userID.(uint), req.Text)
	if err != nil {
		notFoundOrFail(c, err, "添加回答失败")
		return
	}

	// 跳转回问题页（用问题ID，不是回答ID）
	dto.SuccessResponse(c, gin.H{
		"answer":       answer,
		"redirect_url": "/questions/" + strconv.FormatUint(uint64(questionID), 10),
	})
}

// ListAnswers 获取问题的回答列表
func (h *QuestionHandler) ListAnswers(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	result, err := h.questionService.ListAnswers(questionID)
	if err != nil {
		notFoundOrFail(c, err, "获取回答列表失败")
		return
	}

	dto.SuccessResponse(c, result)
}

// ListTags 获取问题的标签列表
func (h *QuestionHandler) ListTags(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

	result, err := h.questionService.ListTags(questionID)
	if err != nil {
		notFoundOrFail(c, err, "获取标签列表失败")
		return
	}

	dto.SuccessResponse(c, result)
}
