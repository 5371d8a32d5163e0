package question

import (
	"errors"
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/question"
)

// ErrQuestionNotFound 问题不存在
var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	questionRepo *QuestionRepository
	tagRepo      *TagRepository
	likeRepo     *LikeRepository
	answerRepo   *AnswerRepository
	userRepo     *UserRepository
}

func NewQuestionService(
	questionRepo *QuestionRepository,
	tagRepo *TagRepository,
	likeRepo *LikeRepository,
	answerRepo *AnswerRepository,
	userRepo *UserRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
		likeRepo:     likeRepo,
		answerRepo:   answerRepo,
		userRepo:     userRepo,
	}
}

// CreateQuestion 创建问题
// date_posted 在这里定格（UTC），之后不再修改；标签解析和关联与问题插入同一事务
func (s *QuestionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDetailResponse, error) {
	q := &question.Question{
		Title:      req.Title,
		Text:       req.Text,
		DatePosted: time.Now().UTC(),
	}

	if err := s.questionRepo.CreateWithTags(q, req.Tags); err != nil {
		return nil, err
	}

	return s.GetQuestion(q.ID, "")
}

// ListQuestions 问题列表，最新的在前
func (s *QuestionService) ListQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, err
	}

	result := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		result[i] = dto.QuestionResponse{
			ID:         q.ID,
			Title:      q.Title,
			Text:       q.Text,
			DatePosted: q.DatePosted.Format(time.RFC3339),
		}
	}
	return result, nil
}

// GetQuestion 问题详情：问题 + 标签 + 回答 + 点赞数
// userEmail 非空（已登录）时带上"是否已点赞"标记
func (s *QuestionService) GetQuestion(id uint, userEmail string) (*dto.QuestionDetailResponse, error) {
	q, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tags := make([]dto.TagResponse, 0, len(q.QuestionTags))
	for _, link := range q.QuestionTags {
		tags = append(tags, dto.TagResponse{
			ID:   link.Tag.ID,
			Name: link.Tag.Name,
		})
	}

	answers := make([]dto.AnswerResponse, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, dto.AnswerResponse{
			ID:         a.ID,
			Text:       a.Text,
			QuestionID: a.QuestionID,
			UserID:     a.UserID,
			CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		})
	}

	detail := &dto.QuestionDetailResponse{
		ID:         q.ID,
		Title:      q.Title,
		Text:       q.Text,
		DatePosted: q.DatePosted.Format(time.RFC3339),
		Tags:       tags,
		Answers:    answers,
		LikeCount:  int64(len(q.Likes)),
	}

	if userEmail != "" {
		u, err := s.userRepo.GetByEmail(userEmail)
		if err == nil {
			liked := false
			for _, like := range q.Likes {
				if like.UserID == u.ID {
					liked = true
					break
				}
			}
			detail.LikedByMe = &liked
		}
	}

	return detail, nil
}

// AddLike 点赞
// 用户由会话里的邮箱解析；重复点赞由复合主键兜底成无操作的成功
func (s *QuestionService) AddLike(questionID uint, userEmail string) error {
	exists, err := s.questionRepo.Exists(questionID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrQuestionNotFound
	}

	u, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return err
	}

	return s.likeRepo.Add(questionID, u.ID)
}

// HasLiked 用户是否已点赞（供前端隐藏点赞按钮）
func (s *QuestionService) HasLiked(questionID uint, userEmail string) (bool, error) {
	u, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return false, err
	}
	return s.likeRepo.HasLiked(questionID, u.ID)
}

// AddAnswer 添加回答
func (s *QuestionService) AddAnswer(questionID, userID uint, text string) (*dto.AnswerResponse, error) {
	exists, err := s.questionRepo.Exists(questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrQuestionNotFound
	}

	answer := &question.Answer{
		Text:       text,
		QuestionID: questionID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	return &dto.AnswerResponse{
		ID:         answer.ID,
		Text:       answer.Text,
		QuestionID: answer.QuestionID,
		UserID:     answer.UserID,
		CreatedAt:  answer.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListAnswers 问题的回答列表
func (s *QuestionService) ListAnswers(questionID uint) ([]dto.AnswerResponse, error) {
	answers, err := s.answerRepo.ListByQuestionID(questionID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AnswerResponse, len(answers))
	for i, a := range answers {
		result[i] = dto.AnswerResponse{
			ID:         a.ID,
			Text:       a.Text,
			QuestionID: a.QuestionID,
			UserID:     a.UserID,
			CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		}
	}
	return result, nil
}

// ListTags 问题的标签列表
func (s *QuestionService) ListTags(questionID uint) ([]dto.TagResponse, error) {
	exists, err := s.questionRepo.Exists(questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrQuestionNotFound
	}

	tags, err := s.tagRepo.GetByQuestionID(questionID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TagResponse, len(tags))
	for i, t := range tags {
		result[i] = dto.TagResponse{
			ID:   t.ID,
			Name: t.Name,
		}
	}
	return result, nil
}

// CountLikes 问题的点赞数
func (s *QuestionService) CountLikes(questionID uint) (int64, error) {
	exists, err := s.questionRepo.Exists(questionID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrQuestionNotFound
	}

	return s.likeRepo.CountByQuestionID(questionID)
}
