package question

import (
	"strings"
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/model/question"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRepository 问题仓储层
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ===== Question 基础操作 =====

// GetByID 获取问题详情，预加载标签关联、点赞和回答
func (r *QuestionRepository) GetByID(id uint) (*question.Question, error) {
	var q question.Question
	err := r.db.
		Preload("QuestionTags.Tag").
		Preload("Likes").
		Preload("Answers").
		First(&q, id).Error
	return &q, err
}

// Exists 检查问题是否存在
func (r *QuestionRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&question.Question{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List 获取全部问题，按发布时间倒序（最新的在前）
func (r *QuestionRepository) List() ([]question.Question, error) {
	var questions []question.Question
	err := r.db.Order("date_posted DESC").Find(&questions).Error
	return questions, err
}

// CreateWithTags 创建问题并挂标签，整体在一个事务里：
// 问题插入 + 标签 find-or-create + 关联插入要么全部提交，要么全部回滚
func (r *QuestionRepository) CreateWithTags(q *question.Question, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}

		tagRepo := &TagRepository{db: tx}
		for _, name := range tagNames {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			tag, err := tagRepo.FindOrCreate(name)
			if err != nil {
				return err
			}

			// 请求里同一个标签名出现两次时，复合主键冲突直接忽略
			link := &question.QuestionTag{
				QuestionID: q.ID,
				TagID:      tag.ID,
				CreatedAt:  time.Now(),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindOrCreate 查找或创建标签
// 依赖 name 上的唯一索引：先尝试插入（冲突忽略），再按名字读回，
// 并发创建同名标签最终会收敛到同一行
func (r *TagRepository) FindOrCreate(name string) (*question.Tag, error) {
	tag := question.Tag{
		Name:      name,
		CreatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		return nil, err
	}

	// 插入被忽略时 ID 为 0，按名字读回已存在的行
	if tag.ID != 0 {
		return &tag, nil
	}

	var existing question.Tag
	if err := r.db.Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByQuestionID 获取问题的所有标签
func (r *TagRepository) GetByQuestionID(questionID uint) ([]question.Tag, error) {
	var tags []question.Tag
	err := r.db.
		Joins("JOIN question_tags ON question_tags.tag_id = tags.id").
		Where("question_tags.question_id = ?", questionID).
		Find(&tags).Error
	return tags, err
}

// GetByLinks 根据预加载好的关联记录解析标签
func (r *TagRepository) GetByLinks(links []question.QuestionTag) ([]question.Tag, error) {
	if len(links) == 0 {
		return []question.Tag{}, nil
	}

	tagIDs := make([]uint, 0, len(links))
	for _, link := range links {
		tagIDs = append(tagIDs, link.TagID)
	}

	var tags []question.Tag
	err := r.db.Where("id IN ?", tagIDs).Find(&tags).Error
	return tags, err
}

// LikeRepository 点赞仓储层
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Add 点赞，幂等：
// 复合主键 (question_id, user_id) 冲突时忽略插入，重复点赞是无操作的成功
func (r *LikeRepository) Add(questionID, userID uint) error {
	like := &question.Like{
		QuestionID: questionID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// HasLiked 用户是否已点赞（仅供展示层使用，写路径不依赖这个检查）
func (r *LikeRepository) HasLiked(questionID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&question.Like{}).
		Where("question_id = ? AND user_id = ?", questionID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByQuestionID 问题的点赞数
func (r *LikeRepository) CountByQuestionID(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&question.Like{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// AnswerRepository 回答仓储层
type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) Create(a *question.Answer) error {
	return r.db.Create(a).Error
}

// ListByQuestionID 获取问题的所有回答
func (r *AnswerRepository) ListByQuestionID(questionID uint) ([]question.Answer, error) {
	var answers []question.Answer
	err := r.db.Where("question_id = ?", questionID).Find(&answers).Error
	return answers, err
}

// UserRepository 用户查询（点赞等操作按会话里的邮箱把用户解析出来）
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}
