package question

import (
	"testing"
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/dto"
	"github.com/ChanieT/WannabeStackOverflow/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(db *gorm.DB) *QuestionService {
	return NewQuestionService(
		NewQuestionRepository(db),
		NewTagRepository(db),
		NewLikeRepository(db),
		NewAnswerRepository(db),
		NewUserRepository(db),
	)
}

func TestCreateQuestion(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	t.Run("创建带标签的问题", func(t *testing.T) {
		detail, err := service.CreateQuestion(dto.CreateQuestionRequest{
			Title: "How do I center a div",
			Text:  "I have tried everything",
			Tags:  []string{"css", "html"},
		})
		require.NoError(t, err)
		require.NotNil(t, detail)

		assert.NotZero(t, detail.ID)
		assert.Equal(t, "How do I center a div", detail.Title)
		assert.Len(t, detail.Tags, 2)
		assert.Empty(t, detail.Answers)
		assert.Equal(t, int64(0), detail.LikeCount)
		assert.Nil(t, detail.LikedByMe)
	})

	t.Run("请求中重复的标签名只关联一次", func(t *testing.T) {
		detail, err := service.CreateQuestion(dto.CreateQuestionRequest{
			Title: "Duplicate tags",
			Text:  "body",
			Tags:  []string{"go", "go", " go "},
		})
		require.NoError(t, err)
		assert.Len(t, detail.Tags, 1)
		assert.Equal(t, "go", detail.Tags[0].Name)
	})

	t.Run("空白标签名被忽略", func(t *testing.T) {
		detail, err := service.CreateQuestion(dto.CreateQuestionRequest{
			Title: "Blank tags",
			Text:  "body",
			Tags:  []string{"", "  ", "postgres"},
		})
		require.NoError(t, err)
		assert.Len(t, detail.Tags, 1)
		assert.Equal(t, "postgres", detail.Tags[0].Name)
	})
}

func TestTagReuseAcrossQuestions(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	first, err := service.CreateQuestion(dto.CreateQuestionRequest{
		Title: "First question",
		Text:  "body",
		Tags:  []string{"docker"},
	})
	require.NoError(t, err)

	second, err := service.CreateQuestion(dto.CreateQuestionRequest{
		Title: "Second question",
		Text:  "body",
		Tags:  []string{"docker"},
	})
	require.NoError(t, err)

	// 同名标签在两个问题之间共享同一行
	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)
}

func TestListQuestions(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	now := time.Now().UTC()
	old := testutils.CreateTestQuestion(db,
		testutils.WithTitle("Older question"),
		testutils.WithDatePosted(now.Add(-2*time.Hour)))
	recent := testutils.CreateTestQuestion(db,
		testutils.WithTitle("Newer question"),
		testutils.WithDatePosted(now))

	questions, err := service.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// 最新的在前
	assert.Equal(t, recent.ID, questions[0].ID)
	assert.Equal(t, old.ID, questions[1].ID)
}

func TestAddLike(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	t.Run("点赞后计数加一", func(t *testing.T) {
		u := testutils.CreateTestUser(db)
		q := testutils.CreateTestQuestion(db)

		err := service.AddLike(q.ID, u.Email)
		require.NoError(t, err)

		count, err := service.CountLikes(q.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		liked, err := service.HasLiked(q.ID, u.Email)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("重复点赞是无操作的成功", func(t *testing.T) {
		u := testutils.CreateTestUser(db)
		q := testutils.CreateTestQuestion(db)

		require.NoError(t, service.AddLike(q.ID, u.Email))
		require.NoError(t, service.AddLike(q.ID, u.Email))

		count, err := service.CountLikes(q.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("不同用户各自计一次", func(t *testing.T) {
		q := testutils.CreateTestQuestion(db)
		first := testutils.CreateTestUser(db)
		second := testutils.CreateTestUser(db)

		require.NoError(t, service.AddLike(q.ID, first.Email))
		require.NoError(t, service.AddLike(q.ID, second.Email))

		count, err := service.CountLikes(q.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("问题不存在时返回错误", func(t *testing.T) {
		u := testutils.CreateTestUser(db)

		err := service.AddLike(999999, u.Email)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestAddAnswer(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	t.Run("回答后可以在列表中读回", func(t *testing.T) {
		u := testutils.CreateTestUser(db)
		q := testutils.CreateTestQuestion(db)

		answer, err := service.AddAnswer(q.ID, u.ID, "Use flexbox")
		require.NoError(t, err)
		assert.NotZero(t, answer.ID)
		assert.Equal(t, q.ID, answer.QuestionID)
		assert.Equal(t, u.ID, answer.UserID)

		answers, err := service.ListAnswers(q.ID)
		require.NoError(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "Use flexbox", answers[0].Text)
	})

	t.Run("问题不存在时返回错误", func(t *testing.T) {
		u := testutils.CreateTestUser(db)

		_, err := service.AddAnswer(999999, u.ID, "text")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestGetQuestion(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	t.Run("详情包含标签、回答和点赞数", func(t *testing.T) {
		u := testutils.CreateTestUser(db)
		created, err := service.CreateQuestion(dto.CreateQuestionRequest{
			Title: "Detail question",
			Text:  "body",
			Tags:  []string{"gin", "gorm"},
		})
		require.NoError(t, err)

		require.NoError(t, service.AddLike(created.ID, u.Email))
		_, err = service.AddAnswer(created.ID, u.ID, "an answer")
		require.NoError(t, err)

		detail, err := service.GetQuestion(created.ID, "")
		require.NoError(t, err)
		assert.Len(t, detail.Tags, 2)
		assert.Len(t, detail.Answers, 1)
		assert.Equal(t, int64(1), detail.LikeCount)
		assert.Nil(t, detail.LikedByMe)
	})

	t.Run("登录用户看到是否已点赞", func(t *testing.T) {
		liker := testutils.CreateTestUser(db)
		viewer := testutils.CreateTestUser(db)
		q := testutils.CreateTestQuestion(db)

		require.NoError(t, service.AddLike(q.ID, liker.Email))

		detail, err := service.GetQuestion(q.ID, liker.Email)
		require.NoError(t, err)
		require.NotNil(t, detail.LikedByMe)
		assert.True(t, *detail.LikedByMe)

		detail, err = service.GetQuestion(q.ID, viewer.Email)
		require.NoError(t, err)
		require.NotNil(t, detail.LikedByMe)
		assert.False(t, *detail.LikedByMe)
	})

	t.Run("问题不存在时返回记录未找到", func(t *testing.T) {
		_, err := service.GetQuestion(999999, "")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestListTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newTestService(db)

	created, err := service.CreateQuestion(dto.CreateQuestionRequest{
		Title: "Tag listing",
		Text:  "body",
		Tags:  []string{"redis", "cache"},
	})
	require.NoError(t, err)

	tags, err := service.ListTags(created.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	_, err = service.ListTags(999999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
