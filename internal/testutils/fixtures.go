package testutils

import (
	"fmt"
	"time"

	"github.com/ChanieT/WannabeStackOverflow/internal/model/question"
	"github.com/ChanieT/WannabeStackOverflow/internal/model/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser creates a test user with unique email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	name := fmt.Sprintf("test_user_%s", uniqueID[:8])
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	// Default password hash
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	testUser := &user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithName sets the display name
func WithName(name string) UserOption {
	return func(u *user.User) {
		u.Name = name
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		u.PasswordHash = string(hash)
	}
}

// WithPasswordHash sets the password hash directly
func WithPasswordHash(hash string) UserOption {
	return func(u *user.User) {
		u.PasswordHash = hash
	}
}

// CreateTestQuestion creates a test question without tags, answers or likes
func CreateTestQuestion(db *gorm.DB, opts ...QuestionOption) *question.Question {
	testQuestion := &question.Question{
		Title:      fmt.Sprintf("Test Question %s", uuid.New().String()[:8]),
		Text:       "Test question body",
		DatePosted: time.Now().UTC(),
	}

	for _, opt := range opts {
		opt(testQuestion)
	}

	if err := db.Create(testQuestion).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test question: %v", err))
	}

	return testQuestion
}

// QuestionOption configures test question
type QuestionOption func(*question.Question)

// WithTitle sets the title
func WithTitle(title string) QuestionOption {
	return func(q *question.Question) {
		q.Title = title
	}
}

// WithDatePosted sets the posting time
func WithDatePosted(at time.Time) QuestionOption {
	return func(q *question.Question) {
		q.DatePosted = at
	}
}

// CreateTestTag creates a tag with the given name
func CreateTestTag(db *gorm.DB, name string) *question.Tag {
	tag := &question.Tag{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := db.Create(tag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}

	return tag
}
