package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/storage"
	"railbook/internal/utils"
)

// UserService manages accounts. Usernames are unique
// case-insensitively; passwords are stored as bcrypt hashes only.
type UserService struct {
	Store     storage.UserStore
	RequestID string

	mu sync.Mutex
}

// Signup registers a new account.
func (s *UserService) Signup(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "must not be empty"}
	}
	if password == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.Store.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "username already taken"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	users = append(users, user)
	if err := s.Store.Save(users); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "user", "signup", "username="+username)
	return user, nil
}

// Authenticate verifies credentials. ok is false for an unknown
// username or a wrong password; err reports storage trouble only.
func (s *UserService) Authenticate(username, password string) (user models.User, ok bool, err error) {
	users, err := s.Store.Load()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return models.User{}, false, nil
			}
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// FindByID fetches an account by id.
func (s *UserService) FindByID(userID string) (models.User, error) {
	users, err := s.Store.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == userID {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}
