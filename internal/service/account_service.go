package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"classroom-service/internal/auth"
	"classroom-service/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, photoURL string) error
}

type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AccountService wraps the identity flows: registration, sign-in, sign-out
// and profile editing.
type AccountService struct {
	users  UserStore
	tokens TokenStore
	jwt    *auth.Manager
}

func NewAccountService(users UserStore, tokens TokenStore, jwtManager *auth.Manager) *AccountService {
	return &AccountService{users: users, tokens: tokens, jwt: jwtManager}
}

func (s *AccountService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if password == "" {
		return nil, errors.New("password is required")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !notFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user, err := models.NewUser(uuid.NewString(), name, email, string(hash), role)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique email index catches registrations racing past the
		// FindByEmail check above.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if notFound(err) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}
	token, err := s.jwt.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *AccountService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := s.jwt.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID, ttl)
}

func (s *AccountService) Current(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the display name and photo, returning the updated
// user document.
func (s *AccountService) UpdateProfile(ctx context.Context, userID, name, photoURL string) (*models.User, error) {
	if name == "" {
		return nil, errors.New("display name is required")
	}
	if err := s.users.UpdateProfile(ctx, userID, name, photoURL); err != nil {
		return nil, err
	}
	return s.Current(ctx, userID)
}
