package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService owns user registration and credential checks. There is no HTTP
// auth surface; accounts exist at the store level only.
type UserService struct {
	store store.Storage
}

func NewUserService(st store.Storage) *UserService {
	return &UserService{store: st}
}

func (s *UserService) Register(ctx context.Context, req models.InsertUser) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.store.CreateUser(ctx, models.InsertUser{
		Username: req.Username,
		Password: string(hash),
	})
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
