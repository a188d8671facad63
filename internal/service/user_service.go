package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hitenSisghSoft/soundbox/internal/cache"
	domerr "github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/repository"
	"github.com/hitenSisghSoft/soundbox/internal/role"
)

const userCacheTTL = 5 * time.Minute

// UserInput carries employee fields accepted from the dashboard forms.
type UserInput struct {
	Name     string
	Email    string
	Mobile   string
	Shift    string
	Role     string
	Password string
}

// ProfileInput carries the fields a signed-in user may change on their own
// record. Role, shift, and password changes stay on the admin endpoints.
type ProfileInput struct {
	Name   string
	Email  string
	Mobile string
}

// UserService exposes employee CRUD and self-service profile operations.
type UserService interface {
	CreateUser(ctx context.Context, in UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, in ProfileInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domerr.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// An absent role means support, never admin. An unknown role string is a
	// request error, not a fallback.
	userRole := role.Support
	if in.Role != "" {
		parsed, known := role.Parse(in.Role)
		if !known {
			return nil, domerr.ErrInvalidRole
		}
		userRole = parsed
	}
	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		Shift:        in.Shift,
		Role:         userRole.String(),
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrUserNotFound
		}
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Mobile = in.Mobile
	user.Shift = in.Shift
	if in.Role != "" {
		userRole, known := role.Parse(in.Role)
		if !known {
			return nil, domerr.ErrInvalidRole
		}
		user.Role = userRole.String()
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// UpdateProfile applies the self-service fields onto the caller's own record.
func (s *userService) UpdateProfile(ctx context.Context, id uint, in ProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrUserNotFound
		}
		return nil, err
	}

	if in.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, in.Email); err == nil && existing != nil && existing.ID != id {
			return nil, domerr.ErrEmailTaken
		} else if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check email availability: %w", err)
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Mobile = in.Mobile

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domerr.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
