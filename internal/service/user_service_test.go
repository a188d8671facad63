package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domerr "github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		input         UserInput
		setupMock     func(*MockUserRepository)
		expectedRole  string
		expectedError error
	}{
		{
			name:  "creates employee with hashed password",
			input: UserInput{Name: "Asha", Email: "asha@example.com", Mobile: "9876543210", Role: "agent", Password: "secret123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: "agent",
		},
		{
			name:  "blank role defaults to support",
			input: UserInput{Name: "Ravi", Email: "ravi@example.com", Mobile: "9876543211", Password: "secret123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ravi@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: "support",
		},
		{
			name:  "unknown role is rejected, never admin",
			input: UserInput{Name: "Ravi", Email: "ravi2@example.com", Mobile: "9876543212", Role: "superviser", Password: "secret123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ravi2@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domerr.ErrInvalidRole,
		},
		{
			name:  "duplicate email",
			input: UserInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "asha@example.com").Return(&model.User{Email: "asha@example.com"}, nil)
			},
			expectedError: domerr.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, nil)
			user, err := service.CreateUser(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("keeps password when blank", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcryptCost)
		assert.NoError(t, err)

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{
			ID:           5,
			Email:        "asha@example.com",
			PasswordHash: string(hash),
			Role:         "agent",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.PasswordHash == string(hash) && u.Name == "Asha K"
		})).Return(nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateUser(context.Background(), 5, UserInput{
			Name:  "Asha K",
			Email: "asha@example.com",
		})
		assert.NoError(t, err)
		// Blank role input keeps the stored role too.
		assert.Equal(t, "agent", user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Role: "agent"}, nil)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateUser(context.Background(), 5, UserInput{Role: "superviser"})
		assert.Equal(t, domerr.ErrInvalidRole, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateUser(context.Background(), 5, UserInput{})
		assert.Equal(t, domerr.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("updates own name, email, and mobile", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:     7,
			Name:   "Asha",
			Email:  "asha@example.com",
			Mobile: "9876543210",
			Role:   "support",
		}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "asha.v@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Name == "Asha V" && u.Email == "asha.v@example.com" && u.Mobile == "9123456789"
		})).Return(nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.UpdateProfile(context.Background(), 7, ProfileInput{
			Name:   "Asha V",
			Email:  "asha.v@example.com",
			Mobile: "9123456789",
		})
		assert.NoError(t, err)
		// Role stays with the admin endpoints.
		assert.Equal(t, "support", user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unchanged email skips the availability check", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID:    7,
			Email: "asha@example.com",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateProfile(context.Background(), 7, ProfileInput{
			Name:   "Asha",
			Email:  "asha@example.com",
			Mobile: "9876543210",
		})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "asha@example.com"}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "ravi@example.com").Return(&model.User{ID: 9, Email: "ravi@example.com"}, nil)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateProfile(context.Background(), 7, ProfileInput{Email: "ravi@example.com"})
		assert.Equal(t, domerr.ErrEmailTaken, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		_, err := service.UpdateProfile(context.Background(), 7, ProfileInput{})
		assert.Equal(t, domerr.ErrUserNotFound, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

		service := NewUserService(mockRepo, nil)
		assert.NoError(t, service.DeleteUser(context.Background(), 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		assert.Equal(t, domerr.ErrUserNotFound, service.DeleteUser(context.Background(), 5))
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, nil)
		_, err := service.GetUser(context.Background(), 9)
		assert.Equal(t, domerr.ErrUserNotFound, err)
	})

	t.Run("found user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, Name: "Asha"}, nil)

		service := NewUserService(mockRepo, nil)
		user, err := service.GetUser(context.Background(), 9)
		assert.NoError(t, err)
		assert.Equal(t, "Asha", user.Name)
	})
}
