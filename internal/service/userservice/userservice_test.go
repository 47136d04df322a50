package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestGetByEmail(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Returns the user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(&domain.User{
					ID: 1, Email: "jane@example.com", Role: domain.RoleWorker,
				}, nil)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.GetByEmail(context.Background(), "jane@example.com")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "jane@example.com", user.Email)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, userRepo := NewMock(t)

	expected := []domain.User{{ID: 1}, {ID: 2}}
	userRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

	users, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUpdateRole(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Role updated",
			prepareMock: func() {
				userRepo.EXPECT().UpdateRole(gomock.Any(), 5, domain.RoleAdmin).Return(int64(1), nil)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().UpdateRole(gomock.Any(), 5, domain.RoleAdmin).Return(int64(0), nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.UpdateRole(context.Background(), 5, domain.RoleAdmin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTopWorkers(t *testing.T) {
	service, userRepo := NewMock(t)

	expected := []domain.User{{Name: "Jane", Coins: 900}, {Name: "Sam", Coins: 700}}
	userRepo.EXPECT().TopWorkers(gomock.Any(), 6).Return(expected, nil)

	workers, err := service.TopWorkers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, workers)
}

func TestDelete(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "User deleted",
			prepareMock: func() {
				userRepo.EXPECT().Delete(gomock.Any(), 5).Return(int64(1), nil)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().Delete(gomock.Any(), 5).Return(int64(0), nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				userRepo.EXPECT().Delete(gomock.Any(), 5).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
