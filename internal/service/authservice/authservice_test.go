package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedCoins int
		expectedError error
	}{
		{
			name: "Buyer gets the buyer signup grant",
			role: domain.RoleBuyer,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "buyer@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedCoins: 50,
			expectedError: nil,
		},
		{
			name: "Worker gets the worker signup grant",
			role: domain.RoleWorker,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "buyer@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
			},
			expectedCoins: 10,
			expectedError: nil,
		},
		{
			name: "User already exists",
			role: domain.RoleBuyer,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "buyer@example.com").Return(&domain.User{Email: "buyer@example.com"}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Error finding user",
			role: domain.RoleBuyer,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "buyer@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			role: domain.RoleBuyer,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "buyer@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "Jane", "buyer@example.com", "testpassword", "", tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCoins, user.Coins)
				assert.Equal(t, tt.role, user.Role)
				assert.Equal(t, "hashedpassword", user.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@example.com").Return(&domain.User{
					Email:        "jane@example.com",
					PasswordHash: "hashedpassword",
					Role:         domain.RoleWorker,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrUnauthorized,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@example.com").Return(&domain.User{
					Email:        "jane@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "jane@example.com", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "jane@example.com", user.Email)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT("jane@example.com", domain.RoleWorker, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken("jane@example.com", domain.RoleWorker)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT("jane@example.com", domain.RoleWorker, gomock.Any()).Return("", errors.New("sign error"))
	token, err = service.GenerateToken("jane@example.com", domain.RoleWorker)
	assert.Error(t, err)
	assert.Empty(t, token)
}
