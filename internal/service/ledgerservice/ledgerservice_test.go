package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockLedgerRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int
		prepareMock   func()
		expectedCoins int
		expectedError error
	}{
		{
			name:   "Applies a positive delta",
			amount: 25,
			prepareMock: func() {
				repo.EXPECT().AdjustCoins(gomock.Any(), "jane@example.com", 25).Return(75, nil)
			},
			expectedCoins: 75,
		},
		{
			name:          "Zero amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Negative amount",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Repository error",
			amount: 25,
			prepareMock: func() {
				repo.EXPECT().AdjustCoins(gomock.Any(), "jane@example.com", 25).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			coins, err := service.Credit(context.Background(), "jane@example.com", tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCoins, coins)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		amount        int
		prepareMock   func()
		expectedCoins int
		expectedError error
	}{
		{
			name:   "Applies a negative delta",
			amount: 25,
			prepareMock: func() {
				repo.EXPECT().AdjustCoins(gomock.Any(), "jane@example.com", -25).Return(50, nil)
			},
			expectedCoins: 50,
		},
		{
			name:          "Zero amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Balance would go negative",
			amount: 25,
			prepareMock: func() {
				repo.EXPECT().AdjustCoins(gomock.Any(), "jane@example.com", -25).Return(0, domain.ErrInsufficientBalance)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			coins, err := service.Debit(context.Background(), "jane@example.com", tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCoins, coins)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCoins int
		expectedError error
	}{
		{
			name: "Returns the current balance",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(&domain.User{Email: "jane@example.com", Coins: 120}, nil)
			},
			expectedCoins: 120,
		},
		{
			name: "Unknown account",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			coins, err := service.Balance(context.Background(), "jane@example.com")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCoins, coins)
			}
		})
	}
}
