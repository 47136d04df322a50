package submissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	submissionRepo *MockSubmissionRepo
	taskRepo       *MockTaskRepo
	userRepo       *MockUserRepo
	ledger         *MockLedger
	notifier       *MockNotifier
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		submissionRepo: NewMockSubmissionRepo(ctrl),
		taskRepo:       NewMockTaskRepo(ctrl),
		userRepo:       NewMockUserRepo(ctrl),
		ledger:         NewMockLedger(ctrl),
		notifier:       NewMockNotifier(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.submissionRepo, m.taskRepo, m.userRepo, m.ledger, m.notifier, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughTX(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestSubmit(t *testing.T) {
	service, m := NewMock(t)

	task := &domain.Task{ID: 7, Title: "Watch my video", CreatedBy: "buyer@example.com", PayableAmount: 5, RequiredWorkers: 3}
	worker := &domain.User{Email: "worker@example.com", Name: "Jane", Role: domain.RoleWorker}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Claims a slot and notifies the buyer",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "worker@example.com").Return(worker, nil)
				m.taskRepo.EXPECT().AdjustRequiredWorkers(gomock.Any(), 7, -1).Return(int64(1), nil)
				m.submissionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
					sub.ID = 101
					return sub, nil
				})
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "buyer@example.com", "/dashboard/task-review")
			},
			expectedError: nil,
		},
		{
			name: "No remaining slots",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "worker@example.com").Return(worker, nil)
				m.taskRepo.EXPECT().AdjustRequiredWorkers(gomock.Any(), 7, -1).Return(int64(0), nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Task not found",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Worker not found",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "worker@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			sub, err := service.Submit(context.Background(), 7, "worker@example.com", "done, see screenshot")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, sub)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 101, sub.ID)
				assert.Equal(t, "Watch my video", sub.TaskTitle)
				assert.Equal(t, 5, sub.PayableAmount)
				assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)

	pendingSub := func() *domain.Submission {
		return &domain.Submission{
			ID:            101,
			TaskID:        7,
			TaskTitle:     "Watch my video",
			WorkerEmail:   "worker@example.com",
			WorkerName:    "Jane",
			BuyerEmail:    "buyer@example.com",
			PayableAmount: 5,
			Status:        domain.SubmissionStatusPending,
		}
	}
	task := &domain.Task{ID: 7, CreatedBy: "buyer@example.com"}

	tests := []struct {
		name          string
		actor         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Credits the worker once and completes an exhausted task",
			actor: "buyer@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub(), nil)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.submissionRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), 101, domain.SubmissionStatusApproved).Return(int64(1), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), "worker@example.com", 5).Return(15, nil)
				m.taskRepo.EXPECT().CompleteIfExhausted(gomock.Any(), 7).Return(int64(1), nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "worker@example.com", "/dashboard/worker-home")
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "buyer@example.com", "/dashboard/task-review")
				m.userRepo.EXPECT().FindEmailsByRole(gomock.Any(), domain.RoleAdmin).Return([]string{"admin@example.com"}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "admin@example.com", "/dashboard/admin-home")
			},
			expectedError: nil,
		},
		{
			name:  "Lost the race, no payout",
			actor: "buyer@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub(), nil)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.submissionRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), 101, domain.SubmissionStatusApproved).Return(int64(0), nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:  "Already decided",
			actor: "buyer@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				decided := pendingSub()
				decided.Status = domain.SubmissionStatusRejected
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(decided, nil)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
			},
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:  "Not the task owner",
			actor: "other@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub(), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:  "Submission not found",
			actor: "buyer@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:  "Credit failure leaves the submission pending",
			actor: "buyer@example.com",
			prepareMock: func() {
				passthroughTX(m.txManager)
				m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub(), nil)
				m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
				m.submissionRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), 101, domain.SubmissionStatusApproved).Return(int64(1), nil)
				m.ledger.EXPECT().Credit(gomock.Any(), "worker@example.com", 5).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Approve(context.Background(), 101, tt.actor)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)

	pendingSub := &domain.Submission{
		ID:          101,
		TaskID:      7,
		TaskTitle:   "Watch my video",
		WorkerEmail: "worker@example.com",
		WorkerName:  "Jane",
		BuyerEmail:  "buyer@example.com",
		Status:      domain.SubmissionStatusPending,
	}
	task := &domain.Task{ID: 7, CreatedBy: "buyer@example.com"}

	t.Run("Frees the claimed slot without paying out", func(t *testing.T) {
		passthroughTX(m.txManager)
		m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub, nil)
		m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
		m.submissionRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), 101, domain.SubmissionStatusRejected).Return(int64(1), nil)
		m.taskRepo.EXPECT().AdjustRequiredWorkers(gomock.Any(), 7, 1).Return(int64(1), nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "worker@example.com", "/dashboard/my-submissions")
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), "buyer@example.com", "/dashboard/task-review")
		m.userRepo.EXPECT().FindEmailsByRole(gomock.Any(), domain.RoleAdmin).Return(nil, errors.New("db error"))

		err := service.Reject(context.Background(), 101, "buyer@example.com")
		assert.NoError(t, err)
	})

	t.Run("Lost the race", func(t *testing.T) {
		passthroughTX(m.txManager)
		m.submissionRepo.EXPECT().FindByID(gomock.Any(), 101).Return(pendingSub, nil)
		m.taskRepo.EXPECT().FindByID(gomock.Any(), 7).Return(task, nil)
		m.submissionRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), 101, domain.SubmissionStatusRejected).Return(int64(0), nil)

		err := service.Reject(context.Background(), 101, "buyer@example.com")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestListMine(t *testing.T) {
	service, m := NewMock(t)

	expected := []domain.Submission{{ID: 1}, {ID: 2}}
	m.submissionRepo.EXPECT().FindByWorker(gomock.Any(), "worker@example.com").Return(expected, nil)

	subs, err := service.ListMine(context.Background(), "worker@example.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, subs)
}

func TestListPendingForBuyer(t *testing.T) {
	service, m := NewMock(t)

	m.submissionRepo.EXPECT().FindPendingByBuyer(gomock.Any(), "buyer@example.com").Return(nil, errors.New("db error"))

	subs, err := service.ListPendingForBuyer(context.Background(), "buyer@example.com")
	assert.Error(t, err)
	assert.Nil(t, subs)
}
