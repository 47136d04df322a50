package paymentservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type Ledger interface {
	Credit(ctx context.Context, email string, amount int) (int, error)
}

// IntentClient creates a charge intent with the external payment processor and
// returns the opaque client secret for client-side completion.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

type Service struct {
	paymentRepo PaymentRepo
	ledger      Ledger
	intents     IntentClient
	txManager   pg.TXManager
}

func New(paymentRepo PaymentRepo, ledger Ledger, intents IntentClient, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		ledger:      ledger,
		intents:     intents,
		txManager:   txManager,
	}
}

// Purchasable coin packs and their price in currency units.
var coinPacks = map[int]float64{
	10:   1,
	150:  10,
	500:  20,
	1000: 35,
}

func (s *Service) CreateIntent(ctx context.Context, email string, coins int) (string, float64, error) {
	amount, ok := coinPacks[coins]
	if !ok {
		return "", 0, fmt.Errorf("%w: unknown coin pack %d", domain.ErrValidation, coins)
	}

	secret, err := s.intents.CreateIntent(ctx, amount)
	if err != nil {
		zap.L().Error("can't create payment intent", zap.String("email", email), zap.Error(err))
		return "", 0, err
	}

	zap.L().Info("payment intent created", zap.String("email", email), zap.Int("coins", coins))
	return secret, amount, nil
}

// Record ingests a completed charge. The payment insert and the coin credit
// share one transaction, and the unique transaction id makes a retried call a
// no-op on the balance: the duplicate insert aborts before any credit.
func (s *Service) Record(ctx context.Context, email string, amount float64, transactionID string, coins int) (*domain.Payment, error) {
	payment := &domain.Payment{
		Email:         email,
		Amount:        amount,
		TransactionID: transactionID,
		Coins:         coins,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, email, coins); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't record payment", zap.String("transactionID", transactionID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment recorded", zap.String("email", email), zap.String("transactionID", transactionID), zap.Int("coins", coins))
	return payment, nil
}

func (s *Service) ListMine(ctx context.Context, email string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
