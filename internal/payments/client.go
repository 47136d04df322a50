package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/coincrafter/backend/internal/config"
	"github.com/coincrafter/backend/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=payments

// Client talks to the external payment processor: it creates charge intents
// and hands back the client secret the frontend completes the charge with.
type Client struct {
	url    string
	secret string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.PaymentAddress,
		secret: cfg.PaymentSecret,
		client: client,
	}
}

type intentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func (c *Client) CreateIntent(ctx context.Context, amount float64) (string, error) {
	body, err := json.Marshal(intentRequest{Amount: amount, Currency: "usd"})
	if err != nil {
		return "", fmt.Errorf("can't encode intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("can't build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("payment intent request failed", zap.Error(err))
		return "", fmt.Errorf("payment processor unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("can't read intent response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		zap.L().Error("unexpected payment processor status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return "", fmt.Errorf("can't parse intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment processor returned no client secret")
	}
	return intent.ClientSecret, nil
}
