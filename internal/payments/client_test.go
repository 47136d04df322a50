package payments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/coincrafter/backend/internal/config"
	"github.com/coincrafter/backend/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{
		PaymentAddress: "http://localhost:8081",
		PaymentSecret:  "sk_test_secret",
	}
	client := New(cfg, httpClient)
	return client, httpClient
}

func respBody(body string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(body))
}

func TestClient_CreateIntent(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(httpClient *clients.MockHTTPClientI)
		expectedSecret string
		expectedErr    string
	}{
		{
			name: "Intent created",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					assert.Equal(t, http.MethodPost, req.Method)
					assert.Equal(t, "http://localhost:8081/v1/payment_intents", req.URL.String())
					assert.Equal(t, "Bearer sk_test_secret", req.Header.Get("Authorization"))
					assert.NotEmpty(t, req.Header.Get("Idempotency-Key"))
					return &http.Response{
						StatusCode: http.StatusOK,
						Body:       respBody(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`),
					}, nil
				})
			},
			expectedSecret: "pi_123_secret_abc",
		},
		{
			name: "Processor unreachable",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedErr: "payment processor unreachable",
		},
		{
			name: "Unexpected status",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       respBody(`{"error":"boom"}`),
				}, nil)
			},
			expectedErr: "payment processor returned status 500",
		},
		{
			name: "Malformed response",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					StatusCode: http.StatusOK,
					Body:       respBody(`{invalid json`),
				}, nil)
			},
			expectedErr: "can't parse intent response",
		},
		{
			name: "Missing client secret",
			prepareMock: func(httpClient *clients.MockHTTPClientI) {
				httpClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					StatusCode: http.StatusOK,
					Body:       respBody(`{"id":"pi_123"}`),
				}, nil)
			},
			expectedErr: "no client secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			tt.prepareMock(httpClient)

			secret, err := client.CreateIntent(context.Background(), 10)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Empty(t, secret)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSecret, secret)
			}
		})
	}
}
