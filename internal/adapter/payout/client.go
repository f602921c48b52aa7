package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gd-arcade/config"
	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"

	"github.com/rs/zerolog"
)

// Client talks to the blockchain bridge service over HTTP. The bridge is
// the only component that signs and broadcasts G$ transfers; this client
// never retries on its own, because a timed-out transfer may still land
// on chain. Callers keep the withdrawal pending in that case.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a bridge client with a bounded request timeout.
func NewClient(cfg config.PayoutConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "payout_client").Logger(),
	}
}

type transferRequest struct {
	Wallet    string `json:"wallet"`
	Amount    string `json:"amount"` // base units, string to avoid JSON float loss
	Reference string `json:"reference"`
}

type transferResponse struct {
	TxHash string `json:"tx_hash"`
	Error  string `json:"error,omitempty"`
}

// Transfer requests an on-chain G$ transfer. A 4xx response means the
// bridge definitively rejected the transfer and is returned as a
// *ports.PayoutRejectedError; any other failure leaves the outcome unknown.
func (c *Client) Transfer(ctx context.Context, wallet string, amount domain.Amount, reference string) (string, error) {
	body, err := json.Marshal(transferRequest{
		Wallet:    wallet,
		Amount:    fmt.Sprintf("%d", int64(amount)),
		Reference: reference,
	})
	if err != nil {
		return "", fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("reference", reference).Msg("bridge transfer call failed")
		return "", fmt.Errorf("bridge transfer: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read bridge response: %w", err)
	}

	var tr transferResponse
	if err := json.Unmarshal(respBody, &tr); err != nil && resp.StatusCode < 500 {
		return "", fmt.Errorf("decode bridge response (status %d): %w", resp.StatusCode, err)
	}

	c.log.Info().
		Int("status", resp.StatusCode).
		Str("reference", reference).
		Dur("duration", time.Since(start)).
		Msg("bridge transfer response")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if tr.TxHash == "" {
			return "", fmt.Errorf("bridge returned success without tx hash")
		}
		return tr.TxHash, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		reason := tr.Error
		if reason == "" {
			reason = fmt.Sprintf("bridge returned status %d", resp.StatusCode)
		}
		return "", &ports.PayoutRejectedError{Reason: reason}
	default:
		return "", fmt.Errorf("bridge returned status %d", resp.StatusCode)
	}
}
