package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// Retry configuration for the engine API
const (
	DefaultClientTimeout = 30 * time.Second
	MaxRetries           = 3
	RetryBaseDelay       = 500 * time.Millisecond
	RetryMaxJitter       = 100 * time.Millisecond

	HeaderAPIKey = "X-API-Key"
)

// APIError is a non-2xx answer from the engine API
type APIError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.Status)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// IsCooldown reports whether the engine rejected the call because of a cooldown
func (e *APIError) IsCooldown() bool {
	return e.Status == http.StatusTooManyRequests
}

// InventoryResponse is the engine's inventory listing
type InventoryResponse struct {
	Items []domain.InventoryEntry `json:"items"`
}

// ShopResponse is today's stock plus the caller's wallet
type ShopResponse struct {
	Day   string            `json:"day"`
	Items []domain.ShopItem `json:"items"`
	Coins *int              `json:"coins,omitempty"`
}

// ResetResponse reports an admin reset
type ResetResponse struct {
	Message string         `json:"message"`
	Player  *domain.Player `json:"player,omitempty"`
	Players int64          `json:"players,omitempty"`
}

type errorBody struct {
	Error             string `json:"error"`
	RetryAfterSeconds int64  `json:"retry_after_seconds"`
}

// APIClient handles communication with the newbot-ai engine API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	retryDelay time.Duration
}

// NewAPIClient creates a new API client. baseURL includes the /api/v1 prefix.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		retryDelay: RetryBaseDelay,
	}
}

// doRequest performs an HTTP request with backoff. Reads are retried on transport
// failures and 5xx answers. Writes are only resent when the connection could not
// be dialed, since the engine may already have committed them.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(RetryMaxJitter)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !retryable(method, err) {
				return nil, fmt.Errorf("request failed: %w", err)
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError || !retryable(method, nil) {
			return resp, nil
		}

		// The engine answers 503 when the generator is down; that is final.
		if resp.StatusCode == http.StatusServiceUnavailable {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// retryable reports whether an attempt that failed with err may be sent again
func retryable(method string, err error) bool {
	if method == http.MethodGet || method == http.MethodHead {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// call performs a request and decodes a 2xx body into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
		apiErr.RetryAfter = time.Duration(body.RetryAfterSeconds) * time.Second
	}
	return apiErr
}

func playerPath(guildID, userID string) string {
	return fmt.Sprintf("/players/%s/%s", url.PathEscape(guildID), url.PathEscape(userID))
}

// GetPlayer loads (creating on first sight) a player
func (c *APIClient) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	var p domain.Player
	if err := c.call(ctx, http.MethodGet, playerPath(guildID, userID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetInventory lists a player's items
func (c *APIClient) GetInventory(ctx context.Context, userID, guildID string) ([]domain.InventoryEntry, error) {
	var inv InventoryResponse
	if err := c.call(ctx, http.MethodGet, playerPath(guildID, userID)+"/inventory", nil, &inv); err != nil {
		return nil, err
	}
	return inv.Items, nil
}

// Perform runs one activity for the player
func (c *APIClient) Perform(ctx context.Context, userID, guildID, activity string) (*domain.ActivityResult, error) {
	req := map[string]string{
		"guild_id": guildID,
		"user_id":  userID,
	}
	var res domain.ActivityResult
	if err := c.call(ctx, http.MethodPost, "/activities/"+url.PathEscape(activity), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetShop returns today's shop. With a userID the response carries their coins.
func (c *APIClient) GetShop(ctx context.Context, userID, guildID string) (*ShopResponse, error) {
	path := "/shop/" + url.PathEscape(guildID)
	if userID != "" {
		params := url.Values{}
		params.Set("user_id", userID)
		path += "?" + params.Encode()
	}

	var shop ShopResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// Buy purchases the item in a 1-based slot of today's shop
func (c *APIClient) Buy(ctx context.Context, userID, guildID string, slot int) (*domain.PurchaseResult, error) {
	req := map[string]any{
		"guild_id": guildID,
		"user_id":  userID,
		"slot":     slot,
	}
	var res domain.PurchaseResult
	if err := c.call(ctx, http.MethodPost, "/shop/buy", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResetPlayer restores one player to defaults
func (c *APIClient) ResetPlayer(ctx context.Context, userID, guildID string) (*ResetResponse, error) {
	req := map[string]string{
		"guild_id": guildID,
		"user_id":  userID,
	}
	var res ResetResponse
	if err := c.call(ctx, http.MethodPost, "/admin/reset", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResetGuild restores every player of a guild
func (c *APIClient) ResetGuild(ctx context.Context, guildID string) (*ResetResponse, error) {
	req := map[string]string{"guild_id": guildID}
	var res ResetResponse
	if err := c.call(ctx, http.MethodPost, "/admin/reset-all", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Chat sends a free-form prompt to the storyteller
func (c *APIClient) Chat(ctx context.Context, prompt string) (string, error) {
	var res struct {
		Reply string `json:"reply"`
	}
	if err := c.call(ctx, http.MethodPost, "/chat", map[string]string{"prompt": prompt}, &res); err != nil {
		return "", err
	}
	return res.Reply, nil
}

// Healthy pings the engine's liveness probe. The probe lives outside /api/v1.
func (c *APIClient) Healthy(ctx context.Context, healthURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// asAPIError unwraps an *APIError from err
func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
