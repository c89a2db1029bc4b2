package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

// apiPrefix is prepended to every path; callers pass the bare host URL.
const apiPrefix = "/api/v1"

// Client is a thin SDK over the REST API. The Telegram initData string is
// exchanged for a token pair once via Authenticate; every later call carries
// the access token as a bearer header.
type Client struct {
	baseURL    string
	httpClient *http.Client

	initData    string
	accessToken string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAccessToken skips the auth exchange, for callers that already hold a
// valid token.
func WithAccessToken(token string) Option {
	return func(c *Client) { c.accessToken = token }
}

func New(baseURL, initData string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		initData:   initData,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response. Message carries the server's detail text
// when one was present, else the generic status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope matches the uniform response wrapper every endpoint uses.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := shared.JSONAPI().Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := shared.JSONAPI().Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return err
	}

	if resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(&env, resp.StatusCode)}
	}

	if out != nil && len(env.Data) > 0 {
		return shared.JSONAPI().Unmarshal(env.Data, out)
	}
	return nil
}

func errorMessage(env *envelope, statusCode int) string {
	if env.Detail != "" {
		return env.Detail
	}
	if env.Message != "" {
		return env.Message
	}
	return http.StatusText(statusCode)
}

// Authenticate exchanges the initData for a token pair and stores the access
// token for subsequent calls.
func (c *Client) Authenticate(ctx context.Context) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/telegram", dto.TelegramAuthRequest{InitData: c.initData}, &out)
	if err != nil {
		return nil, err
	}
	c.accessToken = out.Tokens.AccessToken
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	var out dto.TokenPair
	err := c.do(ctx, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: refreshToken}, &out)
	if err != nil {
		return nil, err
	}
	c.accessToken = out.AccessToken
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*dto.UserStatsResponse, error) {
	var out dto.UserStatsResponse
	if err := c.do(ctx, http.MethodGet, "/user/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/exercises/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Exercises(ctx context.Context, category string, difficulty int) ([]dto.ExerciseResponse, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if difficulty > 0 {
		query.Set("difficulty", strconv.Itoa(difficulty))
	}
	path := "/exercises"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out []dto.ExerciseResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitWorkout(ctx context.Context, req dto.SubmitWorkoutRequest) (*dto.WorkoutSummaryResponse, error) {
	var out dto.WorkoutSummaryResponse
	if err := c.do(ctx, http.MethodPost, "/workouts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TodayStats(ctx context.Context) (*dto.TodayStatsResponse, error) {
	var out dto.TodayStatsResponse
	if err := c.do(ctx, http.MethodGet, "/workouts/today", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Leaderboard(ctx context.Context, period string, limit int) (*dto.LeaderboardResponse, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	path := "/leaderboard"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out dto.LeaderboardResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Achievements(ctx context.Context) ([]dto.AchievementResponse, error) {
	var out []dto.AchievementResponse
	if err := c.do(ctx, http.MethodGet, "/achievements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ShopItems(ctx context.Context) ([]dto.ShopItemResponse, error) {
	var out []dto.ShopItemResponse
	if err := c.do(ctx, http.MethodGet, "/shop/items", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Purchase(ctx context.Context, itemID string) (*dto.PurchaseResponse, error) {
	var out dto.PurchaseResponse
	if err := c.do(ctx, http.MethodPost, "/shop/items/"+itemID+"/purchase", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleFavorite(ctx context.Context, slug string) (*dto.FavoriteResponse, error) {
	var out dto.FavoriteResponse
	if err := c.do(ctx, http.MethodPost, "/exercises/"+slug+"/favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
