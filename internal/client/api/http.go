package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zenfit/zenfit/internal/client/models"
)

// maxResponseBody caps how much of a response is read into memory.
const maxResponseBody = 256 * 1024

// HTTPClient talks JSON to the Zenfit API over a single http.Client with a
// fixed base URL. The bearer credential is read from the TokenSource per
// request.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// authorize decorates req with the bearer credential. It is applied to every
// request uniformly; public endpoints ignore a stale credential, so there is
// no exemption list to keep in sync.
func authorize(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// doJSON issues one request and decodes the response into out (when out is
// non-nil). Non-2xx statuses become *Error; transport failures wrap
// ErrUnavailable. There are no retries.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credential: %w", err)
	}
	authorize(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: serverMessage(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse api response: %w", err)
	}
	return nil
}

// serverMessage pulls the message out of an {"error": "..."} failure body.
func serverMessage(body []byte) string {
	var failure struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &failure); err != nil {
		return ""
	}
	return strings.TrimSpace(failure.Error)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var out struct {
		Workouts []models.Workout `json:"workouts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/workouts/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Workouts, nil
}

func (c *HTTPClient) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	var out struct {
		Workout models.Workout `json:"workout"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Workout, nil
}

func (c *HTTPClient) CreateWorkout(ctx context.Context, req models.CreateWorkoutRequest) (*models.Workout, error) {
	var out struct {
		Workout models.Workout `json:"workout"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/workouts/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Workout, nil
}

func (c *HTTPClient) DeleteWorkout(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d", id), nil, nil, nil)
}

func (c *HTTPClient) ListMeals(ctx context.Context, date string) ([]models.Meal, error) {
	var out struct {
		Meals []models.Meal `json:"meals"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/nutrition/", dateQuery(date), nil, &out); err != nil {
		return nil, err
	}
	return out.Meals, nil
}

func (c *HTTPClient) GetMeal(ctx context.Context, id int64) (*models.Meal, error) {
	var out struct {
		Meal models.Meal `json:"meal"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/nutrition/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Meal, nil
}

func (c *HTTPClient) CreateMeal(ctx context.Context, req models.CreateMealRequest) (*models.Meal, error) {
	var out struct {
		Meal models.Meal `json:"meal"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/nutrition/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Meal, nil
}

func (c *HTTPClient) DeleteMeal(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/nutrition/%d", id), nil, nil, nil)
}

func (c *HTTPClient) DailySummary(ctx context.Context, date string) (*models.DailySummary, error) {
	var out models.DailySummary
	if err := c.doJSON(ctx, http.MethodGet, "/nutrition/daily-summary", dateQuery(date), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func dateQuery(date string) url.Values {
	if date == "" {
		return nil
	}
	q := url.Values{}
	q.Set("date", date)
	return q
}
