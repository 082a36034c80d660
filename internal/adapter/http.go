package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/expense-keeper/internal/config"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/utils"
	"github.com/MKhiriev/expense-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	userID int64

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetUserID implements [ServerAdapter]. It stores the identifier used in the
// User-ID header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetUserID(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.userID = id
}

// UserID implements [ServerAdapter]. It returns the identifier currently held
// by the adapter, or zero if none has been set.
func (h *httpServerAdapter) UserID() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

// Register implements [ServerAdapter]. It POSTs the plaintext credentials to
// POST /api/user/register. Returns an error if the request fails or the
// server responds with a non-2xx status; a taken username surfaces as
// [ErrConflict].
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the returned user id is stored via
// SetUserID and the decoded [models.LoginResponse] is returned.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetUserID(loginResponse.UserID)
	return loginResponse, nil
}

// GetExpensesByDate implements [ServerAdapter]. It GETs
// /api/expenses/date/{date} and decodes the encrypted rows.
func (h *httpServerAdapter) GetExpensesByDate(ctx context.Context, date models.Date) ([]models.Expense, error) {
	resp, err := h.authedRequest(ctx).Get("/api/expenses/date/" + date.String())
	if err != nil {
		return nil, fmt.Errorf("get expenses by date request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeExpenses(resp.Body())
}

// SaveExpensesForDate implements [ServerAdapter]. It POSTs the encrypted rows
// to POST /api/expenses/date/{date}, replacing the server's set for that day,
// and decodes the stored rows from the response.
func (h *httpServerAdapter) SaveExpensesForDate(ctx context.Context, date models.Date, expenses []models.Expense) ([]models.Expense, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(expenses).
		Post("/api/expenses/date/" + date.String())
	if err != nil {
		return nil, fmt.Errorf("save expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeExpenses(resp.Body())
}

// GetAllExpenses implements [ServerAdapter]. It GETs /api/expenses and
// decodes every encrypted row the user owns.
func (h *httpServerAdapter) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	resp, err := h.authedRequest(ctx).Get("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("get all expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeExpenses(resp.Body())
}

// GetExpensesByRange implements [ServerAdapter]. It POSTs the inclusive range
// to POST /api/expenses/range and decodes the matching encrypted rows.
func (h *httpServerAdapter) GetExpensesByRange(ctx context.Context, rng models.DateRange) ([]models.Expense, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rng).
		Post("/api/expenses/range")
	if err != nil {
		return nil, fmt.Errorf("get expenses by range request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeExpenses(resp.Body())
}

// UpdateExpense implements [ServerAdapter]. It PUTs the encrypted row to
// PUT /api/expenses/{id}. The server matches the row by id and the identity
// header together; a foreign row matches nothing and the call still
// succeeds.
func (h *httpServerAdapter) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	var updated models.Expense

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(expense).
		SetResult(&updated).
		Put("/api/expenses/" + strconv.FormatInt(expense.ID, 10))
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	return updated, nil
}

// DeleteExpense implements [ServerAdapter]. It sends DELETE
// /api/expenses/{id}.
func (h *httpServerAdapter) DeleteExpense(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/api/expenses/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete expense request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetAppVersion implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	var versionResponse models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&versionResponse).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get app version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return versionResponse.Version, nil
}

// Health implements [ServerAdapter]. It GETs the root health endpoint.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var healthResponse models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&healthResponse).
		Get("/")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return healthResponse, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if id := h.UserID(); id > 0 {
		req.SetHeader("User-ID", strconv.FormatInt(id, 10))
	}
	return req
}

func decodeExpenses(body []byte) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses response: %w", err)
	}
	return expenses, nil
}
