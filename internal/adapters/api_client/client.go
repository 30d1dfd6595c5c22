package api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/contracts"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

const tokenHeader = "X-Token"

// SixCitiesAPIClient - клиент удаленного API six-cities.
// Реализует OffersAPIPort, ReviewsAPIPort, FavoritesAPIPort и UserAPIPort.
type SixCitiesAPIClient struct {
	baseURL    string // Например, "https://10.react.pages.academy/six-cities"
	httpClient *http.Client
}

func NewSixCitiesAPIClient(baseURL string, timeout time.Duration) *SixCitiesAPIClient {
	return &SixCitiesAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// doRequest - внутренний хелпер: проставляет токен и trace_id, выполняет запрос
// и превращает статусы ошибок в доменные ошибки.
func (c *SixCitiesAPIClient) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token := contextkeys.TokenFromContext(ctx); token != "" {
		req.Header.Set(tokenHeader, token)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func statusError(code int, body []byte) error {
	var sentinel error
	switch code {
	case http.StatusUnauthorized:
		sentinel = domain.ErrNotAuthorized
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusBadRequest:
		sentinel = domain.ErrBadRequest
	default:
		return fmt.Errorf("six-cities API returned non-2xx status: %d, body: %s", code, string(body))
	}

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, apiErr.Error)
	}
	return sentinel
}

// decode проверяет тело ответа по схеме и декодирует его в dst.
func decode(ctx context.Context, schema string, body []byte, dst interface{}) error {
	if err := contracts.ValidateResponse(schema, contracts.VersionV1, body); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("API response does not match contract", err, port.Fields{
			"component": "SixCitiesAPIClient",
			"schema":    schema,
		})
		return fmt.Errorf("unexpected %s from API: %w", schema, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", schema, err)
	}
	return nil
}

func (c *SixCitiesAPIClient) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SixCitiesAPIClient",
		"method":    method,
	})
}
