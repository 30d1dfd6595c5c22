package api_client

import (
	"context"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contracts"
	"github.com/Stalyer/six-cities/internal/core/domain"
	"github.com/Stalyer/six-cities/internal/core/port"
)

// CheckAuth - GET /login с токеном из контекста.
func (c *SixCitiesAPIClient) CheckAuth(ctx context.Context) (*domain.AuthInfo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/login", nil)
	if err != nil {
		return nil, err
	}

	var dto authInfoDTO
	if err := decode(ctx, contracts.AuthInfoResponse, body, &dto); err != nil {
		return nil, err
	}
	return toDomainAuthInfo(dto), nil
}

// Login - POST /login
func (c *SixCitiesAPIClient) Login(ctx context.Context, data domain.AuthData) (*domain.AuthInfo, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/login", loginRequest{
		Email:    data.Email,
		Password: data.Password,
	})
	if err != nil {
		c.logger(ctx, "Login").Warn("Login rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	var dto authInfoDTO
	if err := decode(ctx, contracts.AuthInfoResponse, body, &dto); err != nil {
		return nil, err
	}
	return toDomainAuthInfo(dto), nil
}

// Logout - DELETE /logout
func (c *SixCitiesAPIClient) Logout(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/logout", nil)
	return err
}
