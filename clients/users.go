package clients

import (
	"context"
	"encoding/json"
	"net/http"

	"booking-client/domain"

	"go.opentelemetry.io/otel/codes"
)

func (bc *BackendClient) Login(ctx context.Context, credentials domain.LoginInput) (*domain.LoginResult, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.Login")
	defer span.End()

	body, err := json.Marshal(credentials)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, "", http.MethodPost, bc.url("/auth/login"), body, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Login rejected")
		return nil, decodeRejection(resp)
	}

	var result domain.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Logged in")
	return &result, nil
}

func (bc *BackendClient) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.Register")
	defer span.End()

	body, err := json.Marshal(input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, "", http.MethodPost, bc.url("/auth/register"), body, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		span.SetStatus(codes.Error, "Registration rejected")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		User domain.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Registered")
	return &payload.User, nil
}

func (bc *BackendClient) GetCurrentUserProfile(ctx context.Context, token string) (*domain.User, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetCurrentUserProfile")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodGet, bc.url("/users/get-logged-in-profile-info"), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to obtain current user information")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		User domain.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got current user profile")
	return &payload.User, nil
}
