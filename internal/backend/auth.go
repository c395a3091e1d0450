package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data *struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	} `json:"data"`
}

type verifyResponse struct {
	Status string `json:"status"`
	Data   *struct {
		Role string `json:"role"`
	} `json:"data"`
}

// Login calls POST /login with { email, password }.
// A 2xx response without data.token yields an empty LoginResult.Token and no
// error; deciding what that means is up to the caller.
func (h *HTTP) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.Login, bytes.NewReader(body))
	if err != nil {
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.do(req)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LoginResult{}, statusError("login", resp)
	}

	var out loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if out.Data == nil {
		return LoginResult{}, nil
	}
	return LoginResult{Token: out.Data.Token, Role: out.Data.Role}, nil
}

// VerifyToken calls GET /api/verify-token with Authorization: Bearer <token>.
// The explicit token is used even when a different one is attached.
func (h *HTTP) VerifyToken(ctx context.Context, token string) (VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+h.endpoints.VerifyToken, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.do(req)
	if err != nil {
		return VerifyResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return VerifyResult{}, statusError("verify-token", resp)
	}

	var out verifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return VerifyResult{}, fmt.Errorf("decode verify-token response: %w", err)
	}
	res := VerifyResult{Status: out.Status}
	if out.Data != nil {
		res.Role = out.Data.Role
	}
	return res, nil
}
