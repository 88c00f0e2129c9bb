package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IdentityUser is the provider's view of an account.
type IdentityUser struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Disabled      bool   `json:"disabled"`
}

// IdentityUpdate is a partial account update. Nil fields are left untouched.
type IdentityUpdate struct {
	Email         *string `json:"email,omitempty"`
	EmailVerified *bool   `json:"emailVerified,omitempty"`
}

// IdentityService talks to the identity provider that owns account
// credentials and email verification state.
type IdentityService interface {
	GetUser(ctx context.Context, uid string) (*IdentityUser, error)
	UpdateUser(ctx context.Context, uid string, update IdentityUpdate) error
}

type identityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewIdentityClient(baseURL, apiKey string, httpClient *http.Client) IdentityService {
	return &identityClient{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

func (c *identityClient) GetUser(ctx context.Context, uid string) (*IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/accounts/%s", c.baseURL, uid), nil)
	if err != nil {
		return nil, fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: lookup account %s: %w", uid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providerError("identity", resp)
	}

	var user IdentityUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("identity: decode account %s: %w", uid, err)
	}
	return &user, nil
}

func (c *identityClient) UpdateUser(ctx context.Context, uid string, update IdentityUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("identity: encode update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, fmt.Sprintf("%s/v1/accounts/%s", c.baseURL, uid), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: update account %s: %w", uid, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return providerError("identity", resp)
	}
	return nil
}

func providerError(provider string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &ProviderError{Provider: provider, StatusCode: resp.StatusCode, Message: string(msg)}
}
