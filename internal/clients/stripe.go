package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrCardDeclined marks provider failures caused by the card itself
// (declined, expired, bad token) rather than by this service.
var ErrCardDeclined = errors.New("payments: card rejected by provider")

// Card is a stored payment card as reported by the payment provider.
type Card struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

// PaymentService manages customers and cards at the payment provider.
type PaymentService interface {
	CreateCustomer(ctx context.Context, email, description string) (string, error)
	GetCard(ctx context.Context, customerID, cardID string) (*Card, error)
	CreateCard(ctx context.Context, customerID, token string) (*Card, error)
	DeleteCard(ctx context.Context, customerID, cardID string) error
}

type stripeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewStripeClient(baseURL, apiKey string, httpClient *http.Client) PaymentService {
	return &stripeClient{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

func (c *stripeClient) CreateCustomer(ctx context.Context, email, description string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("description", description)

	var customer struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/customers", form, &customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (c *stripeClient) GetCard(ctx context.Context, customerID, cardID string) (*Card, error) {
	var card Card
	path := fmt.Sprintf("/v1/customers/%s/sources/%s", customerID, cardID)
	if err := c.do(ctx, http.MethodGet, path, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *stripeClient) CreateCard(ctx context.Context, customerID, token string) (*Card, error) {
	form := url.Values{}
	form.Set("source", token)

	var card Card
	path := fmt.Sprintf("/v1/customers/%s/sources", customerID)
	if err := c.do(ctx, http.MethodPost, path, form, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *stripeClient) DeleteCard(ctx context.Context, customerID, cardID string) error {
	path := fmt.Sprintf("/v1/customers/%s/sources/%s", customerID, cardID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *stripeClient) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("payments: build request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payments: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("payments: decode response: %w", err)
	}
	return nil
}

func (c *stripeClient) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	var payload struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch payload.Error.Type {
		case "card_error", "invalid_request_error":
			return fmt.Errorf("%w: %s", ErrCardDeclined, payload.Error.Message)
		}
	}
	return &ProviderError{Provider: "payments", StatusCode: resp.StatusCode, Message: string(raw)}
}
