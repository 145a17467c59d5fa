package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pizza-shop-backend/internal/config"
	"time"
)

const squareAPIVersion = "2024-06-04"

const (
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	productionBaseURL = "https://connect.squareup.com"
)

type SquareClient interface {
	// Configured reports whether credentials and a location id are present.
	// When false, CreatePayment must not be called.
	Configured() bool

	// CreatePayment submits one charge. No internal retries: a transient
	// failure is returned to the caller, who owns the retry decision.
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResult, error)
}

type CreatePaymentRequest struct {
	SourceID         string // opaque payment token from the client-side SDK
	IdempotencyKey   string
	AmountMinorUnits int64
	Currency         string
}

type CreatePaymentResult struct {
	PaymentID string
	Status    string
}

// GatewayError carries the gateway's own error detail so the workflow can
// surface it to the user without leaking anything else.
type GatewayError struct {
	StatusCode int
	Code       string
	Detail     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("square error %d: %s %s", e.StatusCode, e.Code, e.Detail)
}

type squareClientImpl struct {
	httpClient  *http.Client
	baseApiURL  string
	accessToken string
	locationID  string
}

func NewSquareClient(squareCfg *config.Square) SquareClient {
	baseURL := squareCfg.BaseApiURL
	if baseURL == "" {
		baseURL = sandboxBaseURL
		if squareCfg.Environment == "production" {
			baseURL = productionBaseURL
		}
	}

	return &squareClientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(squareCfg.TimeoutSeconds) * time.Second,
		},
		baseApiURL:  baseURL,
		accessToken: squareCfg.AccessToken,
		locationID:  squareCfg.LocationID,
	}
}

func (c *squareClientImpl) Configured() bool {
	return c.accessToken != "" && c.locationID != ""
}

type squareAmountMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squareCreatePaymentBody struct {
	SourceID       string            `json:"source_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	AmountMoney    squareAmountMoney `json:"amount_money"`
	LocationID     string            `json:"location_id"`
}

type squareCreatePaymentResult struct {
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

func (c *squareClientImpl) CreatePayment(ctx context.Context, payReq *CreatePaymentRequest) (*CreatePaymentResult, error) {
	if !c.Configured() {
		return nil, &GatewayError{Code: "NOT_CONFIGURED", Detail: "missing access token or location id"}
	}

	body, err := json.Marshal(squareCreatePaymentBody{
		SourceID:       payReq.SourceID,
		IdempotencyKey: payReq.IdempotencyKey,
		AmountMoney: squareAmountMoney{
			Amount:   payReq.AmountMinorUnits,
			Currency: payReq.Currency,
		},
		LocationID: c.locationID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/v2/payments",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", squareAPIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("square create payment request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read square response: %w", err)
	}

	var result squareCreatePaymentResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode square response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &GatewayError{StatusCode: resp.StatusCode}
		if len(result.Errors) > 0 {
			gwErr.Code = result.Errors[0].Code
			gwErr.Detail = result.Errors[0].Detail
		} else {
			gwErr.Detail = string(respBody)
		}
		return nil, gwErr
	}

	return &CreatePaymentResult{
		PaymentID: result.Payment.ID,
		Status:    result.Payment.Status,
	}, nil
}
