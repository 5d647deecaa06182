package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/utils"
	"github.com/MKhiriev/ilm-med/models"
)

const paymentIntentsPath = "/v1/payment_intents"

// paymentIntentResponse is the subset of the provider's intent object the
// server needs.
type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// httpPaymentGateway is a [PaymentGateway] for Stripe-compatible APIs.
type httpPaymentGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPPaymentGateway constructs an HTTP implementation of
// [PaymentGateway]. It normalises and validates cfg.BaseURL and authenticates
// every request with cfg.SecretKey as a bearer token.
func NewHTTPPaymentGateway(cfg config.Payment, logger *logger.Logger) (PaymentGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, ErrMissingSecretKey
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid payment base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetAuthToken(cfg.SecretKey)

	return &httpPaymentGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// CreatePaymentIntent implements [PaymentGateway]. It POSTs a form-encoded
// body to /v1/payment_intents with payment_method_types[]=card.
func (h *httpPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error) {
	var intent paymentIntentResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		Post(paymentIntentsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpPaymentGateway.CreatePaymentIntent").Msg("payment request failed")
		return models.PaymentIntent{}, fmt.Errorf("payment intent request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpPaymentGateway.CreatePaymentIntent").Int("status", resp.StatusCode()).Msg("payment provider error")
		return models.PaymentIntent{}, err
	}

	if intent.ClientSecret == "" {
		return models.PaymentIntent{}, ErrEmptyClientSecret
	}

	return models.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
