package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/adapter"
	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
)

type paymentService struct {
	gateway  adapter.PaymentGateway
	currency string

	logger *logger.Logger
}

func NewPaymentService(gateway adapter.PaymentGateway, cfg config.Payment, logger *logger.Logger) PaymentService {
	return &paymentService{gateway: gateway, currency: cfg.Currency, logger: logger}
}

// CreatePaymentIntent requests an intent for price in minor units: the price
// is multiplied by 100 and truncated, so 50.00 becomes 5000.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, price float64) (models.PaymentIntent, error) {
	amount := toMinorUnits(price)
	if amount <= 0 {
		return models.PaymentIntent{}, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentService.CreatePaymentIntent").Int64("amount", amount).Msg("payment provider failed")
		return models.PaymentIntent{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	return intent, nil
}

func toMinorUnits(price float64) int64 {
	return int64(price * 100)
}
