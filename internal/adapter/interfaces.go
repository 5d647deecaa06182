// Package adapter contains clients for external collaborators of the server.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_gateway_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/ilm-med/models"
)

// PaymentGateway creates payment intents at the payment provider.
type PaymentGateway interface {
	// CreatePaymentIntent asks the provider for an intent of amount minor
	// currency units and returns its client secret.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error)
}
