// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaymentRequest is the body of POST /testPayment.
type PaymentRequest struct {
	// Price is in major currency units; it is converted to minor units
	// (cents) before reaching the payment provider.
	Price float64 `json:"price"`
}

// PaymentIntent is the provider's answer to a payment-intent request.
type PaymentIntent struct {
	ID           string `json:"id,omitempty"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
}
