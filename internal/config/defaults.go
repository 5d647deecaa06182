// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults. Every other source overrides them.
const (
	DefaultHTTPAddress     = ":5000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenDuration   = 2 * time.Hour
	DefaultTokenIssuer     = "ilm-med"
	DefaultDBName          = "ilmMedDB"
	DefaultConnectTimeout  = 10 * time.Second
	DefaultCacheTTL        = 30 * time.Second
	DefaultPaymentBaseURL  = "https://api.stripe.com"
	DefaultPaymentCurrency = "usd"
	DefaultPaymentTimeout  = 15 * time.Second
	DefaultDotEnvPath      = ".env"
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Name:           DefaultDBName,
				ConnectTimeout: DefaultConnectTimeout,
			},
			Cache: Cache{
				TTL: DefaultCacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			Payment: Payment{
				BaseURL:        DefaultPaymentBaseURL,
				Currency:       DefaultPaymentCurrency,
				RequestTimeout: DefaultPaymentTimeout,
			},
		},
		DotEnvPath: DefaultDotEnvPath,
	}
}
