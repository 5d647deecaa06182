// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const maxTokenDuration = 24 * time.Hour

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrEmptyTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.TokenDuration > maxTokenDuration {
		return ErrInvalidTokenDuration
	}

	if cfg.Storage.DB.URI == "" || cfg.Storage.DB.Name == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
