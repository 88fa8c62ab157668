// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks the merged [StructuredConfig] against the `validate`
// struct tags before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("error validating config: %w", err)
	}

	first := fieldErrs[0]
	switch first.StructNamespace() {
	case "StructuredConfig.Server.HTTPAddress",
		"StructuredConfig.Server.RequestTimeout",
		"StructuredConfig.Server.MaxBodyBytes":
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidServerConfigs, first.Field(), first.Tag())
	case "StructuredConfig.LogLevel":
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidValidationConfigs, first.Field(), first.Tag())
	}
}
