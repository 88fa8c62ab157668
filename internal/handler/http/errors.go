// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrLoadingSchema is returned by NewHandler when the configured schema
// document cannot be read or is not a valid schema.
var ErrLoadingSchema = errors.New("error loading schema document")
