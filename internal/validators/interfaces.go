// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides schema validation for all CMS insert and
// update payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary payload values.
//   - ValidationError: aggregated per-field violations, mapped to HTTP 400
//     at the transport boundary.
//
// Validation always runs before any storage call; a payload that fails
// validation never reaches a repository.
package validators

import "context"

// Validator defines a generic validation interface for payload values.
// Implementations perform structural and semantic checks and report all
// violations at once through a [*ValidationError].
type Validator interface {

	// Validate validates the provided payload. It returns nil when the
	// payload is acceptable, a [*ValidationError] listing every violated
	// field, or [ErrUnsupportedType] when the payload type is unknown.
	Validate(context.Context, any) error
}
