// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrPathRequired indicates Open was called with an empty path.
	ErrPathRequired = errors.New("store: database path is required")
	// ErrNotConfigured indicates a call on a nil or closed store.
	ErrNotConfigured = errors.New("store: not configured")
	// ErrDuplicateRound indicates a round id that is already stored.
	ErrDuplicateRound = errors.New("store: round already recorded")
	// ErrInvalidRound indicates a round record missing its id or code.
	ErrInvalidRound = errors.New("store: invalid round record")
)
