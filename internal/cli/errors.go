// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrNoDatabase indicates a command that needs the round history was run
	// without a database path.
	ErrNoDatabase = errors.New("cli: no database configured (use --db or DECODOKU_DB_PATH)")
	// ErrBadAssignment indicates an --apply value not of the form unit=symbol.
	ErrBadAssignment = errors.New("cli: expected unit=symbol")
)
