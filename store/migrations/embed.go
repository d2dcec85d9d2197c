// SPDX-License-Identifier: MIT

// Package migrations embeds the round store schema.
package migrations

import "embed"

// FS contains the SQLite migrations for the round store.
//
//go:embed *.sql
var FS embed.FS
