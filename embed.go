// Package swaggerhunter exposes assets embedded at the repository root.
package swaggerhunter

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
