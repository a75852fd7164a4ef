//go:build tools

package tools

// Tool dependencies pinned in go.mod: goose for running migrations by hand
// against internal/adapters/postgres/migrations, oapi-codegen for
// internal/api (see internal/api/generate.go).
// Run `go mod tidy` after adding/removing tools here.

import (
    _ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
    _ "github.com/pressly/goose/v3/cmd/goose"
)
