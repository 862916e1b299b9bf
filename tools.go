//go:build tools
// +build tools

package tools

// This file ensures tool dependencies are tracked in go.mod

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "golang.org/x/perf/cmd/benchstat"
)
