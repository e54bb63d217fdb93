//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: go generate ./... rebuilds the *_mock_test.go files
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration status against a live database
