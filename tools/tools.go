// Copyright © 2023 Trevor N. Suarez (Rican7)

//go:build tools

// Package tools pins the development tools of argfail (linting, static
// analysis, and formatting), so that their versions are tracked by go.mod.
package tools

import (
	_ "golang.org/x/lint/golint"
	_ "honnef.co/go/tools/cmd/staticcheck"
	_ "mvdan.cc/gofumpt"
)
