//go:build tools

// Code generators pinned by go.mod: oapi-codegen for pkg/api, mockery for the mocks packages.
package tools

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/vektra/mockery/v2"
)
