//go:build tools

package main

import (
	_ "github.com/fzipp/gocyclo/cmd/gocyclo"
)
