//go:build tools

package main

// Pinned tool dependencies, installed via the Taskfile.
import (
	_ "github.com/go-task/task/v3/cmd/task"
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
)
