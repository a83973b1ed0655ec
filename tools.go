//go:build tools

package tools

// Pinned dev tools, run through the module's go.mod:
//
//	go run github.com/vektra/mockery/v2
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go
//	go run github.com/golangci/golangci-lint/cmd/golangci-lint run ./...
//	go test -bench . -count 10 ./benchmarks/... | go run golang.org/x/perf/cmd/benchstat -
import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
