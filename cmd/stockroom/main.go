package main

import (
	"context"
	"fmt"
	"os"

	"stockroom/pkg/app"
)

// main acts as a thin adapter so `go install ./cmd/stockroom` yields the binary.
func main() {
	if err := app.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "stockroom: %v\n", err)
		os.Exit(1)
	}
}
