package main

import (
	"context"
	"fmt"
	"os"

	"stockroom/pkg/app"
)

// main exposes a root-level entry point so operators can simply run `go run stockroom.go`.
func main() {
	if err := app.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "stockroom: %v\n", err)
		os.Exit(1)
	}
}
