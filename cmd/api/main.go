package main

import (
	"context"
	"fmt"
	"os"

	"user-container-demo/cmd/api/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
