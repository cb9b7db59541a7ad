package main

import (
	"fmt"
	"os"

	"github.com/bjaus/mufmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mufmt:", err)
		os.Exit(1)
	}
}
