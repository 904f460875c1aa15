package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/flke/flke/cmd"
	"github.com/flke/flke/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// A .env next to the binary may carry FLKE_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
