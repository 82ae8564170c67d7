package main

import (
	"fmt"
	"os"

	"github.com/rpgo/growth-calculator/internal/config"
)

func main() {
	// .env is optional; real environment variables win
	config.LoadEnvFile()

	settings := config.LoadSettings()
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(settings).Execute(); err != nil {
		os.Exit(1)
	}
}
