package main

import (
	"os"

	"github.com/joho/godotenv"

	"passvault/cmd/passvault/commands"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
