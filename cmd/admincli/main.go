package main

import (
	"os"

	"portfolio-admin/cmd/admincli/commands"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := commands.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
