package main

import (
	"log"

	"github.com/joho/godotenv"

	"textkit/internal/cli"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(version); err != nil {
		log.Fatalf("textkit: %v", err)
	}
}
