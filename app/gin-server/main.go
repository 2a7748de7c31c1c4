package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/yoockh/portfolio/internal/cli"
)

func main() {
	_ = godotenv.Load()
	os.Exit(cli.Execute(context.Background()))
}
