// --- lessons/cmd/blockscope/main.go ---

package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/v4rm4n/lessons/internal/config"
	"github.com/v4rm4n/lessons/internal/logger"
	"github.com/v4rm4n/lessons/internal/scope"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zl.Sync()

	zl.Debugw("running demo", "name", "block scope")
	scope.BlockDemo(os.Stdout)

	fmt.Println()

	zl.Debugw("running demo", "name", "explicit scope")
	scope.ExplicitDemo(os.Stdout)
}
