// --- lessons/cmd/cheese/main.go ---

package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/v4rm4n/lessons/internal/cheese"
	"github.com/v4rm4n/lessons/internal/config"
	"github.com/v4rm4n/lessons/internal/logger"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zl.Sync()

	factory := cheese.NewFactory(os.Stdout, zl)
	made := factory.Run(cheese.DefaultSources()...)

	zl.Debugw("cheese run finished", "made", made)
}
