// --- lessons/cmd/person/main.go ---

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/v4rm4n/lessons/internal/config"
	"github.com/v4rm4n/lessons/internal/logger"
	"github.com/v4rm4n/lessons/internal/person"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zl.Sync()

	p := person.New()
	p.SetName("Ada Lovelace")
	p.SetID(uuid.NewString())
	p.SetEmail("ada@example.com")
	person.Print(os.Stdout, p)

	// Only the setter can change a field; p.email is not reachable from here.
	p.SetEmail("countess@example.com")
	fmt.Printf("Email after SetEmail: %s\n", p.Email())

	zl.Debugw("person demo finished", "id", p.ID())
}
