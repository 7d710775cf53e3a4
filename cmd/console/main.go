package main

import (
	"context"
	"fmt"
	"log"

	"github.com/John-DND/RegularCommands/internal/config"
	"github.com/John-DND/RegularCommands/internal/console"
	"github.com/John-DND/RegularCommands/internal/game"
	"github.com/John-DND/RegularCommands/internal/permission"
	"github.com/John-DND/RegularCommands/pkg/commands"
	"github.com/John-DND/RegularCommands/pkg/ratelimit"
)

func main() {
	log.Printf("[INFO] Starting console host...")

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := permission.NewStore(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	manager := commands.NewManager(nil, nil)
	world := game.NewWorld()
	world.SetBroadcast(func(text string) { fmt.Println(text) })

	// A few connected players so tp/give/kill have targets.
	world.AddPlayer("steve")
	world.AddPlayer("alex")

	limiter := ratelimit.NewPerCaller(cfg.CommandsPerSecond, cfg.CommandBurst)
	game.RegisterAll(manager, world, game.DefaultCatalog(), store, limiter.Middleware())

	host, err := console.New(manager)
	if err != nil {
		log.Fatal(err)
	}
	if err := host.Run(); err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] Console host stopped")
}
