package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/John-DND/RegularCommands/internal/config"
	"github.com/John-DND/RegularCommands/internal/discord"
	"github.com/John-DND/RegularCommands/internal/game"
	"github.com/John-DND/RegularCommands/internal/permission"
	"github.com/John-DND/RegularCommands/pkg/commands"
	"github.com/John-DND/RegularCommands/pkg/ratelimit"
)

func main() {
	log.Printf("[INFO] Starting Discord host...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}

	store, err := permission.NewStore(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	manager := commands.NewManager(nil, nil)
	world := game.NewWorld()

	limiter := ratelimit.NewPerCaller(cfg.CommandsPerSecond, cfg.CommandBurst)
	game.RegisterAll(manager, world, game.DefaultCatalog(), store, limiter.Middleware())

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	if err := discord.StartBot(ctx, cfg, manager, store, world); err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] Discord host stopped")
}
