package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/scenes"
	"github.com/automoto/dinoclash/server/core"
	"github.com/automoto/dinoclash/shared/leveldata"
	"github.com/automoto/dinoclash/shared/protocol"
)

func main() {
	settingsPath := flag.String("settings", "", "Settings file (yaml, toml or json)")
	port := flag.Uint("port", 0, "Server port (overrides settings)")
	tickRate := flag.Int("tickrate", 0, "Snapshots per second (overrides settings)")
	name := flag.String("name", "", "Server display name (overrides settings)")
	flag.Parse()

	settings, err := cfg.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *port != 0 {
		settings.Server.Port = *port
	}
	if *tickRate > 0 {
		settings.Server.TickRate = *tickRate
	}
	if *name != "" {
		settings.Server.Name = *name
	}
	cfg.Sim.TickRate = settings.TickRate

	if settings.Archetypes != "" {
		if err := cfg.LoadArchetypeFile(settings.Archetypes); err != nil {
			log.Fatalf("Failed to load archetypes: %v", err)
		}
	}

	level := leveldata.DemoLevel()
	if settings.Level != "" {
		level, err = leveldata.LoadLevelFile(settings.Level)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	scene := scenes.NewLevelScene(level, settings.Autopilot)
	server := core.NewServer(scene, settings.Server.Name, settings.Server.TickRate, settings.TickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting dinoclash server %q on port %d (level %s, %d snapshots/s)",
		settings.Server.Name, settings.Server.Port, level.Name, settings.Server.TickRate)
	if err := server.Start(settings.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
