package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/scenes"
	"github.com/automoto/dinoclash/shared/leveldata"
)

type Game struct {
	scene    *scenes.LevelScene
	settings *config.Settings
	watcher  *config.Watcher
}

func NewGame(settings *config.Settings) (*Game, error) {
	level := leveldata.DemoLevel()
	if settings.Level != "" {
		var err error
		level, err = leveldata.LoadLevelFile(settings.Level)
		if err != nil {
			return nil, err
		}
	}

	g := &Game{
		scene:    scenes.NewLevelScene(level, settings.Autopilot),
		settings: settings,
	}

	if settings.Watch && settings.Archetypes != "" {
		w, err := config.NewWatcher(settings.Archetypes)
		if err != nil {
			return nil, err
		}
		g.watcher = w
	}
	return g, nil
}

// Update runs one simulation tick, applying any archetype edits first.
func (g *Game) Update() {
	g.reload()
	g.scene.Update()

	s := g.scene.Summary()
	if g.settings.LogEvery > 0 && s.Tick%g.settings.LogEvery == 0 {
		log.Printf("t=%.2fs tick=%d enemies=%d hp=%d ammo=%d projectiles=%d popups=%d",
			s.Now, s.Tick, s.EnemiesAlive, s.PlayerHealth, s.Ammo, s.Projectiles, s.PopupsShown)
	}
}

// reload drains pending watcher events without blocking and pushes new
// archetype values onto the live enemies.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := config.LoadArchetypeFile(path); err != nil {
				log.Printf("reload %s: %v", path, err)
			} else {
				n := g.scene.ReloadArchetypes()
				log.Printf("reloaded archetypes from %s (%d enemies updated)", path, n)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}

func main() {
	settingsPath := flag.String("settings", "", "Settings file (yaml, toml or json)")
	levelPath := flag.String("level", "", "TMX level to run (default: built-in demo)")
	archetypesPath := flag.String("archetypes", "", "Enemy archetype YAML")
	ticks := flag.Int("ticks", -1, "Ticks to simulate; 0 runs in real time until interrupted")
	watch := flag.Bool("watch", false, "Reload the archetype file when it changes")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *levelPath != "" {
		settings.Level = *levelPath
	}
	if *archetypesPath != "" {
		settings.Archetypes = *archetypesPath
	}
	if *ticks >= 0 {
		settings.Ticks = *ticks
	}
	if *watch {
		settings.Watch = true
	}
	config.Sim.TickRate = settings.TickRate

	if settings.Archetypes != "" {
		if err := config.LoadArchetypeFile(settings.Archetypes); err != nil {
			log.Fatalf("Failed to load archetypes: %v", err)
		}
	}

	game, err := NewGame(settings)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer game.Close()

	if settings.Ticks > 0 {
		for i := 0; i < settings.Ticks; i++ {
			game.Update()
		}
		s := game.scene.Summary()
		log.Printf("done: %d ticks, %d enemies left, player hp %d", s.Tick, s.EnemiesAlive, s.PlayerHealth)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(time.Second / time.Duration(settings.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			return
		case <-ticker.C:
			game.Update()
		}
	}
}
