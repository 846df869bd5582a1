package scenes

import (
	"sync"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/leveldata"
	"github.com/automoto/dinoclash/systems"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene runs one level headlessly at a fixed tick.
type LevelScene struct {
	ecs       *ecs.ECS
	level     *leveldata.Level
	autopilot bool
	once      sync.Once
}

// Summary is a snapshot of the scene for logs and the spectator feed.
type Summary struct {
	Level        string
	Tick         int
	Now          float64
	EnemiesAlive int
	PlayerHealth int
	PlayerAlive  bool
	Ammo         int
	Projectiles  int
	PopupsShown  int
	Popup        string
	PopupAlpha   float64
}

// NewLevelScene creates a scene for level. With autopilot set the player
// is driven by the bot instead of external input.
func NewLevelScene(level *leveldata.Level, autopilot bool) *LevelScene {
	return &LevelScene{level: level, autopilot: autopilot}
}

// Update advances the simulation by one tick.
func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

// ECS returns the scene's ECS, configuring it on first use.
func (ls *LevelScene) ECS() *ecs.ECS {
	ls.once.Do(ls.configure)
	return ls.ecs
}

// ReloadArchetypes applies the current archetype config to the enemies
// already in the level.
func (ls *LevelScene) ReloadArchetypes() int {
	return systems.RefreshArchetypes(ls.ECS())
}

func (ls *LevelScene) World() donburi.World {
	return ls.ECS().World
}

// Player returns the player entry, if it still exists.
func (ls *LevelScene) Player() (*donburi.Entry, bool) {
	return tags.Player.First(ls.World())
}

func (ls *LevelScene) Summary() Summary {
	e := ls.ECS()
	clock := systems.GetClock(e)
	s := Summary{Level: ls.level.Name, Tick: clock.Tick, Now: clock.Now}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if systems.IsAlive(entry) {
			s.EnemiesAlive++
		}
	})
	if player, ok := tags.Player.First(e.World); ok {
		health := components.Health.Get(player)
		s.PlayerHealth = health.Current
		s.PlayerAlive = health.Alive
		s.Ammo = components.Ammo.Get(player).Current
	}
	components.Projectile.Each(e.World, func(*donburi.Entry) { s.Projectiles++ })
	if entry, ok := components.PopupState.First(e.World); ok {
		popup := components.PopupState.Get(entry)
		s.PopupsShown = popup.Shown
		if popup.Phase != components.PopupHidden {
			s.Popup = popup.Title
			s.PopupAlpha = popup.Alpha
		}
	}
	return s
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: timers fire before anyone reads the clock, bots write
	// input before the player consumes it, and contacts see final positions.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateTimers)
	ecs.AddSystem(systems.UpdateBots)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdatePlayerContacts)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdatePopup)
	ecs.AddSystem(systems.UpdateObjects)

	ls.ecs = ecs

	level := ls.level
	if level == nil {
		level = leveldata.DemoLevel()
		ls.level = level
	}

	// Singletons before anything can schedule or notify.
	factory.CreateSpaceFor(ecs, level.Width, level.Height, cfg.Physics.CellSize)
	systems.GetClock(ecs)
	systems.NewCreaturePopup(ecs).State()

	factory.CreateLevel(ecs, level, systems.NewServices(ecs))

	if ls.autopilot {
		if player, ok := tags.Player.First(ecs.World); ok {
			donburi.Add(player, components.Bot, &components.BotData{})
		}
	}
}
