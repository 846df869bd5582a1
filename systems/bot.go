package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/automoto/dinoclash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Random number generator for bot decision making.
// Uses a fixed seed so headless runs replay identically.
var rng = rand.New(rand.NewSource(cfg.Bot.Seed))

// ResetBotRNG reseeds the autopilot, e.g. between runs in one process.
func ResetBotRNG(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

type enemyInfo struct {
	pos    math2.Vec2
	diving bool
}

// UpdateBots writes input for autopilot players. Must run before UpdatePlayer.
func UpdateBots(e *ecs.ECS) {
	clock := GetClock(e)

	var enemies []enemyInfo
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !IsAlive(entry) {
			return
		}
		enemies = append(enemies, enemyInfo{
			pos:    components.Object.Get(entry).Center(),
			diving: components.Enemy.Get(entry).Diving,
		})
	})

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		if !components.Health.Get(entry).Alive {
			return
		}
		bot := components.Bot.Get(entry)
		bot.DecisionTimer -= clock.DT
		if bot.DecisionTimer > 0 {
			return
		}
		bot.DecisionTimer = cfg.Bot.DecisionInterval
		updateBotAI(entry, bot, enemies, clock.Now)
	})
}

func updateBotAI(entry *donburi.Entry, bot *components.BotData, enemies []enemyInfo, now float64) {
	input := &components.Player.Get(entry).Input
	pos := components.Object.Get(entry).Center()

	nearest := -1
	best := math.Inf(1)
	for i, en := range enemies {
		if d := pos.Distance(en.pos); d < best {
			nearest, best = i, d
		}
	}
	if nearest < 0 {
		input.MoveX = 0
		return
	}

	target := enemies[nearest]
	dx := target.pos.X - pos.X
	toward := gamemath.Sign(dx)

	switch {
	case math.Abs(dx) > cfg.Bot.FireRange:
		input.MoveX = toward
	case math.Abs(dx) < cfg.Bot.KeepDistance:
		input.MoveX = -toward
	default:
		// Creep forward so the player keeps facing the target.
		input.MoveX = toward * 0.05
	}

	if target.diving && rng.Float64() < cfg.Bot.JumpChance {
		input.Jump = true
	}

	facing := components.Facing.Get(entry).Direction.Sign()
	if math.Abs(dx) <= cfg.Bot.FireRange && facing == toward && now >= bot.NextFireAt {
		input.Fire = true
		bot.NextFireAt = now + cfg.Bot.FireInterval
	}
}
