package systems

import (
	"github.com/automoto/dinoclash/components"
	"github.com/automoto/dinoclash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// groundY is the top of the floor createTestECS lays down.
const groundY = 10.0

// fakePlayer stands in for the player collaborators.
type fakePlayer struct {
	pos     math.Vec2
	present bool
	damage  []int
}

func (f *fakePlayer) PlayerPosition() (math.Vec2, bool) {
	return f.pos, f.present
}

func (f *fakePlayer) TakeDamage(amount int) {
	f.damage = append(f.damage, amount)
}

func (f *fakePlayer) totalDamage() int {
	total := 0
	for _, d := range f.damage {
		total += d
	}
	return total
}

type fakeNotifier struct {
	names []string
}

func (f *fakeNotifier) ShowCreatureInfo(name, _, _ string) {
	f.names = append(f.names, name)
}

// createTestECS returns a 40x12 world with a floor at groundY, a space
// and a clock at t=0.
func createTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpaceFor(e, 40, 12, 1)
	GetClock(e)
	factory.CreateWall(e, 0, groundY, 40, 1)
	return e
}

func createTestServices() (*fakePlayer, *fakeNotifier, *components.Services) {
	player := &fakePlayer{present: true}
	notifier := &fakeNotifier{}
	return player, notifier, &components.Services{
		Locator:  player,
		Damager:  player,
		Notifier: notifier,
	}
}

// advanceTo moves the clock to now and fires due timers.
func advanceTo(e *ecs.ECS, now float64) {
	clock := GetClock(e)
	clock.Now = now
	clock.Timer.Advance(now, e.World.Valid)
}

func center(entry *donburi.Entry) math.Vec2 {
	return components.Object.Get(entry).Center()
}

func offset(dx, dy float64) math.Vec2 {
	return math.Vec2{X: dx, Y: dy}
}

// stepUntil advances the clock one tick at a time, the way the scene does,
// until it reaches t.
func stepUntil(e *ecs.ECS, t float64) {
	clock := GetClock(e)
	for clock.Now < t-1e-9 {
		advanceTo(e, clock.Now+clock.DT)
	}
}
