package core

import (
	"errors"
	"fmt"

	"github.com/automoto/dinoclash/components"
	"github.com/automoto/dinoclash/scenes"
	"github.com/automoto/dinoclash/shared/netcomponents"
	"github.com/automoto/dinoclash/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// Mirror copies what spectators can see of a scene into a network world.
// Every simulation entity gets one networked twin, removed when the
// original is gone.
type Mirror struct {
	world   donburi.World
	tracked map[donburi.Entity]donburi.Entity // sim -> net
	game    *donburi.Entry
}

func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:   world,
		tracked: make(map[donburi.Entity]donburi.Entity),
	}
}

// Sync refreshes the mirror from scene. Entities that fail to register for
// network sync are skipped and reported in the returned error.
func (m *Mirror) Sync(scene *scenes.LevelScene) error {
	sim := scene.World()
	seen := make(map[donburi.Entity]struct{}, len(m.tracked))
	var errs []error

	tags.Player.Each(sim, func(e *donburi.Entry) {
		net, err := m.twin(e.Entity(), seen, netcomponents.NetPlayer)
		if err != nil {
			errs = append(errs, err)
			return
		}
		health := components.Health.Get(e)
		netcomponents.NetPose.SetValue(net, poseOf(e))
		netcomponents.NetPlayer.SetValue(net, netcomponents.NetPlayerData{
			Health:    health.Current,
			MaxHealth: health.Max,
			Ammo:      components.Ammo.Get(e).Current,
			Alive:     health.Alive,
		})
	})

	tags.Enemy.Each(sim, func(e *donburi.Entry) {
		net, err := m.twin(e.Entity(), seen, netcomponents.NetEnemy)
		if err != nil {
			errs = append(errs, err)
			return
		}
		enemy := components.Enemy.Get(e)
		combat := components.Combat.Get(e)
		netcomponents.NetPose.SetValue(net, poseOf(e))
		netcomponents.NetEnemy.SetValue(net, netcomponents.NetEnemyData{
			TypeName:     enemy.TypeName,
			State:        int(components.State.Get(e).CurrentState),
			Hitpoints:    combat.Hitpoints,
			MaxHitpoints: combat.MaxHitpoints,
			Dead:         combat.Dead,
			Diving:       enemy.Diving,
		})
	})

	tags.Projectile.Each(sim, func(e *donburi.Entry) {
		net, err := m.twin(e.Entity(), seen, netcomponents.NetProjectile)
		if err != nil {
			errs = append(errs, err)
			return
		}
		direction := components.Projectile.Get(e).Direction
		pose := poseOf(e)
		pose.Facing = int(direction)
		netcomponents.NetPose.SetValue(net, pose)
		netcomponents.NetProjectile.SetValue(net, netcomponents.NetProjectileData{Direction: direction})
	})

	m.prune(seen)

	if err := m.syncGameState(scene.Summary()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tracked returns the number of mirrored simulation entities.
func (m *Mirror) Tracked() int {
	return len(m.tracked)
}

// twin returns the networked twin of sim, creating it with the pose and
// kind components on first sight.
func (m *Mirror) twin(sim donburi.Entity, seen map[donburi.Entity]struct{}, kind donburi.IComponentType) (*donburi.Entry, error) {
	seen[sim] = struct{}{}
	if net, ok := m.tracked[sim]; ok && m.world.Valid(net) {
		return m.world.Entry(net), nil
	}

	entity := m.world.Create(netcomponents.NetPose, kind)
	err := srvsync.NetworkSync(m.world, &entity,
		srvsync.WithInterp(netcomponents.NetPose),
		kind,
	)
	if err != nil {
		m.world.Remove(entity)
		delete(m.tracked, sim)
		return nil, fmt.Errorf("network sync: %w", err)
	}
	m.tracked[sim] = entity
	return m.world.Entry(entity), nil
}

func (m *Mirror) prune(seen map[donburi.Entity]struct{}) {
	for sim, net := range m.tracked {
		if _, ok := seen[sim]; ok {
			continue
		}
		if m.world.Valid(net) {
			m.world.Remove(net)
		}
		delete(m.tracked, sim)
	}
}

func (m *Mirror) syncGameState(s scenes.Summary) error {
	if m.game == nil || !m.game.Valid() {
		entity := m.world.Create(netcomponents.NetGameState)
		if err := srvsync.NetworkSync(m.world, &entity, netcomponents.NetGameState); err != nil {
			m.world.Remove(entity)
			return fmt.Errorf("network sync game state: %w", err)
		}
		m.game = m.world.Entry(entity)
	}
	netcomponents.NetGameState.SetValue(m.game, netcomponents.NetGameStateData{
		Level:        s.Level,
		Tick:         s.Tick,
		Time:         s.Now,
		EnemiesAlive: s.EnemiesAlive,
		Popup:        s.Popup,
		PopupAlpha:   s.PopupAlpha,
	})
	return nil
}

func poseOf(e *donburi.Entry) netcomponents.NetPoseData {
	c := components.Object.Get(e).Center()
	pose := netcomponents.NetPoseData{X: c.X, Y: c.Y}
	if e.HasComponent(components.Facing) {
		pose.Facing = int(components.Facing.Get(e).Direction)
	}
	return pose
}
