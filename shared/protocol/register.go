package protocol

import (
	"github.com/automoto/dinoclash/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPose       uint = 10
	SyncIDNetPlayer     uint = 11
	SyncIDNetEnemy      uint = 12
	SyncIDNetProjectile uint = 13
	SyncIDNetGameState  uint = 14
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPose uint8 = 10
)

// RegisterComponents registers the spectator feed's components with necs.
// Server and spectators must both call it before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPose,
		netcomponents.NetPoseData{},
		netcomponents.NetPose,
		esync.WithInterpFn(InterpIDNetPose, netcomponents.LerpNetPose),
	); err != nil {
		return err
	}

	// The rest are discrete and snap to the latest snapshot.
	if err := esync.RegisterComponent(
		SyncIDNetPlayer,
		netcomponents.NetPlayerData{},
		netcomponents.NetPlayer,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
	); err != nil {
		return err
	}

	return esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	)
}
