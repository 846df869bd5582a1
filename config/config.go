package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the simulation has no renderers.
const Default ecs.LayerID = 0

// MotionProfile selects how an enemy archetype moves and attacks.
type MotionProfile int

const (
	// MotionGround walks horizontally and attacks in melee.
	MotionGround MotionProfile = iota
	// MotionFlyingDive steers in 2D and attacks by diving at the player.
	MotionFlyingDive
)

// EnemyTypeConfig contains configuration for a single enemy archetype.
// Distances are world units, times are seconds.
type EnemyTypeConfig struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Icon        string        `yaml:"icon"`
	Motion      MotionProfile `yaml:"motion"`

	Hitpoints      float64 `yaml:"hitpoints"`
	MoveSpeed      float64 `yaml:"move_speed"`
	DetectionRange float64 `yaml:"detection_range"`

	// Combat
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackDuration float64 `yaml:"attack_duration"` // melee only
	Damage         int     `yaml:"damage"`
	FacingCheck    bool    `yaml:"facing_check"`   // melee must face the player to strike
	ProvokeOnHit   bool    `yaml:"provoke_on_hit"` // a surviving hit forces chase

	DeathDelay       float64 `yaml:"death_delay"`
	ArrivalThreshold float64 `yaml:"arrival_threshold"` // patrol waypoint radius
	RequireGround    bool    `yaml:"require_ground"`

	// Flying dive
	FlyHeight        float64 `yaml:"fly_height"`
	DiveSpeed        float64 `yaml:"dive_speed"`
	DiveWindup       float64 `yaml:"dive_windup"`
	DiveDuration     float64 `yaml:"dive_duration"`
	DiveRecovery     float64 `yaml:"dive_recovery"`
	ContactThreshold float64 `yaml:"contact_threshold"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types                map[string]EnemyTypeConfig
	DefaultType          string
	HysteresisMultiplier float64 // chase is dropped beyond DetectionRange*HysteresisMultiplier
	RunningEpsilon       float64 // |vx| above this reports the actor as running
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health            int
	InvincibilityTime float64
	MoveSpeed         float64
	JumpSpeed         float64
	StartingAmmo      int
	MaxAmmo           int
	FireOffsetX       float64 // muzzle distance ahead of the body center
	Width, Height     float64
}

type ProjectileConfig struct {
	Speed    float64
	Damage   float64
	Lifetime float64
	Width    float64
	Height   float64
}

type PickupConfig struct {
	HealthAmount int
	AmmoAmount   int
	Size         float64
}

// PopupConfig times the creature info popup shown when an enemy dies.
type PopupConfig struct {
	DisplayTime float64
	FadeIn      float64
	FadeOut     float64
}

type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	GroundProbe  float64 // downward distance probed for the grounded query
	CellSize     int
}

type SimConfig struct {
	TickRate int
}

// DT is the fixed simulation step in seconds.
func (s SimConfig) DT() float64 {
	return 1 / float64(s.TickRate)
}

var (
	Enemy      EnemyConfig
	Player     PlayerConfig
	Projectile ProjectileConfig
	Pickup     PickupConfig
	Popup      PopupConfig
	Physics    PhysicsConfig
	Sim        SimConfig
)

func init() {
	raptorType := EnemyTypeConfig{
		Name:             "Raptor",
		Description:      "Fast pack hunter. Keeps its distance until you come close, then runs you down.",
		Icon:             "raptor",
		Motion:           MotionGround,
		Hitpoints:        5,
		MoveSpeed:        2,
		DetectionRange:   5,
		AttackRange:      1.5,
		AttackCooldown:   1,
		AttackDuration:   0.5,
		Damage:           1,
		FacingCheck:      true,
		DeathDelay:       0.1,
		ArrivalThreshold: 0.2,
		RequireGround:    true,
		Width:            1,
		Height:           1,
	}

	tRexType := EnemyTypeConfig{
		Name:             "TRex",
		Description:      "Slow and heavy. Its bite hurts, and shooting it only makes it angrier.",
		Icon:             "trex",
		Motion:           MotionGround,
		Hitpoints:        10,
		MoveSpeed:        2.5,
		DetectionRange:   7,
		AttackRange:      2,
		AttackCooldown:   1.5,
		AttackDuration:   0.5,
		Damage:           3,
		FacingCheck:      true,
		ProvokeOnHit:     true,
		DeathDelay:       1,
		ArrivalThreshold: 0.2,
		RequireGround:    true,
		Width:            2,
		Height:           2,
	}

	pterodactylType := EnemyTypeConfig{
		Name:             "Pterodactyl",
		Description:      "Circles overhead and dives at anything that moves.",
		Icon:             "pterodactyl",
		Motion:           MotionFlyingDive,
		Hitpoints:        4,
		MoveSpeed:        3,
		DetectionRange:   7,
		AttackRange:      5,
		AttackCooldown:   3,
		Damage:           1,
		DeathDelay:       0.5,
		ArrivalThreshold: 0.5,
		FlyHeight:        3,
		DiveSpeed:        5,
		DiveWindup:       0.2,
		DiveDuration:     0.7,
		DiveRecovery:     0.3,
		ContactThreshold: 0.75,
		Width:            1,
		Height:           0.75,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			raptorType.Name:      raptorType,
			tRexType.Name:        tRexType,
			pterodactylType.Name: pterodactylType,
		},
		DefaultType:          raptorType.Name,
		HysteresisMultiplier: 1.5,
		RunningEpsilon:       0.1,
	}

	Player = PlayerConfig{
		Health:            3,
		InvincibilityTime: 1,
		MoveSpeed:         5,
		JumpSpeed:         7,
		StartingAmmo:      10,
		MaxAmmo:           20,
		FireOffsetX:       0.6,
		Width:             0.8,
		Height:            1.6,
	}

	Projectile = ProjectileConfig{
		Speed:    4.5,
		Damage:   1,
		Lifetime: 4,
		Width:    0.25,
		Height:   0.25,
	}

	Pickup = PickupConfig{
		HealthAmount: 1,
		AmmoAmount:   5,
		Size:         0.5,
	}

	Popup = PopupConfig{
		DisplayTime: 3,
		FadeIn:      0.5,
		FadeOut:     0.5,
	}

	Physics = PhysicsConfig{
		Gravity:      20,
		MaxFallSpeed: 15,
		GroundProbe:  0.05,
		CellSize:     1,
	}

	Sim = SimConfig{
		TickRate: 60,
	}
}
