package config

// StateID is an enemy behavior mode.
type StateID int

const (
	StateNone StateID = iota
	StatePatrol
	StateChase
	StateAttacking
)

func (s StateID) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttacking:
		return "attacking"
	}
	return "none"
}

// DivePhase tracks the flyer's dive attack.
type DivePhase int

const (
	DiveNone DivePhase = iota
	DiveWindup
	DiveStrike
	DiveRecover
)
