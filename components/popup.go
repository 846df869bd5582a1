package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PopupPhase int

const (
	PopupHidden PopupPhase = iota
	PopupFadingIn
	PopupShowing
	PopupFadingOut
)

// PopupStateData is a singleton holding the creature info popup.
type PopupStateData struct {
	Phase       PopupPhase
	Title       string
	Description string
	Icon        string
	Alpha       float64
	Fade        *gween.Tween
	HideAt      float64 // clock time the fade out starts
	Shown       int     // number of popups shown so far
}

var PopupState = donburi.NewComponentType[PopupStateData]()
