package systems

import (
	"log"

	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	cfg "github.com/automoto/dinoclash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreaturePopup is the death notifier. Only one popup is visible at a
// time; a new one replaces whatever is showing.
type CreaturePopup struct {
	ecs *ecs.ECS
}

func NewCreaturePopup(ecs *ecs.ECS) *CreaturePopup {
	return &CreaturePopup{ecs: ecs}
}

func (p *CreaturePopup) ShowCreatureInfo(name, description, icon string) {
	state := getOrCreatePopupState(p.ecs)
	state.Title = name
	state.Description = description
	state.Icon = icon
	state.Shown++
	state.Phase = components.PopupFadingIn
	state.Fade = newFade(state.Alpha, 1, cfg.Popup.FadeIn)
	log.Printf("creature info: %s", name)
}

// State returns the popup singleton, creating it hidden on first use.
func (p *CreaturePopup) State() *components.PopupStateData {
	return getOrCreatePopupState(p.ecs)
}

// UpdatePopup runs the popup's fade in, timed display and fade out.
func UpdatePopup(ecs *ecs.ECS) {
	state := getOrCreatePopupState(ecs)
	clock := GetClock(ecs)

	switch state.Phase {
	case components.PopupFadingIn:
		if !stepFade(state, clock.DT) {
			return
		}
		state.Phase = components.PopupShowing
		state.HideAt = clock.Now + cfg.Popup.DisplayTime
		shown := state.Shown
		clock.Timer.Schedule(state.HideAt, func() {
			current := getOrCreatePopupState(ecs)
			// A newer popup owns the display now.
			if current.Shown != shown || current.Phase != components.PopupShowing {
				return
			}
			current.Phase = components.PopupFadingOut
			current.Fade = newFade(current.Alpha, 0, cfg.Popup.FadeOut)
		})
	case components.PopupFadingOut:
		if !stepFade(state, clock.DT) {
			return
		}
		state.Phase = components.PopupHidden
		state.Fade = nil
		state.Title = ""
		state.Description = ""
		state.Icon = ""
	}
}

// stepFade advances the current fade and reports whether it finished.
func stepFade(state *components.PopupStateData, dt float64) bool {
	if state.Fade == nil {
		state.Alpha = 0
		if state.Phase == components.PopupFadingIn {
			state.Alpha = 1
		}
		return true
	}
	alpha, done := state.Fade.Update(float32(dt))
	state.Alpha = float64(alpha)
	return done
}

func newFade(from, to, duration float64) *gween.Tween {
	if duration <= 0 {
		return nil
	}
	return gween.New(float32(from), float32(to), float32(duration), ease.Linear)
}

func getOrCreatePopupState(ecs *ecs.ECS) *components.PopupStateData {
	entry, ok := components.PopupState.First(ecs.World)
	if !ok {
		entry = archetypes.Popup.Spawn(ecs)
		components.PopupState.SetValue(entry, components.PopupStateData{
			Phase: components.PopupHidden,
		})
	}
	return components.PopupState.Get(entry)
}
