package systems

import (
	"testing"

	"github.com/automoto/dinoclash/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func runPopupTicks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateClock(e)
		UpdateTimers(e)
		UpdatePopup(e)
	}
}

func TestPopupLifecycle(t *testing.T) {
	e := createTestECS()
	popup := NewCreaturePopup(e)
	state := popup.State()
	require.Equal(t, components.PopupHidden, state.Phase)

	popup.ShowCreatureInfo("Raptor", "Fast pack hunter.", "raptor")
	assert.Equal(t, components.PopupFadingIn, state.Phase)
	assert.Equal(t, "Raptor", state.Title)

	// 0.5s fade in
	runPopupTicks(e, 40)
	assert.Equal(t, components.PopupShowing, state.Phase)
	assert.InDelta(t, 1, state.Alpha, 1e-6)

	// 3s on screen
	runPopupTicks(e, 150)
	assert.Equal(t, components.PopupShowing, state.Phase)

	// then 0.5s fade out
	runPopupTicks(e, 30)
	assert.Equal(t, components.PopupFadingOut, state.Phase)

	runPopupTicks(e, 40)
	assert.Equal(t, components.PopupHidden, state.Phase)
	assert.InDelta(t, 0, state.Alpha, 1e-6)
	assert.Empty(t, state.Title)
	assert.Equal(t, 1, state.Shown)
}

func TestPopupReplacedByNewer(t *testing.T) {
	e := createTestECS()
	popup := NewCreaturePopup(e)
	state := popup.State()

	popup.ShowCreatureInfo("Raptor", "", "")
	runPopupTicks(e, 60) // t=1.0, first hide due at ~3.5

	popup.ShowCreatureInfo("TRex", "", "")
	assert.Equal(t, "TRex", state.Title)
	assert.Equal(t, 2, state.Shown)

	runPopupTicks(e, 160) // t~3.67, past the first popup's hide time
	assert.Equal(t, components.PopupShowing, state.Phase)
	assert.Equal(t, "TRex", state.Title)

	runPopupTicks(e, 120)
	assert.Equal(t, components.PopupHidden, state.Phase)
}
