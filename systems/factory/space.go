package factory

import (
	"math"

	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSpaceFor sizes a space to cover a level of w x h world units.
func CreateSpaceFor(ecs *ecs.ECS, w, h float64, cellSize int) *donburi.Entry {
	if cellSize <= 0 {
		cellSize = 1
	}
	return CreateSpace(ecs, int(math.Ceil(w))+cellSize, int(math.Ceil(h))+cellSize, cellSize, cellSize)
}

// addToSpace links obj to its entry and registers it with the space, if any.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
