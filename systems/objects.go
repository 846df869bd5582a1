package systems

import (
	"github.com/automoto/dinoclash/components"
	"github.com/automoto/dinoclash/shared/gamemath"
	"github.com/automoto/dinoclash/timers"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop keeps bodies resting flush against each other from
// registering as overlapping through float rounding.
const contactSlop = 1e-6

// overlapping returns the objects carrying any of tags whose boxes overlap
// obj after moving it by (dx, dy).
func overlapping(obj *resolv.Object, dx, dy float64, tags ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	moved := gamemath.Rect{
		X: obj.X + dx + contactSlop,
		Y: obj.Y + dy + contactSlop,
		W: obj.W - 2*contactSlop,
		H: obj.H - 2*contactSlop,
	}
	return objectsIn(obj.Space, moved, obj, tags...)
}

// objectsIn returns the objects with any of tags overlapping r, other than
// exclude. resolv registers an object from its top-left cell up to the cell
// holding (X+W-1, Y+H-1), so bodies about one cell wide sit in fewer cells
// than they touch; the scan starts one cell early to find them.
func objectsIn(space *resolv.Space, r gamemath.Rect, exclude *resolv.Object, tags ...string) []*resolv.Object {
	cx, cy := space.WorldToSpace(r.X, r.Y)
	ex, ey := space.WorldToSpace(r.X+r.W, r.Y+r.H)

	seen := make(map[*resolv.Object]struct{})
	var hits []*resolv.Object
	for y := cy - 1; y <= ey; y++ {
		for x := cx - 1; x <= ex; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o == exclude || !o.HasTags(tags...) {
					continue
				}
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				if r.Overlaps(gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
					hits = append(hits, o)
				}
			}
		}
	}
	return hits
}

// entryOf returns the live entry a resolv object was created for.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	if o == nil {
		return nil, false
	}
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}

func getSpace(ecs *ecs.ECS) (*resolv.Space, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(spaceEntry), true
}

// removeFromSpace takes e's body out of the collision space.
func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return
	}
	if space, ok := getSpace(ecs); ok {
		space.Remove(obj.Object)
	}
}

// RemoveEntity removes an entity and its body. Removing an entity that is
// already gone is a no-op.
func RemoveEntity(ecs *ecs.ECS, entity donburi.Entity) {
	if !ecs.World.Valid(entity) {
		return
	}
	e := ecs.World.Entry(entity)
	removeFromSpace(ecs, e)
	GetClock(ecs).Timer.CancelOwner(entity)
	ecs.World.Remove(entity)
}

// ScheduleRemoval removes e after delay seconds of simulation time.
func ScheduleRemoval(ecs *ecs.ECS, e *donburi.Entry, delay float64) timers.Handle {
	clock := GetClock(ecs)
	entity := e.Entity()
	return clock.Timer.ScheduleFor(entity, clock.Now+delay, func() {
		RemoveEntity(ecs, entity)
	})
}

// UpdateObjects syncs every body's cell membership after movement.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
