package factory

import (
	"github.com/automoto/dinoclash/archetypes"
	"github.com/automoto/dinoclash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, wall, resolv.NewObject(x, y, w, h, tags.ResolvSolid))
	return wall
}
