package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// Object group and layer names read from TMX files.
const (
	groupSolids      = "Solids"
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
	groupPatrolPaths = "PatrolPaths"
	groupPickups     = "Pickups"
	layerSolidTiles  = "wg-tiles"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	// Pixels to world units.
	sx := 1 / float64(levelMap.TileWidth)
	sy := 1 / float64(levelMap.TileHeight)

	level := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:       float64(levelMap.Width),
		Height:      float64(levelMap.Height),
		PatrolPaths: make(map[string]PatrolPath),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != layerSolidTiles {
			continue
		}
		level.Solids = append(level.Solids, solidRuns(layer, levelMap.Width, levelMap.Height)...)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidRect{
					X: o.X * sx,
					Y: o.Y * sy,
					W: o.Width * sx,
					H: o.Height * sy,
				})
			}
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					X:     o.X * sx,
					Y:     o.Y * sy,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case groupEnemySpawn:
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					enemyType = objectClass(o)
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:          o.X * sx,
					Y:          o.Y * sy,
					EnemyType:  enemyType,
					PatrolPath: o.Properties.GetString("pathName"),
				})
			}
		case groupPatrolPaths:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) == 0 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: (o.X + point.X) * sx,
						Y: (o.Y + point.Y) * sy,
					}
				}
				level.PatrolPaths[o.Name] = PatrolPath{Name: o.Name, Points: points}
			}
		case groupPickups:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = objectClass(o)
				}
				level.Pickups = append(level.Pickups, PickupSpawn{
					X:      o.X * sx,
					Y:      o.Y * sy,
					Kind:   kind,
					Amount: o.Properties.GetInt("amount"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}

// objectClass returns the Tiled class, falling back to the legacy type attribute.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

// solidRuns merges horizontal runs of solid tiles into single rectangles.
func solidRuns(layer *tiled.Layer, width, height int) []SolidRect {
	var rects []SolidRect
	for y := 0; y < height; y++ {
		start := -1
		for x := 0; x <= width; x++ {
			solid := x < width && !layer.Tiles[y*width+x].IsNil()
			if solid && start < 0 {
				start = x
			}
			if !solid && start >= 0 {
				rects = append(rects, SolidRect{X: float64(start), Y: float64(y), W: float64(x - start), H: 1})
				start = -1
			}
		}
	}
	return rects
}

// LoadLevelFile loads a TMX file from disk. Tilesets resolve relative to
// the map's directory.
func LoadLevelFile(path string) (*Level, error) {
	return LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
