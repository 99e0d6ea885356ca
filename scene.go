package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// ErrAgentInsideObstacle is returned when an agent starts inside an obstacle
// or outside an enclosing boundary.
var ErrAgentInsideObstacle = errors.New("agent placed inside an obstacle")

// ErrMissingAgent is returned when a scene file does not place both agents
var ErrMissingAgent = errors.New("scene must place a player and a chaser")

// AgentConfig places an agent
type AgentConfig struct {
	Pos  Point `json:"pos"`
	Size Point `json:"size"`
}

// Scene is the static world description read once at start
type Scene struct {
	Obstacles []Polygon   `json:"obstacles"`
	Player    AgentConfig `json:"player"`
	Chaser    AgentConfig `json:"chaser"`
	Clearance float64     `json:"clearance"`
}

// DefaultScene is an enclosed 1260x700 room with five square blocks
func DefaultScene() Scene {
	square := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	scene := Scene{
		Obstacles: []Polygon{
			{
				Vertices: []Point{{0, 0}, {1260, 0}, {1260, 700}, {0, 700}},
				Offset:   Point{10, 10},
				Flip:     true,
			},
		},
		Player:    AgentConfig{Pos: Point{5, 5}, Size: Point{10, 10}},
		Chaser:    AgentConfig{Pos: Point{1200, 650}, Size: Point{10, 10}},
		Clearance: DefaultClearance,
	}
	for _, pos := range []Point{{120, 100}, {300, 120}, {420, 200}, {600, 400}, {100, 500}} {
		scene.Obstacles = append(scene.Obstacles, Polygon{Vertices: square, Offset: pos})
	}
	return scene
}

// LoadSceneFile reads a GeoJSON feature collection. Polygon and
// MultiPolygon features become obstacles ("flip": true marks enclosing
// boundaries); Point features with "role" "player" or "chaser" place the
// agents, optionally sized by "width" and "height".
func LoadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene: %w", err)
	}

	scene, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	log.Printf("   ✅ Loaded %d obstacles from %s\n", len(scene.Obstacles), filepath.Base(path))
	return scene, nil
}

// ParseScene converts GeoJSON bytes into a Scene
func ParseScene(data []byte) (Scene, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to unmarshal feature collection: %w", err)
	}

	scene := Scene{Clearance: DefaultClearance}
	var hasPlayer, hasChaser bool

	for _, feature := range fc.Features {
		flip := feature.Properties.MustBool("flip", false)

		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			if len(geometry) > 0 {
				scene.Obstacles = append(scene.Obstacles, polygonFromRing(geometry[0], flip))
			}

		case orb.MultiPolygon:
			for _, poly := range geometry {
				if len(poly) > 0 {
					scene.Obstacles = append(scene.Obstacles, polygonFromRing(poly[0], flip))
				}
			}

		case orb.Point:
			agent := AgentConfig{
				Pos: Point{X: geometry[0], Y: geometry[1]},
				Size: Point{
					X: feature.Properties.MustFloat64("width", 10),
					Y: feature.Properties.MustFloat64("height", 10),
				},
			}
			switch role := feature.Properties.MustString("role", ""); role {
			case "player":
				scene.Player, hasPlayer = agent, true
			case "chaser":
				scene.Chaser, hasChaser = agent, true
			default:
				log.Printf("⚠️  Ignoring point feature with role %q\n", role)
			}

		default:
			return Scene{}, fmt.Errorf("unsupported geometry type %s", feature.Geometry.GeoJSONType())
		}
	}

	if !hasPlayer || !hasChaser {
		return Scene{}, ErrMissingAgent
	}
	return scene, nil
}

// polygonFromRing drops the closing vertex GeoJSON rings repeat
func polygonFromRing(ring orb.Ring, flip bool) Polygon {
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	poly := Polygon{Vertices: make([]Point, 0, len(ring)), Flip: flip}
	for _, p := range ring {
		poly.Vertices = append(poly.Vertices, Point{X: p[0], Y: p[1]})
	}
	return poly
}

// ringFromPolygon returns the placed outline as a closed orb ring
func ringFromPolygon(poly Polygon) orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Vertices)+1)
	for _, v := range poly.Vertices {
		p := v.Add(poly.Offset)
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// ValidateAgents checks that both agents start in walkable space
func (s Scene) ValidateAgents() error {
	agents := []struct {
		name   string
		config AgentConfig
	}{{"player", s.Player}, {"chaser", s.Chaser}}

	for _, agent := range agents {
		name := agent.name
		pos := orb.Point{agent.config.Pos.X, agent.config.Pos.Y}
		for i, poly := range s.Obstacles {
			if len(poly.Vertices) < 3 || poly.Flip {
				continue
			}
			if planar.RingContains(ringFromPolygon(poly), pos) {
				return fmt.Errorf("%s in obstacle %d: %w", name, i, ErrAgentInsideObstacle)
			}
		}
	}
	return nil
}

// Prepared returns a copy of the scene with outlines simplified and
// obstacles hidden inside other obstacles removed.
func (s Scene) Prepared(epsilon float64) Scene {
	out := s
	out.Obstacles = SimplifyPolygons(s.Obstacles, epsilon)

	before := len(out.Obstacles)
	out.Obstacles = MergeOverlappingPolygons(out.Obstacles)
	if removed := before - len(out.Obstacles); removed > 0 {
		log.Printf("   Polygons after removing contained: %d (removed %d)\n", len(out.Obstacles), removed)
	}
	if out.Clearance <= 0 {
		out.Clearance = DefaultClearance
	}
	return out
}
