package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ttacon/chalk"
	"golang.org/x/time/rate"
)

type options struct {
	scenePath  string
	headless   bool
	ticks      int
	fps        int
	snapshot   string
	logPath    string
	clearance  float64
	simplify   float64
	pursue     bool
	edges      bool
	connectors bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.scenePath, "scene", "", "GeoJSON scene file (default: built-in room)")
	flag.BoolVar(&opts.headless, "headless", false, "run without a terminal UI")
	flag.IntVar(&opts.ticks, "ticks", 600, "ticks to run in headless mode")
	flag.IntVar(&opts.fps, "fps", 60, "frame rate cap for the terminal UI (0 = unlimited)")
	flag.StringVar(&opts.snapshot, "snapshot", "", "write the last frame to this PNG file")
	flag.StringVar(&opts.logPath, "log", "", "log file for terminal mode (default: discard)")
	flag.Float64Var(&opts.clearance, "clearance", 0, "clearance point distance (0 = scene value)")
	flag.Float64Var(&opts.simplify, "simplify", 0, "Douglas-Peucker tolerance for obstacle outlines")
	flag.BoolVar(&opts.pursue, "pursue", false, "start with the chaser pursuing")
	flag.BoolVar(&opts.edges, "edges", false, "draw visibility edges")
	flag.BoolVar(&opts.connectors, "connectors", false, "draw clearance connectors")
	flag.Parse()
	return opts
}

func loadScene(opts options) (Scene, error) {
	scene := DefaultScene()
	if opts.scenePath != "" {
		loaded, err := LoadSceneFile(opts.scenePath)
		if err != nil {
			return Scene{}, err
		}
		scene = loaded
	}
	if opts.clearance > 0 {
		scene.Clearance = opts.clearance
	}
	return scene.Prepared(opts.simplify), nil
}

// runLoop ticks the world until quit, cancellation or maxTicks (0 = no limit).
// Each tick collects input, steps the world and draws the frame, in that order.
func runLoop(ctx context.Context, world *World, input InputSource, renderer Renderer, limiter *rate.Limiter, drawOpts DrawOptions, maxTicks int) error {
	var fps float64
	last := time.Now()

	for maxTicks == 0 || world.Ticks < maxTicks {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if !world.Step(input.Poll()) {
			return nil
		}

		now := time.Now()
		if elapsed := now.Sub(last).Seconds(); elapsed > 0 {
			fps = 1 / elapsed
		}
		last = now

		if renderer != nil {
			if err := DrawWorld(world, renderer, drawOpts, fps); err != nil {
				return fmt.Errorf("failed to draw frame: %w", err)
			}
		}
	}
	return nil
}

// headlessScript walks the player into the room and switches pursuit on
func headlessScript() *ScriptedInput {
	steps := []Intents{{TogglePursuit: true, Direction: DirRight | DirDown}}
	for i := 0; i < 3; i++ {
		steps = append(steps, Intents{Direction: DirRight | DirDown})
	}
	return &ScriptedInput{Steps: steps}
}

func writeSnapshot(world *World, path string, drawOpts DrawOptions) error {
	renderer, err := NewPNGRenderer(DefaultPNGOptions())
	if err != nil {
		return err
	}
	if err := DrawWorld(world, renderer, drawOpts, 0); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer f.Close()

	if err := renderer.Encode(f); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	log.Printf("   ✅ Snapshot written to %s\n", path)
	return nil
}

func main() {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !opts.headless {
		// The terminal owns stdout while the UI runs
		log.SetOutput(io.Discard)
		if opts.logPath != "" {
			f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			log.SetOutput(f)
		}
	}

	log.Println("========================================")
	log.Println("🚀 Pursuit Planner")
	log.Println("========================================")

	scene, err := loadScene(opts)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	world, err := NewWorld(scene)
	if err != nil {
		log.Fatalf("❌ Failed to build world: %v", err)
	}
	if opts.pursue {
		world.Chaser.ToggleTarget(world.Player)
	}

	drawOpts := DrawOptions{ShowEdges: opts.edges, ShowConnectors: opts.connectors}

	if opts.headless {
		limiter := rate.NewLimiter(rate.Inf, 1)
		start := world.ChaseDistance()
		if err := runLoop(ctx, world, headlessScript(), nil, limiter, drawOpts, opts.ticks); err != nil {
			log.Fatalf("❌ %v", err)
		}

		summary := fmt.Sprintf("%d ticks, distance %.1f -> %.1f, path %d hops",
			world.Ticks, start, world.ChaseDistance(), PathCost(world.Chaser.Path))
		if world.ChaseDistance() < start {
			fmt.Println(chalk.Green.Color("✅ " + summary))
		} else {
			fmt.Println(chalk.Yellow.Color("⚠️  " + summary))
		}
	} else {
		limit := rate.Inf
		if opts.fps > 0 {
			limit = rate.Every(time.Second / time.Duration(opts.fps))
		}

		term, err := NewTerminal(world.Extent())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		err = runLoop(ctx, world, term, term, rate.NewLimiter(limit, 1), drawOpts, 0)
		term.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.snapshot != "" {
		if err := writeSnapshot(world, opts.snapshot, drawOpts); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}
}
