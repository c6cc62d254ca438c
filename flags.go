package main

import (
	"flag"
	"fmt"
	"math"

	"momentum/sim"
)

// Command-line flags. Simulation flags default to sim.DefaultConfig; spawn
// flags left negative resolve to the bottom-centre cell of the grid.
var (
	widthFlag       = flag.Int("width", sim.DefaultWidth, "grid width in cells")
	heightFlag      = flag.Int("height", sim.DefaultHeight, "grid height in cells")
	gravityFlag     = flag.Int("gravity", sim.DefaultGravity, "rows per tick added to vertical momentum each physics tick")
	tickDivisorFlag = flag.Int("tick-divisor", sim.DefaultTickDivisor, "render frames per physics tick (power of two)")
	launchDRowFlag  = flag.Int("launch-drow", sim.DefaultLaunchDRow, "vertical launch momentum in rows per tick (negative is up)")
	launchDColFlag  = flag.Int("launch-dcol", sim.DefaultLaunchDCol, "horizontal launch momentum in columns per tick (tracked, not applied)")
	spawnRowFlag    = flag.Int("spawn-row", -1, "projectile spawn row (default height-1)")
	spawnColFlag    = flag.Int("spawn-col", -1, "projectile spawn column (default width/2)")

	// pixelScaleFlag sets the window size multiplier for each grid cell.
	pixelScaleFlag = flag.Int("pixel-scale", pixelScale, "window pixels per grid cell")

	// tpsFlag sets the render frame rate; physics runs at tps/tick-divisor.
	tpsFlag = flag.Int("tps", defaultTPS, "render frames per second")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation counters overlay")

	// openCLFlag selects the OpenCL stepper when the binary was built with it.
	openCLFlag = flag.Bool("opencl", false, "run physics ticks on an OpenCL device (requires -tags opencl)")

	// enableAudioFlag plays a tone that follows the projectile's altitude.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable projectile altitude tone and launch sounds")

	launchSoundFlag = flag.String("launch-sound", "", "optional WAV file played on every accepted launch")

	// terminalFlag renders into the terminal instead of opening a window.
	terminalFlag = flag.Bool("terminal", false, "render in the terminal with tcell instead of a window")

	headlessFramesFlag = flag.Int("headless-frames", 0, "run this many frames without a display and print a JSON summary")
	fireEveryFlag      = flag.Int("fire-every", 0, "headless only: request a launch every N frames (0 disables)")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this path")
)

// simConfigFromFlags folds the simulation flags into a sim.Config. The result
// is validated by sim.NewSimulation.
func simConfigFromFlags() (sim.Config, error) {
	for name, v := range map[string]int{
		"gravity":     *gravityFlag,
		"launch-drow": *launchDRowFlag,
		"launch-dcol": *launchDColFlag,
	} {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return sim.Config{}, fmt.Errorf("-%s %d does not fit in 16 bits", name, v)
		}
	}
	cfg := sim.DefaultConfig()
	cfg.Width = *widthFlag
	cfg.Height = *heightFlag
	cfg.Gravity = int16(*gravityFlag)
	cfg.TickDivisor = *tickDivisorFlag
	cfg.LaunchMomentum = sim.Momentum{DRow: int16(*launchDRowFlag), DCol: int16(*launchDColFlag)}
	cfg.SpawnRow = *spawnRowFlag
	if cfg.SpawnRow < 0 {
		cfg.SpawnRow = cfg.Height - 1
	}
	cfg.SpawnCol = *spawnColFlag
	if cfg.SpawnCol < 0 {
		cfg.SpawnCol = cfg.Width / 2
	}
	return cfg, nil
}
