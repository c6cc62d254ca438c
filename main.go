package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"momentum/sim"
	"momentum/world"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("Exiting: %v", err)
	}
}

func run() error {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer stop()
	}

	cfg, err := simConfigFromFlags()
	if err != nil {
		return err
	}
	stepper, closeStepper := selectStepper(cfg)
	defer closeStepper()

	s, err := sim.NewSimulation(cfg, stepper)
	if err != nil {
		return err
	}
	w := world.New(s)

	switch {
	case *headlessFramesFlag > 0:
		return runHeadless(w)
	case *terminalFlag:
		return runTerminal(w)
	default:
		return runWindow(w)
	}
}

// selectStepper returns the OpenCL stepper when requested and available,
// otherwise nil so the simulation falls back to the CPU stepper.
func selectStepper(cfg sim.Config) (sim.Stepper, func()) {
	if !*openCLFlag {
		return nil, func() {}
	}
	gpu, err := sim.NewOpenCLStepper(cfg.Width, cfg.Height, cfg.Gravity)
	if err != nil {
		log.Printf("OpenCL stepper unavailable, using CPU: %v", err)
		return nil, func() {}
	}
	log.Printf("OpenCL stepper enabled (device: %s)", gpu.DeviceName())
	return gpu, gpu.Close
}

func runWindow(w *world.World) error {
	cfg := w.Simulation().Config()
	g := newGame(w, *pixelScaleFlag)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width*g.scale, cfg.Height*g.scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tpsFlag)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func runHeadless(w *world.World) error {
	sum, err := world.RunHeadless(w, *headlessFramesFlag, *fireEveryFlag)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
