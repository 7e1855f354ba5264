package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/strand/behavior"
	"github.com/plus3/strand/effects"
)

func main() {
	effect := flag.String("effect", "scanner", "Behavior key to run (see the effects package).")
	ticks := flag.Int("ticks", 3600, "The number of fixed steps to execute.")
	pixels := flag.Int("pixels", 60, "The strip length in pixels.")
	instances := flag.Int("instances", 1, "The number of instances to spawn.")
	verify := flag.Bool("verify", true, "Replay the schedule a second time and compare framebuffer hashes.")
	flag.Parse()

	log.Println("Starting behavior stress test...")

	registry := effects.NewRegistry()
	def, ok := registry.LookupKey(*effect)
	if !ok {
		keys := make([]string, 0, registry.Len())
		for d := range registry.Iter() {
			keys = append(keys, d.Key)
		}
		log.Fatalf("Unknown effect %q. Registered keys: %v", *effect, keys)
	}

	report := &Report{
		Effect:    def.Key,
		Ticks:     *ticks,
		Pixels:    *pixels,
		Instances: *instances,
		StepTime: Stats{
			Samples: make([]time.Duration, 0, *ticks),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d instances of %q for %d ticks...\n", *instances, def.Key, *ticks)

	startTime := time.Now()
	firstHashes, err := runSchedule(registry, def, *pixels, *instances, *ticks, &report.StepTime)
	if err != nil {
		log.Fatalf("Failed to run schedule: %v", err)
	}
	report.TotalTime = time.Since(startTime)
	report.StepTime.Finalize()

	if *verify {
		log.Println("Replaying schedule for determinism verification...")
		replayHashes, err := runSchedule(registry, def, *pixels, *instances, *ticks, nil)
		if err != nil {
			log.Fatalf("Failed to replay schedule: %v", err)
		}
		report.Verified = true
		report.ReplayMatch = true
		for i := range firstHashes {
			if firstHashes[i] != replayHashes[i] {
				report.ReplayMatch = false
				report.FirstDivergence = i
				break
			}
		}
	}

	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Stress test finished.")

	fmt.Println("\n\n--- Behavior Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Verified && !report.ReplayMatch {
		os.Exit(1)
	}
}

// runSchedule runs a fresh runner through the full tick schedule and returns
// the framebuffer hash after every step. Instances get the effect's default
// params with PI3 varied per instance so seeded effects diverge from each
// other but replay identically.
func runSchedule(registry *behavior.Registry, def *behavior.Definition, pixels, instances, ticks int, stepStats *Stats) ([]uint64, error) {
	fb := behavior.NewFramebuffer(pixels)
	runner := behavior.NewRunner(registry, fb)

	for i := 0; i < instances; i++ {
		params := def.Defaults
		params.PI[3] = (params.PI[3] + i) % (behavior.MaxIntParam + 1)
		if _, err := runner.Spawn(def.Id, params); err != nil {
			return nil, err
		}
	}

	hashes := make([]uint64, ticks)
	for t := 0; t < ticks; t++ {
		stepStart := time.Now()
		runner.Step()
		stepDuration := time.Since(stepStart)

		if stepStats != nil {
			stepStats.Samples = append(stepStats.Samples, stepDuration)
		}
		hashes[t] = fb.Hash()
	}
	return hashes, nil
}
