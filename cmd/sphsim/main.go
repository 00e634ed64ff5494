package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sphcrowd/internal/config"
	"github.com/san-kum/sphcrowd/internal/engine"
	"github.com/san-kum/sphcrowd/internal/export"
	"github.com/san-kum/sphcrowd/internal/live"
	"github.com/san-kum/sphcrowd/internal/metrics"
	"github.com/san-kum/sphcrowd/internal/recording"
)

var (
	dataDir    string
	configFile string
	preset     string
	ticks      int
	recordDir  string
	recordEach int
	benchN     int
	svgOut     string
)

// main is the entry point for the sphsim CLI: it registers commands and
// flags and executes the root command, exiting 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sphsim",
		Short: "smoothed-particle-hydrodynamics crowd simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphsim", "data directory for recorded runs")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headlessly for a fixed number of ticks",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario YAML file (overrides the named preset)")
	runCmd.Flags().IntVar(&ticks, "ticks", 500, "number of physics ticks to run")
	runCmd.Flags().StringVar(&recordDir, "record", "", "directory to write a position recording to (disabled if empty)")
	runCmd.Flags().IntVar(&recordEach, "record-every", 5, "sample stride in ticks for --record")
	runCmd.Flags().StringVar(&svgOut, "svg-out", "", "write a final-frame SVG snapshot to this path (disabled if empty)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with a live terminal viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario YAML file (overrides the named preset)")

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark tick throughput for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScenario,
	}
	benchCmd.Flags().IntVar(&benchN, "ticks", 200, "number of ticks to benchmark")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				sc, _ := config.GetPreset(name)
				fmt.Printf("%-12s %s\n", name, sc.Description)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := recording.List(dataDir)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no recorded runs found")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSEED\tTICKS\tFRAMES")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
					run.ID, run.Scenario, run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Seed, run.Ticks, run.Frames)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, benchCmd, presetsCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario resolves a scenario by name: a config file if --config is
// set, otherwise a preset matching the given name.
func loadScenario(name string) (*config.Scenario, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.GetPreset(name)
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	sc, err := loadScenario(name)
	if err != nil {
		return fmt.Errorf("failed to load scenario %q: %w", name, err)
	}

	eng, err := engine.FromScenario(sc, engine.SystemClock{})
	if err != nil {
		return err
	}

	meanDensity := metrics.NewMeanDensity()
	meanPressure := metrics.NewMeanPressure()
	kinetic := metrics.NewKineticEnergy()

	var rec *recording.Recorder
	if recordDir != "" {
		rec = recording.New(recordDir, recordEach)
	}

	fmt.Printf("running %q (%d particles, %d ticks)...\n", sc.Name, sc.NumParticles, ticks)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		eng.DoPhysics()
		particles := eng.Particles()
		meanDensity.Observe(particles)
		meanPressure.Observe(particles)
		kinetic.Observe(particles)
		if rec != nil {
			rec.Sample(particles)
		}
	}
	elapsed := time.Since(start)

	if rec != nil {
		runID, err := rec.Flush(sc.Name, sc.Seed, time.Now())
		if err != nil {
			return fmt.Errorf("failed to flush recording: %w", err)
		}
		fmt.Printf("recorded run: %s\n", runID)
	}

	if svgOut != "" {
		canvas := live.NewCanvas(160, 48)
		pressure := live.NewPressureField(160, 48)
		live.RenderCanvas(eng, canvas, pressure)
		svg := export.CanvasToSVG(canvas, 4, pressure)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write svg snapshot: %w", err)
		}
		fmt.Printf("wrote svg snapshot: %s\n", svgOut)
	}

	fmt.Printf("completed in %v (%.3f ms/tick)\n", elapsed, float64(elapsed.Milliseconds())/float64(ticks))
	fmt.Println("\nmetrics:")
	fmt.Printf("  mean density:  %.4f\n", meanDensity.Value())
	fmt.Printf("  mean pressure: %.4f\n", meanPressure.Value())
	fmt.Printf("  kinetic energy: %.4f\n", kinetic.Value())
	fmt.Printf("  final population: %d\n", eng.GetParticleCount())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := args[0]
	sc, err := loadScenario(name)
	if err != nil {
		return fmt.Errorf("failed to load scenario %q: %w", name, err)
	}

	eng, err := engine.FromScenario(sc, engine.SystemClock{})
	if err != nil {
		return err
	}

	m := live.NewModel(eng, sc.Name)
	_, err = tea.NewProgram(m, tea.WithMouseCellMotion()).Run()
	return err
}

func benchScenario(cmd *cobra.Command, args []string) error {
	name := args[0]
	sc, err := loadScenario(name)
	if err != nil {
		return fmt.Errorf("failed to load scenario %q: %w", name, err)
	}

	eng, err := engine.FromScenario(sc, engine.SystemClock{})
	if err != nil {
		return err
	}

	densityHist := make([]float64, 0, benchN)
	start := time.Now()
	for i := 0; i < benchN; i++ {
		eng.DoPhysics()
		var sum float64
		particles := eng.Particles()
		for _, p := range particles {
			sum += p.Density
		}
		if len(particles) > 0 {
			densityHist = append(densityHist, sum/float64(len(particles)))
		}
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPARTICLES\tTICKS\tTOTAL\tTICKS/SEC")
	fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.1f\n",
		sc.Name, eng.GetParticleCount(), benchN, elapsed, float64(benchN)/elapsed.Seconds())
	w.Flush()

	if len(densityHist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(densityHist, asciigraph.Height(8), asciigraph.Caption("mean density over the run")))
	}
	return nil
}
