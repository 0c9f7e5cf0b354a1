package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mvail/lifelab/internal/analysis"
	"github.com/mvail/lifelab/internal/config"
	"github.com/mvail/lifelab/internal/export"
	"github.com/mvail/lifelab/internal/life"
	"github.com/mvail/lifelab/internal/metrics"
	"github.com/mvail/lifelab/internal/sim"
	"github.com/mvail/lifelab/internal/storage"
	"github.com/mvail/lifelab/internal/viz"
)

var (
	dataDir     string
	width       int
	height      int
	generations int
	fps         int
	seed        string
	randomSeed  int64
	pattern     string
	configFile  string
	preset      string
	ticks       int
	asSVG       bool
)

// main registers commands and flags; with no subcommand the live view opens
// with defaults.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "conway's game of life lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifelab", "data directory")

	addUniverseFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
		cmd.Flags().StringVar(&seed, "seed", config.SeedChecker, "seed strategy (checker|random|empty)")
		cmd.Flags().Int64Var(&randomSeed, "random-seed", time.Now().UnixNano(), "rng seed for the random strategy")
		cmd.Flags().StringVar(&pattern, "pattern", "", "pattern to stamp at the grid center")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save the result",
		RunE:  runSimulation,
	}
	addUniverseFlags(runCmd)
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a simulation in the terminal",
		RunE:  runLive,
	}
	addUniverseFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "render a generation to stdout",
		RunE:  printBoard,
	}
	addUniverseFlags(printCmd)
	printCmd.Flags().IntVar(&ticks, "ticks", 0, "generations to advance before rendering")
	printCmd.Flags().BoolVar(&asSVG, "svg", false, "emit an SVG snapshot instead of text")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export population history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the population curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "detect oscillation in a run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSEED\tPATTERN")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\n", name, cfg.Width, cfg.Height, cfg.Seed, cfg.Pattern)
			}
			return w.Flush()
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list available patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range life.PatternNames() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark tick throughput across grid sizes",
		RunE:  benchGrids,
	}

	rootCmd.AddCommand(runCmd, liveCmd, printCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, analyzeCmd, presetsCmd, patternsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset, then config file,
// then explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("generations") {
		cfg.Generations = generations
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("random-seed") {
		cfg.RandomSeed = randomSeed
	}
	if cfg.Seed == config.SeedRandom && cfg.RandomSeed == 0 {
		cfg.RandomSeed = randomSeed
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = pattern
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	u, err := cfg.Universe()
	if err != nil {
		return err
	}

	runner := sim.New(u)
	runner.AddMetric(metrics.NewPopulation())
	runner.AddMetric(metrics.NewActivity())
	runner.AddMetric(metrics.NewPeak())

	fmt.Printf("running %dx%d universe for %d generations...\n", cfg.Width, cfg.Height, cfg.Generations)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{Generations: cfg.Generations, Seed: cfg.RandomSeed})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result, u.Render())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final population: %d\n", u.Population())
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.2f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	u, err := cfg.Universe()
	if err != nil {
		return err
	}

	m := viz.NewModel(u, cfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func printBoard(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	u, err := cfg.Universe()
	if err != nil {
		return err
	}

	for i := 0; i < ticks; i++ {
		u.Tick()
	}

	if asSVG {
		fmt.Println(export.BoardToSVG(u, 10))
		return nil
	}

	alive, dead := cfg.Glyphs()
	fmt.Print(u.RenderGlyphs(alive, dead))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tSEED\tGENS\tFINAL POP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Seed,
			run.Generations,
			run.FinalPopulation,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("samples: %d\n\n", len(pops))

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population vs generation"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, pops)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, pops)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	svg := export.PopulationToSVG(pops, 800, 300, "#00ff00")
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}
	fmt.Println(svg)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	if len(pops) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("oscillation analysis: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n\n", meta.Width, meta.Height)

	data := make([]float64, len(pops))
	mean := 0.0
	for i, p := range pops {
		data[i] = float64(p)
		mean += float64(p)
	}
	mean /= float64(len(data))
	for i := range data {
		data[i] -= mean
	}

	ps := analysis.PowerSpectrum(analysis.Pad(data))

	graph := asciigraph.Plot(ps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	period := analysis.DominantPeriod(pops)
	if period == 0 {
		fmt.Println("no dominant oscillation (still life or aperiodic)")
		return nil
	}
	fmt.Printf("dominant period: %.1f generations\n", period)
	return nil
}

func benchGrids(cmd *cobra.Command, args []string) error {
	sizes := []int{32, 64, 128, 256}
	const gens = 100

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tGENS\tTIME\tGENS/SEC\tCELLS/SEC")

	for _, size := range sizes {
		u, err := life.New(size, size)
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < gens; i++ {
			u.Tick()
		}
		elapsed := time.Since(start)

		gensPerSec := float64(gens) / elapsed.Seconds()
		cellsPerSec := gensPerSec * float64(size*size)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.0f\n", size, size, gens, elapsed, gensPerSec, cellsPerSec)
	}

	return w.Flush()
}
