package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/logger"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/optim"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	dataDir     string
	configFile  string
	ticks       int
	recordEvery int
	gravity     float64
	maxForce    float64
	friction    float64
	frameRate   int
	svgPath     string
	jsonPath    string
	presetName  string
	sweepRuns   int
	sweepMin    float64
	sweepMax    float64
	sweepMetric string
	plotBody    string

	cliLog = logger.New("orbitsim")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "2d orbital arcade physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(experiment.NewRegistry(), frameRate)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&recordEvery, "record-every", 10, "save every n-th tick")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot body speeds of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "", "plot a single body")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "watch a scenario in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	predictCmd := &cobra.Command{
		Use:   "predict [scenario] [label]",
		Short: "predict the path of one body",
		Args:  cobra.ExactArgs(2),
		RunE:  predictPath,
	}
	addScenarioFlags(predictCmd)
	predictCmd.Flags().StringVar(&svgPath, "svg", "", "write the path as svg")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario] [label]",
		Short: "run variants of a vehicle's initial speed in parallel",
		Args:  cobra.ExactArgs(2),
		RunE:  sweepSpeed,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepRuns, "runs", 8, "number of variants")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "smallest speed factor")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.5, "largest speed factor")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "stability", "metric to rank by (highest first)")

	exportCmd := &cobra.Command{
		Use:   "export [scenario]",
		Short: "run a scenario and export its final state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportScenario,
	}
	addScenarioFlags(exportCmd)
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "svg output path")
	exportCmd.Flags().StringVar(&jsonPath, "json", "", "json output path (- for stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a preset as a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&presetName, "preset", config.DefaultScene, "preset to write")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, predictCmd, sweepCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	cmd.Flags().Float64Var(&gravity, "g", 0, "gravitational constant")
	cmd.Flags().Float64Var(&maxForce, "max-force", 0, "cap on a single gravity force")
	cmd.Flags().Float64Var(&friction, "friction", 0, "kinetic friction coefficient")
}

// loadScenario resolves the scenario from --config or a registry name and
// applies any flags the user set explicitly.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case configFile != "":
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	case len(args) > 0:
		cfg, err = experiment.NewRegistry().GetScenario(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, experiment.NewRegistry().ListScenarios())
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("g") {
		cfg.Physics.G = gravity
	}
	if flags.Changed("max-force") {
		cfg.Physics.MaxForce = maxForce
	}
	if flags.Changed("friction") {
		cfg.Physics.KineticFriction = friction
	}
	return cfg, cfg.Validate()
}

// signalContext cancels on interrupt so long runs stop between ticks.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry().DefaultMetrics(cfg.Params())); err != nil {
		return err
	}
	rec := storage.NewRecorder(recordEvery)
	exp.Simulator().AddObserver(rec)

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s for %d ticks...\n", cfg.Name, cfg.Ticks)
	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		cliLog.Printf("run interrupted: %v", err)
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Params(), result, rec.Snapshots)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.Ticks)
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tTICKS\tBODIES\tG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.3f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			len(run.Bodies),
			run.G,
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
	rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("rows: %d\n\n", len(rows))

	series := storage.Series(rows)
	for _, b := range meta.Bodies {
		if plotBody != "" && b.Label != plotBody {
			continue
		}
		rs := series[b.Label]
		if len(rs) < 2 {
			continue
		}
		speeds := make([]float64, len(rs))
		for i, r := range rs {
			speeds[i] = r.Velocity.Magnitude()
		}
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s speed", b.Label)),
		))
		fmt.Println()
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	c, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(cfg.Name, c, frameRate)
}

func predictPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args[:1])
	if err != nil {
		return err
	}
	c, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	id, err := c.Lookup(args[1])
	if err != nil {
		return fmt.Errorf("body %q: %w", args[1], err)
	}

	path, err := c.Predict(id, cfg.Ticks)
	if err != nil {
		return err
	}

	end := path[len(path)-1]
	fmt.Printf("body: %s\n", args[1])
	fmt.Printf("ticks: %d\n", cfg.Ticks)
	fmt.Printf("path length: %.3f\n", sim.PathLength(path))
	fmt.Printf("final position: (%.3f, %.3f)\n", end.X, end.Y)

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.TrajectoryToSVG(path, 800, 800, "#00ff88")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func sweepSpeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args[:1])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	factors := optim.Factors(sweepMin, sweepMax, sweepRuns)
	cliLog.Printf("sweeping %s in %s over %d variants", args[1], cfg.Name, len(factors))
	trials, err := optim.NewSpeedSweep(args[1], factors).Run(ctx, cfg, metrics.Default)
	if err != nil {
		return err
	}
	if err := optim.CheckMetric(trials, sweepMetric); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FACTOR\tSPEED\t%s\tENERGY_DRIFT\n", sweepMetric)
	for _, t := range optim.Rank(trials, sweepMetric, true) {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.4f\t%.4f\n",
			t.Factor, t.Speed, t.Result.Metrics[sweepMetric], t.Result.Metrics["energy_drift"])
	}
	return w.Flush()
}

func exportScenario(cmd *cobra.Command, args []string) error {
	if svgPath == "" && jsonPath == "" {
		return fmt.Errorf("nothing to export: set --svg or --json")
	}
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(metrics.Default(cfg.Params())); err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	result, err := exp.Run(ctx)
	if err != nil && result == nil {
		return err
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SceneToSVG(result.Final, 800, 800)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgPath)
	}

	data := export.NewExportData(cfg.Name, result.Final, result.Metrics)
	switch jsonPath {
	case "":
	case "-":
		return export.WriteJSON(os.Stdout, data)
	default:
		if err := export.ExportJSON(jsonPath, data); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", jsonPath)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTICKS\tPLAYERS\tPLANETS")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, cfg.Ticks, len(cfg.Players), len(cfg.Planets))
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(presetName)
	if cfg == nil {
		return fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, presetName, config.ListPresets())
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s preset to %s\n", presetName, args[0])
	return nil
}
