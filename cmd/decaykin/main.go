package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/decaykin/internal/config"
	"github.com/san-kum/decaykin/internal/kinematics"
	"github.com/san-kum/decaykin/internal/report"
	"github.com/san-kum/decaykin/internal/scan"
	"github.com/san-kum/decaykin/internal/storage"
	"github.com/san-kum/decaykin/internal/viz"
)

var (
	dataDir string
	verbose bool

	m0 float64
	p0 float64
	m1 float64
	m2 float64

	configFile string
	preset     string
	save       bool
	summary    bool

	// Scan range
	p0Min  float64
	p0Max  float64
	points int

	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "decaykin",
		Short: "relativistic two-body decay kinematics lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))
		},
		RunE: runDecay,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".decaykin", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	addDecayFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&m0, "m0", config.DefaultM0, "mother rest mass")
		cmd.Flags().Float64Var(&p0, "p0", config.DefaultP0, "mother lab momentum")
		cmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "daughter 1 rest mass")
		cmd.Flags().Float64Var(&m2, "m2", config.DefaultM2, "daughter 2 rest mass")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use a named decay preset")
	}

	decayCmd := &cobra.Command{
		Use:   "decay",
		Short: "compute a two-body decay",
		RunE:  runDecay,
	}
	addDecayFlags(decayCmd)
	addDecayFlags(rootCmd)
	decayCmd.Flags().BoolVar(&save, "save", false, "save the run")
	rootCmd.Flags().BoolVar(&save, "save", false, "save the run")
	decayCmd.Flags().BoolVar(&summary, "summary", false, "one line per frame instead of tables")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "one line per frame instead of tables")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sweep the mother momentum and plot daughter energy",
		RunE:  runScan,
	}
	scanCmd.Flags().Float64Var(&m0, "m0", config.DefaultM0, "mother rest mass")
	scanCmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "daughter 1 rest mass")
	scanCmd.Flags().Float64Var(&m2, "m2", config.DefaultM2, "daughter 2 rest mass")
	scanCmd.Flags().Float64Var(&p0Min, "p0-min", 0, "sweep start")
	scanCmd.Flags().Float64Var(&p0Max, "p0-max", 100, "sweep end")
	scanCmd.Flags().IntVar(&points, "points", 50, "sweep points")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's frames as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list decay presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-12s %s\n", name, config.Presets[name].Label)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive decay explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.M0, cfg.P0, cfg.M1, cfg.M2)
		},
	}
	addDecayFlags(liveCmd)

	rootCmd.AddCommand(decayCmd, scanCmd, listCmd, showCmd, exportJSONCmd, exportCSVCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags; flags win,
// config file beats preset, preset beats defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("m0") {
		cfg.M0 = m0
	}
	if cmd.Flags().Changed("p0") {
		cfg.P0 = p0
	}
	if cmd.Flags().Changed("m1") {
		cfg.M1 = m1
	}
	if cmd.Flags().Changed("m2") {
		cfg.M2 = m2
	}
	return cfg, nil
}

func runDecay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	slog.Debug("computing decay", "m0", cfg.M0, "p0", cfg.P0, "m1", cfg.M1, "m2", cfg.M2)

	frames, err := kinematics.Decay(cfg.M0, cfg.P0, cfg.M1, cfg.M2)
	if err != nil {
		return err
	}

	var out string
	if summary {
		out = report.Summary(frames)
	} else {
		if out, err = report.Frames(frames, true); err != nil {
			return err
		}
	}
	fmt.Println(out)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Label, cfg.M0, cfg.P0, cfg.M1, cfg.M2, frames)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	slog.Debug("scanning", "m0", m0, "m1", m1, "m2", m2, "p0_min", p0Min, "p0_max", p0Max, "points", points)

	pts, err := scan.Sweep(context.Background(), m0, m1, m2, p0Min, p0Max, points)
	if err != nil {
		return err
	}

	energies := scan.Daughter1LabEnergy(pts)
	graph := asciigraph.Plot(energies,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("daughter 1 lab energy vs p0 [%g, %g]", p0Min, p0Max)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "P0\tBETA\tE1_LAB\tP1_LAB")
	for _, pt := range pts {
		lab := pt.LabFrame()
		beta := 0.0
		if pt.P0 > 0 {
			if beta, err = kinematics.Beta(m0, pt.P0); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%.3f\t%.6f\t%.4f\t%.4f\n", pt.P0, beta, lab.Daughter1.E, lab.Daughter1.PMag())
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tM0\tP0\tM1\tM2\tBETA\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4f\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.M0,
			run.P0,
			run.M1,
			run.M2,
			run.Beta,
			run.Frames,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath != "" {
		return st.ExportJSON(outPath, args[0])
	}
	return st.ExportJSONStdout(args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"frame", "particle", "e", "px", "py", "pz"}); err != nil {
		return err
	}
	names := [3]string{"mother", "daughter1", "daughter2"}
	for _, f := range frames {
		for i, p := range [3]kinematics.FourMomentum{f.Mother, f.Daughter1, f.Daughter2} {
			row := []string{
				f.Label,
				names[i],
				strconv.FormatFloat(p.E, 'g', -1, 64),
				strconv.FormatFloat(p.Px, 'g', -1, 64),
				strconv.FormatFloat(p.Py, 'g', -1, 64),
				strconv.FormatFloat(p.Pz, 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
