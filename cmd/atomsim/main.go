package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/elements"
	"github.com/san-kum/atomsim/internal/metrics"
	"github.com/san-kum/atomsim/internal/sim"
	"github.com/san-kum/atomsim/internal/storage"
	"github.com/san-kum/atomsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	numAtoms   int
	dt         float64
	duration   float64
	seed       int64
	friction   float64
	speed      float64
	bonding    string
	symbol     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomsim",
		Short: "2D atom simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the result",
		RunE:  runSimulation,
	}
	addWorldFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a simulation live in the terminal",
		RunE:  runLive,
	}
	addWorldFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "export a stored run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	elementsCmd := &cobra.Command{
		Use:   "elements",
		Short: "list the element dataset",
		RunE:  listElements,
	}
	elementsCmd.Flags().StringVar(&symbol, "symbol", "", "show one element with its isotopes")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, showCmd, exportCmd, elementsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&numAtoms, "atoms", config.DefaultAtoms, "number of atoms")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "friction coefficient")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "initial speed")
	cmd.Flags().StringVar(&bonding, "bonding", config.BondingNone, "bonding strategy (none|chain|full)")
}

// resolveConfig merges file, preset and flags, in that order of precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		clone := *p
		cfg = &clone
	default:
		cfg = config.DefaultConfig()
		cfg.Atoms = numAtoms
		cfg.Dt = dt
		cfg.Duration = duration
		cfg.Friction = friction
		cfg.Speed = speed
		cfg.Bonding = bonding
	}

	if cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}

	return cfg, cfg.Validate()
}

// buildWorld spawns random atoms in the configured region and applies the
// bonding strategy.
func buildWorld(cfg *config.Config, rng *rand.Rand) *sim.World {
	world := sim.NewWorld()

	for i := 0; i < cfg.Atoms; i++ {
		a := atom.RandomAtomAt(rng, atom.Vector2{
			X: rng.Float64() * cfg.Region.Width,
			Y: rng.Float64() * cfg.Region.Height,
		})
		a.Friction = cfg.Friction
		angle := rng.Float64() * 2 * math.Pi
		a.Velocity = atom.Vector2{
			X: math.Cos(angle) * cfg.Speed,
			Y: math.Sin(angle) * cfg.Speed,
		}
		world.AddAtom(a)
	}

	switch cfg.Bonding {
	case config.BondingChain:
		for i := 0; i+1 < len(world.Atoms); i++ {
			world.Bond(world.Atoms[i], world.Atoms[i+1])
		}
	case config.BondingFull:
		for i := 0; i < len(world.Atoms); i++ {
			for j := i + 1; j < len(world.Atoms); j++ {
				world.Bond(world.Atoms[i], world.Atoms[j])
			}
		}
	}

	return world
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	world := buildWorld(cfg, rng)

	runner := sim.NewRunner(world)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewMaxSpeed())

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Seed:          cfg.Seed,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	for _, simErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", simErr)
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	frames := make([]storage.Frame, len(result.Frames))
	for i, frame := range result.Frames {
		positions := make([]float64, 0, len(frame)*2)
		for _, p := range frame {
			positions = append(positions, p.X, p.Y)
		}
		frames[i] = storage.Frame{Time: result.Times[i], Positions: positions}
	}

	runID, err := store.Save(storage.RunMetadata{
		Seed:     cfg.Seed,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Atoms:    len(world.Atoms),
		Bonds:    len(world.Bonds),
		Bonding:  cfg.Bonding,
		Steps:    result.StepsTaken,
		Metrics:  result.Metrics,
	}, result.Times, frames)
	if err != nil {
		return err
	}

	fmt.Printf("saved %s (%d steps)\n", runID, result.StepsTaken)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, value)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	world := buildWorld(cfg, rng)

	model := tui.NewModel(world, cfg.Dt, cfg.Region.Width, cfg.Region.Height)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tATOMS\tBONDS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			run.ID, run.Timestamp.Format(time.RFC3339), run.Atoms, run.Bonds, run.Steps)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, frames, err := store.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "timestamp\t%s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "seed\t%d\n", meta.Seed)
	fmt.Fprintf(w, "dt\t%.4f\n", meta.Dt)
	fmt.Fprintf(w, "duration\t%.2f\n", meta.Duration)
	fmt.Fprintf(w, "atoms\t%d\n", meta.Atoms)
	fmt.Fprintf(w, "bonds\t%d\n", meta.Bonds)
	fmt.Fprintf(w, "bonding\t%s\n", meta.Bonding)
	fmt.Fprintf(w, "frames\t%d\n", len(frames))
	for name, value := range meta.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, value)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	return store.ExportJSON(args[0], os.Stdout)
}

func listElements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	if symbol != "" {
		el, ok := elements.BySymbol(symbol)
		if !ok {
			return fmt.Errorf("unknown element %q", symbol)
		}
		fmt.Fprintf(w, "number\t%d\n", el.Number)
		fmt.Fprintf(w, "symbol\t%s\n", el.Symbol)
		fmt.Fprintf(w, "name\t%s\n", el.Name)
		fmt.Fprintf(w, "weight\t%.4f\n", el.Weight)
		if el.Electronegativity > 0 {
			fmt.Fprintf(w, "electronegativity\t%.2f\n", el.Electronegativity)
		}
		for _, iso := range elements.IsotopesOf(el.Symbol) {
			fmt.Fprintf(w, "isotope %s-%d\tmass %.5f\tabundance %.4f\n",
				el.Symbol, iso.MassNumber, iso.Mass, iso.Abundance)
		}
		return w.Flush()
	}

	fmt.Fprintln(w, "NUMBER\tSYMBOL\tNAME\tWEIGHT\tEN")
	for _, el := range elements.Table {
		en := "-"
		if el.Electronegativity > 0 {
			en = fmt.Sprintf("%.2f", el.Electronegativity)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%s\n", el.Number, el.Symbol, el.Name, el.Weight, en)
	}
	return w.Flush()
}
