package cmd

import (
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/arithgame/internal/app"
	"github.com/abhisek/arithgame/internal/config"
	"github.com/abhisek/arithgame/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "arithgame",
	Short: "Arithmetic practice game for the terminal",
	Long: `Arithgame asks integer arithmetic questions (+ - * / %) at three
difficulty levels and keeps score. Division questions always have a whole
number answer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Mark the Go flag set parsed so glog honors -v and --log_dir.
		_ = flag.CommandLine.Parse(nil)
		return config.LoadDotEnv(".env")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Generator: problemgen.NewGenerator(cfg.Seed, cfg.GeneratorConfig()),
			Operator:  cfg.Operator,
			Level:     cfg.Level,
		})
	},
}

// Execute runs the root command and flushes logs on the way out.
func Execute() error {
	defer glog.Flush()
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides ARITHGAME_CONFIG env var)")
	pf.String("op", "", "Operator: +, -, *, /, % or add, subtract, multiply, divide, modulo")
	pf.String("level", "", "Difficulty level: 1 (1-100), 2 (101-500) or 3 (501-1000)")
	pf.Int64("seed", 0, "Random seed for reproducible questions (0 = time-seeded)")
	addLogFlags(pf)

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addLogFlags exposes glog's flags (-v, --log_dir, --logtostderr, ...) on fs.
func addLogFlags(fs *pflag.FlagSet) {
	fs.AddGoFlagSet(flag.CommandLine)
}

// resolveConfig loads the config file and environment, then applies any
// flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("op") {
		v, _ := flags.GetString("op")
		op, err := problemgen.ParseOperator(v)
		if err != nil {
			return cfg, fmt.Errorf("--op: %w", err)
		}
		cfg.Operator = op
	}
	if flags.Changed("level") {
		v, _ := flags.GetString("level")
		lvl, err := problemgen.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("--level: %w", err)
		}
		cfg.Level = lvl
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}

	glog.V(1).Infof("config: op=%s level=%d seed=%d verify=%t source=%q",
		cfg.Operator.Name(), cfg.Level.Number, cfg.Seed, cfg.Verify, cfg.Source)
	return cfg, nil
}
