package main

import (
	"math/rand"
	"time"

	"github.com/0x0FACED/go-branching/pkg/config"
	"github.com/0x0FACED/go-branching/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	seed       int64

	cfg config.Config
	log *logger.ZapLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "branching",
		Short: "Grow branching blue-noise patterns",
		Long: `branching grows a space-filling, branching point pattern with a directional
Poisson-disk sampler and prints the parent→child segments as
"L 1 x1,y1;x2,y2" records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEmit(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML file with run parameters")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed, 0 picks one from the clock")
	addParamFlags(root)

	root.AddCommand(newEmitCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := zapcore.InfoLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}
	a.log = logger.NewConsole(cmd.ErrOrStderr(), level)

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Info("[cli] Config loaded", zap.String("path", a.configPath))
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Seed = a.seed
	}

	return nil
}

// rng returns a source for seed, or a clock-seeded one for 0.
func rng(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
