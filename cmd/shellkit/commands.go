package shellkit

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shellkit/shellkit/internal/version"
	"github.com/shellkit/shellkit/pkg/bootstrap"
	"github.com/shellkit/shellkit/pkg/config"
	"github.com/shellkit/shellkit/pkg/filesystem"
	"github.com/shellkit/shellkit/pkg/linker"
	"github.com/shellkit/shellkit/pkg/logging"
	"github.com/shellkit/shellkit/pkg/paths"
	"github.com/shellkit/shellkit/pkg/shell"
	"github.com/shellkit/shellkit/pkg/types"
	"github.com/shellkit/shellkit/pkg/ui"
)

var (
	flagVerbosity int
	flagDryRun    bool
	flagRoot      string
	flagFormat    string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "shellkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flagVerbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false,
		"Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "",
		"Managed repository root (overrides SHELLKIT_ROOT)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto",
		"Output format: auto, term, or text")

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runtime bundles the dependencies every command needs.
type runtime struct {
	paths  paths.Paths
	cfg    *config.Config
	specs  []types.LinkSpec
	fs     types.FS
	format ui.Format
}

func newRuntime() (*runtime, error) {
	p, err := paths.New(flagRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, err
	}

	// Without --root or SHELLKIT_ROOT, the config may still redirect the
	// repo root; reload so the repo-level config file is read from there.
	if p.UsedFallback() && cfg.Root != "" {
		redirected, err := paths.New(cfg.Root)
		if err != nil {
			return nil, err
		}
		if redirected.Root() != p.Root() {
			p = redirected
			if cfg, err = config.Load(p); err != nil {
				return nil, err
			}
		}
	}
	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.Root())
	}

	specs, err := cfg.LinkSpecs(p)
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(flagFormat)
	if err != nil {
		return nil, err
	}

	return &runtime{
		paths:  p,
		cfg:    cfg,
		specs:  specs,
		fs:     filesystem.NewOS(),
		format: format.Resolve(os.Stdout),
	}, nil
}

func (rt *runtime) linker() *linker.Linker {
	return linker.New(rt.fs, linker.Options{DryRun: flagDryRun})
}

func (rt *runtime) stepRunner() *bootstrap.Runner {
	return bootstrap.NewStepRunner(bootstrap.RunnerOptions{
		DryRun:   flagDryRun,
		Disabled: rt.cfg.Steps.Disabled,
	}, ui.NewStepView(rt.format))
}

func newInstallCmd() *cobra.Command {
	var linksOnly bool

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cmd"), "install")()

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			runner := bootstrap.NewRunner()
			ctx := cmd.Context()

			if !linksOnly {
				steps, err := bootstrap.DefaultSteps(rt.cfg, rt.paths, rt.fs, runner)
				if err != nil {
					return err
				}
				if _, err := rt.stepRunner().Run(ctx, steps); err != nil {
					return err
				}
			}

			results, err := rt.linker().InstallAll(rt.specs)
			if err != nil {
				return err
			}
			ui.RenderLinkResults(cmd.OutOrStdout(), rt.format, results)

			if !linksOnly {
				if _, err := rt.stepRunner().Run(ctx, bootstrap.PostLinkSteps(runner)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&linksOnly, "links-only", false,
		"Only manage symlinks, skip external installation steps")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: MsgUninstallShort,
		Long:  MsgUninstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cmd"), "uninstall")()

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			results, err := rt.linker().RestoreAll(rt.specs)
			if err != nil {
				return err
			}
			ui.RenderLinkResults(cmd.OutOrStdout(), rt.format, results)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			statuses, err := rt.linker().StatusAll(rt.specs)
			if err != nil {
				return err
			}
			ui.RenderLinkStatus(cmd.OutOrStdout(), rt.format, statuses)

			runner := bootstrap.NewRunner()
			steps, err := bootstrap.DefaultSteps(rt.cfg, rt.paths, rt.fs, runner)
			if err != nil {
				return err
			}
			steps = append(steps, bootstrap.PostLinkSteps(runner)...)

			checker := bootstrap.NewStepRunner(bootstrap.RunnerOptions{
				Disabled: rt.cfg.Steps.Disabled,
			}, nil)
			stepResults, err := checker.CheckAll(cmd.Context(), steps)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			ui.RenderStepStatus(cmd.OutOrStdout(), rt.format, stepResults)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			created, err := shell.Scaffold(rt.fs, rt.specs)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all source files already exist")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			}
			return nil
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return nil
			}
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			out, err := config.DumpTOML(rt.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false,
		"Print the annotated built-in defaults instead of the merged configuration")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shellkit version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
