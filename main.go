package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cortea-ai/wh-sweeper/cmd/cli"
	"github.com/cortea-ai/wh-sweeper/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const whSweeper = "wh-sweeper"

var (
	rootCmd = &cobra.Command{
		Use:          whSweeper,
		Short:        "A cli utility for sweeping warehouse datasets",
		SilenceUsage: true,
	}
	configPath string
	env        string
	vars       = make(config.Vars)
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(tablesCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		// On first signal seen, cancel the context. On the second signal, force stop immediately.
		stop := make(chan os.Signal, 2)
		defer close(stop)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(stop)
		<-stop   // wait for first interrupt
		cancel() // cancel context to gracefully stop
		rootCmd.Println("interrupt received, wait for exit or ^C to terminate")
		// Wait for the context to be canceled. Issuing a second interrupt will cause the process to force stop.
		<-stop // will not block if no signal received due to main routine exiting
		os.Exit(1)
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func addGlobalFlags(set *pflag.FlagSet) {
	set.StringVar(&env, "env", "", "set which env to use from the config file")
	set.Var(&vars, "var", "input variables")
	set.StringVarP(&configPath, "config", "c", "./"+whSweeper+".hcl", "Path to the configuration file")
}

func sweepCmd() *cobra.Command {
	var (
		mode        = "mode"
		table       = "table"
		all         = "all"
		dryRun      = "dry-run"
		autoApprove = "auto-approve"
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Truncate and/or drop tables in the configured dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.GetConfig(configPath, env, vars)
			if err != nil {
				return err
			}
			mode, err := cmd.Flags().GetString(mode)
			if err != nil {
				return err
			}
			tables, err := cmd.Flags().GetStringArray(table)
			if err != nil {
				return err
			}
			all, err := cmd.Flags().GetBool(all)
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool(dryRun)
			if err != nil {
				return err
			}
			autoApprove, err := cmd.Flags().GetBool(autoApprove)
			if err != nil {
				return err
			}
			return cli.Sweep(cmd.Context(), conf, cli.SweepOptions{
				Mode:        mode,
				Tables:      tables,
				All:         all,
				DryRun:      dryRun,
				AutoApprove: autoApprove,
			})
		},
	}
	addGlobalFlags(cmd.PersistentFlags())
	cmd.Flags().String(mode, "", "Operation to run: TRUNCATE, DROP or TRUNCATE_AND_DROP")
	cmd.Flags().StringArray(table, nil, "Restrict the sweep to this table (repeatable)")
	cmd.Flags().Bool(all, false, "Sweep every table in the dataset")
	cmd.Flags().Bool(dryRun, false, "Report the statements without executing them")
	cmd.Flags().Bool(autoApprove, false, "Skip the confirmation prompt on live runs")
	return cmd
}

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the configured dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.GetConfig(configPath, env, vars)
			if err != nil {
				return err
			}
			return cli.Tables(cmd.Context(), conf)
		},
	}
	addGlobalFlags(cmd.PersistentFlags())
	return cmd
}
