package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JockByTheSea/npm-compromise-scan/internal/app"
	"github.com/JockByTheSea/npm-compromise-scan/internal/types"
)

type scanOptions struct {
	List         string
	NpmJSON      string
	Format       string
	FailExitCode int
	NoRunNpm     bool
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the installed dependency tree for compromised packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.List, "list", "l", "compromised.txt", "Compromised list file path")
	cmd.Flags().StringVar(&opts.NpmJSON, "npm-json", "", "npm ls JSON file path, or '-' for stdin (default: run npm ls --all --json)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().IntVar(&opts.FailExitCode, "fail-exit-code", 42, "Exit code to use when any matches are found")
	cmd.Flags().BoolVar(&opts.NoRunNpm, "no-run-npm", false, "Suppress running npm (error if no JSON source is provided)")

	_ = viper.BindPFlag("list", cmd.Flags().Lookup("list"))
	_ = viper.BindPFlag("npm_json", cmd.Flags().Lookup("npm-json"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("fail_exit_code", cmd.Flags().Lookup("fail-exit-code"))
	_ = viper.BindPFlag("no_run_npm", cmd.Flags().Lookup("no-run-npm"))

	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, opts scanOptions) error {
	service := newAppService()
	result, err := service.Scan(ctx, app.ScanRequest{
		DenylistPath: resolveString(cmd, opts.List, "list", "list"),
		TreePath:     resolveString(cmd, opts.NpmJSON, "npm_json", "npm-json"),
		NoRunNPM:     resolveBool(cmd, opts.NoRunNpm, "no_run_npm", "no-run-npm"),
		Format:       types.ReportFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	if err != nil {
		return err
	}
	if result.AnyMatch {
		// The report has already been rendered; a match is a scan outcome,
		// not a usage error, so exit directly with the configured status.
		os.Exit(resolveInt(cmd, opts.FailExitCode, "fail_exit_code", "fail-exit-code"))
	}
	return nil
}
