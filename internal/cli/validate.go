package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JockByTheSea/npm-compromise-scan/internal/app"
)

type validateOptions struct {
	List string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a compromised list file without scanning",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.List, "list", "l", "compromised.txt", "Compromised list file path")
	_ = viper.BindPFlag("list", cmd.Flags().Lookup("list"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		DenylistPath: resolveString(cmd, opts.List, "list", "list"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("compromised list ok: %d names, %d exact entries\n", result.NameCount, result.ExactCount)
	return nil
}
