package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-report-api/pkg/log"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "traffic-report",
		Short:         "Relatório comparativo de campanhas a partir de linhas diárias por anúncio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log (debug, info, warn, error)")

	root.AddCommand(renderCmd())
	root.AddCommand(tokenCmd())
	return root
}
