package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-report-api/infrastructure/csvsource"
	"github.com/vfg2006/traffic-report-api/internal/usecases/analytics"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
	"github.com/vfg2006/traffic-report-api/pkg/utils"
)

type renderOptions struct {
	input      string
	asOf       string
	currency   string
	recentDays int
	targetCPA  float64
}

func renderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Renderiza o relatório markdown de um CSV de linhas diárias",
		Example: `  traffic-report render --input export.csv --as-of 2024-06-14 --currency €
  cat export.csv | traffic-report render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "arquivo CSV (- para stdin)")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "data de referência AAAA-MM-DD (padrão: última data do CSV)")
	cmd.Flags().StringVar(&opts.currency, "currency", "$", "símbolo monetário")
	cmd.Flags().IntVar(&opts.recentDays, "recent-days", analytics.DefaultRecentWindowDays, "janela recente da tabela de fadiga")
	cmd.Flags().Float64Var(&opts.targetCPA, "target-cpa", 0, "CPA objetivo da regra de conversão (0 usa o CPA do período)")

	return cmd
}

func runRender(stdin io.Reader, out io.Writer, opts renderOptions) error {
	in := stdin
	if opts.input != "-" && opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return errors.Wrap(err, "render: erro ao abrir o CSV")
		}
		defer f.Close()
		in = f
	}

	series, err := csvsource.ReadSeries(in)
	if err != nil {
		return err
	}

	fields := logrus.Fields{"rows": len(series)}
	if latest, ok := series.LatestDate(); ok {
		fields["latest_date"] = latest.Format(utils.DateLayout)
	}
	logrus.WithFields(fields).Debug("render: CSV carregado")

	builderOpts := []reporting.BuilderOption{
		reporting.WithCurrency(opts.currency),
		reporting.WithRecentWindowDays(opts.recentDays),
		reporting.WithTargetCPA(opts.targetCPA),
	}

	asOf, err := utils.ParseDate(opts.asOf)
	if err != nil {
		return errors.Wrap(err, "render: --as-of")
	}
	if asOf != nil {
		builderOpts = append(builderOpts, reporting.WithAsOf(*asOf))
	}

	builder := reporting.NewBuilder(analytics.NewSumAggregator(), builderOpts...)

	var writeErr error
	builder.Render(series, func(line string) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintln(out, line)
		}
	})

	return writeErr
}
