package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/pkg/middleware"
)

func tokenCmd() *cobra.Command {
	var (
		secret   string
		user     string
		accounts []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um token de acesso à API de relatórios",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return errors.New("token: --secret é obrigatório")
			}

			token, err := middleware.SignToken(secret, domain.Claims{
				UserName:     user,
				UserAccounts: accounts,
			}, ttl)
			if err != nil {
				return errors.Wrap(err, "token: erro ao assinar")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "segredo HS256 (AUTH_SECRET da API)")
	cmd.Flags().StringVar(&user, "user", "", "nome do usuário gravado no token")
	cmd.Flags().StringSliceVar(&accounts, "accounts", nil, "contas liberadas (vazio = todas)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}
