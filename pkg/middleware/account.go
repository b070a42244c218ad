package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/traffic-report-api/pkg/apiErrors"
	"github.com/vfg2006/traffic-report-api/pkg/log"
)

// AccountAccess restringe as rotas /:id às contas presentes no token.
// Com a autenticação desligada não há claims e o acesso é livre.
func AccountAccess(authEnabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authEnabled {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("auth: tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
			if !claims.CanAccess(accountID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"account_id": accountID,
					"user_name":  claims.UserName,
				}).Warn("auth: acesso negado à conta")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar esta conta", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OperatorOnly libera a rota apenas para tokens sem restrição de contas
func OperatorOnly(authEnabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authEnabled {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := ClaimsFromContext(r.Context())
			if !ok || len(claims.UserAccounts) > 0 {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas operadores podem executar cron jobs", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
