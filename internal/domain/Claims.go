package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do token de acesso aos relatórios.
// UserAccounts vazio libera todas as contas.
type Claims struct {
	UserName     string   `json:"user_name,omitempty"`
	UserAccounts []string `json:"user_accounts,omitempty"`
	jwt.RegisteredClaims
}

// CanAccess indica se o token permite ler a conta
func (c *Claims) CanAccess(accountID string) bool {
	if c == nil {
		return false
	}
	if len(c.UserAccounts) == 0 {
		return true
	}
	for _, id := range c.UserAccounts {
		if id == accountID {
			return true
		}
	}
	return false
}
