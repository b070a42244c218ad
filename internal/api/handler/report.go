package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/traffic-report-api/internal/domain"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
	"github.com/vfg2006/traffic-report-api/pkg/apiErrors"
	"github.com/vfg2006/traffic-report-api/pkg/log"
	"github.com/vfg2006/traffic-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// GetReport renderiza o relatório da conta em markdown (padrão) ou JSON
func GetReport(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("report: gerando relatório da conta")

		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = FormatMarkdown
		}
		if format != FormatMarkdown && format != FormatJSON {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "format deve ser markdown ou json", nil)
			return
		}

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}
		filters.Currency = r.URL.Query().Get("currency")

		report, err := service.Generate(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, id, err)
			return
		}

		if format == FormatMarkdown {
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			w.Header().Set("X-Report-ID", report.ID)
			if _, err := w.Write([]byte(strings.Join(report.Lines, "\n") + "\n")); err != nil {
				logger.WithError(err).Error("report: falha ao escrever resposta")
			}
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetRules retorna o checklist de regras da conta
func GetRules(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		result, err := service.Rules(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, id, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetFatigue retorna a tabela de fadiga da conta
func GetFatigue(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		result, err := service.Fatigue(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, id, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func parseFilters(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	asOfParam := r.URL.Query().Get("as_of")

	asOf, err := utils.ParseDate(asOfParam)
	if err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"as_of": asOfParam,
			"error": err.Error(),
		}).Warn("report: parâmetro as_of inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidAsOf, err.Error(), nil)
		return nil, false
	}

	return &domain.ReportFilters{AsOf: asOf}, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, accountID string, err error) {
	code := apiErrors.ErrInternalServer
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		code = reportErr.Code
	}

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("report: falha ao gerar relatório")
	} else {
		logger.Warn("report: requisição de relatório rejeitada")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("report: falha ao codificar resposta")
	}
}
