package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ipay-report-api/infrastructure/export"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
	"github.com/vfg2006/ipay-report-api/pkg/log"
	"github.com/vfg2006/ipay-report-api/pkg/utils"
)

const allYears = "all"

// parseReportFilters lê years, months e products da query
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	query := r.URL.Query()
	var filters domain.ReportFilters

	rawYears := utils.SplitList(query["years"])
	if len(rawYears) == 1 && strings.EqualFold(rawYears[0], allYears) {
		filters.AllYears = true
	} else {
		years, err := utils.ParseIntList(rawYears)
		if err != nil {
			return filters, err
		}
		if len(years) > 0 {
			filters.Years = years
		}
	}

	months, err := utils.ParseIntList(query["months"])
	if err != nil {
		return filters, err
	}
	for _, month := range months {
		if month < 1 || month > 12 {
			return filters, fmt.Errorf("mês fora do intervalo: %d", month)
		}
	}
	if len(months) > 0 {
		filters.Months = months
	}

	for _, product := range utils.SplitList(query["products"]) {
		group, ok := domain.ParseProductGroup(product)
		if !ok {
			return filters, fmt.Errorf("grupo de produto desconhecido: %s", product)
		}
		if !slices.Contains(filters.Products, group) {
			filters.Products = append(filters.Products, group)
		}
	}

	return filters, nil
}

func parseDetailFilters(r *http.Request) (domain.DetailFilters, error) {
	query := r.URL.Query()

	month, err := utils.ParseOptionalInt(query.Get("month"))
	if err != nil {
		return domain.DetailFilters{}, err
	}
	year, err := utils.ParseOptionalInt(query.Get("year"))
	if err != nil {
		return domain.DetailFilters{}, err
	}

	return domain.DetailFilters{Month: month, Year: year}, nil
}

// GetOverview retorna a página de visão geral
func GetOverview(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro inválido", err.Error())
			return
		}

		report, err := service.Overview(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Warn("overview: erro ao montar relatório")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"page":  domain.PageOverview,
			"years": report.Years,
		}).Info("overview: relatório gerado com sucesso")

		writeJSON(w, r, report)
	})
}

// GetProductReport retorna a página de um produto
func GetProductReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("page")

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro inválido", err.Error())
			return
		}

		report, err := service.ProductReport(r.Context(), slug, filters)
		if err != nil {
			logger.WithError(err).WithField("page", slug).Warn("product-report: erro ao montar relatório")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"page":         slug,
			"product_code": report.Page.ProductCode,
			"years":        report.Years,
		}).Info("product-report: relatório gerado com sucesso")

		writeJSON(w, r, report)
	})
}

func dailyDetail(service reporting.Reporter, w http.ResponseWriter, r *http.Request) (*domain.DailyDetailReport, bool) {
	slug := httprouter.ParamsFromContext(r.Context()).ByName("page")

	filters, err := parseDetailFilters(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro inválido", err.Error())
		return nil, false
	}

	report, err := service.DailyDetail(r.Context(), slug, filters)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("page", slug).Warn("daily-detail: erro ao montar tabela diária")
		writeReportError(w, err)
		return nil, false
	}
	return report, true
}

// GetDailyDetail retorna a tabela diária do produto
func GetDailyDetail(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := dailyDetail(service, w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"page": report.Page,
			"rows": len(report.Rows),
		}).Info("daily-detail: tabela diária gerada com sucesso")

		writeJSON(w, r, report)
	})
}

// ExportDailyDetail devolve a tabela diária como planilha xlsx
func ExportDailyDetail(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, ok := dailyDetail(service, w, r)
		if !ok {
			return
		}

		// Monta em memória para poder responder erro antes de enviar o corpo
		var buf bytes.Buffer
		if err := export.WriteDailyDetail(&buf, report); err != nil {
			logger.WithError(err).Error("daily-export: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", export.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(report)))
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Error("daily-export: erro ao enviar planilha")
			return
		}

		logger.WithFields(log.Fields{
			"page": report.Page,
			"rows": len(report.Rows),
		}).Info("daily-export: planilha enviada")
	})
}

// GetPages retorna o menu lateral
func GetPages(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Navigation())
	})
}

// GetPeriods retorna os anos disponíveis
func GetPeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.Periods(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("periods: erro ao buscar períodos disponíveis")
			writeReportError(w, err)
			return
		}

		writeJSON(w, r, periods)
	})
}
