package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

// Períodos aceitos pelo relatório de fluxo de caixa.
const (
	PeriodoMensal  = "mensal"
	PeriodoSemanal = "semanal"
)

// ReportService cobre os agregados entre obras (GET /reports/...).
type ReportService struct {
	api *apiclient.Client
}

func NewReportService(api *apiclient.Client) *ReportService {
	return &ReportService{api: api}
}

// Cashflow retorna as séries de entradas/saídas do período pedido.
func (s *ReportService) Cashflow(ctx context.Context, periodo string) (*models.CashflowReport, error) {
	if periodo != PeriodoMensal && periodo != PeriodoSemanal {
		return nil, core.WrapErrorf(core.ErrInvalidInput, "período de cashflow desconhecido '%s'", periodo)
	}
	var report models.CashflowReport
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/reports/cashflow/?periodo=%s", periodo), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// KPIs retorna os indicadores consolidados.
func (s *ReportService) KPIs(ctx context.Context) (*models.KPIReport, error) {
	var report models.KPIReport
	if err := s.api.GetJSON(ctx, "/reports/kpis/", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SaldoTotal deriva o indicador que o backend não envia: receitas - custos.
func SaldoTotal(kpis models.KPIReport) float64 {
	saldo := decimal.NewFromFloat(kpis.TotalReceitas).Sub(decimal.NewFromFloat(kpis.TotalCustos))
	f, _ := saldo.Float64()
	return f
}
