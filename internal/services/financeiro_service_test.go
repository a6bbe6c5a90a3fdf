package services

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func TestTransacaoCreateValidaAntesDaRede(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewFinanceiroService(api)

	cases := []models.TransacaoCreate{
		{Tipo: models.TransacaoTipoEntrada, Descricao: "Aporte", Valor: 0},
		{Tipo: models.TransacaoTipoSaida, Descricao: "Cimento", Valor: -10},
		{Tipo: models.TransacaoTipoSaida, Descricao: "  ", Valor: 100},
	}
	for _, input := range cases {
		if err := s.Create(ctx(), 1, input); !errors.Is(err, core.ErrValidation) {
			t.Errorf("Create(%+v): quer erro de validação, veio %v", input, err)
		}
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validação local não pode gerar requisição")
	}

	if err := s.Create(ctx(), 1, models.TransacaoCreate{
		Tipo: models.TransacaoTipoSaida, Descricao: "Cimento", Valor: 350.5,
	}); err != nil {
		t.Fatal(err)
	}
}

func TestCancelarExigeMotivo(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewFinanceiroService(api)

	if err := s.Cancelar(ctx(), 9, ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("cancelamento sem motivo deve falhar, veio %v", err)
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validação local não pode gerar requisição")
	}
	if err := s.Cancelar(ctx(), 9, "Lançamento duplicado"); err != nil {
		t.Fatal(err)
	}
}

func TestSaldoAtualIgnoraCanceladas(t *testing.T) {
	transacoes := []models.Transacao{
		{Tipo: models.TransacaoTipoEntrada, Valor: 1000, Status: models.TransacaoStatusAtivo},
		{Tipo: models.TransacaoTipoSaida, Valor: 300.10, Status: models.TransacaoStatusAtivo},
		{Tipo: models.TransacaoTipoSaida, Valor: 5000, Status: models.TransacaoStatusCancelado},
		{Tipo: models.TransacaoTipoEntrada, Valor: 9999, Status: models.TransacaoStatusCancelado},
	}
	if got := SaldoAtual(500, transacoes); got != 1199.90 {
		t.Errorf("SaldoAtual = %v, quer 1199.90", got)
	}
}

func TestSaldoAtualSemErroBinario(t *testing.T) {
	// 0.1 + 0.2 em float64 puro não dá 0.3; a soma decimal dá.
	transacoes := []models.Transacao{
		{Tipo: models.TransacaoTipoEntrada, Valor: 0.1, Status: models.TransacaoStatusAtivo},
		{Tipo: models.TransacaoTipoEntrada, Valor: 0.2, Status: models.TransacaoStatusAtivo},
	}
	if got := SaldoAtual(0, transacoes); got != 0.3 {
		t.Errorf("SaldoAtual = %v, quer exatamente 0.3", got)
	}
}

func TestSaldoTotal(t *testing.T) {
	kpis := models.KPIReport{TotalReceitas: 10000.50, TotalCustos: 2500.25}
	if got := SaldoTotal(kpis); got != 7500.25 {
		t.Errorf("SaldoTotal = %v, quer 7500.25", got)
	}
}
