package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// FinanceiroService cobre o extrato financeiro de uma obra: lançamentos,
// cancelamento (sempre soft) e o cálculo do saldo ativo.
type FinanceiroService struct {
	api *apiclient.Client
}

func NewFinanceiroService(api *apiclient.Client) *FinanceiroService {
	return &FinanceiroService{api: api}
}

// List retorna as transações de uma obra, ativas e canceladas.
func (s *FinanceiroService) List(ctx context.Context, obraID int64) ([]models.Transacao, error) {
	var transacoes []models.Transacao
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/financeiro/", obraID), &transacoes); err != nil {
		return nil, err
	}
	return transacoes, nil
}

// Create registra um lançamento novo. Valor positivo e descrição são
// exigidos antes de qualquer requisição.
func (s *FinanceiroService) Create(ctx context.Context, obraID int64, input models.TransacaoCreate) error {
	if err := utils.ValidatePositiveAmount(input.Valor); err != nil {
		return err
	}
	if err := utils.RequireField(input.Descricao, "descricao", "A descrição é obrigatória."); err != nil {
		return err
	}
	if err := s.api.PostJSON(ctx, fmt.Sprintf("/obras/%d/financeiro/", obraID), input, nil); err != nil {
		return err
	}
	appLogger.Infof("Transação registrada na obra %d: %s de %.2f", obraID, input.Tipo, input.Valor)
	return nil
}

// Cancelar faz o cancelamento soft de uma transação: o registro permanece,
// riscado e com o motivo, e seu valor sai do saldo ativo no próximo refetch.
func (s *FinanceiroService) Cancelar(ctx context.Context, transacaoID int64, motivo string) error {
	if err := utils.RequireField(motivo, "motivo", "O motivo do cancelamento é obrigatório."); err != nil {
		return err
	}
	err := s.api.PutJSON(ctx, fmt.Sprintf("/financeiro/%d/cancelar/", transacaoID), models.TransacaoCancel{Motivo: motivo}, nil)
	if err != nil {
		return err
	}
	appLogger.Infof("Transação %d cancelada: %s", transacaoID, motivo)
	return nil
}

// SaldoAtual deriva o saldo ativo de uma obra: orçamento inicial mais
// entradas ativas, menos saídas ativas. Transações canceladas não contam.
// A soma usa decimal para não acumular erro binário de float.
func SaldoAtual(orcamentoInicial float64, transacoes []models.Transacao) float64 {
	saldo := decimal.NewFromFloat(orcamentoInicial)
	for _, t := range transacoes {
		if t.Status != models.TransacaoStatusAtivo {
			continue
		}
		valor := decimal.NewFromFloat(t.Valor)
		switch t.Tipo {
		case models.TransacaoTipoEntrada:
			saldo = saldo.Add(valor)
		case models.TransacaoTipoSaida:
			saldo = saldo.Sub(valor)
		}
	}
	f, _ := saldo.Float64()
	return f
}
