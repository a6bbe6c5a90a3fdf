package pages

import (
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func TestCancelCaption(t *testing.T) {
	cases := []struct {
		nome string
		tr   models.Transacao
		want string
	}{
		{
			nome: "ativo nunca exibe legenda",
			tr:   models.Transacao{Status: models.TransacaoStatusAtivo, MotivoCancelamento: "resquício"},
			want: "",
		},
		{
			nome: "cancelado exibe o motivo",
			tr: models.Transacao{
				Status:             models.TransacaoStatusCancelado,
				MotivoCancelamento: "Lançamento duplicado",
			},
			want: "Cancelado: Lançamento duplicado",
		},
		{
			nome: "cancelado sem motivo ainda marca o estado",
			tr:   models.Transacao{Status: models.TransacaoStatusCancelado},
			want: "Cancelado",
		},
	}
	for _, c := range cases {
		if got := cancelCaption(c.tr); got != c.want {
			t.Errorf("%s: cancelCaption() = %q, quer %q", c.nome, got, c.want)
		}
	}
}

// O motivo vem do backend no próprio lançamento e deve sobreviver à montagem
// da linha da tabela.
func TestTransacaoRowPreservaMotivo(t *testing.T) {
	tr := models.Transacao{
		ID:                 7,
		Status:             models.TransacaoStatusCancelado,
		Descricao:          "Compra de areia",
		MotivoCancelamento: "Fornecedor trocado",
	}
	row := &transacaoRow{transacao: tr}
	if got := cancelCaption(row.transacao); got != "Cancelado: Fornecedor trocado" {
		t.Errorf("legenda da linha cancelada = %q", got)
	}
}
