package models

// Tipos e estados de transação financeira.
const (
	TransacaoTipoEntrada = "entrada"
	TransacaoTipoSaida   = "saida"

	TransacaoStatusAtivo     = "ativo"
	TransacaoStatusCancelado = "cancelado"
)

// Transacao é um lançamento financeiro de uma obra. Cancelamento é sempre
// soft: o registro permanece visível com o motivo, e seu valor deixa de
// contar no saldo ativo.
type Transacao struct {
	ID                 int64   `json:"id"`
	ObraID             int64   `json:"obra_id,omitempty"`
	Tipo               string  `json:"tipo"` // entrada | saida
	Descricao          string  `json:"descricao"`
	Valor              float64 `json:"valor"`
	Status             string  `json:"status"` // ativo | cancelado
	MotivoCancelamento string  `json:"motivo_cancelamento,omitempty"`
	CriadoPorNome      string  `json:"criado_por_nome,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
}

// TransacaoCreate é o payload de POST /obras/{id}/financeiro/.
type TransacaoCreate struct {
	Tipo      string  `json:"tipo"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// TransacaoCancel é o payload de PUT /financeiro/{id}/cancelar/.
type TransacaoCancel struct {
	Motivo string `json:"motivo"`
}
