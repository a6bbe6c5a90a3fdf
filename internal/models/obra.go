package models

// Status possíveis de uma obra.
const (
	ObraStatusEmAndamento = "Em Andamento"
	ObraStatusConcluida   = "Concluída"
	ObraStatusPausada     = "Pausada"
	ObraStatusCancelada   = "Cancelada"
)

// Obra é o projeto de construção, entidade principal que escopa as
// sub-coleções de financeiro, inventário, checklist, documentos e vínculos.
type Obra struct {
	ID               int64   `json:"id"`
	Nome             string  `json:"nome"`
	Endereco         string  `json:"endereco,omitempty"`
	Proprietario     string  `json:"proprietario,omitempty"`
	OrcamentoInicial float64 `json:"orcamento_inicial"`
	OrcamentoAtual   float64 `json:"orcamento_atual"`
	Status           string  `json:"status"`
	// IsStockDefault marca a obra "Estoque Central" que recebe o inventário global.
	IsStockDefault bool   `json:"is_stock_default,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// ObraCreate é o payload de POST /obras/.
type ObraCreate struct {
	Nome             string  `json:"nome"`
	Endereco         string  `json:"endereco,omitempty"`
	Proprietario     string  `json:"proprietario,omitempty"`
	OrcamentoInicial float64 `json:"orcamento_inicial"`
}

// ObraUpdate é o payload de PUT /obras/{id}/. MotivoAlteracao é exigido
// pelo cliente quando o status muda (trilha de auditoria). Orçamentos não
// são editáveis por aqui — só mudam via transações financeiras.
type ObraUpdate struct {
	Nome            string `json:"nome"`
	Endereco        string `json:"endereco,omitempty"`
	Proprietario    string `json:"proprietario,omitempty"`
	Status          string `json:"status"`
	MotivoAlteracao string `json:"motivo_alteracao,omitempty"`
}

// AuditLog é uma entrada de trilha de auditoria de uma obra ou vínculo.
type AuditLog struct {
	ID          int64  `json:"id"`
	Acao        string `json:"acao"`
	Descricao   string `json:"descricao,omitempty"`
	Motivo      string `json:"motivo,omitempty"`
	UsuarioNome string `json:"usuario_nome,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
