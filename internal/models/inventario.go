package models

// Tipos e estados de item de inventário.
const (
	InventarioTipoFerramenta = "ferramenta"
	InventarioTipoMaterial   = "material"
	InventarioTipoEPI        = "epi"

	InventarioStatusEmEstoque  = "Em Estoque"
	InventarioStatusEmUso      = "Em Uso"
	InventarioStatusDescartado = "Descartado"
)

// InventarioItem é um item de inventário vinculado a uma obra (ou ao
// Estoque Central, a obra marcada com is_stock_default).
type InventarioItem struct {
	ID                 int64   `json:"id"`
	ObraID             int64   `json:"obra_id"`
	ObraNome           string  `json:"obra_nome,omitempty"`
	Nome               string  `json:"nome"`
	Tipo               string  `json:"tipo"` // ferramenta | material | epi
	Descricao          string  `json:"descricao,omitempty"`
	Quantidade         int     `json:"quantidade"`
	CustoUnitario      float64 `json:"custo_unitario"`
	StatusMovimentacao string  `json:"status_movimentacao"`
}

// InventarioItemInput é o payload de criação/edição de item de inventário.
type InventarioItemInput struct {
	Tipo               string  `json:"tipo"`
	Nome               string  `json:"nome"`
	Descricao          string  `json:"descricao,omitempty"`
	Quantidade         int     `json:"quantidade"`
	CustoUnitario      float64 `json:"custo_unitario"`
	StatusMovimentacao string  `json:"status_movimentacao"`
}
