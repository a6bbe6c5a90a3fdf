package models

// CashflowReport é o corpo de GET /reports/cashflow/?periodo=mensal|semanal.
// Labels e séries têm o mesmo comprimento e ordem.
type CashflowReport struct {
	Labels   []string  `json:"labels"`
	Entradas []float64 `json:"entradas"`
	Saidas   []float64 `json:"saidas"`
}

// KPIReport é o corpo de GET /reports/kpis/. SaldoTotal não vem do backend;
// é derivado no cliente como TotalReceitas - TotalCustos.
type KPIReport struct {
	TotalOrcamentoAtual float64 `json:"total_orcamento_atual"`
	TotalCustos         float64 `json:"total_custos"`
	TotalReceitas       float64 `json:"total_receitas"`
	ObrasAtivas         int     `json:"obras_ativas"`
	TotalObras          int     `json:"total_obras"`
	ObrasConcluidas     int     `json:"obras_concluidas"`
}

// GlobalInventoryReport é o corpo de GET /reports/global-inventory/:
// itens no Estoque Central e itens espalhados pelas obras.
type GlobalInventoryReport struct {
	StockItems []InventarioItem `json:"stock_items"`
	ObraItems  []InventarioItem `json:"obra_items"`
}

// GlobalChecklistReport é o corpo de GET /reports/global-checklist/.
type GlobalChecklistReport struct {
	MyTasks      []ChecklistItem `json:"my_tasks"`
	OverdueTasks []ChecklistItem `json:"overdue_tasks"`
}
