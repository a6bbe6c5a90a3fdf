package models

// Estados de item de checklist.
const (
	ChecklistStatusPendente = "pendente"
	ChecklistStatusFeito    = "feito"
)

// Limites de anexo impostos pelo cliente antes do upload.
const (
	ChecklistMaxAnexos     = 4
	ChecklistMaxAnexoBytes = 5 * 1024 * 1024 // 5MB
)

// ChecklistItem é uma tarefa de checklist de uma obra. O toggle
// pendente↔feito é a única operação otimista do cliente.
type ChecklistItem struct {
	ID                int64            `json:"id"`
	ObraID            int64            `json:"obra_id,omitempty"`
	ObraNome          string           `json:"obra_nome,omitempty"`
	Titulo            string           `json:"titulo"`
	Descricao         string           `json:"descricao,omitempty"`
	Status            string           `json:"status"` // pendente | feito
	StatusDisplay     string           `json:"status_display,omitempty"` // Concluído | Atrasado | Em dia
	ResponsavelUserID *int64           `json:"responsavel_user_id,omitempty"`
	ResponsavelNome   string           `json:"responsavel_nome,omitempty"`
	Prazo             *string          `json:"prazo,omitempty"` // ISO date ou nulo
	Anexos            []ChecklistAnexo `json:"anexos,omitempty"`
}

// ChecklistAnexo é uma foto anexada a um item de checklist (máximo 4).
type ChecklistAnexo struct {
	ID         int64  `json:"id"`
	Filename   string `json:"filename,omitempty"`
	FilePath   string `json:"file_path,omitempty"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}

// ChecklistItemCreate é o payload de POST /obras/{id}/checklist/.
type ChecklistItemCreate struct {
	Titulo            string  `json:"titulo"`
	Descricao         string  `json:"descricao,omitempty"`
	ResponsavelUserID *int64  `json:"responsavel_user_id"`
	Prazo             *string `json:"prazo"`
}

// ChecklistStatusUpdate é o payload de PUT /checklist/{id}/.
type ChecklistStatusUpdate struct {
	Status string `json:"status"`
}
