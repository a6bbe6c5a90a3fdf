package models

// Documento é um arquivo anexado a uma obra (contrato, planta, nota, foto...).
type Documento struct {
	ID             int64  `json:"id"`
	ObraID         int64  `json:"obra_id,omitempty"`
	ObraNome       string `json:"obra_nome,omitempty"`
	Filename       string `json:"filename"`
	Tipo           string `json:"tipo,omitempty"`
	FilePath       string `json:"file_path,omitempty"`
	FileSize       int64  `json:"file_size,omitempty"`
	UploadedByNome string `json:"uploaded_by_nome,omitempty"`
	UploadedAt     string `json:"uploaded_at,omitempty"`
}
