package models

// Status de um imóvel anunciado no marketplace.
const (
	ImovelStatusAVenda       = "À venda"
	ImovelStatusEmNegociacao = "Em negociação"
	ImovelStatusVendido      = "Vendida"
)

// Imovel é um anúncio do marketplace de imóveis.
type Imovel struct {
	ID           int64        `json:"id"`
	Titulo       string       `json:"titulo"`
	Endereco     string       `json:"endereco"`
	Bairro       string       `json:"bairro,omitempty"`
	Numero       string       `json:"numero,omitempty"`
	CEP          string       `json:"cep,omitempty"`
	Metragem     string       `json:"metragem,omitempty"`
	Proprietario string       `json:"proprietario,omitempty"`
	Observacoes  string       `json:"observacoes,omitempty"`
	Status       string       `json:"status,omitempty"`
	FotoCapa     string       `json:"foto_capa,omitempty"`
	Fotos        []ImovelFoto `json:"fotos,omitempty"`
}

// ImovelFoto é uma foto da galeria de um imóvel.
type ImovelFoto struct {
	ID       int64  `json:"id"`
	FilePath string `json:"file_path,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ImovelUpdate é o payload JSON de PUT /marketplace/{id}/.
type ImovelUpdate struct {
	Titulo       string `json:"titulo"`
	Endereco     string `json:"endereco"`
	Bairro       string `json:"bairro,omitempty"`
	Numero       string `json:"numero,omitempty"`
	CEP          string `json:"cep,omitempty"`
	Metragem     string `json:"metragem,omitempty"`
	Proprietario string `json:"proprietario,omitempty"`
	Observacoes  string `json:"observacoes,omitempty"`
	Status       string `json:"status"`
}
