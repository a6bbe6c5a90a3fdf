package models

// Vinculo é o elo de trabalho entre uma pessoa e uma obra. A pessoa pode
// ser um usuário cadastrado (UserID) ou um trabalhador sem cadastro
// (NomeNaoCadastrado/CPFNaoCadastrado).
type Vinculo struct {
	ID                int64   `json:"id"`
	ObraID            int64   `json:"obra_id,omitempty"`
	IsCadastrado      bool    `json:"is_cadastrado"`
	UserID            *int64  `json:"user_id,omitempty"`
	Nome              string  `json:"nome,omitempty"` // resolvido pelo backend
	NomeNaoCadastrado string  `json:"nome_nao_cadastrado,omitempty"`
	CPFNaoCadastrado  string  `json:"cpf_nao_cadastrado,omitempty"`
	Cargo             string  `json:"cargo,omitempty"`
	Salario           float64 `json:"salario"`
	PrazoLimite       *string `json:"prazo_limite,omitempty"`
	StatusPagamento   string  `json:"status_pagamento,omitempty"`
	FotoPath          string  `json:"foto_path,omitempty"`
}

// VinculoUpdate é o payload JSON de PUT /obras/{id}/funcionarios/{id_vinculo}/.
// Os campos de trabalhador sem cadastro só são enviados quando o vínculo
// não aponta para um usuário registrado.
type VinculoUpdate struct {
	Cargo             string  `json:"cargo"`
	Salario           float64 `json:"salario"`
	PrazoLimite       *string `json:"prazo_limite"`
	StatusPagamento   string  `json:"status_pagamento"`
	NomeNaoCadastrado string  `json:"nome_nao_cadastrado,omitempty"`
	CPFNaoCadastrado  string  `json:"cpf_nao_cadastrado,omitempty"`
}
