package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// VinculoForm é o rascunho de criação de um vínculo de trabalho. A pessoa é
// um usuário cadastrado (UserID) ou um trabalhador avulso (Nome/CPF).
// A foto é opcional.
type VinculoForm struct {
	IsCadastrado      bool
	UserID            int64
	NomeNaoCadastrado string
	CPFNaoCadastrado  string
	Cargo             string
	Salario           float64
	PrazoLimite       string // ISO date, vazio = sem prazo
	StatusPagamento   string
	FotoFilename      string
	FotoContent       []byte
}

// VinculoService cobre os vínculos de funcionários por obra.
type VinculoService struct {
	api *apiclient.Client
}

func NewVinculoService(api *apiclient.Client) *VinculoService {
	return &VinculoService{api: api}
}

// List retorna os vínculos de uma obra.
func (s *VinculoService) List(ctx context.Context, obraID int64) ([]models.Vinculo, error) {
	var vinculos []models.Vinculo
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/funcionarios/", obraID), &vinculos); err != nil {
		return nil, err
	}
	return vinculos, nil
}

// Create cria um vínculo via multipart (a foto acompanha o formulário).
func (s *VinculoService) Create(ctx context.Context, obraID int64, input VinculoForm) error {
	if !input.IsCadastrado {
		if err := utils.RequireField(input.NomeNaoCadastrado, "nome", "O nome do funcionário é obrigatório."); err != nil {
			return err
		}
	}

	form := apiclient.NewMultipartForm().
		AddField("is_cadastrado", strconv.FormatBool(input.IsCadastrado)).
		AddField("cargo", input.Cargo).
		AddField("salario", strconv.FormatFloat(input.Salario, 'f', 2, 64)).
		AddField("status_pagamento", input.StatusPagamento)
	if input.PrazoLimite != "" {
		form.AddField("prazo_limite", input.PrazoLimite)
	}
	if input.IsCadastrado {
		form.AddField("user_id", strconv.FormatInt(input.UserID, 10))
	} else {
		form.AddField("nome_nao_cadastrado", input.NomeNaoCadastrado)
		form.AddField("cpf_nao_cadastrado", input.CPFNaoCadastrado)
	}
	if len(input.FotoContent) > 0 {
		if err := utils.ValidateFotoAnexo(input.FotoFilename, int64(len(input.FotoContent)), models.ChecklistMaxAnexoBytes); err != nil {
			return err
		}
		form.AddFile("photo", input.FotoFilename, input.FotoContent)
	}

	if err := s.api.PostMultipart(ctx, fmt.Sprintf("/obras/%d/funcionarios/", obraID), form, nil); err != nil {
		return err
	}
	appLogger.Infof("Vínculo criado na obra %d", obraID)
	return nil
}

// Update edita um vínculo existente (JSON; a foto não é editável por aqui).
func (s *VinculoService) Update(ctx context.Context, obraID, vinculoID int64, input models.VinculoUpdate) error {
	if input.NomeNaoCadastrado == "" && input.CPFNaoCadastrado == "" {
		// vínculo de usuário cadastrado: nada de campos avulsos no payload
	} else if err := utils.RequireField(input.NomeNaoCadastrado, "nome", "O nome do funcionário é obrigatório."); err != nil {
		return err
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/obras/%d/funcionarios/%d/", obraID, vinculoID), input, nil)
}

// Delete remove um vínculo. A confirmação é responsabilidade da UI.
func (s *VinculoService) Delete(ctx context.Context, obraID, vinculoID int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/obras/%d/funcionarios/%d/", obraID, vinculoID))
}

// AuditLogs retorna a trilha de auditoria de um vínculo.
func (s *VinculoService) AuditLogs(ctx context.Context, obraID, vinculoID int64) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	path := fmt.Sprintf("/obras/%d/funcionarios/%d/audit_logs/", obraID, vinculoID)
	if err := s.api.GetJSON(ctx, path, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
