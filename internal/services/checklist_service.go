package services

import (
	"context"
	"fmt"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// ChecklistService cobre as tarefas de checklist por obra, a visão global
// (minhas tarefas / atrasadas) e os anexos de foto.
type ChecklistService struct {
	api *apiclient.Client
}

func NewChecklistService(api *apiclient.Client) *ChecklistService {
	return &ChecklistService{api: api}
}

// ListByObra retorna os itens de checklist de uma obra.
func (s *ChecklistService) ListByObra(ctx context.Context, obraID int64) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/checklist/", obraID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GlobalReport retorna GET /reports/global-checklist/ (minhas tarefas e atrasadas).
func (s *ChecklistService) GlobalReport(ctx context.Context) (*models.GlobalChecklistReport, error) {
	var report models.GlobalChecklistReport
	if err := s.api.GetJSON(ctx, "/reports/global-checklist/", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Create adiciona um item de checklist. O título é obrigatório.
func (s *ChecklistService) Create(ctx context.Context, obraID int64, input models.ChecklistItemCreate) error {
	if err := utils.RequireField(input.Titulo, "titulo", "O Título é obrigatório."); err != nil {
		return err
	}
	return s.api.PostJSON(ctx, fmt.Sprintf("/obras/%d/checklist/", obraID), input, nil)
}

// SetStatus grava o status de um item (pendente|feito). É a única operação
// otimista do cliente: a UI já inverteu o checkbox localmente e reverte se
// esta chamada falhar.
func (s *ChecklistService) SetStatus(ctx context.Context, itemID int64, status string) error {
	if status != models.ChecklistStatusPendente && status != models.ChecklistStatusFeito {
		return core.WrapErrorf(core.ErrInvalidInput, "status de checklist desconhecido '%s'", status)
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/checklist/%d/", itemID), models.ChecklistStatusUpdate{Status: status}, nil)
}

// Delete remove um item de checklist. A confirmação é responsabilidade da UI.
func (s *ChecklistService) Delete(ctx context.Context, itemID int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/checklist/%d/", itemID))
}

// UploadAnexo envia uma foto (campo multipart 'photo') para um item.
// Limites: 4 anexos por item, 5MB, PNG/JPG/GIF — tudo checado antes do envio.
func (s *ChecklistService) UploadAnexo(ctx context.Context, item models.ChecklistItem, filename string, content []byte) error {
	if len(item.Anexos) >= models.ChecklistMaxAnexos {
		return core.NewValidationError(
			fmt.Sprintf("Limite de %d anexos por item atingido.", models.ChecklistMaxAnexos),
			map[string]string{"photo": "limite atingido"})
	}
	if err := utils.ValidateFotoAnexo(filename, int64(len(content)), models.ChecklistMaxAnexoBytes); err != nil {
		return err
	}

	form := apiclient.NewMultipartForm().AddFile("photo", filename, content)
	if err := s.api.PostMultipart(ctx, fmt.Sprintf("/checklist/%d/anexo/", item.ID), form, nil); err != nil {
		return err
	}
	appLogger.Infof("Anexo '%s' enviado para o item de checklist %d", filename, item.ID)
	return nil
}

// DeleteAnexo remove uma foto anexada.
func (s *ChecklistService) DeleteAnexo(ctx context.Context, anexoID int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/checklist/anexo/%d/", anexoID))
}
