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

// ObraService cobre o CRUD de obras e sua trilha de auditoria.
type ObraService struct {
	api *apiclient.Client
}

func NewObraService(api *apiclient.Client) *ObraService {
	return &ObraService{api: api}
}

// List retorna todas as obras visíveis para o usuário.
func (s *ObraService) List(ctx context.Context) ([]models.Obra, error) {
	var obras []models.Obra
	if err := s.api.GetJSON(ctx, "/obras/", &obras); err != nil {
		return nil, err
	}
	return obras, nil
}

// Get retorna uma obra pelo id.
func (s *ObraService) Get(ctx context.Context, id int64) (*models.Obra, error) {
	var obra models.Obra
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/", id), &obra); err != nil {
		return nil, err
	}
	return &obra, nil
}

// FindStockObra localiza a obra "Estoque Central" (is_stock_default).
func (s *ObraService) FindStockObra(ctx context.Context) (*models.Obra, error) {
	obras, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range obras {
		if obras[i].IsStockDefault {
			return &obras[i], nil
		}
	}
	return nil, core.WrapErrorf(core.ErrNotFound, "obra de estoque padrão não encontrada")
}

// Create cria uma obra nova. O nome é obrigatório — validado antes de
// qualquer requisição.
func (s *ObraService) Create(ctx context.Context, input models.ObraCreate) error {
	if err := utils.RequireField(input.Nome, "nome", "O nome da obra é obrigatório."); err != nil {
		return err
	}
	if err := s.api.PostJSON(ctx, "/obras/", input, nil); err != nil {
		return err
	}
	appLogger.Infof("Obra criada: '%s'", input.Nome)
	return nil
}

// Update edita uma obra. Quando o status muda, o motivo da alteração é
// obrigatório (vai para a trilha de auditoria). Orçamentos não passam por
// aqui — mudam apenas via transações financeiras.
func (s *ObraService) Update(ctx context.Context, id int64, input models.ObraUpdate, statusChanged bool) error {
	if err := utils.RequireField(input.Nome, "nome", "O nome da obra é obrigatório."); err != nil {
		return err
	}
	if statusChanged {
		if err := utils.RequireField(input.MotivoAlteracao, "motivo_alteracao", "O 'Motivo da Alteração' é obrigatório ao mudar o status."); err != nil {
			return err
		}
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/obras/%d/", id), input, nil)
}

// Delete remove uma obra. A confirmação é responsabilidade da UI.
func (s *ObraService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/obras/%d/", id)); err != nil {
		return err
	}
	appLogger.Infof("Obra %d removida", id)
	return nil
}

// AuditLogs retorna a trilha de auditoria de uma obra.
func (s *ObraService) AuditLogs(ctx context.Context, id int64) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/audit_logs/", id), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
