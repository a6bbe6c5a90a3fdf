package services

import (
	"context"
	"fmt"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

// InventarioService cobre itens de inventário por obra e a visão global
// (Estoque Central x itens em obras).
type InventarioService struct {
	api *apiclient.Client
}

func NewInventarioService(api *apiclient.Client) *InventarioService {
	return &InventarioService{api: api}
}

// ListByObra retorna o inventário de uma obra.
func (s *InventarioService) ListByObra(ctx context.Context, obraID int64) ([]models.InventarioItem, error) {
	var items []models.InventarioItem
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/inventario/", obraID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GlobalReport retorna a visão consolidada de GET /reports/global-inventory/.
func (s *InventarioService) GlobalReport(ctx context.Context) (*models.GlobalInventoryReport, error) {
	var report models.GlobalInventoryReport
	if err := s.api.GetJSON(ctx, "/reports/global-inventory/", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func validateInventarioInput(input models.InventarioItemInput) error {
	if input.Nome == "" || input.Tipo == "" {
		return core.NewValidationError("Nome e Tipo são obrigatórios.", map[string]string{"nome": "obrigatório", "tipo": "obrigatório"})
	}
	if input.Quantidade < 0 {
		return core.NewValidationError("A quantidade deve ser um número inteiro não negativo.", map[string]string{"quantidade": "inválida"})
	}
	return nil
}

// Create adiciona um item ao inventário de uma obra.
func (s *InventarioService) Create(ctx context.Context, obraID int64, input models.InventarioItemInput) error {
	if err := validateInventarioInput(input); err != nil {
		return err
	}
	return s.api.PostJSON(ctx, fmt.Sprintf("/obras/%d/inventario/", obraID), input, nil)
}

// Update edita um item de inventário.
func (s *InventarioService) Update(ctx context.Context, itemID int64, input models.InventarioItemInput) error {
	if err := validateInventarioInput(input); err != nil {
		return err
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/inventario/%d/", itemID), input, nil)
}

// Delete remove um item de inventário. A confirmação é responsabilidade da UI.
func (s *InventarioService) Delete(ctx context.Context, itemID int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/inventario/%d/", itemID))
}
