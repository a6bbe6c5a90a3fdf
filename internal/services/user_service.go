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

// UserService cobre a administração global de usuários (Administrador).
// A autorização real é do backend; o gate do cliente é só UX.
type UserService struct {
	api *apiclient.Client
}

func NewUserService(api *apiclient.Client) *UserService {
	return &UserService{api: api}
}

// List retorna todos os usuários (GET /users/ responde {users: [...]}).
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var resp models.UsersResponse
	if err := s.api.GetJSON(ctx, "/users/", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Roles retorna os cargos disponíveis para o formulário de criação.
func (s *UserService) Roles(ctx context.Context) ([]models.RoleInfo, error) {
	var roles []models.RoleInfo
	if err := s.api.GetJSON(ctx, "/users/roles/", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// Create cria um usuário novo.
func (s *UserService) Create(ctx context.Context, input models.UserCreate) error {
	if input.Username == "" || input.Password == "" || input.Nome == "" || input.Email == "" || input.Role == "" {
		return core.NewValidationError("Username, Senha, Nome, Email e Cargo são obrigatórios.", nil)
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := s.api.PostJSON(ctx, "/users/", input, nil); err != nil {
		return err
	}
	appLogger.Infof("Usuário '%s' criado com cargo %s", input.Username, input.Role)
	return nil
}

// Update edita um usuário. O cargo não é editável — a mudança de cargo só
// tem efeito após novo login do usuário afetado, então o formulário mantém
// o campo desabilitado.
func (s *UserService) Update(ctx context.Context, id int64, input models.UserUpdate) error {
	if input.Nome == "" || input.Email == "" {
		return core.NewValidationError("Nome, Email e Cargo são obrigatórios.", nil)
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return err
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/users/%d", id), input, nil)
}

// Delete remove um usuário. A confirmação é responsabilidade da UI.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/users/%d", id)); err != nil {
		return err
	}
	appLogger.Infof("Usuário %d removido", id)
	return nil
}
