package services

import (
	"context"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

// AuthService cobre o fluxo de autenticação: login, troca forçada de senha
// e atualização de credenciais pelo próprio usuário.
type AuthService struct {
	api *apiclient.Client
}

func NewAuthService(api *apiclient.Client) *AuthService {
	return &AuthService{api: api}
}

// Login autentica no backend. O chamador decide o estado da sessão a partir
// de user.must_change_password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, core.NewValidationError("Preencha usuário e senha.", map[string]string{"login": "campos obrigatórios"})
	}

	var resp models.LoginResponse
	err := s.api.PostJSON(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		appLogger.Warnf("Falha de login para '%s': %v", username, err)
		return nil, err
	}
	return &resp, nil
}

// FirstPasswordChange é a troca forçada de senha do primeiro acesso.
// Retorna o perfil atualizado que substitui o cacheado.
func (s *AuthService) FirstPasswordChange(ctx context.Context, currentPassword, newPassword string) (*models.User, error) {
	if currentPassword == "" || newPassword == "" {
		return nil, core.NewValidationError("Todos os campos são obrigatórios.", nil)
	}
	if len(newPassword) < 6 {
		return nil, core.NewValidationError("A nova senha deve ter pelo menos 6 caracteres.", map[string]string{"new_password": "mínimo 6 caracteres"})
	}

	var user models.User
	err := s.api.PutJSON(ctx, "/auth/first-password-change", map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}, &user)
	if err != nil {
		return nil, err
	}
	appLogger.Infof("Troca de senha obrigatória concluída para '%s'", user.Username)
	return &user, nil
}

// UpdateCredentials altera username e/ou senha do usuário logado. Pelo menos
// uma das alterações deve ser fornecida. Sucesso força logout no chamador.
func (s *AuthService) UpdateCredentials(ctx context.Context, currentPassword, newUsername, newPassword string) error {
	if currentPassword == "" {
		return core.NewValidationError("A senha atual é obrigatória.", map[string]string{"current_password": "obrigatória"})
	}
	if newUsername == "" && newPassword == "" {
		return core.NewValidationError("Nenhuma alteração foi fornecida (novo username ou nova senha).", nil)
	}

	payload := map[string]string{"current_password": currentPassword}
	if newUsername != "" {
		payload["new_username"] = newUsername
	}
	if newPassword != "" {
		payload["new_password"] = newPassword
	}
	return s.api.PutJSON(ctx, "/auth/update-credentials", payload, nil)
}
