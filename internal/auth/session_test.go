package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func testConfig(t *testing.T) *core.Config {
	t.Helper()
	return &core.Config{
		SecretKey:   "chave-de-teste-nao-usar-em-producao",
		SessionFile: filepath.Join(t.TempDir(), "session.bin"),
	}
}

func TestHydrateSemArquivo(t *testing.T) {
	s := NewSessionStore(testConfig(t))
	if s.State() != StateUnchecked {
		t.Fatalf("estado inicial = %v, quer Unchecked", s.State())
	}
	s.Hydrate()
	if s.State() != StateAnonymous {
		t.Errorf("sem arquivo persistido: estado = %v, quer Anonymous", s.State())
	}
	if s.CurrentUser() != nil {
		t.Error("sem sessão não deve haver usuário")
	}
	if s.Role() != RolePrestador {
		t.Errorf("cargo anônimo = %v, quer Prestador", s.Role())
	}
}

func TestHydrateArquivoCorrompido(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.SessionFile, []byte("lixo que não decifra de jeito nenhum e é longo o bastante"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewSessionStore(cfg)
	s.Hydrate()
	if s.State() != StateAnonymous {
		t.Errorf("arquivo corrompido: estado = %v, quer Anonymous", s.State())
	}
	if _, err := os.Stat(cfg.SessionFile); !os.IsNotExist(err) {
		t.Error("arquivo corrompido deveria ter sido removido")
	}
}

func TestLoginPersisteERestaura(t *testing.T) {
	cfg := testConfig(t)
	s := NewSessionStore(cfg)
	s.Hydrate()

	user := models.User{ID: 7, Username: "maria", Nome: "Maria", Role: "Gestor"}
	s.HandleLogin("token-opaco-de-teste", user)

	if s.State() != StateAuthenticated {
		t.Fatalf("pós-login: estado = %v, quer Authenticated", s.State())
	}
	if s.Token() != "token-opaco-de-teste" {
		t.Errorf("Token() = %q", s.Token())
	}
	if s.Role() != RoleGestor {
		t.Errorf("Role() = %v, quer Gestor", s.Role())
	}

	// Novo processo: um store fresco restaura a mesma sessão do disco.
	s2 := NewSessionStore(cfg)
	s2.Hydrate()
	if s2.State() != StateAuthenticated {
		t.Fatalf("restaurado: estado = %v, quer Authenticated", s2.State())
	}
	u := s2.CurrentUser()
	if u == nil || u.Username != "maria" || u.ID != 7 {
		t.Errorf("perfil restaurado = %+v", u)
	}
	if s2.Token() != "token-opaco-de-teste" {
		t.Errorf("token restaurado = %q", s2.Token())
	}
}

func TestLoginComTrocaDeSenhaObrigatoria(t *testing.T) {
	s := NewSessionStore(testConfig(t))
	s.Hydrate()

	s.HandleLogin("tok", models.User{ID: 1, Username: "novo", MustChangePassword: true})
	if s.State() != StateMustChangePassword {
		t.Fatalf("estado = %v, quer MustChangePassword", s.State())
	}

	s.HandlePasswordChanged(models.User{ID: 1, Username: "novo", Role: "Prestador"})
	if s.State() != StateAuthenticated {
		t.Errorf("pós-troca: estado = %v, quer Authenticated", s.State())
	}
	if u := s.CurrentUser(); u == nil || u.MustChangePassword {
		t.Errorf("perfil pós-troca ainda exige troca: %+v", u)
	}
}

func TestLogoutLimpaTudo(t *testing.T) {
	cfg := testConfig(t)
	s := NewSessionStore(cfg)
	s.Hydrate()
	s.HandleLogin("tok", models.User{ID: 2, Username: "joao", Role: "Administrador"})

	s.Logout()
	if s.State() != StateAnonymous {
		t.Errorf("pós-logout: estado = %v, quer Anonymous", s.State())
	}
	if s.Token() != "" {
		t.Error("token deveria ter sido limpo")
	}
	if _, err := os.Stat(cfg.SessionFile); !os.IsNotExist(err) {
		t.Error("arquivo de sessão deveria ter sido apagado")
	}

	// Reabrir não ressuscita a sessão.
	s2 := NewSessionStore(cfg)
	s2.Hydrate()
	if s2.State() != StateAnonymous {
		t.Errorf("pós-logout, store novo: estado = %v, quer Anonymous", s2.State())
	}
}

func TestCurrentUserDevolveCopia(t *testing.T) {
	s := NewSessionStore(testConfig(t))
	s.Hydrate()
	s.HandleLogin("tok", models.User{ID: 3, Nome: "Original", Role: "Gestor"})

	u := s.CurrentUser()
	u.Nome = "Mutado"
	if s.CurrentUser().Nome != "Original" {
		t.Error("mutar a cópia retornada não pode afetar o store")
	}
}
