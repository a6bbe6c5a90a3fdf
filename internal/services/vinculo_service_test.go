package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

func TestVinculoCreateAvulsoExigeNome(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	svc := NewVinculoService(api)

	err := svc.Create(ctx(), 1, VinculoForm{IsCadastrado: false, Cargo: "Pedreiro"})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Create sem nome = %v, quer ErrValidation", err)
	}
	if *hits != 0 {
		t.Errorf("validação local não deve tocar a rede (%d requisições)", *hits)
	}
}

func TestVinculoAuditLogs(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/obras/3/funcionarios/9/audit_logs/" {
			t.Errorf("caminho inesperado: %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 1, "acao": "UPDATE", "descricao": "Salário alterado", "usuario_nome": "Ana"},
			{"id": 2, "acao": "CREATE", "descricao": "Vínculo criado"}
		]`))
	})
	svc := NewVinculoService(api)

	logs, err := svc.AuditLogs(ctx(), 3, 9)
	if err != nil {
		t.Fatalf("AuditLogs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("quer 2 registros, veio %d", len(logs))
	}
	if logs[0].Acao != "UPDATE" || logs[0].UsuarioNome != "Ana" {
		t.Errorf("primeiro registro decodificado errado: %+v", logs[0])
	}
}
