package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func TestObraCreateValidaAntesDaRede(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewObraService(api)

	err := s.Create(ctx(), models.ObraCreate{Nome: "   "})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("quer erro de validação, veio %v", err)
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validação local não pode gerar requisição")
	}

	if err := s.Create(ctx(), models.ObraCreate{Nome: "Casa Alfa"}); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt64(hits) != 1 {
		t.Errorf("quer 1 requisição, veio %d", atomic.LoadInt64(hits))
	}
}

func TestObraUpdateExigeMotivoQuandoStatusMuda(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewObraService(api)

	input := models.ObraUpdate{Nome: "Casa Alfa", Status: models.ObraStatusPausada}
	err := s.Update(ctx(), 1, input, true)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("mudança de status sem motivo deve falhar, veio %v", err)
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validação local não pode gerar requisição")
	}

	// Sem mudança de status, o motivo é dispensado.
	if err := s.Update(ctx(), 1, input, false); err != nil {
		t.Fatal(err)
	}

	input.MotivoAlteracao = "Chuva forte parou a obra"
	if err := s.Update(ctx(), 1, input, true); err != nil {
		t.Fatal(err)
	}
}

func TestFindStockObra(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Obra{
			{ID: 1, Nome: "Casa Alfa"},
			{ID: 2, Nome: "Estoque Central", IsStockDefault: true},
		})
	})
	s := NewObraService(api)

	obra, err := s.FindStockObra(ctx())
	if err != nil {
		t.Fatal(err)
	}
	if obra.ID != 2 {
		t.Errorf("obra de estoque = %d, quer 2", obra.ID)
	}
}

func TestFindStockObraAusente(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	s := NewObraService(api)

	if _, err := s.FindStockObra(ctx()); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("quer ErrNotFound, veio %v", err)
	}
}
