package services

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func TestSetStatusRejeitaStatusDesconhecido(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewChecklistService(api)

	if err := s.SetStatus(ctx(), 1, "concluido"); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("status desconhecido deve falhar, veio %v", err)
	}
	if atomic.LoadInt64(hits) != 0 {
		t.Error("validação local não pode gerar requisição")
	}

	for _, status := range []string{models.ChecklistStatusPendente, models.ChecklistStatusFeito} {
		if err := s.SetStatus(ctx(), 1, status); err != nil {
			t.Errorf("SetStatus(%q): %v", status, err)
		}
	}
}

func TestUploadAnexoLimites(t *testing.T) {
	api, hits := testAPI(t, okJSON)
	s := NewChecklistService(api)

	item := models.ChecklistItem{ID: 5}

	// 4 anexos já presentes: limite atingido.
	cheio := item
	cheio.Anexos = make([]models.ChecklistAnexo, models.ChecklistMaxAnexos)
	if err := s.UploadAnexo(ctx(), cheio, "foto.png", []byte("x")); !errors.Is(err, core.ErrValidation) {
		t.Errorf("limite de anexos deve falhar, veio %v", err)
	}

	// Extensão não suportada.
	if err := s.UploadAnexo(ctx(), item, "laudo.pdf", []byte("x")); !errors.Is(err, core.ErrValidation) {
		t.Errorf("extensão inválida deve falhar, veio %v", err)
	}

	// Acima de 5MB.
	grande := bytes.Repeat([]byte("a"), int(models.ChecklistMaxAnexoBytes)+1)
	if err := s.UploadAnexo(ctx(), item, "foto.png", grande); !errors.Is(err, core.ErrValidation) {
		t.Errorf("ficheiro grande demais deve falhar, veio %v", err)
	}

	if atomic.LoadInt64(hits) != 0 {
		t.Error("nenhuma das validações pode gerar requisição")
	}

	if err := s.UploadAnexo(ctx(), item, "foto.png", []byte("conteudo")); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt64(hits) != 1 {
		t.Errorf("quer 1 requisição, veio %d", atomic.LoadInt64(hits))
	}
}
