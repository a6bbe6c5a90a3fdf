package ui

import (
	"testing"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
)

func TestRouterComecaNoDashboard(t *testing.T) {
	r := NewRouter()
	if r.Current() != auth.ViewDashboard {
		t.Errorf("view inicial = %v", r.Current())
	}
	if r.SelectedObraID() != 0 {
		t.Error("nenhuma obra deve estar selecionada no início")
	}
}

func TestNavigateToObraESaida(t *testing.T) {
	r := NewRouter()
	r.NavigateToObra(42)
	if r.Current() != auth.ViewObraDetail || r.SelectedObraID() != 42 {
		t.Fatalf("detalhe: view=%v obra=%d", r.Current(), r.SelectedObraID())
	}

	// Sair do detalhe limpa a obra selecionada.
	r.NavigateTo(auth.ViewFinanceiro)
	if r.Current() != auth.ViewFinanceiro {
		t.Errorf("view = %v", r.Current())
	}
	if r.SelectedObraID() != 0 {
		t.Error("obra selecionada deveria ter sido limpa")
	}
}

func TestNavigateToMesmaViewENoOp(t *testing.T) {
	r := NewRouter()
	notified := 0
	r.OnChange = func() { notified++ }

	r.NavigateTo(auth.ViewChecklist)
	key := r.RefreshKey(auth.ViewChecklist)

	r.NavigateTo(auth.ViewChecklist)
	if r.RefreshKey(auth.ViewChecklist) != key {
		t.Error("renavegar para a mesma view não deve mexer na chave")
	}
	if notified != 1 {
		t.Errorf("OnChange chamado %d vezes, quer 1", notified)
	}
}

func TestRefreshIncrementaChave(t *testing.T) {
	r := NewRouter()
	before := r.RefreshKey(auth.ViewDashboard)
	r.Refresh(auth.ViewDashboard)
	if got := r.RefreshKey(auth.ViewDashboard); got != before+1 {
		t.Errorf("chave = %d, quer %d", got, before+1)
	}
	// Outras views não são afetadas.
	if r.RefreshKey(auth.ViewFinanceiro) != 0 {
		t.Error("refresh de uma view não pode vazar para outra")
	}
}

func TestNavigateToObraSempreAtualizaChave(t *testing.T) {
	r := NewRouter()
	r.NavigateToObra(1)
	key := r.RefreshKey(auth.ViewObraDetail)
	// Abrir outra obra (ou a mesma) força recarga do detalhe.
	r.NavigateToObra(2)
	if r.RefreshKey(auth.ViewObraDetail) != key+1 {
		t.Error("abrir uma obra deve incrementar a chave do detalhe")
	}
}

func TestReset(t *testing.T) {
	r := NewRouter()
	r.NavigateToObra(7)
	r.Refresh(auth.ViewMarketplace)

	r.Reset()
	if r.Current() != auth.ViewDashboard || r.SelectedObraID() != 0 {
		t.Errorf("pós-reset: view=%v obra=%d", r.Current(), r.SelectedObraID())
	}
	if r.RefreshKey(auth.ViewMarketplace) != 0 {
		t.Error("reset deve zerar as chaves de atualização")
	}
}
