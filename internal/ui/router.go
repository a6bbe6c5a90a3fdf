package ui

import (
	"sync"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
)

// Router mantém o estado de navegação da área autenticada: a view corrente,
// a obra selecionada (quando em detalhe) e um contador de atualização por
// view. Incrementar o contador sinaliza às páginas que os dados devem ser
// recarregados no próximo frame.
type Router struct {
	mu           sync.Mutex
	current      auth.ViewID
	selectedObra int64
	refreshKeys  map[auth.ViewID]uint64

	// OnChange é chamado após qualquer mudança de navegação (para invalidar a janela).
	OnChange func()
}

// NewRouter cria o router posicionado no dashboard.
func NewRouter() *Router {
	return &Router{
		current:     auth.ViewDashboard,
		refreshKeys: make(map[auth.ViewID]uint64),
	}
}

// Current retorna a view corrente.
func (r *Router) Current() auth.ViewID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SelectedObraID retorna o ID da obra em detalhe, ou 0 se nenhuma.
func (r *Router) SelectedObraID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectedObra
}

// NavigateTo muda para uma view global. Sair do detalhe de obra limpa a
// obra selecionada.
func (r *Router) NavigateTo(v auth.ViewID) {
	r.mu.Lock()
	if r.current == v && r.selectedObra == 0 {
		r.mu.Unlock()
		return
	}
	appLogger.Debugf("Navegando de '%s' para '%s'", r.current, v)
	r.current = v
	r.selectedObra = 0
	r.refreshKeys[v]++
	r.mu.Unlock()
	r.notify()
}

// NavigateToObra abre o detalhe da obra indicada.
func (r *Router) NavigateToObra(obraID int64) {
	r.mu.Lock()
	r.current = auth.ViewObraDetail
	r.selectedObra = obraID
	r.refreshKeys[auth.ViewObraDetail]++
	r.mu.Unlock()
	r.notify()
}

// NavigateToDashboard volta à lista de obras.
func (r *Router) NavigateToDashboard() {
	r.NavigateTo(auth.ViewDashboard)
}

// Refresh incrementa o contador de atualização de uma view, forçando as
// páginas interessadas a recarregar.
func (r *Router) Refresh(v auth.ViewID) {
	r.mu.Lock()
	r.refreshKeys[v]++
	r.mu.Unlock()
	r.notify()
}

// RefreshKey retorna o contador de atualização corrente da view.
func (r *Router) RefreshKey(v auth.ViewID) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshKeys[v]
}

// Reset volta ao estado inicial (usado no logout).
func (r *Router) Reset() {
	r.mu.Lock()
	r.current = auth.ViewDashboard
	r.selectedObra = 0
	r.refreshKeys = make(map[auth.ViewID]uint64)
	r.mu.Unlock()
	r.notify()
}

func (r *Router) notify() {
	if r.OnChange != nil {
		r.OnChange()
	}
}
