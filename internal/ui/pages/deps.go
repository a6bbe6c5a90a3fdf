package pages

import (
	"context"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/services"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// Mensagens genéricas de falha de carregamento, usadas como fallback quando
// o backend não fornece uma mensagem própria.
const (
	msgFalhaCarregar = "Não foi possível carregar os dados. O backend está no ar?"
	msgFalhaSalvar   = "Não foi possível salvar. O backend está no ar?"
	msgFalhaRemover  = "Não foi possível remover. O backend está no ar?"
)

// Deps agrupa tudo que as páginas precisam: janela, navegação, sessão e os
// serviços de domínio. Montado uma única vez no main.
type Deps struct {
	Cfg     *core.Config
	Win     *ui.AppWindow
	Router  *ui.Router
	Session *auth.SessionStore

	Auth        *services.AuthService
	Obras       *services.ObraService
	Financeiro  *services.FinanceiroService
	Inventario  *services.InventarioService
	Checklist   *services.ChecklistService
	Documentos  *services.DocumentoService
	Vinculos    *services.VinculoService
	Users       *services.UserService
	Reports     *services.ReportService
	Marketplace *services.MarketplaceService
}

// Ctx cria o contexto padrão de uma chamada à API, limitado pelo timeout
// HTTP configurado.
func (d *Deps) Ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.Cfg.HTTPTimeout)
}

// Role retorna o cargo do usuário logado.
func (d *Deps) Role() auth.Role {
	return d.Session.Role()
}

// CanManage informa se o usuário logado pode criar/editar/remover.
func (d *Deps) CanManage() bool {
	return auth.CanManage(d.Session.Role())
}

// loadState acompanha um carregamento assíncrono de página. Todos os campos
// são lidos e escritos apenas na thread de UI (via AppWindow.Execute), então
// não há lock; o número de sequência descarta respostas obsoletas quando um
// novo carregamento começa antes de o anterior terminar.
type loadState struct {
	seq     uint64
	key     uint64
	started bool
	loading bool
	errMsg  string
}

// needsLoad informa se a página deve disparar um novo fetch para a chave de
// atualização corrente.
func (l *loadState) needsLoad(key uint64) bool {
	return !l.started || l.key != key
}

// begin marca o início de um fetch e retorna o número de sequência que a
// resposta deve apresentar para ser aceita.
func (l *loadState) begin(key uint64) uint64 {
	l.started = true
	l.key = key
	l.loading = true
	l.errMsg = ""
	l.seq++
	return l.seq
}

// done encerra o fetch identificado por seq. Retorna false se a resposta é
// obsoleta e deve ser descartada.
func (l *loadState) done(seq uint64, errMsg string) bool {
	if seq != l.seq {
		return false
	}
	l.loading = false
	l.errMsg = errMsg
	return true
}
