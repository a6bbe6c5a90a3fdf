package ui

import (
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
)

// Page é uma tela desenhável. OnShow é chamado quando a tela passa a ser a
// corrente, para disparar carregamentos.
type Page interface {
	Layout(gtx layout.Context, th *material.Theme) layout.Dimensions
	OnShow()
}

// MessageKind classifica as mensagens globais exibidas sobre a UI.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

const messageDuration = 4 * time.Second

// AppWindow é o dono da janela: roda o loop de eventos, decide qual tela
// desenhar conforme o estado da sessão e oferece Execute para despachar
// closures de goroutines de trabalho para a thread de UI.
type AppWindow struct {
	Window  *app.Window
	Theme   *material.Theme
	Cfg     *core.Config
	Session *auth.SessionStore
	Router  *Router

	loginPage    Page
	forcePwdPage Page
	shellPage    Page
	lastState    auth.SessionState
	lastStateOK  bool

	dispatchMu sync.Mutex
	dispatch   []func()

	msgMu      sync.Mutex
	msgText    string
	msgKind    MessageKind
	msgExpires time.Time
}

// NewAppWindow cria a janela principal com as opções padrão.
func NewAppWindow(cfg *core.Config, th *material.Theme, session *auth.SessionStore, router *Router) *AppWindow {
	w := new(app.Window)
	w.Option(
		app.Title(cfg.AppName),
		app.Size(WindowDefaultWidth, WindowDefaultHeight),
		app.MinSize(WindowMinWidth, WindowMinHeight),
	)

	aw := &AppWindow{
		Window:  w,
		Theme:   th,
		Cfg:     cfg,
		Session: session,
		Router:  router,
	}
	router.OnChange = aw.Invalidate
	return aw
}

// SetScreens registra as três telas de topo: login, troca obrigatória de
// senha e a área autenticada (shell com sidebar).
func (aw *AppWindow) SetScreens(login, forcePwd, shell Page) {
	aw.loginPage = login
	aw.forcePwdPage = forcePwd
	aw.shellPage = shell
}

// Execute agenda fn para rodar na thread de UI no início do próximo frame.
// Seguro para chamar de qualquer goroutine.
func (aw *AppWindow) Execute(fn func()) {
	if fn == nil {
		return
	}
	aw.dispatchMu.Lock()
	aw.dispatch = append(aw.dispatch, fn)
	aw.dispatchMu.Unlock()
	aw.Window.Invalidate()
}

// Invalidate solicita um novo frame.
func (aw *AppWindow) Invalidate() {
	aw.Window.Invalidate()
}

// ShowMessage exibe uma mensagem transitória no topo da janela.
func (aw *AppWindow) ShowMessage(kind MessageKind, txt string) {
	aw.msgMu.Lock()
	aw.msgText = txt
	aw.msgKind = kind
	aw.msgExpires = time.Now().Add(messageDuration)
	aw.msgMu.Unlock()

	time.AfterFunc(messageDuration+50*time.Millisecond, aw.Window.Invalidate)
	aw.Window.Invalidate()
}

// Logout encerra a sessão e volta para a tela de login.
func (aw *AppWindow) Logout() {
	appLogger.Info("Encerrando sessão do usuário")
	aw.Session.Logout()
	aw.Router.Reset()
	aw.lastStateOK = false
	aw.Invalidate()
}

// Run executa o loop de eventos até a janela ser destruída.
func (aw *AppWindow) Run() error {
	var ops op.Ops
	for {
		switch e := aw.Window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			aw.drainDispatch()
			aw.frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (aw *AppWindow) drainDispatch() {
	aw.dispatchMu.Lock()
	pending := aw.dispatch
	aw.dispatch = nil
	aw.dispatchMu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (aw *AppWindow) frame(gtx layout.Context) {
	FillBackground(gtx, Colors.Background)

	state := aw.Session.State()
	page := aw.pageForState(state)

	// Dispara OnShow na transição entre telas de topo.
	if !aw.lastStateOK || state != aw.lastState {
		aw.lastState = state
		aw.lastStateOK = true
		if page != nil {
			page.OnShow()
		}
	}

	if page != nil {
		page.Layout(gtx, aw.Theme)
	}
	aw.layoutMessage(gtx)
}

func (aw *AppWindow) pageForState(state auth.SessionState) Page {
	switch state {
	case auth.StateAuthenticated:
		return aw.shellPage
	case auth.StateMustChangePassword:
		return aw.forcePwdPage
	default:
		return aw.loginPage
	}
}

// layoutMessage desenha a mensagem global no topo, centralizada, por cima do
// conteúdo da tela corrente.
func (aw *AppWindow) layoutMessage(gtx layout.Context) {
	aw.msgMu.Lock()
	txt, kind, expires := aw.msgText, aw.msgKind, aw.msgExpires
	aw.msgMu.Unlock()

	if txt == "" || time.Now().After(expires) {
		return
	}

	var fg, bg, border color.NRGBA
	switch kind {
	case MessageSuccess:
		fg, bg, border = Colors.SuccessText, Colors.SuccessBg, Colors.SuccessBorder
	case MessageError:
		fg, bg, border = Colors.DangerText, Colors.DangerBg, Colors.DangerBorder
	default:
		fg, bg, border = Colors.InfoText, Colors.InfoBg, Colors.InfoBorder
	}

	layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return widgetBorderedLabel(gtx, aw.Theme, txt, fg, bg, border)
		})
	})
}

func widgetBorderedLabel(gtx layout.Context, th *material.Theme, txt string, fg, bg, borderColor color.NRGBA) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	lbl := material.Body2(th, txt)
	lbl.Color = fg
	dims := layout.Inset{
		Top: unit.Dp(8), Bottom: unit.Dp(8),
		Left: unit.Dp(16), Right: unit.Dp(16),
	}.Layout(gtx, lbl.Layout)
	call := macro.Stop()

	drawRoundedSurface(gtx, dims, bg, borderColor)
	call.Add(gtx.Ops)
	return dims
}
