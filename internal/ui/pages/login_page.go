package pages

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
)

// LoginPage é a tela de autenticação.
type LoginPage struct {
	deps *Deps

	username widget.Editor
	password *components.PasswordInput
	loginBtn widget.Clickable
	spinner  *components.LoadingSpinner

	busy   bool
	errMsg string
}

// NewLoginPage cria a tela de login.
func NewLoginPage(deps *Deps) *LoginPage {
	p := &LoginPage{
		deps:     deps,
		password: components.NewPasswordInput("Senha"),
		spinner:  components.NewLoadingSpinner(),
	}
	p.username.SingleLine = true
	p.password.OnSubmit = func(string) { p.submit() }
	return p
}

// OnShow limpa o formulário ao voltar para a tela de login.
func (p *LoginPage) OnShow() {
	p.username.SetText("")
	p.password.Clear()
	p.errMsg = ""
	p.busy = false
	p.spinner.Stop()
}

func (p *LoginPage) submit() {
	if p.busy {
		return
	}
	username := p.username.Text()
	password := p.password.Text()

	p.busy = true
	p.errMsg = ""
	p.spinner.Start()

	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		resp, err := p.deps.Auth.Login(ctx, username, password)

		p.deps.Win.Execute(func() {
			p.busy = false
			p.spinner.Stop()
			if err != nil {
				p.errMsg = core.UserMessage(err, "Falha no login. O backend está no ar?")
				return
			}
			appLogger.Infof("Login bem-sucedido para '%s'", resp.User.Username)
			p.password.Clear()
			p.deps.Session.HandleLogin(resp.AccessToken, resp.User)
			p.deps.Router.Reset()
		})
	}()
}

// Layout desenha a tela de login centralizada.
func (p *LoginPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if p.loginBtn.Clicked(gtx) {
		p.submit()
	}

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		maxW := gtx.Dp(unit.Dp(380))
		if gtx.Constraints.Max.X > maxW {
			gtx.Constraints.Max.X = maxW
		}
		return ui.Card(th, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					title := material.H5(th, p.deps.Cfg.AppName)
					title.Color = ui.Colors.Primary
					return title.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					sub := material.Body2(th, "Acesse com suas credenciais")
					sub.Color = ui.Colors.TextMuted
					return sub.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Usuário",
						formEditor(th, &p.username, "Usuário"), "")(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Senha",
						func(gtx layout.Context) layout.Dimensions {
							return p.password.Layout(gtx, th)
						}, "")(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if p.errMsg == "" {
						return layout.Dimensions{}
					}
					lbl := material.Body2(th, p.errMsg)
					lbl.Color = ui.Colors.Danger
					return layout.Inset{Top: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
				}),
				layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if p.busy {
						return layout.Center.Layout(gtx, p.spinner.Layout)
					}
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return ui.PrimaryButton(th, &p.loginBtn, "Entrar").Layout(gtx)
				}),
			)
		})(gtx)
	})
}
