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

// ForcePasswordPage é a troca obrigatória de senha no primeiro acesso.
// Nenhuma outra tela fica acessível enquanto a troca não for concluída.
type ForcePasswordPage struct {
	deps *Deps

	current *components.PasswordInput
	newPwd  *components.PasswordInput
	confirm *components.PasswordInput

	saveBtn   widget.Clickable
	logoutBtn widget.Clickable

	busy   bool
	errMsg string
}

// NewForcePasswordPage cria a tela de troca obrigatória.
func NewForcePasswordPage(deps *Deps) *ForcePasswordPage {
	p := &ForcePasswordPage{
		deps:    deps,
		current: components.NewPasswordInput("Senha atual"),
		newPwd:  components.NewPasswordInput("Nova senha"),
		confirm: components.NewPasswordInput("Confirme a nova senha"),
	}
	p.confirm.OnSubmit = func(string) { p.submit() }
	return p
}

// OnShow limpa os campos ao entrar na tela.
func (p *ForcePasswordPage) OnShow() {
	p.current.Clear()
	p.newPwd.Clear()
	p.confirm.Clear()
	p.errMsg = ""
	p.busy = false
}

func (p *ForcePasswordPage) submit() {
	if p.busy {
		return
	}
	if p.newPwd.Text() != p.confirm.Text() {
		p.errMsg = "As senhas não coincidem."
		return
	}

	p.busy = true
	p.errMsg = ""
	current, newPwd := p.current.Text(), p.newPwd.Text()

	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		user, err := p.deps.Auth.FirstPasswordChange(ctx, current, newPwd)

		p.deps.Win.Execute(func() {
			p.busy = false
			if err != nil {
				p.errMsg = core.UserMessage(err, "Não foi possível alterar a senha. O backend está no ar?")
				return
			}
			appLogger.Infof("Troca obrigatória de senha concluída para '%s'", user.Username)
			p.deps.Session.HandlePasswordChanged(*user)
			p.deps.Win.ShowMessage(ui.MessageSuccess, "Senha alterada com sucesso!")
		})
	}()
}

// Layout desenha o formulário centralizado.
func (p *ForcePasswordPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if p.saveBtn.Clicked(gtx) {
		p.submit()
	}
	if p.logoutBtn.Clicked(gtx) {
		p.deps.Win.Logout()
	}

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		maxW := gtx.Dp(unit.Dp(420))
		if gtx.Constraints.Max.X > maxW {
			gtx.Constraints.Max.X = maxW
		}
		return ui.Card(th, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H6(th, "Defina uma nova senha").Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					sub := material.Body2(th, "Por segurança, você precisa trocar sua senha antes de continuar.")
					sub.Color = ui.Colors.TextMuted
					return sub.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
				layout.Rigid(p.passwordField(th, "Senha atual", p.current)),
				layout.Rigid(p.passwordField(th, "Nova senha", p.newPwd)),
				layout.Rigid(p.passwordField(th, "Confirmação", p.confirm)),
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
					return layout.Flex{Spacing: layout.SpaceBetween}.Layout(gtx,
						layout.Rigid(ui.SecondaryButton(th, &p.logoutBtn, "Sair").Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							if p.busy {
								gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
								gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
								return material.Loader(th).Layout(gtx)
							}
							return ui.PrimaryButton(th, &p.saveBtn, "Salvar nova senha").Layout(gtx)
						}),
					)
				}),
			)
		})(gtx)
	})
}

func (p *ForcePasswordPage) passwordField(th *material.Theme, label string, input *components.PasswordInput) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx,
			ui.LabeledInputLayout(th, label, func(gtx layout.Context) layout.Dimensions {
				return input.Layout(gtx, th)
			}, ""))
	}
}
