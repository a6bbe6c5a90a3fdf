package pages

import (
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
)

// MainLayout é a casca da área autenticada: barra lateral com navegação
// filtrada por cargo à esquerda, página corrente à direita, e o modal de
// atualização de credenciais.
type MainLayout struct {
	deps  *Deps
	pages map[auth.ViewID]ui.Page

	navButtons map[auth.ViewID]*widget.Clickable
	navList    widget.List
	accountBtn widget.Clickable
	logoutBtn  widget.Clickable

	lastView   auth.ViewID
	lastViewOK bool

	// Modal de credenciais (novo username e/ou nova senha; exige senha atual).
	credModal    *components.Modal
	credCurrent  *components.PasswordInput
	credUsername widget.Editor
	credPassword *components.PasswordInput
	credSaveBtn  widget.Clickable
	credBusy     bool
}

// NewMainLayout cria a casca sem páginas registradas.
func NewMainLayout(deps *Deps) *MainLayout {
	m := &MainLayout{
		deps:         deps,
		pages:        make(map[auth.ViewID]ui.Page),
		navButtons:   make(map[auth.ViewID]*widget.Clickable),
		credModal:    components.NewModal(),
		credCurrent:  components.NewPasswordInput("Senha atual"),
		credPassword: components.NewPasswordInput("Nova senha (opcional)"),
	}
	m.navList.Axis = layout.Vertical
	m.credUsername.SingleLine = true
	return m
}

// Register associa uma página a uma entrada de navegação.
func (m *MainLayout) Register(v auth.ViewID, page ui.Page) {
	m.pages[v] = page
}

// OnShow reapresenta a página corrente (chamado ao entrar na área autenticada).
func (m *MainLayout) OnShow() {
	m.lastViewOK = false
}

// Layout desenha a casca completa.
func (m *MainLayout) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	m.handleNav(gtx)

	current := m.deps.Router.Current()
	page := m.pages[current]
	if page != nil && (!m.lastViewOK || current != m.lastView) {
		m.lastView = current
		m.lastViewOK = true
		page.OnShow()
	}

	dims := layout.Flex{}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(ui.SidebarWidth)
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			return m.layoutSidebar(gtx, th)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(ui.PagePadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				if page == nil {
					return material.Body1(th, "Página indisponível.").Layout(gtx)
				}
				return page.Layout(gtx, th)
			})
		}),
	)

	m.layoutCredModal(gtx, th)
	return dims
}

func (m *MainLayout) handleNav(gtx layout.Context) {
	for v, btn := range m.navButtons {
		if btn.Clicked(gtx) {
			m.deps.Router.NavigateTo(v)
		}
	}
	if m.accountBtn.Clicked(gtx) {
		m.openCredModal()
	}
	if m.logoutBtn.Clicked(gtx) {
		m.deps.Win.Logout()
	}
}

func (m *MainLayout) layoutSidebar(gtx layout.Context, th *material.Theme) layout.Dimensions {
	ui.FillBackground(gtx, ui.Colors.SidebarBg)

	user := m.deps.Session.CurrentUser()
	role := m.deps.Role()
	views := auth.VisibleViews(role)
	current := m.deps.Router.Current()
	if current == auth.ViewObraDetail {
		current = auth.ViewDashboard
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(ui.PagePadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				title := material.H6(th, "Gestão de Obras")
				title.Color = ui.Colors.White
				title.Font.Weight = font.Bold
				return title.Layout(gtx)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &m.navList).Layout(gtx, len(views), func(gtx layout.Context, i int) layout.Dimensions {
				return m.layoutNavItem(gtx, th, views[i], views[i] == current)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return m.layoutSidebarFooter(gtx, th, user, role)
		}),
	)
}

func (m *MainLayout) layoutNavItem(gtx layout.Context, th *material.Theme, v auth.ViewID, selected bool) layout.Dimensions {
	btn, ok := m.navButtons[v]
	if !ok {
		btn = new(widget.Clickable)
		m.navButtons[v] = btn
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if selected {
			ui.FillBackground(gtx, ui.Colors.Primary)
		}
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Inset{
			Top: unit.Dp(10), Bottom: unit.Dp(10),
			Left: ui.PagePadding, Right: ui.PagePadding,
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					icon := ui.ViewIcon(v)
					if icon == nil {
						return layout.Dimensions{}
					}
					iconColor := ui.Colors.SidebarText
					if selected {
						iconColor = ui.Colors.White
					}
					gtx.Constraints.Max.X = gtx.Dp(unit.Dp(20))
					return icon.Layout(gtx, iconColor)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body1(th, auth.ViewLabel(v))
					lbl.Color = ui.Colors.SidebarText
					if selected {
						lbl.Color = ui.Colors.White
						lbl.Font.Weight = font.Bold
					}
					return lbl.Layout(gtx)
				}),
			)
		})
	})
}

func (m *MainLayout) layoutSidebarFooter(gtx layout.Context, th *material.Theme, user *models.User, role auth.Role) layout.Dimensions {
	return layout.UniformInset(ui.PagePadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				nome := "—"
				if user != nil {
					nome = user.Nome
				}
				lbl := material.Body2(th, nome)
				lbl.Color = ui.Colors.White
				lbl.Font.Weight = font.Bold
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(th, string(role))
				lbl.Color = ui.Colors.Grey500
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						btn := ui.SecondaryButton(th, &m.accountBtn, "Minha conta")
						btn.TextSize = unit.Sp(12)
						return btn.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						btn := ui.DangerButton(th, &m.logoutBtn, "Sair")
						btn.TextSize = unit.Sp(12)
						return btn.Layout(gtx)
					}),
				)
			}),
		)
	})
}

// --- Modal de credenciais ---

func (m *MainLayout) openCredModal() {
	m.credCurrent.Clear()
	m.credPassword.Clear()
	m.credUsername.SetText("")
	if user := m.deps.Session.CurrentUser(); user != nil {
		m.credUsername.SetText(user.Username)
	}
	m.credBusy = false
	m.credModal.Show()
}

func (m *MainLayout) submitCredentials() {
	if m.credBusy {
		return
	}
	m.credBusy = true
	m.credModal.SetError("")

	current := m.credCurrent.Text()
	newUsername := m.credUsername.Text()
	newPassword := m.credPassword.Text()

	// Username inalterado não conta como mudança.
	if user := m.deps.Session.CurrentUser(); user != nil && newUsername == user.Username {
		newUsername = ""
	}

	go func() {
		ctx, cancel := m.deps.Ctx()
		defer cancel()
		err := m.deps.Auth.UpdateCredentials(ctx, current, newUsername, newPassword)

		m.deps.Win.Execute(func() {
			m.credBusy = false
			if err != nil {
				m.credModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			appLogger.Info("Credenciais atualizadas; forçando novo login")
			m.credModal.Hide()
			m.deps.Win.ShowMessage(ui.MessageSuccess, "Credenciais atualizadas! Por favor, faça login novamente.")
			m.deps.Win.Logout()
		})
	}()
}

func (m *MainLayout) layoutCredModal(gtx layout.Context, th *material.Theme) {
	if !m.credModal.Visible() {
		return
	}
	if m.credSaveBtn.Clicked(gtx) {
		m.submitCredentials()
	}

	m.credModal.Layout(gtx, th, "Minha conta",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					sub := material.Body2(th, "Após salvar, será necessário entrar novamente.")
					sub.Color = ui.Colors.TextMuted
					return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, sub.Layout)
				}),
				layout.Rigid(formField(th, "Novo username", &m.credUsername, "Username")),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx,
						ui.LabeledInputLayout(th, "Nova senha", func(gtx layout.Context) layout.Dimensions {
							return m.credPassword.Layout(gtx, th)
						}, ""))
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx,
						ui.LabeledInputLayout(th, "Senha atual (obrigatória)", func(gtx layout.Context) layout.Dimensions {
							return m.credCurrent.Layout(gtx, th)
						}, ""))
				}),
			)
		},
		func(gtx layout.Context) layout.Dimensions {
			if m.credBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &m.credSaveBtn, "Salvar").Layout(gtx)
		},
	)
}

