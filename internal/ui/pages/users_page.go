package pages

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
)

// UsersPage é a gestão de usuários, restrita a Administradores. O backend
// também valida; a checagem aqui só evita mostrar uma tela inútil.
type UsersPage struct {
	deps *Deps

	ls    loadState
	rows  []*userRow
	roles []models.RoleInfo
	list  widget.List

	novoBtn widget.Clickable

	// Modal de criação/edição. editingID == 0 indica criação.
	formModal   *components.Modal
	editingID   int64
	usernameEd  widget.Editor
	passwordEd  *components.PasswordInput
	nomeEd      widget.Editor
	emailEd     widget.Editor
	telefoneEd  widget.Editor
	cpfEd       widget.Editor
	rgEd        widget.Editor
	roleEnum    widget.Enum
	formSaveBtn widget.Clickable
	formBusy    bool

	confirm *components.ConfirmDialog
}

type userRow struct {
	user models.User
	edit widget.Clickable
	del  widget.Clickable
}

// NewUsersPage cria a página de gestão de usuários.
func NewUsersPage(deps *Deps) *UsersPage {
	p := &UsersPage{
		deps:       deps,
		formModal:  components.NewModal(),
		confirm:    components.NewConfirmDialog(),
		passwordEd: components.NewPasswordInput("Senha inicial"),
	}
	p.list.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{&p.usernameEd, &p.nomeEd, &p.emailEd, &p.telefoneEd, &p.cpfEd, &p.rgEd} {
		ed.SingleLine = true
	}
	return p
}

func (p *UsersPage) OnShow() {}

func (p *UsersPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		users, err := p.deps.Users.List(ctx)
		var roles []models.RoleInfo
		if err == nil {
			roles, err = p.deps.Users.Roles(ctx)
		}

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.roles = roles
				p.rows = p.rows[:0]
				for _, u := range users {
					p.rows = append(p.rows, &userRow{user: u})
				}
			}
		})
	}()
}

// Layout desenha a listagem ou o aviso de acesso negado.
func (p *UsersPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if !auth.IsAdmin(p.deps.Role()) {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(pageHeader(th, "Usuários")),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body1(th, "Acesso negado: Apenas Administradores podem gerir usuários.")
				lbl.Color = ui.Colors.Danger
				return lbl.Layout(gtx)
			}),
		)
	}

	key := p.deps.Router.RefreshKey(auth.ViewFuncionarios)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	currentID := int64(0)
	if u := p.deps.Session.CurrentUser(); u != nil {
		currentID = u.ID
	}
	for _, row := range p.rows {
		if row.edit.Clicked(gtx) {
			user := row.user
			p.openForm(&user)
		}
		if row.del.Clicked(gtx) && row.user.ID != currentID {
			p.askDelete(row.user)
		}
	}
	if p.novoBtn.Clicked(gtx) {
		p.openForm(nil)
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Usuários",
			layout.Rigid(ui.PrimaryButton(th, &p.novoBtn, "Novo Usuário").Layout))),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if p.ls.loading || p.ls.errMsg != "" {
				return layout.Dimensions{}
			}
			return tableRow(
				headerCell(th, "Usuário", 1.2),
				headerCell(th, "Nome", 1.8),
				headerCell(th, "E-mail", 1.8),
				headerCell(th, "Cargo", 1),
				layout.Rigid(layout.Spacer{Width: unit.Dp(72)}.Layout),
			)(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &p.list).Layout(gtx, len(p.rows), func(gtx layout.Context, i int) layout.Dimensions {
				row := p.rows[i]
				cells := []layout.FlexChild{
					cell(th, row.user.Username, 1.2),
					cell(th, row.user.Nome, 1.8),
					cell(th, row.user.Email, 1.8),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return components.StatusBadge(th, row.user.Role)(gtx)
					}),
					iconAction(th, &row.edit, ui.IconEdit, "Editar"),
				}
				if row.user.ID != currentID {
					cells = append(cells, iconAction(th, &row.del, ui.IconDelete, "Remover"))
				} else {
					cells = append(cells, layout.Rigid(layout.Spacer{Width: unit.Dp(36)}.Layout))
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)

	p.layoutFormModal(gtx, th)
	p.confirm.Layout(gtx, th)
	return dims
}

// --- Modal de criação/edição ---

func (p *UsersPage) openForm(user *models.User) {
	p.formBusy = false
	if user == nil {
		p.editingID = 0
		p.usernameEd.SetText("")
		p.passwordEd.SetText("")
		p.nomeEd.SetText("")
		p.emailEd.SetText("")
		p.telefoneEd.SetText("")
		p.cpfEd.SetText("")
		p.rgEd.SetText("")
		p.roleEnum.Value = string(auth.RolePrestador)
	} else {
		p.editingID = user.ID
		p.nomeEd.SetText(user.Nome)
		p.emailEd.SetText(user.Email)
		p.telefoneEd.SetText(user.Telefone)
		p.cpfEd.SetText(user.CPF)
		p.rgEd.SetText(user.RG)
	}
	p.formModal.Show()
}

func (p *UsersPage) submitForm() {
	if p.formBusy {
		return
	}
	p.formBusy = true
	p.formModal.SetError("")

	editingID := p.editingID
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()

		var err error
		if editingID == 0 {
			err = p.deps.Users.Create(ctx, models.UserCreate{
				Username: p.usernameEd.Text(),
				Password: p.passwordEd.Text(),
				Nome:     p.nomeEd.Text(),
				Email:    p.emailEd.Text(),
				Telefone: p.telefoneEd.Text(),
				CPF:      p.cpfEd.Text(),
				RG:       p.rgEd.Text(),
				Role:     p.roleEnum.Value,
			})
		} else {
			err = p.deps.Users.Update(ctx, editingID, models.UserUpdate{
				Nome:     p.nomeEd.Text(),
				Email:    p.emailEd.Text(),
				Telefone: p.telefoneEd.Text(),
				CPF:      p.cpfEd.Text(),
				RG:       p.rgEd.Text(),
			})
		}

		p.deps.Win.Execute(func() {
			p.formBusy = false
			if err != nil {
				p.formModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			p.formModal.Hide()
			p.deps.Win.ShowMessage(ui.MessageSuccess, "Usuário salvo com sucesso!")
			p.deps.Router.Refresh(auth.ViewFuncionarios)
		})
	}()
}

func (p *UsersPage) layoutFormModal(gtx layout.Context, th *material.Theme) {
	if !p.formModal.Visible() {
		return
	}
	if p.formSaveBtn.Clicked(gtx) {
		p.submitForm()
	}

	title := "Novo Usuário"
	if p.editingID != 0 {
		title = "Editar Usuário"
	}

	p.formModal.Layout(gtx, th, title,
		func(gtx layout.Context) layout.Dimensions {
			var fields []layout.FlexChild
			if p.editingID == 0 {
				fields = append(fields,
					layout.Rigid(formField(th, "Usuário", &p.usernameEd, "login")),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx,
							ui.LabeledInputLayout(th, "Senha inicial", func(gtx layout.Context) layout.Dimensions {
								return p.passwordEd.Layout(gtx, th)
							}, ""))
					}),
				)
			}
			fields = append(fields,
				layout.Rigid(formField(th, "Nome", &p.nomeEd, "Nome completo")),
				layout.Rigid(formField(th, "E-mail", &p.emailEd, "email@exemplo.com")),
				layout.Rigid(formField(th, "Telefone", &p.telefoneEd, "(00) 00000-0000")),
				layout.Rigid(formField(th, "CPF", &p.cpfEd, "000.000.000-00")),
				layout.Rigid(formField(th, "RG", &p.rgEd, "")),
			)
			if p.editingID == 0 {
				fields = append(fields, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Cargo", func(gtx layout.Context) layout.Dimensions {
						opts := make([]layout.FlexChild, 0, len(p.roles))
						for _, role := range p.roles {
							opts = append(opts, radioOption(th, &p.roleEnum, role.Name, role.Name))
						}
						return layout.Flex{}.Layout(gtx, opts...)
					}, "")(gtx)
				}))
			} else {
				fields = append(fields, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Caption(th, "O cargo não pode ser alterado por aqui.")
					lbl.Color = ui.Colors.TextMuted
					return lbl.Layout(gtx)
				}))
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, fields...)
		},
		func(gtx layout.Context) layout.Dimensions {
			if p.formBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &p.formSaveBtn, "Salvar").Layout(gtx)
		},
	)
}

// --- Remoção ---

func (p *UsersPage) askDelete(user models.User) {
	p.confirm.Show("Remover usuário",
		"Remover o usuário \""+user.Username+"\"? Esta ação não pode ser desfeita.",
		"Remover",
		func() {
			go func() {
				ctx, cancel := p.deps.Ctx()
				defer cancel()
				err := p.deps.Users.Delete(ctx, user.ID)
				p.deps.Win.Execute(func() {
					if err != nil {
						p.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					p.confirm.Hide()
					p.deps.Win.ShowMessage(ui.MessageSuccess, "Usuário removido.")
					p.deps.Router.Refresh(auth.ViewFuncionarios)
				})
			}()
		})
}
