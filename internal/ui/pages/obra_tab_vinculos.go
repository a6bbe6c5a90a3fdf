package pages

import (
	"os"
	"path/filepath"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/services"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// Valores do formulário de vínculo.
const (
	vinculoKindCadastrado = "cadastrado"
	vinculoKindAvulso     = "avulso"
)

// vinculosTab é a aba de funcionários de uma obra.
type vinculosTab struct {
	deps *Deps

	ls       loadState
	lastObra int64
	rows     []*vinculoRow
	list     widget.List

	addBtn widget.Clickable

	// Modal de criação/edição.
	modal      *components.Modal
	editing    *models.Vinculo
	kindEnum   widget.Enum
	userIDEd   widget.Editor
	nomeEd     widget.Editor
	cpfEd      widget.Editor
	cargoEd    widget.Editor
	salarioEd  widget.Editor
	prazoEd    widget.Editor
	pagtoEnum  widget.Enum
	fotoPathEd widget.Editor
	saveBtn    widget.Clickable
	busy       bool

	confirm *components.ConfirmDialog

	// Modal de auditoria por funcionário.
	auditModal *components.Modal
	auditList  widget.List
	auditLogs  []models.AuditLog
	auditLS    loadState
	auditNome  string
}

type vinculoRow struct {
	vinculo models.Vinculo
	edit    widget.Clickable
	del     widget.Clickable
	audit   widget.Clickable
}

// cpfAviso devolve o aviso exibido sob o campo de CPF quando os dígitos
// verificadores não conferem. O envio nunca é bloqueado pelo cliente; o
// aviso só aparece com o campo completo (11 dígitos).
func cpfAviso(raw string) string {
	cpf := strings.TrimSpace(raw)
	if len(cpf) != 11 || utils.IsValidCPF(cpf) {
		return ""
	}
	return "Atenção: este CPF parece inválido. O cadastro não será bloqueado."
}

func newVinculosTab(deps *Deps) *vinculosTab {
	t := &vinculosTab{
		deps:       deps,
		modal:      components.NewModal(),
		confirm:    components.NewConfirmDialog(),
		auditModal: components.NewModal(),
	}
	t.list.Axis = layout.Vertical
	t.auditList.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{&t.userIDEd, &t.nomeEd, &t.cpfEd, &t.cargoEd, &t.salarioEd, &t.prazoEd, &t.fotoPathEd} {
		ed.SingleLine = true
	}
	return t
}

func (t *vinculosTab) Label() string { return "Funcionários" }

func (t *vinculosTab) ensure(obraID int64, key uint64) {
	if !t.ls.needsLoad(key) && t.lastObra == obraID {
		return
	}
	t.lastObra = obraID
	seq := t.ls.begin(key)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		vinculos, err := t.deps.Vinculos.List(ctx, obraID)

		t.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !t.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				t.rows = t.rows[:0]
				for _, v := range vinculos {
					t.rows = append(t.rows, &vinculoRow{vinculo: v})
				}
			}
		})
	}()
}

func (t *vinculosTab) Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions {
	t.ensure(obraID, key)

	if t.addBtn.Clicked(gtx) && t.deps.CanManage() {
		t.openModal(nil)
	}
	for _, row := range t.rows {
		if !t.deps.CanManage() {
			break
		}
		if row.edit.Clicked(gtx) {
			v := row.vinculo
			t.openModal(&v)
		}
		if row.del.Clicked(gtx) {
			t.askDelete(obraID, row.vinculo)
		}
		if row.audit.Clicked(gtx) {
			t.openAudit(obraID, row.vinculo)
		}
	}

	var actions []layout.FlexChild
	if t.deps.CanManage() {
		actions = append(actions, layout.Rigid(ui.PrimaryButton(th, &t.addBtn, "Adicionar").Layout))
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				append([]layout.FlexChild{layout.Flexed(1, statusLine(th, &t.ls))}, actions...)...)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if t.ls.loading || t.ls.errMsg != "" || len(t.rows) > 0 {
				return layout.Dimensions{}
			}
			return emptyHint(th, "Nenhum funcionário vinculado a esta obra.")(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if len(t.rows) == 0 {
				return layout.Dimensions{}
			}
			return tableRow(
				headerCell(th, "Nome", 2),
				headerCell(th, "Cargo", 1.5),
				headerCell(th, "Salário", 1),
				headerCell(th, "Prazo", 1),
				headerCell(th, "Pagamento", 1),
				layout.Rigid(layout.Spacer{Width: unit.Dp(96)}.Layout),
			)(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &t.list).Layout(gtx, len(t.rows), func(gtx layout.Context, i int) layout.Dimensions {
				row := t.rows[i]
				v := row.vinculo
				nome := v.Nome
				if nome == "" {
					nome = v.NomeNaoCadastrado
				}
				prazo := "—"
				if v.PrazoLimite != nil {
					prazo = utils.FormatDate(*v.PrazoLimite)
				}
				cells := []layout.FlexChild{
					cell(th, nome, 2),
					cell(th, v.Cargo, 1.5),
					cell(th, utils.FormatCurrency(v.Salario), 1),
					cell(th, prazo, 1),
					cell(th, v.StatusPagamento, 1),
				}
				if t.deps.CanManage() {
					cells = append(cells,
						iconAction(th, &row.audit, ui.IconHistory, "Histórico"),
						iconAction(th, &row.edit, ui.IconEdit, "Editar"),
						iconAction(th, &row.del, ui.IconDelete, "Remover"),
					)
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)

	t.layoutModal(gtx, th, obraID)
	t.layoutAuditModal(gtx, th)
	t.confirm.Layout(gtx, th)
	return dims
}

// --- Auditoria por funcionário ---

func (t *vinculosTab) openAudit(obraID int64, v models.Vinculo) {
	t.auditLogs = nil
	t.auditNome = v.Nome
	if t.auditNome == "" {
		t.auditNome = v.NomeNaoCadastrado
	}
	t.auditModal.Show()

	seq := t.auditLS.begin(t.auditLS.key + 1)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		logs, err := t.deps.Vinculos.AuditLogs(ctx, obraID, v.ID)
		t.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !t.auditLS.done(seq, errMsg) {
				return
			}
			if err == nil {
				t.auditLogs = logs
			}
		})
	}()
}

func (t *vinculosTab) layoutAuditModal(gtx layout.Context, th *material.Theme) {
	if !t.auditModal.Visible() {
		return
	}
	t.auditModal.Layout(gtx, th, "Histórico de "+t.auditNome,
		func(gtx layout.Context) layout.Dimensions {
			if t.auditLS.loading || t.auditLS.errMsg != "" {
				return statusLine(th, &t.auditLS)(gtx)
			}
			if len(t.auditLogs) == 0 {
				return emptyHint(th, "Nenhum registro de auditoria.")(gtx)
			}
			return material.List(th, &t.auditList).Layout(gtx, len(t.auditLogs), func(gtx layout.Context, i int) layout.Dimensions {
				entry := t.auditLogs[i]
				return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := material.Body2(th, entry.Acao)
							lbl.Font.Weight = font.Bold
							return lbl.Layout(gtx)
						}),
						layout.Rigid(material.Body2(th, entry.Descricao).Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							if entry.Motivo == "" {
								return layout.Dimensions{}
							}
							return material.Body2(th, "Motivo: "+entry.Motivo).Layout(gtx)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							meta := utils.FormatDateTime(entry.CreatedAt)
							if entry.UsuarioNome != "" {
								meta += " · " + entry.UsuarioNome
							}
							lbl := material.Caption(th, meta)
							lbl.Color = ui.Colors.TextMuted
							return lbl.Layout(gtx)
						}),
					)
				})
			})
		},
		nil,
	)
}

func (t *vinculosTab) openModal(v *models.Vinculo) {
	t.busy = false
	t.editing = v
	if v == nil {
		t.kindEnum.Value = vinculoKindAvulso
		t.userIDEd.SetText("")
		t.nomeEd.SetText("")
		t.cpfEd.SetText("")
		t.cargoEd.SetText("")
		t.salarioEd.SetText("")
		t.prazoEd.SetText("")
		t.pagtoEnum.Value = "Pendente"
		t.fotoPathEd.SetText("")
	} else {
		t.nomeEd.SetText(v.NomeNaoCadastrado)
		t.cpfEd.SetText(v.CPFNaoCadastrado)
		t.cargoEd.SetText(v.Cargo)
		t.salarioEd.SetText(utils.FormatCurrencyInput(utils.FormatCurrency(v.Salario)))
		if v.PrazoLimite != nil {
			t.prazoEd.SetText(*v.PrazoLimite)
		} else {
			t.prazoEd.SetText("")
		}
		if v.StatusPagamento != "" {
			t.pagtoEnum.Value = v.StatusPagamento
		} else {
			t.pagtoEnum.Value = "Pendente"
		}
	}
	t.modal.Show()
}

func (t *vinculosTab) submit(obraID int64) {
	if t.busy {
		return
	}
	t.busy = true
	t.modal.SetError("")

	editing := t.editing
	salario := utils.ParseCurrency(t.salarioEd.Text())

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()

		var err error
		if editing == nil {
			form := services.VinculoForm{
				IsCadastrado:      t.kindEnum.Value == vinculoKindCadastrado,
				NomeNaoCadastrado: t.nomeEd.Text(),
				CPFNaoCadastrado:  t.cpfEd.Text(),
				Cargo:             t.cargoEd.Text(),
				Salario:           salario,
				PrazoLimite:       t.prazoEd.Text(),
				StatusPagamento:   t.pagtoEnum.Value,
			}
			if form.IsCadastrado {
				form.UserID = parseID(t.userIDEd.Text())
			}
			if path := t.fotoPathEd.Text(); path != "" {
				content, readErr := os.ReadFile(path)
				if readErr != nil {
					err = core.NewValidationError("Não foi possível ler o ficheiro da foto.", nil)
				} else {
					form.FotoFilename = filepath.Base(path)
					form.FotoContent = content
				}
			}
			if err == nil {
				err = t.deps.Vinculos.Create(ctx, obraID, form)
			}
		} else {
			var prazo *string
			if p := t.prazoEd.Text(); p != "" {
				prazo = &p
			}
			update := models.VinculoUpdate{
				Cargo:           t.cargoEd.Text(),
				Salario:         salario,
				PrazoLimite:     prazo,
				StatusPagamento: t.pagtoEnum.Value,
			}
			if !editing.IsCadastrado {
				update.NomeNaoCadastrado = t.nomeEd.Text()
				update.CPFNaoCadastrado = t.cpfEd.Text()
			}
			err = t.deps.Vinculos.Update(ctx, obraID, editing.ID, update)
		}

		t.deps.Win.Execute(func() {
			t.busy = false
			if err != nil {
				t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.modal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Funcionário salvo com sucesso!")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *vinculosTab) layoutModal(gtx layout.Context, th *material.Theme, obraID int64) {
	if !t.modal.Visible() {
		return
	}
	if t.saveBtn.Clicked(gtx) {
		t.submit(obraID)
	}
	handleCurrencyInput(gtx, &t.salarioEd)

	title := "Adicionar Funcionário"
	if t.editing != nil {
		title = "Editar Funcionário"
	}

	t.modal.Layout(gtx, th, title,
		func(gtx layout.Context) layout.Dimensions {
			fields := []layout.FlexChild{}
			creating := t.editing == nil
			avulso := creating && t.kindEnum.Value == vinculoKindAvulso ||
				t.editing != nil && !t.editing.IsCadastrado

			if creating {
				fields = append(fields,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.LabeledInputLayout(th, "Tipo de vínculo", func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{}.Layout(gtx,
								radioOption(th, &t.kindEnum, vinculoKindAvulso, "Trabalhador avulso"),
								radioOption(th, &t.kindEnum, vinculoKindCadastrado, "Usuário cadastrado"),
							)
						}, "")(gtx)
					}),
					layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				)
				if t.kindEnum.Value == vinculoKindCadastrado {
					fields = append(fields,
						layout.Rigid(formField(th, "ID do usuário", &t.userIDEd, "Ex: 12")))
				}
			}
			if avulso {
				fields = append(fields,
					layout.Rigid(formField(th, "Nome", &t.nomeEd, "Nome completo")),
					layout.Rigid(formField(th, "CPF", &t.cpfEd, "Somente números")),
				)
				if aviso := cpfAviso(t.cpfEd.Text()); aviso != "" {
					fields = append(fields, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Caption(th, aviso)
						lbl.Color = ui.Colors.WarningText
						return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
					}))
				}
			}
			fields = append(fields,
				layout.Rigid(formField(th, "Cargo", &t.cargoEd, "Ex: Pedreiro")),
				layout.Rigid(formField(th, "Salário (R$)", &t.salarioEd, "0,00")),
				layout.Rigid(formField(th, "Prazo limite", &t.prazoEd, "AAAA-MM-DD (opcional)")),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Status de pagamento", func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							radioOption(th, &t.pagtoEnum, "Pendente", "Pendente"),
							radioOption(th, &t.pagtoEnum, "Pago", "Pago"),
						)
					}, "")(gtx)
				}),
			)
			if creating {
				fields = append(fields,
					layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
					layout.Rigid(formField(th, "Foto (caminho do ficheiro, opcional)", &t.fotoPathEd, "/caminho/para/foto.jpg")),
				)
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, fields...)
		},
		func(gtx layout.Context) layout.Dimensions {
			if t.busy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &t.saveBtn, "Salvar").Layout(gtx)
		},
	)
}

func (t *vinculosTab) askDelete(obraID int64, v models.Vinculo) {
	nome := v.Nome
	if nome == "" {
		nome = v.NomeNaoCadastrado
	}
	t.confirm.Show("Remover funcionário",
		"Remover o vínculo de \""+nome+"\" com esta obra?",
		"Remover",
		func() {
			go func() {
				ctx, cancel := t.deps.Ctx()
				defer cancel()
				err := t.deps.Vinculos.Delete(ctx, obraID, v.ID)
				t.deps.Win.Execute(func() {
					if err != nil {
						t.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					t.confirm.Hide()
					t.deps.Win.ShowMessage(ui.MessageSuccess, "Vínculo removido.")
					t.deps.Router.Refresh(auth.ViewObraDetail)
				})
			}()
		})
}
