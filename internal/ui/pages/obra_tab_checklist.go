package pages

import (
	"fmt"
	"os"
	"path/filepath"

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
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// checklistTab é a aba de checklist de uma obra. O toggle pendente↔feito é
// otimista: a UI muda na hora e reverte se o backend recusar.
type checklistTab struct {
	deps *Deps

	ls       loadState
	lastObra int64
	rows     []*checklistRow
	list     widget.List

	addBtn widget.Clickable

	// Modal de novo item.
	modal         *components.Modal
	tituloEd      widget.Editor
	descEd        widget.Editor
	responsavelEd widget.Editor
	prazoEd       widget.Editor
	saveBtn       widget.Clickable
	busy          bool

	// Modal de anexos do item selecionado.
	anexosModal  *components.Modal
	anexosItem   models.ChecklistItem
	anexoPathEd  widget.Editor
	anexoAddBtn  widget.Clickable
	anexoBusy    bool
	anexosDelete []*anexoRow
	anexosList   widget.List

	confirm *components.ConfirmDialog
}

type checklistRow struct {
	item    models.ChecklistItem
	done    widget.Bool
	pending bool // toggle em voo; evita reentrada
	anexos  widget.Clickable
	del     widget.Clickable
}

type anexoRow struct {
	anexo models.ChecklistAnexo
	del   widget.Clickable
}

func newChecklistTab(deps *Deps) *checklistTab {
	t := &checklistTab{
		deps:        deps,
		modal:       components.NewModal(),
		anexosModal: components.NewModal(),
		confirm:     components.NewConfirmDialog(),
	}
	t.list.Axis = layout.Vertical
	t.anexosList.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{&t.tituloEd, &t.descEd, &t.responsavelEd, &t.prazoEd, &t.anexoPathEd} {
		ed.SingleLine = true
	}
	return t
}

func (t *checklistTab) Label() string { return "Checklist" }

func (t *checklistTab) ensure(obraID int64, key uint64) {
	if !t.ls.needsLoad(key) && t.lastObra == obraID {
		return
	}
	t.lastObra = obraID
	seq := t.ls.begin(key)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		items, err := t.deps.Checklist.ListByObra(ctx, obraID)

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
				for _, item := range items {
					row := &checklistRow{item: item}
					row.done.Value = item.Status == models.ChecklistStatusFeito
					t.rows = append(t.rows, row)
				}
			}
		})
	}()
}

// toggle aplica a mudança otimista e dispara a persistência.
func (t *checklistTab) toggle(row *checklistRow) {
	if row.pending {
		row.done.Value = row.item.Status == models.ChecklistStatusFeito
		return
	}
	row.pending = true

	newStatus := models.ChecklistStatusPendente
	if row.done.Value {
		newStatus = models.ChecklistStatusFeito
	}
	oldStatus := row.item.Status
	row.item.Status = newStatus
	itemID := row.item.ID

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Checklist.SetStatus(ctx, itemID, newStatus)

		t.deps.Win.Execute(func() {
			row.pending = false
			if err != nil {
				appLogger.Warnf("Falha ao alternar status do item %d; revertendo: %v", itemID, err)
				row.item.Status = oldStatus
				row.done.Value = oldStatus == models.ChecklistStatusFeito
				t.deps.Win.ShowMessage(ui.MessageError, core.UserMessage(err, msgFalhaSalvar))
			}
		})
	}()
}

func (t *checklistTab) Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions {
	t.ensure(obraID, key)

	if t.addBtn.Clicked(gtx) && t.deps.CanManage() {
		t.openModal()
	}
	for _, row := range t.rows {
		if row.done.Update(gtx) {
			t.toggle(row)
		}
		if row.anexos.Clicked(gtx) {
			t.openAnexos(row.item)
		}
		if row.del.Clicked(gtx) && t.deps.CanManage() {
			t.askDelete(row.item)
		}
	}

	var actions []layout.FlexChild
	if t.deps.CanManage() {
		actions = append(actions, layout.Rigid(ui.PrimaryButton(th, &t.addBtn, "Nova Tarefa").Layout))
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
			return emptyHint(th, "Nenhuma tarefa nesta obra.")(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &t.list).Layout(gtx, len(t.rows), func(gtx layout.Context, i int) layout.Dimensions {
				return t.layoutItemRow(gtx, th, t.rows[i])
			})
		}),
	)

	t.layoutModal(gtx, th, obraID)
	t.layoutAnexosModal(gtx, th)
	t.confirm.Layout(gtx, th)
	return dims
}

func (t *checklistTab) layoutItemRow(gtx layout.Context, th *material.Theme, row *checklistRow) layout.Dimensions {
	item := row.item
	sub := ""
	if item.Prazo != nil {
		sub = "Prazo: " + utils.FormatDate(*item.Prazo)
	}
	if item.ResponsavelNome != "" {
		if sub != "" {
			sub += " · "
		}
		sub += item.ResponsavelNome
	}

	cells := []layout.FlexChild{
		layout.Rigid(material.CheckBox(th, &row.done, "").Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body1(th, item.Titulo)
					if row.done.Value {
						lbl.Color = ui.Colors.TextMuted
					}
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if sub == "" {
						return layout.Dimensions{}
					}
					lbl := material.Caption(th, sub)
					lbl.Color = ui.Colors.TextMuted
					return lbl.Layout(gtx)
				}),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if item.StatusDisplay == "" {
				return layout.Dimensions{}
			}
			return layout.Inset{Right: ui.DefaultVSpacer}.Layout(gtx,
				components.StatusBadge(th, item.StatusDisplay))
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Caption(th, fmt.Sprintf("%d/%d fotos", len(item.Anexos), models.ChecklistMaxAnexos))
			lbl.Color = ui.Colors.TextMuted
			return layout.Inset{Right: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
		}),
		iconAction(th, &row.anexos, ui.IconAttach, "Anexos"),
	}
	if t.deps.CanManage() {
		cells = append(cells, iconAction(th, &row.del, ui.IconDelete, "Remover"))
	}
	return tableRow(cells...)(gtx)
}

// --- Nova tarefa ---

func (t *checklistTab) openModal() {
	t.busy = false
	t.tituloEd.SetText("")
	t.descEd.SetText("")
	t.responsavelEd.SetText("")
	t.prazoEd.SetText("")
	t.modal.Show()
}

func (t *checklistTab) submit(obraID int64) {
	if t.busy {
		return
	}
	t.busy = true
	t.modal.SetError("")

	input := models.ChecklistItemCreate{
		Titulo:    t.tituloEd.Text(),
		Descricao: t.descEd.Text(),
	}
	if id := parseID(t.responsavelEd.Text()); id > 0 {
		input.ResponsavelUserID = &id
	}
	if p := t.prazoEd.Text(); p != "" {
		input.Prazo = &p
	}

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Checklist.Create(ctx, obraID, input)

		t.deps.Win.Execute(func() {
			t.busy = false
			if err != nil {
				t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.modal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Tarefa criada!")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *checklistTab) layoutModal(gtx layout.Context, th *material.Theme, obraID int64) {
	if !t.modal.Visible() {
		return
	}
	if t.saveBtn.Clicked(gtx) {
		t.submit(obraID)
	}

	t.modal.Layout(gtx, th, "Nova Tarefa",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(formField(th, "Título", &t.tituloEd, "O que precisa ser feito")),
				layout.Rigid(formField(th, "Descrição", &t.descEd, "Opcional")),
				layout.Rigid(formField(th, "ID do responsável", &t.responsavelEd, "Opcional")),
				layout.Rigid(formField(th, "Prazo", &t.prazoEd, "AAAA-MM-DD (opcional)")),
			)
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

// --- Anexos ---

func (t *checklistTab) openAnexos(item models.ChecklistItem) {
	t.anexoBusy = false
	t.anexosItem = item
	t.anexoPathEd.SetText("")
	t.anexosDelete = t.anexosDelete[:0]
	for _, a := range item.Anexos {
		t.anexosDelete = append(t.anexosDelete, &anexoRow{anexo: a})
	}
	t.anexosModal.Show()
}

func (t *checklistTab) submitAnexo() {
	if t.anexoBusy {
		return
	}
	path := t.anexoPathEd.Text()
	if path == "" {
		t.anexosModal.SetError("Informe o caminho do ficheiro da foto.")
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.anexosModal.SetError("Não foi possível ler o ficheiro da foto.")
		return
	}

	t.anexoBusy = true
	t.anexosModal.SetError("")
	item := t.anexosItem
	filename := filepath.Base(path)

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Checklist.UploadAnexo(ctx, item, filename, content)

		t.deps.Win.Execute(func() {
			t.anexoBusy = false
			if err != nil {
				t.anexosModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.anexosModal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Foto anexada!")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *checklistTab) deleteAnexo(anexoID int64) {
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Checklist.DeleteAnexo(ctx, anexoID)

		t.deps.Win.Execute(func() {
			if err != nil {
				t.anexosModal.SetError(core.UserMessage(err, msgFalhaRemover))
				return
			}
			t.anexosModal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Anexo removido.")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *checklistTab) layoutAnexosModal(gtx layout.Context, th *material.Theme) {
	if !t.anexosModal.Visible() {
		return
	}
	if t.anexoAddBtn.Clicked(gtx) {
		t.submitAnexo()
	}
	for _, row := range t.anexosDelete {
		if row.del.Clicked(gtx) && t.deps.CanManage() {
			t.deleteAnexo(row.anexo.ID)
		}
	}

	t.anexosModal.Layout(gtx, th, "Fotos de \""+t.anexosItem.Titulo+"\"",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if len(t.anexosDelete) == 0 {
						return emptyHint(th, "Nenhuma foto anexada.")(gtx)
					}
					return material.List(th, &t.anexosList).Layout(gtx, len(t.anexosDelete), func(gtx layout.Context, i int) layout.Dimensions {
						row := t.anexosDelete[i]
						cells := []layout.FlexChild{
							cell(th, row.anexo.Filename, 2),
							cell(th, utils.FormatDateTime(row.anexo.UploadedAt), 1),
						}
						if t.deps.CanManage() {
							cells = append(cells, iconAction(th, &row.del, ui.IconDelete, "Remover anexo"))
						}
						return tableRow(cells...)(gtx)
					})
				}),
				layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if len(t.anexosDelete) >= models.ChecklistMaxAnexos {
						lbl := material.Caption(th, fmt.Sprintf("Limite de %d fotos atingido.", models.ChecklistMaxAnexos))
						lbl.Color = ui.Colors.WarningText
						return lbl.Layout(gtx)
					}
					return formField(th, "Nova foto (caminho do ficheiro)", &t.anexoPathEd, "/caminho/para/foto.jpg")(gtx)
				}),
			)
		},
		func(gtx layout.Context) layout.Dimensions {
			if len(t.anexosDelete) >= models.ChecklistMaxAnexos {
				return layout.Dimensions{}
			}
			if t.anexoBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &t.anexoAddBtn, "Anexar").Layout(gtx)
		},
	)
}

func (t *checklistTab) askDelete(item models.ChecklistItem) {
	t.confirm.Show("Remover tarefa",
		"Remover a tarefa \""+item.Titulo+"\" e suas fotos?",
		"Remover",
		func() {
			go func() {
				ctx, cancel := t.deps.Ctx()
				defer cancel()
				err := t.deps.Checklist.Delete(ctx, item.ID)
				t.deps.Win.Execute(func() {
					if err != nil {
						t.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					t.confirm.Hide()
					t.deps.Win.ShowMessage(ui.MessageSuccess, "Tarefa removida.")
					t.deps.Router.Refresh(auth.ViewObraDetail)
				})
			}()
		})
}
