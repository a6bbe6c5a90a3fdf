package pages

import (
	"os"
	"path/filepath"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// documentosTab é a aba de documentos de uma obra.
type documentosTab struct {
	deps *Deps

	ls       loadState
	lastObra int64
	rows     []*documentoRow
	list     widget.List

	addBtn widget.Clickable

	modal     *components.Modal
	tipoEd    widget.Editor
	pathEd    widget.Editor
	uploadBtn widget.Clickable
	busy      bool

	confirm *components.ConfirmDialog
}

type documentoRow struct {
	doc models.Documento
	del widget.Clickable
}

func newDocumentosTab(deps *Deps) *documentosTab {
	t := &documentosTab{
		deps:    deps,
		modal:   components.NewModal(),
		confirm: components.NewConfirmDialog(),
	}
	t.list.Axis = layout.Vertical
	t.tipoEd.SingleLine = true
	t.pathEd.SingleLine = true
	return t
}

func (t *documentosTab) Label() string { return "Documentos" }

func (t *documentosTab) ensure(obraID int64, key uint64) {
	if !t.ls.needsLoad(key) && t.lastObra == obraID {
		return
	}
	t.lastObra = obraID
	seq := t.ls.begin(key)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		docs, err := t.deps.Documentos.ListByObra(ctx, obraID)

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
				for _, d := range docs {
					t.rows = append(t.rows, &documentoRow{doc: d})
				}
			}
		})
	}()
}

func (t *documentosTab) Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions {
	t.ensure(obraID, key)

	if t.addBtn.Clicked(gtx) && t.deps.CanManage() {
		t.openModal()
	}
	for _, row := range t.rows {
		if row.del.Clicked(gtx) && t.deps.CanManage() {
			t.askDelete(row.doc)
		}
	}

	var actions []layout.FlexChild
	if t.deps.CanManage() {
		actions = append(actions, layout.Rigid(ui.PrimaryButton(th, &t.addBtn, "Enviar Documento").Layout))
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
			return emptyHint(th, "Nenhum documento nesta obra.")(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if len(t.rows) == 0 {
				return layout.Dimensions{}
			}
			return tableRow(
				headerCell(th, "Ficheiro", 2),
				headerCell(th, "Tipo", 1),
				headerCell(th, "Tamanho", 0.8),
				headerCell(th, "Enviado por", 1.2),
				headerCell(th, "Data", 1),
				layout.Rigid(layout.Spacer{Width: unit.Dp(32)}.Layout),
			)(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &t.list).Layout(gtx, len(t.rows), func(gtx layout.Context, i int) layout.Dimensions {
				row := t.rows[i]
				d := row.doc
				cells := []layout.FlexChild{
					cell(th, d.Filename, 2),
					cell(th, d.Tipo, 1),
					cell(th, utils.FormatFileSize(d.FileSize), 0.8),
					cell(th, d.UploadedByNome, 1.2),
					cell(th, utils.FormatDate(d.UploadedAt), 1),
				}
				if t.deps.CanManage() {
					cells = append(cells, iconAction(th, &row.del, ui.IconDelete, "Remover"))
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)

	t.layoutModal(gtx, th, obraID)
	t.confirm.Layout(gtx, th)
	return dims
}

func (t *documentosTab) openModal() {
	t.busy = false
	t.tipoEd.SetText("")
	t.pathEd.SetText("")
	t.modal.Show()
}

func (t *documentosTab) submit(obraID int64) {
	if t.busy {
		return
	}
	path := t.pathEd.Text()
	if path == "" {
		t.modal.SetError("Selecione um ficheiro.")
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.modal.SetError("Não foi possível ler o ficheiro.")
		return
	}

	t.busy = true
	t.modal.SetError("")
	tipo := t.tipoEd.Text()
	filename := filepath.Base(path)

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Documentos.Upload(ctx, obraID, tipo, filename, content)

		t.deps.Win.Execute(func() {
			t.busy = false
			if err != nil {
				t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.modal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Documento enviado!")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *documentosTab) layoutModal(gtx layout.Context, th *material.Theme, obraID int64) {
	if !t.modal.Visible() {
		return
	}
	if t.uploadBtn.Clicked(gtx) {
		t.submit(obraID)
	}

	t.modal.Layout(gtx, th, "Enviar Documento",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(formField(th, "Ficheiro (caminho)", &t.pathEd, "/caminho/para/contrato.pdf")),
				layout.Rigid(formField(th, "Tipo", &t.tipoEd, "Ex: Contrato, Planta, Nota fiscal")),
			)
		},
		func(gtx layout.Context) layout.Dimensions {
			if t.busy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &t.uploadBtn, "Enviar").Layout(gtx)
		},
	)
}

func (t *documentosTab) askDelete(doc models.Documento) {
	t.confirm.Show("Remover documento",
		"Remover o documento \""+doc.Filename+"\"?",
		"Remover",
		func() {
			go func() {
				ctx, cancel := t.deps.Ctx()
				defer cancel()
				err := t.deps.Documentos.Delete(ctx, doc.ID)
				t.deps.Win.Execute(func() {
					if err != nil {
						t.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					t.confirm.Hide()
					t.deps.Win.ShowMessage(ui.MessageSuccess, "Documento removido.")
					t.deps.Router.Refresh(auth.ViewObraDetail)
				})
			}()
		})
}
