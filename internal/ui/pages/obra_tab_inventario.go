package pages

import (
	"strconv"

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

// inventarioTab é a aba de inventário de uma obra.
type inventarioTab struct {
	deps *Deps

	ls       loadState
	lastObra int64
	rows     []*inventarioRow
	list     widget.List

	addBtn widget.Clickable

	modal      *components.Modal
	editingID  int64
	tipoEnum   widget.Enum
	nomeEd     widget.Editor
	descEd     widget.Editor
	qtdEd      widget.Editor
	custoEd    widget.Editor
	statusEnum widget.Enum
	saveBtn    widget.Clickable
	busy       bool

	confirm *components.ConfirmDialog
}

type inventarioRow struct {
	item models.InventarioItem
	edit widget.Clickable
	del  widget.Clickable
}

func newInventarioTab(deps *Deps) *inventarioTab {
	t := &inventarioTab{
		deps:    deps,
		modal:   components.NewModal(),
		confirm: components.NewConfirmDialog(),
	}
	t.list.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{&t.nomeEd, &t.descEd, &t.qtdEd, &t.custoEd} {
		ed.SingleLine = true
	}
	return t
}

func (t *inventarioTab) Label() string { return "Inventário" }

func (t *inventarioTab) ensure(obraID int64, key uint64) {
	if !t.ls.needsLoad(key) && t.lastObra == obraID {
		return
	}
	t.lastObra = obraID
	seq := t.ls.begin(key)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		items, err := t.deps.Inventario.ListByObra(ctx, obraID)

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
					t.rows = append(t.rows, &inventarioRow{item: item})
				}
			}
		})
	}()
}

func (t *inventarioTab) Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions {
	t.ensure(obraID, key)

	if t.addBtn.Clicked(gtx) && t.deps.CanManage() {
		t.openModal(nil)
	}
	for _, row := range t.rows {
		if !t.deps.CanManage() {
			break
		}
		if row.edit.Clicked(gtx) {
			item := row.item
			t.openModal(&item)
		}
		if row.del.Clicked(gtx) {
			t.askDelete(row.item)
		}
	}

	var actions []layout.FlexChild
	if t.deps.CanManage() {
		actions = append(actions, layout.Rigid(ui.PrimaryButton(th, &t.addBtn, "Novo Item").Layout))
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
			return emptyHint(th, "Nenhum item de inventário nesta obra.")(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if len(t.rows) == 0 {
				return layout.Dimensions{}
			}
			return tableRow(
				headerCell(th, "Nome", 2),
				headerCell(th, "Tipo", 1),
				headerCell(th, "Qtd", 0.6),
				headerCell(th, "Custo unit.", 1),
				headerCell(th, "Status", 1),
				layout.Rigid(layout.Spacer{Width: unit.Dp(64)}.Layout),
			)(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &t.list).Layout(gtx, len(t.rows), func(gtx layout.Context, i int) layout.Dimensions {
				row := t.rows[i]
				item := row.item
				cells := []layout.FlexChild{
					cell(th, item.Nome, 2),
					cell(th, item.Tipo, 1),
					cell(th, strconv.Itoa(item.Quantidade), 0.6),
					cell(th, utils.FormatCurrency(item.CustoUnitario), 1),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return components.StatusBadge(th, item.StatusMovimentacao)(gtx)
					}),
				}
				if t.deps.CanManage() {
					cells = append(cells,
						iconAction(th, &row.edit, ui.IconEdit, "Editar"),
						iconAction(th, &row.del, ui.IconDelete, "Remover"),
					)
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)

	t.layoutModal(gtx, th, obraID)
	t.confirm.Layout(gtx, th)
	return dims
}

func (t *inventarioTab) openModal(item *models.InventarioItem) {
	t.busy = false
	if item == nil {
		t.editingID = 0
		t.tipoEnum.Value = models.InventarioTipoMaterial
		t.nomeEd.SetText("")
		t.descEd.SetText("")
		t.qtdEd.SetText("")
		t.custoEd.SetText("")
		t.statusEnum.Value = models.InventarioStatusEmEstoque
	} else {
		t.editingID = item.ID
		t.tipoEnum.Value = item.Tipo
		t.nomeEd.SetText(item.Nome)
		t.descEd.SetText(item.Descricao)
		t.qtdEd.SetText(strconv.Itoa(item.Quantidade))
		t.custoEd.SetText(utils.FormatCurrencyInput(strconv.FormatFloat(item.CustoUnitario*100, 'f', 0, 64)))
		t.statusEnum.Value = item.StatusMovimentacao
	}
	t.modal.Show()
}

func (t *inventarioTab) submit(obraID int64) {
	if t.busy {
		return
	}

	qtd, err := utils.ValidateQuantity(t.qtdEd.Text())
	if err != nil {
		t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
		return
	}

	t.busy = true
	t.modal.SetError("")

	input := models.InventarioItemInput{
		Tipo:               t.tipoEnum.Value,
		Nome:               t.nomeEd.Text(),
		Descricao:          t.descEd.Text(),
		Quantidade:         qtd,
		CustoUnitario:      utils.ParseCurrency(t.custoEd.Text()),
		StatusMovimentacao: t.statusEnum.Value,
	}
	editingID := t.editingID

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()

		var err error
		if editingID == 0 {
			err = t.deps.Inventario.Create(ctx, obraID, input)
		} else {
			err = t.deps.Inventario.Update(ctx, editingID, input)
		}

		t.deps.Win.Execute(func() {
			t.busy = false
			if err != nil {
				t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.modal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Item salvo com sucesso!")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *inventarioTab) layoutModal(gtx layout.Context, th *material.Theme, obraID int64) {
	if !t.modal.Visible() {
		return
	}
	if t.saveBtn.Clicked(gtx) {
		t.submit(obraID)
	}
	handleCurrencyInput(gtx, &t.custoEd)

	title := "Novo Item"
	if t.editingID != 0 {
		title = "Editar Item"
	}

	t.modal.Layout(gtx, th, title,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(formField(th, "Nome", &t.nomeEd, "Ex: Betoneira")),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Tipo", func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							radioOption(th, &t.tipoEnum, models.InventarioTipoFerramenta, "Ferramenta"),
							radioOption(th, &t.tipoEnum, models.InventarioTipoMaterial, "Material"),
							radioOption(th, &t.tipoEnum, models.InventarioTipoEPI, "EPI"),
						)
					}, "")(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				layout.Rigid(formField(th, "Descrição", &t.descEd, "Opcional")),
				layout.Rigid(formField(th, "Quantidade", &t.qtdEd, "0")),
				layout.Rigid(formField(th, "Custo unitário (R$)", &t.custoEd, "0,00")),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Status", func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							radioOption(th, &t.statusEnum, models.InventarioStatusEmEstoque, "Em Estoque"),
							radioOption(th, &t.statusEnum, models.InventarioStatusEmUso, "Em Uso"),
							radioOption(th, &t.statusEnum, models.InventarioStatusDescartado, "Descartado"),
						)
					}, "")(gtx)
				}),
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

func (t *inventarioTab) askDelete(item models.InventarioItem) {
	t.confirm.Show("Remover item",
		"Remover \""+item.Nome+"\" do inventário?",
		"Remover",
		func() {
			go func() {
				ctx, cancel := t.deps.Ctx()
				defer cancel()
				err := t.deps.Inventario.Delete(ctx, item.ID)
				t.deps.Win.Execute(func() {
					if err != nil {
						t.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					t.confirm.Hide()
					t.deps.Win.ShowMessage(ui.MessageSuccess, "Item removido.")
					t.deps.Router.Refresh(auth.ViewObraDetail)
				})
			}()
		})
}
