package pages

import (
	"strconv"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/components"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// GlobalInventarioPage é a visão consolidada do inventário: o que está no
// Estoque Central e o que está espalhado pelas obras.
type GlobalInventarioPage struct {
	deps *Deps

	ls     loadState
	report *models.GlobalInventoryReport
	list   widget.List

	exportBtn widget.Clickable
}

// NewGlobalInventarioPage cria a página de inventário global.
func NewGlobalInventarioPage(deps *Deps) *GlobalInventarioPage {
	p := &GlobalInventarioPage{deps: deps}
	p.list.Axis = layout.Vertical
	return p
}

// OnShow não faz nada; o fetch é dirigido pela chave de atualização.
func (p *GlobalInventarioPage) OnShow() {}

func (p *GlobalInventarioPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		report, err := p.deps.Inventario.GlobalReport(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.report = report
			}
		})
	}()
}

// Layout desenha as duas seções do relatório.
func (p *GlobalInventarioPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewInventario)
	if p.ls.needsLoad(key) {
		p.load(key)
	}
	if p.exportBtn.Clicked(gtx) && p.deps.CanManage() {
		p.export()
	}

	var actions []layout.FlexChild
	if p.deps.CanManage() {
		actions = append(actions, layout.Rigid(ui.SecondaryButton(th, &p.exportBtn, "Exportar XLSX").Layout))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Inventário Global", actions...)),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if p.report == nil {
				return layout.Dimensions{}
			}
			// Uma única lista: seção do estoque, depois a seção das obras.
			sections := p.buildSections(th)
			return material.List(th, &p.list).Layout(gtx, len(sections), func(gtx layout.Context, i int) layout.Dimensions {
				return sections[i](gtx)
			})
		}),
	)
}

func (p *GlobalInventarioPage) buildSections(th *material.Theme) []layout.Widget {
	var out []layout.Widget
	out = append(out, p.sectionTitle(th, "Estoque Central"))
	out = append(out, p.itemRows(th, p.report.StockItems, "Nenhum item no Estoque Central.")...)
	out = append(out, p.sectionTitle(th, "Em obras"))
	out = append(out, p.itemRows(th, p.report.ObraItems, "Nenhum item alocado em obras.")...)
	return out
}

func (p *GlobalInventarioPage) sectionTitle(th *material.Theme, title string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.H6(th, title)
		lbl.Font.Weight = font.Bold
		return layout.Inset{Top: ui.LargeVSpacer, Bottom: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
	}
}

func (p *GlobalInventarioPage) itemRows(th *material.Theme, items []models.InventarioItem, emptyMsg string) []layout.Widget {
	if len(items) == 0 {
		return []layout.Widget{emptyHint(th, emptyMsg)}
	}
	out := []layout.Widget{tableRow(
		headerCell(th, "Nome", 2),
		headerCell(th, "Obra", 1.5),
		headerCell(th, "Tipo", 1),
		headerCell(th, "Qtd", 0.6),
		headerCell(th, "Custo unit.", 1),
		headerCell(th, "Status", 1),
	)}
	for _, item := range items {
		item := item
		out = append(out, tableRow(
			cell(th, item.Nome, 2),
			cell(th, item.ObraNome, 1.5),
			cell(th, item.Tipo, 1),
			cell(th, strconv.Itoa(item.Quantidade), 0.6),
			cell(th, utils.FormatCurrency(item.CustoUnitario), 1),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return components.StatusBadge(th, item.StatusMovimentacao)(gtx)
			}),
		))
	}
	return out
}

func (p *GlobalInventarioPage) export() {
	if p.report == nil {
		p.deps.Win.ShowMessage(ui.MessageInfo, "Nada para exportar.")
		return
	}
	stock, obras := p.report.StockItems, p.report.ObraItems

	go func() {
		var inputs []utils.DataInput
		stockInput, err := utils.InventarioDataInput(stock, "Estoque Central")
		if err == nil {
			inputs = append(inputs, stockInput)
			var obraInput utils.DataInput
			obraInput, err = utils.InventarioDataInput(obras, "Em Obras")
			if err == nil {
				inputs = append(inputs, obraInput)
				var path string
				path, err = utils.ExportToXLSX(inputs, utils.TimestampedFilename("inventario_global"), p.deps.Cfg)
				if err == nil {
					p.deps.Win.Execute(func() {
						p.deps.Win.ShowMessage(ui.MessageSuccess, "Exportado para "+path)
					})
					return
				}
			}
		}
		exportErr := err
		p.deps.Win.Execute(func() {
			p.deps.Win.ShowMessage(ui.MessageError, core.UserMessage(exportErr, "Falha ao exportar."))
		})
	}()
}
