package pages

import (
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

// GlobalChecklistPage é a visão de tarefas entre obras: minhas tarefas e
// tarefas atrasadas. Clicar em uma tarefa abre a obra correspondente.
type GlobalChecklistPage struct {
	deps *Deps

	ls      loadState
	minhas  []*globalTaskRow
	atrasos []*globalTaskRow
	list    widget.List
}

type globalTaskRow struct {
	item models.ChecklistItem
	open widget.Clickable
}

// NewGlobalChecklistPage cria a página de checklist global.
func NewGlobalChecklistPage(deps *Deps) *GlobalChecklistPage {
	p := &GlobalChecklistPage{deps: deps}
	p.list.Axis = layout.Vertical
	return p
}

// OnShow não faz nada; o fetch é dirigido pela chave de atualização.
func (p *GlobalChecklistPage) OnShow() {}

func (p *GlobalChecklistPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		report, err := p.deps.Checklist.GlobalReport(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.minhas = toTaskRows(report.MyTasks)
				p.atrasos = toTaskRows(report.OverdueTasks)
			}
		})
	}()
}

func toTaskRows(items []models.ChecklistItem) []*globalTaskRow {
	out := make([]*globalTaskRow, 0, len(items))
	for _, item := range items {
		out = append(out, &globalTaskRow{item: item})
	}
	return out
}

// Layout desenha as duas seções de tarefas.
func (p *GlobalChecklistPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewChecklist)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	for _, row := range append(append([]*globalTaskRow{}, p.minhas...), p.atrasos...) {
		if row.open.Clicked(gtx) && row.item.ObraID != 0 {
			p.deps.Router.NavigateToObra(row.item.ObraID)
		}
	}

	sections := p.buildSections(th)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Checklist")),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &p.list).Layout(gtx, len(sections), func(gtx layout.Context, i int) layout.Dimensions {
				return sections[i](gtx)
			})
		}),
	)
}

func (p *GlobalChecklistPage) buildSections(th *material.Theme) []layout.Widget {
	if p.ls.loading || p.ls.errMsg != "" {
		return nil
	}
	var out []layout.Widget
	out = append(out, sectionHeading(th, "Minhas tarefas"))
	out = append(out, p.taskRows(th, p.minhas, "Nenhuma tarefa atribuída a você.")...)
	out = append(out, sectionHeading(th, "Atrasadas"))
	out = append(out, p.taskRows(th, p.atrasos, "Nenhuma tarefa atrasada.")...)
	return out
}

func sectionHeading(th *material.Theme, title string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.H6(th, title)
		lbl.Font.Weight = font.Bold
		return layout.Inset{Top: ui.LargeVSpacer, Bottom: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
	}
}

func (p *GlobalChecklistPage) taskRows(th *material.Theme, rows []*globalTaskRow, emptyMsg string) []layout.Widget {
	if len(rows) == 0 {
		return []layout.Widget{emptyHint(th, emptyMsg)}
	}
	var out []layout.Widget
	for _, row := range rows {
		row := row
		out = append(out, func(gtx layout.Context) layout.Dimensions {
			return row.open.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				item := row.item
				prazo := "—"
				if item.Prazo != nil {
					prazo = utils.FormatDate(*item.Prazo)
				}
				badge := item.StatusDisplay
				if badge == "" {
					badge = item.Status
				}
				return tableRow(
					cell(th, item.Titulo, 2),
					cell(th, item.ObraNome, 1.5),
					cell(th, prazo, 1),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return components.StatusBadge(th, badge)(gtx)
					}),
				)(gtx)
			})
		})
	}
	return out
}
