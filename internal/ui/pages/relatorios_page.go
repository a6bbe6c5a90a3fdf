package pages

import (
	"image/color"
	"strconv"

	"gioui.org/layout"
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

// RelatoriosPage mostra os KPIs consolidados de todas as obras e exporta o
// resumo para XLSX.
type RelatoriosPage struct {
	deps *Deps

	ls   loadState
	kpis *models.KPIReport
	list widget.List

	exportBtn widget.Clickable
}

// NewRelatoriosPage cria a página de relatórios.
func NewRelatoriosPage(deps *Deps) *RelatoriosPage {
	p := &RelatoriosPage{deps: deps}
	p.list.Axis = layout.Vertical
	return p
}

func (p *RelatoriosPage) OnShow() {}

func (p *RelatoriosPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		kpis, err := p.deps.Reports.KPIs(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.kpis = kpis
			}
		})
	}()
}

func (p *RelatoriosPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewRelatorios)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	if p.exportBtn.Clicked(gtx) && p.deps.CanManage() {
		p.export()
	}

	var headerActions []layout.FlexChild
	if p.deps.CanManage() && p.kpis != nil {
		headerActions = append(headerActions,
			layout.Rigid(ui.SecondaryButton(th, &p.exportBtn, "Exportar XLSX").Layout))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Relatórios", headerActions...)),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if p.ls.loading || p.ls.errMsg != "" || p.kpis == nil {
				return layout.Dimensions{}
			}
			return p.layoutKPIs(gtx, th)
		}),
	)
}

func (p *RelatoriosPage) layoutKPIs(gtx layout.Context, th *material.Theme) layout.Dimensions {
	kpis := *p.kpis
	saldo := services.SaldoTotal(kpis)
	saldoColor := ui.Colors.Success
	if saldo < 0 {
		saldoColor = ui.Colors.Danger
	}

	cards := [][]layout.FlexChild{
		{
			kpiFlex(th, "Orçamento Atual Total", utils.FormatCurrency(kpis.TotalOrcamentoAtual), ui.Colors.Primary),
			kpiFlex(th, "Total de Receitas", utils.FormatCurrency(kpis.TotalReceitas), ui.Colors.Success),
			kpiFlex(th, "Total de Custos", utils.FormatCurrency(kpis.TotalCustos), ui.Colors.Danger),
			kpiFlex(th, "Saldo Total", utils.FormatCurrency(saldo), saldoColor),
		},
		{
			kpiFlex(th, "Obras Ativas", strconv.Itoa(kpis.ObrasAtivas), ui.Colors.Info),
			kpiFlex(th, "Obras Concluídas", strconv.Itoa(kpis.ObrasConcluidas), ui.Colors.Success),
			kpiFlex(th, "Total de Obras", strconv.Itoa(kpis.TotalObras), ui.Colors.Grey600),
		},
	}

	return material.List(th, &p.list).Layout(gtx, len(cards), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Spacing: layout.SpaceEvenly}.Layout(gtx, cards[i]...)
		})
	})
}

func kpiFlex(th *material.Theme, title, value string, accent color.NRGBA) layout.FlexChild {
	return layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Right: ui.DefaultVSpacer}.Layout(gtx,
			components.KPICard(th, title, value, accent))
	})
}

func (p *RelatoriosPage) export() {
	if p.kpis == nil {
		p.deps.Win.ShowMessage(ui.MessageInfo, "Nada para exportar.")
		return
	}
	kpis := *p.kpis

	go func() {
		input, err := utils.KPIDataInput(kpis, services.SaldoTotal(kpis))
		if err == nil {
			var path string
			path, err = utils.ExportToXLSX([]utils.DataInput{input},
				utils.TimestampedFilename("relatorio_kpis"), p.deps.Cfg)
			if err == nil {
				p.deps.Win.Execute(func() {
					p.deps.Win.ShowMessage(ui.MessageSuccess, "Exportado para "+path)
				})
				return
			}
		}
		exportErr := err
		p.deps.Win.Execute(func() {
			p.deps.Win.ShowMessage(ui.MessageError, core.UserMessage(exportErr, "Falha ao exportar."))
		})
	}()
}
