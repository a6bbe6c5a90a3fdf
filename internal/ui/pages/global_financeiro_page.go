package pages

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
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

// GlobalFinanceiroPage é a visão financeira consolidada: fluxo de caixa por
// período e os principais indicadores.
type GlobalFinanceiroPage struct {
	deps *Deps

	periodo     string
	periodoEnum widget.Enum

	ls       loadState
	cashflow *models.CashflowReport
	kpis     *models.KPIReport
	list     widget.List
}

// NewGlobalFinanceiroPage cria a página financeira global.
func NewGlobalFinanceiroPage(deps *Deps) *GlobalFinanceiroPage {
	p := &GlobalFinanceiroPage{deps: deps, periodo: services.PeriodoMensal}
	p.periodoEnum.Value = services.PeriodoMensal
	p.list.Axis = layout.Vertical
	return p
}

// OnShow não faz nada; o fetch é dirigido pela chave de atualização.
func (p *GlobalFinanceiroPage) OnShow() {}

func (p *GlobalFinanceiroPage) load(key uint64) {
	seq := p.ls.begin(key)
	periodo := p.periodo
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		cashflow, err := p.deps.Reports.Cashflow(ctx, periodo)
		var kpis *models.KPIReport
		if err == nil {
			kpis, err = p.deps.Reports.KPIs(ctx)
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
				p.cashflow = cashflow
				p.kpis = kpis
			}
		})
	}()
}

// Layout desenha KPIs e o fluxo de caixa.
func (p *GlobalFinanceiroPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if p.periodoEnum.Update(gtx) && p.periodoEnum.Value != p.periodo {
		p.periodo = p.periodoEnum.Value
		p.deps.Router.Refresh(auth.ViewFinanceiro)
	}

	key := p.deps.Router.RefreshKey(auth.ViewFinanceiro)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Financeiro",
			radioOption(th, &p.periodoEnum, services.PeriodoMensal, "Mensal"),
			radioOption(th, &p.periodoEnum, services.PeriodoSemanal, "Semanal"),
		)),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if p.kpis == nil {
				return layout.Dimensions{}
			}
			saldo := services.SaldoTotal(*p.kpis)
			saldoColor := ui.Colors.Success
			if saldo < 0 {
				saldoColor = ui.Colors.Danger
			}
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, components.KPICard(th, "Receitas", utils.FormatCurrency(p.kpis.TotalReceitas), ui.Colors.Success)),
				layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
				layout.Flexed(1, components.KPICard(th, "Custos", utils.FormatCurrency(p.kpis.TotalCustos), ui.Colors.Danger)),
				layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
				layout.Flexed(1, components.KPICard(th, "Saldo total", utils.FormatCurrency(saldo), saldoColor)),
			)
		}),
		layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if p.cashflow == nil || len(p.cashflow.Labels) == 0 {
				if !p.ls.loading && p.ls.errMsg == "" {
					return emptyHint(th, "Sem movimentações no período.")(gtx)
				}
				return layout.Dimensions{}
			}
			return p.layoutCashflow(gtx, th)
		}),
	)
}

// layoutCashflow desenha uma linha por período com barras proporcionais de
// entrada e saída.
func (p *GlobalFinanceiroPage) layoutCashflow(gtx layout.Context, th *material.Theme) layout.Dimensions {
	cf := p.cashflow
	maxVal := 0.0
	for i := range cf.Labels {
		if cf.Entradas[i] > maxVal {
			maxVal = cf.Entradas[i]
		}
		if cf.Saidas[i] > maxVal {
			maxVal = cf.Saidas[i]
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	return material.List(th, &p.list).Layout(gtx, len(cf.Labels), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body2(th, cf.Labels[i]).Layout),
				layout.Rigid(cashflowBar(th, "Entradas", cf.Entradas[i], maxVal, ui.Colors.Success)),
				layout.Rigid(cashflowBar(th, "Saídas", cf.Saidas[i], maxVal, ui.Colors.Danger)),
			)
		})
	})
}

func cashflowBar(th *material.Theme, label string, value, maxVal float64, barColor color.NRGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(th, label)
				lbl.Color = ui.Colors.TextMuted
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(64))
				return lbl.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				height := gtx.Dp(unit.Dp(10))
				full := gtx.Constraints.Max.X - gtx.Dp(unit.Dp(110))
				if full < 0 {
					full = 0
				}
				width := int(float64(full) * (value / maxVal))
				if width > 0 {
					defer clip.Rect{Max: image.Pt(width, height)}.Push(gtx.Ops).Pop()
					paint.ColorOp{Color: barColor}.Add(gtx.Ops)
					paint.PaintOp{}.Add(gtx.Ops)
				}
				return layout.Dimensions{Size: image.Pt(full, height)}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(th, utils.FormatCurrency(value))
				return layout.Inset{Left: unit.Dp(6)}.Layout(gtx, lbl.Layout)
			}),
		)
	}
}
