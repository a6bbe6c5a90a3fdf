package pages

import (
	"gioui.org/font"
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

// obraTab é uma aba do detalhe de obra. Todas compartilham a chave de
// atualização da view obra_detail: incrementá-la recarrega cabeçalho e abas.
type obraTab interface {
	Label() string
	Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions
}

// ObraDetailPage é o detalhe de uma obra: cabeçalho + abas de funcionários,
// financeiro, inventário, checklist e documentos.
type ObraDetailPage struct {
	deps *Deps

	ls         loadState
	obra       *models.Obra
	lastObraID int64

	backBtn    widget.Clickable
	tabs       []obraTab
	tabButtons []*widget.Clickable
	activeTab  int
}

// NewObraDetailPage cria o detalhe de obra com suas abas.
func NewObraDetailPage(deps *Deps) *ObraDetailPage {
	p := &ObraDetailPage{deps: deps}
	obraGetter := func() *models.Obra { return p.obra }
	p.tabs = []obraTab{
		newVinculosTab(deps),
		newFinanceiroTab(deps, obraGetter),
		newInventarioTab(deps),
		newChecklistTab(deps),
		newDocumentosTab(deps),
	}
	for range p.tabs {
		p.tabButtons = append(p.tabButtons, new(widget.Clickable))
	}
	return p
}

// OnShow volta para a primeira aba ao abrir outra obra.
func (p *ObraDetailPage) OnShow() {
	if p.deps.Router.SelectedObraID() != p.lastObraID {
		p.activeTab = 0
	}
}

func (p *ObraDetailPage) load(obraID int64, key uint64) {
	p.lastObraID = obraID
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		obra, err := p.deps.Obras.Get(ctx, obraID)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.obra = obra
			}
		})
	}()
}

// Layout desenha cabeçalho, abas e o conteúdo da aba ativa.
func (p *ObraDetailPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	obraID := p.deps.Router.SelectedObraID()
	if obraID == 0 {
		return material.Body1(th, "Nenhuma obra selecionada.").Layout(gtx)
	}
	key := p.deps.Router.RefreshKey(auth.ViewObraDetail)
	if p.ls.needsLoad(key) || obraID != p.lastObraID {
		p.load(obraID, key)
	}

	if p.backBtn.Clicked(gtx) {
		p.deps.Router.NavigateToDashboard()
	}
	for i, btn := range p.tabButtons {
		if btn.Clicked(gtx) {
			p.activeTab = i
		}
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(p.layoutHeader(th)),
		layout.Rigid(p.layoutTabStrip(th)),
		layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return p.tabs[p.activeTab].Layout(gtx, th, obraID, key)
		}),
	)
}

func (p *ObraDetailPage) layoutHeader(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: ui.LargeVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				iconAction(th, &p.backBtn, ui.IconBack, "Voltar"),
				layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					if p.obra == nil {
						return statusLine(th, &p.ls)(gtx)
					}
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							h := material.H5(th, p.obra.Nome)
							h.Font.Weight = font.Bold
							return h.Layout(gtx)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
								layout.Rigid(components.StatusBadge(th, p.obra.Status)),
								layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									lbl := material.Body2(th, "Orçamento atual: "+utils.FormatCurrency(p.obra.OrcamentoAtual))
									lbl.Color = ui.Colors.TextMuted
									return lbl.Layout(gtx)
								}),
							)
						}),
					)
				}),
			)
		})
	}
}

func (p *ObraDetailPage) layoutTabStrip(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, len(p.tabs))
		for i := range p.tabs {
			i := i
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return p.tabButtons[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					selected := i == p.activeTab
					lbl := material.Body1(th, p.tabs[i].Label())
					lbl.Color = ui.Colors.TextMuted
					if selected {
						lbl.Color = ui.Colors.Primary
						lbl.Font.Weight = font.Bold
					}
					return layout.Inset{
						Top: unit.Dp(6), Bottom: unit.Dp(6),
						Left: unit.Dp(12), Right: unit.Dp(12),
					}.Layout(gtx, lbl.Layout)
				})
			}))
		}
		return layout.Flex{}.Layout(gtx, children...)
	}
}
