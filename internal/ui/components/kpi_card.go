package components

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// KPICard desenha um cartão de indicador: rótulo pequeno em cima, valor em
// destaque embaixo, com a cor de acento fornecida.
func KPICard(th *material.Theme, title, value string, accent color.NRGBA) layout.Widget {
	return ui.Card(th, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(th, title)
				lbl.Color = ui.Colors.TextMuted
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: ui.TightVSpacer}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(20), value)
				lbl.Font.Weight = font.Bold
				lbl.Color = accent
				return lbl.Layout(gtx)
			}),
		)
	})
}
