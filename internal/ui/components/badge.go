package components

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// Badge desenha um selo pequeno (pílula) com fundo e texto coloridos.
func Badge(th *material.Theme, txt string, fg, bg color.NRGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Caption(th, txt)
		lbl.Color = fg

		macro := op.Record(gtx.Ops)
		dims := layout.Inset{
			Top: unit.Dp(2), Bottom: unit.Dp(2),
			Left: unit.Dp(8), Right: unit.Dp(8),
		}.Layout(gtx, lbl.Layout)
		call := macro.Stop()

		defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, dims.Size.Y/2).Push(gtx.Ops).Pop()
		paint.ColorOp{Color: bg}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		call.Add(gtx.Ops)
		return dims
	}
}

// StatusBadge mapeia um status de domínio para o selo colorido correspondente.
func StatusBadge(th *material.Theme, status string) layout.Widget {
	fg, bg := ui.Colors.Grey800, ui.Colors.Grey200
	switch status {
	case models.ObraStatusEmAndamento, models.ChecklistStatusFeito,
		models.InventarioStatusEmEstoque, models.ImovelStatusAVenda,
		models.TransacaoStatusAtivo:
		fg, bg = ui.Colors.SuccessText, ui.Colors.SuccessBg
	case models.ObraStatusPausada, models.ImovelStatusEmNegociacao,
		models.ChecklistStatusPendente, models.InventarioStatusEmUso:
		fg, bg = ui.Colors.WarningText, ui.Colors.WarningBg
	case models.ObraStatusCancelada, models.InventarioStatusDescartado,
		models.TransacaoStatusCancelado:
		fg, bg = ui.Colors.DangerText, ui.Colors.DangerBg
	case models.ObraStatusConcluida, models.ImovelStatusVendido:
		fg, bg = ui.Colors.InfoText, ui.Colors.InfoBg
	}
	return Badge(th, status, fg, bg)
}
