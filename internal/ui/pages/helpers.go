package pages

import (
	"image"
	"strconv"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// formEditor desenha um editor de linha única com borda e padding padrão.
func formEditor(th *material.Theme, ed *widget.Editor, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		border := widget.Border{
			Color:        ui.Colors.Border,
			CornerRadius: ui.CornerRadius,
			Width:        ui.BorderWidthDefault,
		}
		if gtx.Source.Focused(ed) {
			border.Color = ui.Colors.Primary
			border.Width = unit.Dp(1.5)
		}
		e := material.Editor(th, ed, hint)
		e.TextSize = unit.Sp(14)
		return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{
				Top: unit.Dp(8), Bottom: unit.Dp(8),
				Left: unit.Dp(10), Right: unit.Dp(10),
			}.Layout(gtx, e.Layout)
		})
	}
}

// formField combina rótulo + editor no layout padrão de formulário.
func formField(th *material.Theme, label string, ed *widget.Editor, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx,
			ui.LabeledInputLayout(th, label, formEditor(th, ed, hint), ""))
	}
}

// pageHeader desenha o título da página com ações alinhadas à direita.
func pageHeader(th *material.Theme, title string, actions ...layout.FlexChild) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				h := material.H5(th, title)
				h.Font.Weight = font.Bold
				return h.Layout(gtx)
			}),
		}
		children = append(children, actions...)
		return layout.Inset{Bottom: ui.LargeVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
		})
	}
}

// statusLine desenha o indicador de carregamento ou o erro do último fetch.
// Retorna dimensões vazias quando não há nada a mostrar.
func statusLine(th *material.Theme, ls *loadState) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		switch {
		case ls.loading:
			return layout.Inset{Top: ui.DefaultVSpacer, Bottom: ui.DefaultVSpacer}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Max.X = gtx.Dp(unit.Dp(28))
					gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(28))
					return material.Loader(th).Layout(gtx)
				})
		case ls.errMsg != "":
			lbl := material.Body2(th, ls.errMsg)
			lbl.Color = ui.Colors.Danger
			return layout.Inset{Top: ui.DefaultVSpacer, Bottom: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
		default:
			return layout.Dimensions{}
		}
	}
}

// emptyHint desenha o texto exibido quando uma listagem está vazia.
func emptyHint(th *material.Theme, txt string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, txt)
		lbl.Color = ui.Colors.TextMuted
		return layout.Inset{Top: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
	}
}

// headerCell e cell são as células das tabelas simples das listagens.
func headerCell(th *material.Theme, txt string, weight float32) layout.FlexChild {
	return layout.Flexed(weight, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, txt)
		lbl.Font.Weight = font.Bold
		lbl.Color = ui.Colors.Grey600
		return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
	})
}

func cell(th *material.Theme, txt string, weight float32) layout.FlexChild {
	return layout.Flexed(weight, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, txt)
		lbl.MaxLines = 1
		return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
	})
}

// strikeText desenha um texto riscado e esmaecido (registros cancelados).
func strikeText(th *material.Theme, txt string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, txt)
		lbl.Color = ui.Colors.TextMuted
		lbl.MaxLines = 1
		dims := lbl.Layout(gtx)
		y := dims.Size.Y / 2
		line := clip.Rect{Min: image.Pt(0, y), Max: image.Pt(dims.Size.X, y+gtx.Dp(unit.Dp(1)))}
		defer line.Push(gtx.Ops).Pop()
		paint.ColorOp{Color: ui.Colors.TextMuted}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return dims
	}
}

// tableRow desenha uma linha com separador inferior.
func tableRow(children ...layout.FlexChild) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx,
					func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
					})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(1)))
				defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
				paint.ColorOp{Color: ui.Colors.Grey200}.Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
				return layout.Dimensions{Size: size}
			}),
		)
	}
}

// iconAction desenha um botão de ícone pequeno para linhas de tabela.
func iconAction(th *material.Theme, click *widget.Clickable, icon *widget.Icon, desc string) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			return layout.Dimensions{}
		}
		btn := material.IconButton(th, click, icon, desc)
		btn.Background = ui.Colors.Surface
		btn.Color = ui.Colors.Grey600
		btn.Inset = layout.UniformInset(unit.Dp(4))
		return btn.Layout(gtx)
	})
}

// parseID converte o texto de um campo de ID para int64; 0 quando inválido.
func parseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// handleCurrencyInput reaplica a máscara monetária ("1.234,56") a cada
// alteração do editor, mantendo o cursor no fim.
func handleCurrencyInput(gtx layout.Context, ed *widget.Editor) {
	changed := false
	for {
		ev, ok := ed.Update(gtx)
		if !ok {
			break
		}
		if _, isChange := ev.(widget.ChangeEvent); isChange {
			changed = true
		}
	}
	if !changed {
		return
	}
	formatted := utils.FormatCurrencyInput(ed.Text())
	if formatted != ed.Text() {
		ed.SetText(formatted)
		end := len([]rune(formatted))
		ed.SetCaret(end, end)
	}
}

// radioOption desenha uma opção de grupo de rádio.
func radioOption(th *material.Theme, group *widget.Enum, key, label string) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Right: unit.Dp(12)}.Layout(gtx,
			material.RadioButton(th, group, key, label).Layout)
	})
}
