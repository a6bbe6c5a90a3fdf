package components

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// Modal é um diálogo sobreposto com scrim, título, corpo rolável, mensagem de
// erro inline e linha de ações. O conteúdo é fornecido pelo chamador a cada
// frame; o Modal só controla visibilidade e moldura.
type Modal struct {
	visible   bool
	scrim     widget.Clickable
	closeBtn  widget.Clickable
	bodyList  widget.List
	errorText string

	// DismissOnScrim permite fechar clicando fora do diálogo.
	DismissOnScrim bool
}

// NewModal cria um modal oculto.
func NewModal() *Modal {
	m := &Modal{}
	m.bodyList.Axis = layout.Vertical
	return m
}

// Show exibe o modal e limpa o erro anterior.
func (m *Modal) Show() {
	m.visible = true
	m.errorText = ""
}

// Hide oculta o modal.
func (m *Modal) Hide() {
	m.visible = false
	m.errorText = ""
}

// Visible informa se o modal está em exibição.
func (m *Modal) Visible() bool {
	return m.visible
}

// SetError define a mensagem de erro exibida acima das ações.
func (m *Modal) SetError(msg string) {
	m.errorText = msg
}

// ErrorText retorna a mensagem de erro atual.
func (m *Modal) ErrorText() string {
	return m.errorText
}

// Layout desenha o modal por cima do conteúdo já emitido no frame.
// Retorna dimensões vazias quando oculto.
func (m *Modal) Layout(gtx layout.Context, th *material.Theme, title string, body layout.Widget, actions layout.Widget) layout.Dimensions {
	if !m.visible {
		return layout.Dimensions{}
	}

	if m.closeBtn.Clicked(gtx) {
		m.Hide()
		return layout.Dimensions{}
	}
	if m.scrim.Clicked(gtx) && m.DismissOnScrim {
		m.Hide()
		return layout.Dimensions{}
	}

	// Scrim cobrindo a janela inteira, capturando cliques.
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: ui.Colors.Scrim}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return m.scrim.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Max}
			})
		}),
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				maxW := gtx.Dp(ui.ModalMaxWidth)
				if gtx.Constraints.Max.X > maxW {
					gtx.Constraints.Max.X = maxW
				}
				maxH := gtx.Constraints.Max.Y * 9 / 10
				gtx.Constraints.Max.Y = maxH
				return m.layoutSurface(gtx, th, title, body, actions)
			})
		}),
	)
}

func (m *Modal) layoutSurface(gtx layout.Context, th *material.Theme, title string, body layout.Widget, actions layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(ui.PagePadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Cabeçalho: título + botão de fechar.
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, material.H6(th, title).Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if ui.IconClose == nil {
							return layout.Dimensions{}
						}
						btn := material.IconButton(th, &m.closeBtn, ui.IconClose, "Fechar")
						btn.Background = ui.Colors.Surface
						btn.Color = ui.Colors.TextMuted
						btn.Inset = layout.UniformInset(unit.Dp(4))
						return btn.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
			// Corpo rolável.
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return material.List(th, &m.bodyList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					return body(gtx)
				})
			}),
			// Erro inline, se houver.
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if m.errorText == "" {
					return layout.Dimensions{}
				}
				lbl := material.Body2(th, m.errorText)
				lbl.Color = ui.Colors.Danger
				return layout.Inset{Top: ui.DefaultVSpacer}.Layout(gtx, lbl.Layout)
			}),
			layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
			// Ações alinhadas à direita.
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if actions == nil {
					return layout.Dimensions{}
				}
				return layout.Flex{Spacing: layout.SpaceStart}.Layout(gtx,
					layout.Rigid(actions),
				)
			}),
		)
	})
	call := macro.Stop()

	defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, gtx.Dp(ui.CornerRadius)).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: ui.Colors.Surface}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	call.Add(gtx.Ops)
	return dims
}
