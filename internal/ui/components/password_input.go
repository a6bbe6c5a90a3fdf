package components

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// PasswordInput é um campo de senha com botão para alternar a visibilidade.
type PasswordInput struct {
	Editor       widget.Editor
	isVisible    bool
	toggleButton widget.Clickable
	hint         string

	// OnSubmit é chamado quando o usuário pressiona Enter no campo.
	OnSubmit func(text string)
}

// NewPasswordInput cria um campo de senha mascarado.
func NewPasswordInput(hint string) *PasswordInput {
	pi := &PasswordInput{hint: hint}
	pi.Editor.SingleLine = true
	pi.Editor.Submit = true
	pi.Editor.Mask = '*'
	return pi
}

// SetHint define o texto de dica do campo.
func (pi *PasswordInput) SetHint(hint string) {
	pi.hint = hint
}

// Text retorna o texto atual do campo.
func (pi *PasswordInput) Text() string {
	return pi.Editor.Text()
}

// SetText substitui o conteúdo do campo.
func (pi *PasswordInput) SetText(txt string) {
	pi.Editor.SetText(txt)
}

// Clear limpa o campo.
func (pi *PasswordInput) Clear() {
	pi.Editor.SetText("")
}

// Focus solicita foco de teclado para o campo.
func (pi *PasswordInput) Focus(gtx layout.Context) {
	gtx.Execute(key.FocusCmd{Tag: &pi.Editor})
}

// Layout processa eventos e desenha o campo.
func (pi *PasswordInput) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	for {
		ev, ok := pi.Editor.Update(gtx)
		if !ok {
			break
		}
		if _, submitted := ev.(widget.SubmitEvent); submitted && pi.OnSubmit != nil {
			pi.OnSubmit(pi.Editor.Text())
		}
	}

	if pi.toggleButton.Clicked(gtx) {
		pi.isVisible = !pi.isVisible
		if pi.isVisible {
			pi.Editor.Mask = 0
		} else {
			pi.Editor.Mask = '*'
		}
	}

	focused := gtx.Source.Focused(&pi.Editor)

	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			border := widget.Border{
				Color:        ui.Colors.Border,
				CornerRadius: ui.CornerRadius,
				Width:        ui.BorderWidthDefault,
			}
			if focused {
				border.Color = ui.Colors.Primary
				border.Width = unit.Dp(1.5)
			}

			inputEditor := material.Editor(th, &pi.Editor, pi.hint)
			inputEditor.Font.Weight = font.Normal
			inputEditor.TextSize = unit.Sp(14)

			return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				// Padding direito maior para acomodar o ícone sobreposto.
				return layout.Inset{
					Top: unit.Dp(8), Bottom: unit.Dp(8),
					Left: unit.Dp(10), Right: unit.Dp(36),
				}.Layout(gtx, inputEditor.Layout)
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			// Inset negativo posiciona o ícone dentro da borda do editor.
			return layout.Inset{Left: unit.Dp(-32), Right: unit.Dp(4)}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					iconToShow := ui.IconEyeOff
					if pi.isVisible {
						iconToShow = ui.IconEye
					}
					if iconToShow == nil {
						return layout.Dimensions{}
					}
					btn := material.IconButton(th, &pi.toggleButton, iconToShow, "Alternar visibilidade da senha")
					btn.Background = color.NRGBA{}
					btn.Color = ui.Colors.TextMuted
					btn.Inset = layout.UniformInset(unit.Dp(6))
					return btn.Layout(gtx)
				},
			)
		}),
	)
}
