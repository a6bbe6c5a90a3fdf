package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
)

// ColorPalette define a paleta de cores customizada da aplicação.
// Os nomes são inspirados em paletas comuns (ex: Bootstrap, Material Design).
type ColorPalette struct {
	// Cores Primárias (branding, ações principais)
	Primary      color.NRGBA
	PrimaryLight color.NRGBA
	PrimaryDark  color.NRGBA
	PrimaryText  color.NRGBA // Texto sobre fundos Primary

	// Cores Neutras
	White   color.NRGBA
	Grey50  color.NRGBA
	Grey100 color.NRGBA
	Grey200 color.NRGBA
	Grey300 color.NRGBA
	Grey500 color.NRGBA
	Grey600 color.NRGBA
	Grey800 color.NRGBA
	Grey900 color.NRGBA
	Black   color.NRGBA

	// Cores Semânticas para Feedback de UI
	Success       color.NRGBA
	SuccessText   color.NRGBA
	SuccessBg     color.NRGBA
	SuccessBorder color.NRGBA

	Warning       color.NRGBA
	WarningText   color.NRGBA
	WarningBg     color.NRGBA
	WarningBorder color.NRGBA

	Danger       color.NRGBA
	DangerText   color.NRGBA
	DangerBg     color.NRGBA
	DangerBorder color.NRGBA

	Info       color.NRGBA
	InfoText   color.NRGBA
	InfoBg     color.NRGBA
	InfoBorder color.NRGBA

	// Cores Base da UI
	Background    color.NRGBA
	BackgroundAlt color.NRGBA
	Surface       color.NRGBA
	Text          color.NRGBA
	TextMuted     color.NRGBA
	Border        color.NRGBA
	Scrim         color.NRGBA // Fundo semitransparente atrás de modais
	SidebarBg     color.NRGBA
	SidebarText   color.NRGBA
}

// hexToNRGBA converte uma string hexadecimal de cor (ex: "#RRGGBB") para color.NRGBA.
// Retorna preto como fallback em caso de erro de parsing.
func hexToNRGBA(hex string) color.NRGBA {
	var r, g, b uint8

	if len(hex) != 7 || hex[0] != '#' {
		appLogger.Warnf("Formato de cor hexadecimal inválido: '%s'. Usando preto.", hex)
		return color.NRGBA{A: 0xFF}
	}
	count, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	if err != nil || count != 3 {
		appLogger.Warnf("Erro ao parsear cor hexadecimal '%s': %v. Usando preto.", hex, err)
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// Colors é a instância global da paleta de cores da aplicação.
var Colors = ColorPalette{
	Primary:      hexToNRGBA("#1A659E"),
	PrimaryLight: hexToNRGBA("#4D8DBC"),
	PrimaryDark:  hexToNRGBA("#0F4C7B"),
	PrimaryText:  hexToNRGBA("#FFFFFF"),

	White:   hexToNRGBA("#FFFFFF"),
	Grey50:  hexToNRGBA("#F8F9FA"),
	Grey100: hexToNRGBA("#F1F3F5"),
	Grey200: hexToNRGBA("#E9ECEF"),
	Grey300: hexToNRGBA("#DEE2E6"),
	Grey500: hexToNRGBA("#ADB5BD"),
	Grey600: hexToNRGBA("#6C757D"),
	Grey800: hexToNRGBA("#343A40"),
	Grey900: hexToNRGBA("#212529"),
	Black:   hexToNRGBA("#000000"),

	Success:       hexToNRGBA("#198754"),
	SuccessText:   hexToNRGBA("#0A3622"),
	SuccessBg:     hexToNRGBA("#D1E7DD"),
	SuccessBorder: hexToNRGBA("#A3CFBB"),

	Warning:       hexToNRGBA("#FFC107"),
	WarningText:   hexToNRGBA("#664D03"),
	WarningBg:     hexToNRGBA("#FFF3CD"),
	WarningBorder: hexToNRGBA("#FFDA6A"),

	Danger:       hexToNRGBA("#DC3545"),
	DangerText:   hexToNRGBA("#58151C"),
	DangerBg:     hexToNRGBA("#F8D7DA"),
	DangerBorder: hexToNRGBA("#F1AEB5"),

	Info:       hexToNRGBA("#0DCAF0"),
	InfoText:   hexToNRGBA("#055160"),
	InfoBg:     hexToNRGBA("#CFF4FC"),
	InfoBorder: hexToNRGBA("#9EEAF9"),

	Background:    hexToNRGBA("#F8F9FA"),
	BackgroundAlt: hexToNRGBA("#F1F3F5"),
	Surface:       hexToNRGBA("#FFFFFF"),
	Text:          hexToNRGBA("#212529"),
	TextMuted:     hexToNRGBA("#6C757D"),
	Border:        hexToNRGBA("#DEE2E6"),
	Scrim:         color.NRGBA{R: 0x21, G: 0x25, B: 0x29, A: 0x99},
	SidebarBg:     hexToNRGBA("#212529"),
	SidebarText:   hexToNRGBA("#DEE2E6"),
}

// Unidades de Medida Padrão para consistência na UI.
var (
	TightVSpacer   = unit.Dp(4)
	DefaultVSpacer = unit.Dp(8)
	LargeVSpacer   = unit.Dp(16)
	PagePadding    = unit.Dp(16)

	CornerRadius       = unit.Dp(4)
	BorderWidthDefault = unit.Dp(1)

	SidebarWidth  = unit.Dp(220)
	ModalMaxWidth = unit.Dp(520)

	WindowDefaultWidth  = unit.Dp(1200)
	WindowDefaultHeight = unit.Dp(800)
	WindowMinWidth      = unit.Dp(900)
	WindowMinHeight     = unit.Dp(640)
)

// NewAppTheme cria a instância de material.Theme da aplicação, com as fontes
// Go padrão e a paleta customizada.
func NewAppTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	th.Palette = material.Palette{
		Fg:         Colors.Text,
		Bg:         Colors.Background,
		ContrastFg: Colors.PrimaryText,
		ContrastBg: Colors.Primary,
	}
	return th
}

// PrimaryButton retorna um material.ButtonStyle com o estilo primário.
func PrimaryButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Primary
	btn.Color = Colors.PrimaryText
	btn.CornerRadius = CornerRadius
	return btn
}

// DangerButton retorna um botão para ações destrutivas.
func DangerButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Danger
	btn.Color = Colors.White
	btn.CornerRadius = CornerRadius
	return btn
}

// SecondaryButton retorna um botão neutro (cancelar, fechar).
func SecondaryButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Grey200
	btn.Color = Colors.Grey800
	btn.CornerRadius = CornerRadius
	return btn
}

// FillBackground pinta toda a área atual de constraints com uma cor.
func FillBackground(gtx layout.Context, c color.NRGBA) {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawRoundedSurface pinta um retângulo arredondado com borda sob as
// dimensões gravadas de um widget.
func drawRoundedSurface(gtx layout.Context, dims layout.Dimensions, bg, borderColor color.NRGBA) {
	rr := gtx.Dp(CornerRadius)
	rect := image.Rectangle{Max: dims.Size}

	paint.FillShape(gtx.Ops, borderColor, clip.UniformRRect(rect, rr).Op(gtx.Ops))
	inner := rect.Inset(gtx.Dp(BorderWidthDefault))
	paint.FillShape(gtx.Ops, bg, clip.UniformRRect(inner, rr).Op(gtx.Ops))
}

// Card desenha um cartão: superfície branca, borda sutil e cantos
// arredondados, com padding interno em volta do conteúdo.
func Card(th *material.Theme, contentWidget layout.Widget) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return widget.Border{
			Color:        Colors.Border,
			Width:        BorderWidthDefault,
			CornerRadius: CornerRadius,
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			macro := op.Record(gtx.Ops)
			dims := layout.UniformInset(PagePadding).Layout(gtx, contentWidget)
			call := macro.Stop()

			defer clip.UniformRRect(image.Rectangle{Max: dims.Size}, gtx.Dp(CornerRadius)).Push(gtx.Ops).Pop()
			paint.ColorOp{Color: Colors.Surface}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			call.Add(gtx.Ops)
			return dims
		})
	}
}

// LabeledInputLayout é o layout comum [label acima, input, feedback abaixo].
func LabeledInputLayout(th *material.Theme, labelText string, inputWidgetLayout layout.Widget, feedbackText string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		label := material.Body2(th, labelText)
		label.Color = Colors.Grey600

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(label.Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
			layout.Rigid(inputWidgetLayout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if feedbackText == "" {
					return layout.Dimensions{}
				}
				feedback := material.Caption(th, feedbackText)
				feedback.Color = Colors.Danger
				return layout.Inset{Top: unit.Dp(2)}.Layout(gtx, feedback.Layout)
			}),
		)
	}
}
