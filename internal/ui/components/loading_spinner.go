package components

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

const (
	defaultSpinnerSize        = 42  // dp
	defaultSpinnerNumSegments = 8
	defaultSpinnerSegWidth    = 5   // dp
	defaultSpinnerSegLength   = 0.6 // Proporção do raio ocupada pelo segmento
	spinnerRevolution         = 900 * time.Millisecond
)

// LoadingSpinner exibe uma animação de carregamento em segmentos rotativos.
// A rotação é derivada do relógio do frame (gtx.Now), sem goroutines próprias.
type LoadingSpinner struct {
	active    bool
	startTime time.Time

	Color         color.NRGBA
	Size          unit.Dp
	NumSegments   int
	SegmentWidth  unit.Dp
	SegmentLength float32
}

// NewLoadingSpinner cria um spinner com a cor primária do tema, ou a cor
// opcional fornecida.
func NewLoadingSpinner(spinnerColor ...color.NRGBA) *LoadingSpinner {
	c := ui.Colors.Primary
	if len(spinnerColor) > 0 {
		c = spinnerColor[0]
	}
	return &LoadingSpinner{
		Color:         c,
		Size:          unit.Dp(defaultSpinnerSize),
		NumSegments:   defaultSpinnerNumSegments,
		SegmentWidth:  unit.Dp(defaultSpinnerSegWidth),
		SegmentLength: defaultSpinnerSegLength,
	}
}

// Start ativa a animação.
func (s *LoadingSpinner) Start() {
	if s.active {
		return
	}
	s.active = true
	s.startTime = time.Time{} // definido no primeiro frame
}

// Stop desativa a animação.
func (s *LoadingSpinner) Stop() {
	s.active = false
}

// Active informa se o spinner está visível.
func (s *LoadingSpinner) Active() bool {
	return s.active
}

// Layout desenha o spinner. Quando inativo, ocupa espaço zero.
func (s *LoadingSpinner) Layout(gtx layout.Context) layout.Dimensions {
	if !s.active {
		return layout.Dimensions{}
	}
	if s.startTime.IsZero() {
		s.startTime = gtx.Now
	}

	// Ângulo derivado do tempo decorrido; solicita frames contínuos.
	elapsed := gtx.Now.Sub(s.startTime)
	turn := float64(elapsed%spinnerRevolution) / float64(spinnerRevolution)
	baseAngle := turn * 2 * math.Pi
	gtx.Execute(op.InvalidateCmd{})

	diameterPx := gtx.Dp(s.Size)
	defer clip.Rect{Max: image.Pt(diameterPx, diameterPx)}.Push(gtx.Ops).Pop()

	center := f32.Pt(float32(diameterPx)/2, float32(diameterPx)/2)
	segWidthPx := float32(gtx.Dp(s.SegmentWidth))
	radius := center.X - segWidthPx/2 - 1
	if radius <= 1 {
		return layout.Dimensions{Size: image.Pt(diameterPx, diameterPx)}
	}

	offset := op.Offset(image.Pt(diameterPx/2, diameterPx/2)).Push(gtx.Ops)
	defer offset.Pop()

	step := 2 * math.Pi / float64(s.NumSegments)
	for i := 0; i < s.NumSegments; i++ {
		angle := baseAngle + float64(i)*step

		// Opacidade decai nos segmentos "atrás" para formar a trilha.
		opacityFactor := math.Pow(1.0-(float64(i)/float64(s.NumSegments)), 1.8)
		alpha := uint8(math.Max(20, 255*opacityFactor))
		segColor := s.Color
		segColor.A = alpha

		innerRadius := radius * (1.0 - s.SegmentLength)
		startX := innerRadius * float32(math.Cos(angle))
		startY := innerRadius * float32(math.Sin(angle))
		endX := radius * float32(math.Cos(angle))
		endY := radius * float32(math.Sin(angle))

		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(startX, startY))
		path.LineTo(f32.Pt(endX, endY))
		paint.FillShape(gtx.Ops, segColor, clip.Stroke{
			Path:  path.End(),
			Width: segWidthPx,
		}.Op())
	}

	return layout.Dimensions{Size: image.Pt(diameterPx, diameterPx)}
}
