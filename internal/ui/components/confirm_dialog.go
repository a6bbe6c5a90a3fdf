package components

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
)

// ConfirmDialog é um modal de confirmação para ações destrutivas.
type ConfirmDialog struct {
	modal      *Modal
	title      string
	message    string
	confirmTxt string

	confirmBtn widget.Clickable
	cancelBtn  widget.Clickable
	onConfirm  func()
}

// NewConfirmDialog cria um diálogo de confirmação oculto.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{modal: NewModal()}
}

// Show exibe o diálogo. `confirmTxt` é o rótulo do botão destrutivo
// (ex: "Remover"); `onConfirm` é chamado ao confirmar.
func (d *ConfirmDialog) Show(title, message, confirmTxt string, onConfirm func()) {
	d.title = title
	d.message = message
	d.confirmTxt = confirmTxt
	d.onConfirm = onConfirm
	d.modal.Show()
}

// Hide oculta o diálogo.
func (d *ConfirmDialog) Hide() {
	d.modal.Hide()
}

// Visible informa se o diálogo está em exibição.
func (d *ConfirmDialog) Visible() bool {
	return d.modal.Visible()
}

// SetError exibe uma falha (ex: erro da API) sem fechar o diálogo.
func (d *ConfirmDialog) SetError(msg string) {
	d.modal.SetError(msg)
}

// Layout desenha o diálogo quando visível.
func (d *ConfirmDialog) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if !d.modal.Visible() {
		return layout.Dimensions{}
	}

	if d.cancelBtn.Clicked(gtx) {
		d.modal.Hide()
	}
	if d.confirmBtn.Clicked(gtx) {
		if d.onConfirm != nil {
			d.onConfirm()
		}
	}

	return d.modal.Layout(gtx, th, d.title,
		func(gtx layout.Context) layout.Dimensions {
			return material.Body1(th, d.message).Layout(gtx)
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(ui.SecondaryButton(th, &d.cancelBtn, "Cancelar").Layout),
				layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
				layout.Rigid(ui.DangerButton(th, &d.confirmBtn, d.confirmTxt).Layout),
			)
		},
	)
}
