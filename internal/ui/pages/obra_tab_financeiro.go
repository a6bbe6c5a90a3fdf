package pages

import (
	"gioui.org/layout"
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

// financeiroTab é a aba financeira de uma obra: saldo, lançamentos e
// cancelamento (soft) de transações.
type financeiroTab struct {
	deps *Deps
	obra func() *models.Obra

	ls       loadState
	lastObra int64
	rows     []*transacaoRow
	list     widget.List

	addBtn    widget.Clickable
	exportBtn widget.Clickable

	// Modal de novo lançamento.
	modal       *components.Modal
	tipoEnum    widget.Enum
	descricaoEd widget.Editor
	valorEd     widget.Editor
	saveBtn     widget.Clickable
	busy        bool

	// Modal de cancelamento com motivo.
	cancelModal   *components.Modal
	cancelTarget  models.Transacao
	motivoEd      widget.Editor
	cancelSaveBtn widget.Clickable
	cancelBusy    bool
}

type transacaoRow struct {
	transacao models.Transacao
	cancel    widget.Clickable
}

// cancelCaption monta a linha exibida sob a descrição de um lançamento
// cancelado. Vazio para lançamentos ativos.
func cancelCaption(tr models.Transacao) string {
	if tr.Status != models.TransacaoStatusCancelado {
		return ""
	}
	if tr.MotivoCancelamento == "" {
		return "Cancelado"
	}
	return "Cancelado: " + tr.MotivoCancelamento
}

func newFinanceiroTab(deps *Deps, obra func() *models.Obra) *financeiroTab {
	t := &financeiroTab{
		deps:        deps,
		obra:        obra,
		modal:       components.NewModal(),
		cancelModal: components.NewModal(),
	}
	t.list.Axis = layout.Vertical
	t.descricaoEd.SingleLine = true
	t.valorEd.SingleLine = true
	t.motivoEd.SingleLine = true
	return t
}

func (t *financeiroTab) Label() string { return "Financeiro" }

func (t *financeiroTab) ensure(obraID int64, key uint64) {
	if !t.ls.needsLoad(key) && t.lastObra == obraID {
		return
	}
	t.lastObra = obraID
	seq := t.ls.begin(key)
	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		transacoes, err := t.deps.Financeiro.List(ctx, obraID)

		t.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !t.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				t.rows = t.rows[:0]
				for _, tr := range transacoes {
					t.rows = append(t.rows, &transacaoRow{transacao: tr})
				}
			}
		})
	}()
}

func (t *financeiroTab) transacoes() []models.Transacao {
	out := make([]models.Transacao, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r.transacao)
	}
	return out
}

func (t *financeiroTab) Layout(gtx layout.Context, th *material.Theme, obraID int64, key uint64) layout.Dimensions {
	t.ensure(obraID, key)

	if t.addBtn.Clicked(gtx) && t.deps.CanManage() {
		t.openModal()
	}
	if t.exportBtn.Clicked(gtx) && t.deps.CanManage() {
		t.export()
	}
	for _, row := range t.rows {
		if row.cancel.Clicked(gtx) && t.deps.CanManage() {
			t.openCancel(row.transacao)
		}
	}

	saldo := 0.0
	if obra := t.obra(); obra != nil {
		saldo = services.SaldoAtual(obra.OrcamentoInicial, t.transacoes())
	}

	var actions []layout.FlexChild
	if t.deps.CanManage() {
		actions = append(actions,
			layout.Rigid(ui.SecondaryButton(th, &t.exportBtn, "Exportar XLSX").Layout),
			layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
			layout.Rigid(ui.PrimaryButton(th, &t.addBtn, "Novo Lançamento").Layout),
		)
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				append([]layout.FlexChild{
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						accent := ui.Colors.Success
						if saldo < 0 {
							accent = ui.Colors.Danger
						}
						return components.KPICard(th, "Saldo atual", utils.FormatCurrency(saldo), accent)(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: ui.LargeVSpacer}.Layout),
				}, actions...)...)
		}),
		layout.Rigid(layout.Spacer{Height: ui.LargeVSpacer}.Layout),
		layout.Rigid(statusLine(th, &t.ls)),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if t.ls.loading || t.ls.errMsg != "" || len(t.rows) > 0 {
				return layout.Dimensions{}
			}
			return emptyHint(th, "Nenhum lançamento registrado.")(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if len(t.rows) == 0 {
				return layout.Dimensions{}
			}
			return tableRow(
				headerCell(th, "Data", 1),
				headerCell(th, "Descrição", 2.5),
				headerCell(th, "Tipo", 0.8),
				headerCell(th, "Valor", 1),
				headerCell(th, "Status", 1),
				layout.Rigid(layout.Spacer{Width: unit.Dp(32)}.Layout),
			)(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &t.list).Layout(gtx, len(t.rows), func(gtx layout.Context, i int) layout.Dimensions {
				row := t.rows[i]
				tr := row.transacao
				tipo := "Entrada"
				if tr.Tipo == models.TransacaoTipoSaida {
					tipo = "Saída"
				}
				cells := []layout.FlexChild{
					cell(th, utils.FormatDate(tr.CreatedAt), 1),
					layout.Flexed(2.5, func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							if tr.Status != models.TransacaoStatusCancelado {
								lbl := material.Body2(th, tr.Descricao)
								lbl.MaxLines = 1
								return lbl.Layout(gtx)
							}
							// Cancelado: descrição riscada com o motivo logo abaixo.
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(strikeText(th, tr.Descricao)),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									lbl := material.Caption(th, cancelCaption(tr))
									lbl.Color = ui.Colors.Danger
									lbl.MaxLines = 1
									return lbl.Layout(gtx)
								}),
							)
						})
					}),
					cell(th, tipo, 0.8),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						lbl := material.Body2(th, utils.FormatCurrency(tr.Valor))
						if tr.Status == models.TransacaoStatusCancelado {
							lbl.Color = ui.Colors.TextMuted
						} else if tr.Tipo == models.TransacaoTipoEntrada {
							lbl.Color = ui.Colors.Success
						} else {
							lbl.Color = ui.Colors.Danger
						}
						return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, lbl.Layout)
					}),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return components.StatusBadge(th, tr.Status)(gtx)
					}),
				}
				if t.deps.CanManage() && tr.Status == models.TransacaoStatusAtivo {
					cells = append(cells, iconAction(th, &row.cancel, ui.IconClose, "Cancelar lançamento"))
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)

	t.layoutModal(gtx, th, obraID)
	t.layoutCancelModal(gtx, th)
	return dims
}

// --- Novo lançamento ---

func (t *financeiroTab) openModal() {
	t.busy = false
	t.tipoEnum.Value = models.TransacaoTipoSaida
	t.descricaoEd.SetText("")
	t.valorEd.SetText("")
	t.modal.Show()
}

func (t *financeiroTab) submit(obraID int64) {
	if t.busy {
		return
	}
	t.busy = true
	t.modal.SetError("")

	input := models.TransacaoCreate{
		Tipo:      t.tipoEnum.Value,
		Descricao: t.descricaoEd.Text(),
		Valor:     utils.ParseCurrency(t.valorEd.Text()),
	}

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Financeiro.Create(ctx, obraID, input)

		t.deps.Win.Execute(func() {
			t.busy = false
			if err != nil {
				t.modal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.modal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Lançamento registrado!")
			// O backend recalcula o orçamento atual; recarrega cabeçalho e abas.
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *financeiroTab) layoutModal(gtx layout.Context, th *material.Theme, obraID int64) {
	if !t.modal.Visible() {
		return
	}
	if t.saveBtn.Clicked(gtx) {
		t.submit(obraID)
	}
	handleCurrencyInput(gtx, &t.valorEd)

	t.modal.Layout(gtx, th, "Novo Lançamento",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Tipo", func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							radioOption(th, &t.tipoEnum, models.TransacaoTipoEntrada, "Entrada"),
							radioOption(th, &t.tipoEnum, models.TransacaoTipoSaida, "Saída"),
						)
					}, "")(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				layout.Rigid(formField(th, "Descrição", &t.descricaoEd, "Ex: Compra de cimento")),
				layout.Rigid(formField(th, "Valor (R$)", &t.valorEd, "0,00")),
			)
		},
		func(gtx layout.Context) layout.Dimensions {
			if t.busy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &t.saveBtn, "Salvar").Layout(gtx)
		},
	)
}

// --- Cancelamento com motivo ---

func (t *financeiroTab) openCancel(tr models.Transacao) {
	t.cancelBusy = false
	t.cancelTarget = tr
	t.motivoEd.SetText("")
	t.cancelModal.Show()
}

func (t *financeiroTab) submitCancel() {
	if t.cancelBusy {
		return
	}
	t.cancelBusy = true
	t.cancelModal.SetError("")

	target := t.cancelTarget
	motivo := t.motivoEd.Text()

	go func() {
		ctx, cancel := t.deps.Ctx()
		defer cancel()
		err := t.deps.Financeiro.Cancelar(ctx, target.ID, motivo)

		t.deps.Win.Execute(func() {
			t.cancelBusy = false
			if err != nil {
				t.cancelModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			t.cancelModal.Hide()
			t.deps.Win.ShowMessage(ui.MessageSuccess, "Lançamento cancelado.")
			t.deps.Router.Refresh(auth.ViewObraDetail)
		})
	}()
}

func (t *financeiroTab) layoutCancelModal(gtx layout.Context, th *material.Theme) {
	if !t.cancelModal.Visible() {
		return
	}
	if t.cancelSaveBtn.Clicked(gtx) {
		t.submitCancel()
	}

	t.cancelModal.Layout(gtx, th, "Cancelar lançamento",
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					msg := "O lançamento \"" + t.cancelTarget.Descricao + "\" (" +
						utils.FormatCurrency(t.cancelTarget.Valor) + ") permanecerá no histórico como cancelado."
					return material.Body2(th, msg).Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				layout.Rigid(formField(th, "Motivo do cancelamento", &t.motivoEd, "Obrigatório")),
			)
		},
		func(gtx layout.Context) layout.Dimensions {
			if t.cancelBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.DangerButton(th, &t.cancelSaveBtn, "Confirmar cancelamento").Layout(gtx)
		},
	)
}

// --- Exportação ---

func (t *financeiroTab) export() {
	obra := t.obra()
	if obra == nil || len(t.rows) == 0 {
		t.deps.Win.ShowMessage(ui.MessageInfo, "Nada para exportar.")
		return
	}
	transacoes := t.transacoes()
	nome := obra.Nome

	go func() {
		input, err := utils.TransacoesDataInput(transacoes, "Financeiro")
		if err == nil {
			var path string
			path, err = utils.ExportToXLSX([]utils.DataInput{input},
				utils.TimestampedFilename("financeiro_"+nome), t.deps.Cfg)
			if err == nil {
				t.deps.Win.Execute(func() {
					t.deps.Win.ShowMessage(ui.MessageSuccess, "Exportado para "+path)
				})
				return
			}
		}
		exportErr := err
		t.deps.Win.Execute(func() {
			t.deps.Win.ShowMessage(ui.MessageError, core.UserMessage(exportErr, "Falha ao exportar."))
		})
	}()
}
