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

// DashboardPage lista as obras em cartões e concentra os modais de criação,
// edição, remoção e auditoria de obra.
type DashboardPage struct {
	deps *Deps

	ls    loadState
	obras []models.Obra
	rows  []*obraRow
	list  widget.List

	novaBtn widget.Clickable

	// Modal de criação/edição. editingID == 0 indica criação.
	formModal    *components.Modal
	editingID    int64
	editingObra  models.Obra
	nomeEd       widget.Editor
	enderecoEd   widget.Editor
	propEd       widget.Editor
	orcamentoEd  widget.Editor
	statusEnum   widget.Enum
	motivoEd     widget.Editor
	formSaveBtn  widget.Clickable
	formBusy     bool

	confirm *components.ConfirmDialog

	auditModal *components.Modal
	auditList  widget.List
	auditLogs  []models.AuditLog
	auditLS    loadState
}

type obraRow struct {
	obra  models.Obra
	open  widget.Clickable
	edit  widget.Clickable
	del   widget.Clickable
	audit widget.Clickable
}

// NewDashboardPage cria a página do dashboard.
func NewDashboardPage(deps *Deps) *DashboardPage {
	p := &DashboardPage{
		deps:       deps,
		formModal:  components.NewModal(),
		confirm:    components.NewConfirmDialog(),
		auditModal: components.NewModal(),
	}
	p.list.Axis = layout.Vertical
	p.auditList.Axis = layout.Vertical
	p.nomeEd.SingleLine = true
	p.enderecoEd.SingleLine = true
	p.propEd.SingleLine = true
	p.orcamentoEd.SingleLine = true
	p.motivoEd.SingleLine = true
	return p
}

// OnShow não faz nada; o fetch é dirigido pela chave de atualização.
func (p *DashboardPage) OnShow() {}

func (p *DashboardPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		obras, err := p.deps.Obras.List(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.obras = obras
				p.rows = p.rows[:0]
				for _, o := range obras {
					p.rows = append(p.rows, &obraRow{obra: o})
				}
			}
		})
	}()
}

// Layout desenha a lista de obras.
func (p *DashboardPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewDashboard)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	p.handleRowClicks(gtx)
	if p.novaBtn.Clicked(gtx) && p.deps.CanManage() {
		p.openForm(nil)
	}

	var headerActions []layout.FlexChild
	if p.deps.CanManage() {
		headerActions = append(headerActions, layout.Rigid(ui.PrimaryButton(th, &p.novaBtn, "Nova Obra").Layout))
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Obras", headerActions...)),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if p.ls.loading || p.ls.errMsg != "" || len(p.rows) > 0 {
				return layout.Dimensions{}
			}
			return emptyHint(th, "Nenhuma obra cadastrada.")(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &p.list).Layout(gtx, len(p.rows), func(gtx layout.Context, i int) layout.Dimensions {
				return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, p.layoutObraCard(th, p.rows[i]))
			})
		}),
	)

	p.layoutFormModal(gtx, th)
	p.layoutAuditModal(gtx, th)
	p.confirm.Layout(gtx, th)
	return dims
}

func (p *DashboardPage) handleRowClicks(gtx layout.Context) {
	for _, row := range p.rows {
		if row.open.Clicked(gtx) {
			p.deps.Router.NavigateToObra(row.obra.ID)
		}
		if !p.deps.CanManage() {
			continue
		}
		if row.edit.Clicked(gtx) {
			obra := row.obra
			p.openForm(&obra)
		}
		if row.del.Clicked(gtx) {
			p.askDelete(row.obra)
		}
		if row.audit.Clicked(gtx) {
			p.openAudit(row.obra)
		}
	}
}

func (p *DashboardPage) layoutObraCard(th *material.Theme, row *obraRow) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return ui.Card(th, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return row.open.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								lbl := material.Body1(th, row.obra.Nome)
								lbl.Font.Weight = font.Bold
								return lbl.Layout(gtx)
							}),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								txt := row.obra.Endereco
								if txt == "" {
									txt = "Sem endereço"
								}
								lbl := material.Body2(th, txt)
								lbl.Color = ui.Colors.TextMuted
								return lbl.Layout(gtx)
							}),
							layout.Rigid(layout.Spacer{Height: ui.TightVSpacer}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
									layout.Rigid(components.StatusBadge(th, row.obra.Status)),
									layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
									layout.Rigid(func(gtx layout.Context) layout.Dimensions {
										lbl := material.Body2(th, "Orçamento: "+utils.FormatCurrency(row.obra.OrcamentoAtual))
										lbl.Color = ui.Colors.Grey600
										return lbl.Layout(gtx)
									}),
								)
							}),
						)
					})
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if !p.deps.CanManage() {
						return layout.Dimensions{}
					}
					return layout.Flex{}.Layout(gtx,
						iconAction(th, &row.audit, ui.IconHistory, "Histórico"),
						iconAction(th, &row.edit, ui.IconEdit, "Editar"),
						iconAction(th, &row.del, ui.IconDelete, "Remover"),
					)
				}),
			)
		})(gtx)
	}
}

// --- Modal de criação/edição ---

func (p *DashboardPage) openForm(obra *models.Obra) {
	p.formBusy = false
	if obra == nil {
		p.editingID = 0
		p.nomeEd.SetText("")
		p.enderecoEd.SetText("")
		p.propEd.SetText("")
		p.orcamentoEd.SetText("")
	} else {
		p.editingID = obra.ID
		p.editingObra = *obra
		p.nomeEd.SetText(obra.Nome)
		p.enderecoEd.SetText(obra.Endereco)
		p.propEd.SetText(obra.Proprietario)
		p.statusEnum.Value = obra.Status
		p.motivoEd.SetText("")
	}
	p.formModal.Show()
}

func (p *DashboardPage) submitForm() {
	if p.formBusy {
		return
	}
	p.formBusy = true
	p.formModal.SetError("")

	editingID := p.editingID
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()

		var err error
		if editingID == 0 {
			err = p.deps.Obras.Create(ctx, models.ObraCreate{
				Nome:             p.nomeEd.Text(),
				Endereco:         p.enderecoEd.Text(),
				Proprietario:     p.propEd.Text(),
				OrcamentoInicial: utils.ParseCurrency(p.orcamentoEd.Text()),
			})
		} else {
			statusChanged := p.statusEnum.Value != p.editingObra.Status
			err = p.deps.Obras.Update(ctx, editingID, models.ObraUpdate{
				Nome:            p.nomeEd.Text(),
				Endereco:        p.enderecoEd.Text(),
				Proprietario:    p.propEd.Text(),
				Status:          p.statusEnum.Value,
				MotivoAlteracao: p.motivoEd.Text(),
			}, statusChanged)
		}

		p.deps.Win.Execute(func() {
			p.formBusy = false
			if err != nil {
				p.formModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			p.formModal.Hide()
			p.deps.Win.ShowMessage(ui.MessageSuccess, "Obra salva com sucesso!")
			p.deps.Router.Refresh(auth.ViewDashboard)
		})
	}()
}

func (p *DashboardPage) layoutFormModal(gtx layout.Context, th *material.Theme) {
	if !p.formModal.Visible() {
		return
	}
	if p.formSaveBtn.Clicked(gtx) {
		p.submitForm()
	}
	handleCurrencyInput(gtx, &p.orcamentoEd)

	title := "Nova Obra"
	if p.editingID != 0 {
		title = "Editar Obra"
	}

	p.formModal.Layout(gtx, th, title,
		func(gtx layout.Context) layout.Dimensions {
			fields := []layout.FlexChild{
				layout.Rigid(formField(th, "Nome", &p.nomeEd, "Nome da obra")),
				layout.Rigid(formField(th, "Endereço", &p.enderecoEd, "Endereço")),
				layout.Rigid(formField(th, "Proprietário", &p.propEd, "Proprietário")),
			}
			if p.editingID == 0 {
				fields = append(fields,
					layout.Rigid(formField(th, "Orçamento inicial (R$)", &p.orcamentoEd, "0,00")))
			} else {
				fields = append(fields,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.LabeledInputLayout(th, "Status", func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{}.Layout(gtx,
								radioOption(th, &p.statusEnum, models.ObraStatusEmAndamento, "Em Andamento"),
								radioOption(th, &p.statusEnum, models.ObraStatusPausada, "Pausada"),
								radioOption(th, &p.statusEnum, models.ObraStatusConcluida, "Concluída"),
								radioOption(th, &p.statusEnum, models.ObraStatusCancelada, "Cancelada"),
							)
						}, "")(gtx)
					}),
					layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
				)
				if p.statusEnum.Value != p.editingObra.Status {
					fields = append(fields,
						layout.Rigid(formField(th, "Motivo da Alteração", &p.motivoEd, "Obrigatório ao mudar o status")))
				}
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, fields...)
		},
		func(gtx layout.Context) layout.Dimensions {
			if p.formBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &p.formSaveBtn, "Salvar").Layout(gtx)
		},
	)
}

// --- Remoção ---

func (p *DashboardPage) askDelete(obra models.Obra) {
	p.confirm.Show("Remover obra",
		"Remover a obra \""+obra.Nome+"\"? Esta ação não pode ser desfeita.",
		"Remover",
		func() {
			go func() {
				ctx, cancel := p.deps.Ctx()
				defer cancel()
				err := p.deps.Obras.Delete(ctx, obra.ID)
				p.deps.Win.Execute(func() {
					if err != nil {
						p.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					p.confirm.Hide()
					p.deps.Win.ShowMessage(ui.MessageSuccess, "Obra removida.")
					p.deps.Router.Refresh(auth.ViewDashboard)
				})
			}()
		})
}

// --- Auditoria ---

func (p *DashboardPage) openAudit(obra models.Obra) {
	p.auditLogs = nil
	p.auditModal.Show()

	seq := p.auditLS.begin(p.auditLS.key + 1)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		logs, err := p.deps.Obras.AuditLogs(ctx, obra.ID)
		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.auditLS.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.auditLogs = logs
			}
		})
	}()
}

func (p *DashboardPage) layoutAuditModal(gtx layout.Context, th *material.Theme) {
	if !p.auditModal.Visible() {
		return
	}
	p.auditModal.Layout(gtx, th, "Histórico de alterações",
		func(gtx layout.Context) layout.Dimensions {
			if p.auditLS.loading || p.auditLS.errMsg != "" {
				return statusLine(th, &p.auditLS)(gtx)
			}
			if len(p.auditLogs) == 0 {
				return emptyHint(th, "Nenhum registro de auditoria.")(gtx)
			}
			return material.List(th, &p.auditList).Layout(gtx, len(p.auditLogs), func(gtx layout.Context, i int) layout.Dimensions {
				entry := p.auditLogs[i]
				return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := material.Body2(th, entry.Acao)
							lbl.Font.Weight = font.Bold
							return lbl.Layout(gtx)
						}),
						layout.Rigid(material.Body2(th, entry.Descricao).Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							if entry.Motivo == "" {
								return layout.Dimensions{}
							}
							return material.Body2(th, "Motivo: "+entry.Motivo).Layout(gtx)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							meta := utils.FormatDateTime(entry.CreatedAt)
							if entry.UsuarioNome != "" {
								meta += " · " + entry.UsuarioNome
							}
							lbl := material.Caption(th, meta)
							lbl.Color = ui.Colors.TextMuted
							return lbl.Layout(gtx)
						}),
					)
				})
			})
		},
		nil,
	)
}
