package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/font"
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
)

// MarketplacePage lista os anúncios de imóveis e concentra os modais de
// criação, edição, remoção e galeria de fotos.
type MarketplacePage struct {
	deps *Deps

	ls   loadState
	rows []*imovelRow
	list widget.List

	novoBtn widget.Clickable

	// Modal de criação/edição. editingID == 0 indica criação.
	formModal   *components.Modal
	editingID   int64
	tituloEd    widget.Editor
	enderecoEd  widget.Editor
	bairroEd    widget.Editor
	numeroEd    widget.Editor
	cepEd       widget.Editor
	metragemEd  widget.Editor
	propEd      widget.Editor
	obsEd       widget.Editor
	capaPathEd  widget.Editor
	statusEnum  widget.Enum
	formSaveBtn widget.Clickable
	formBusy    bool

	confirm *components.ConfirmDialog

	// Galeria de fotos do imóvel selecionado.
	fotosModal  *components.Modal
	fotosImovel models.Imovel
	fotosList   widget.List
	fotoPathEd  widget.Editor
	fotoAddBtn  widget.Clickable
	fotoBusy    bool
}

type imovelRow struct {
	imovel models.Imovel
	fotos  widget.Clickable
	edit   widget.Clickable
	del    widget.Clickable
}

// NewMarketplacePage cria a página do marketplace.
func NewMarketplacePage(deps *Deps) *MarketplacePage {
	p := &MarketplacePage{
		deps:       deps,
		formModal:  components.NewModal(),
		confirm:    components.NewConfirmDialog(),
		fotosModal: components.NewModal(),
	}
	p.list.Axis = layout.Vertical
	p.fotosList.Axis = layout.Vertical
	for _, ed := range []*widget.Editor{
		&p.tituloEd, &p.enderecoEd, &p.bairroEd, &p.numeroEd, &p.cepEd,
		&p.metragemEd, &p.propEd, &p.capaPathEd, &p.fotoPathEd,
	} {
		ed.SingleLine = true
	}
	return p
}

func (p *MarketplacePage) OnShow() {}

func (p *MarketplacePage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		imoveis, err := p.deps.Marketplace.List(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.rows = p.rows[:0]
				for _, im := range imoveis {
					p.rows = append(p.rows, &imovelRow{imovel: im})
				}
				// Mantém a galeria aberta em sincronia após um upload.
				for _, im := range imoveis {
					if p.fotosModal.Visible() && im.ID == p.fotosImovel.ID {
						p.fotosImovel = im
					}
				}
			}
		})
	}()
}

func (p *MarketplacePage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewMarketplace)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	for _, row := range p.rows {
		if row.fotos.Clicked(gtx) {
			p.openFotos(row.imovel)
		}
		if !p.deps.CanManage() {
			continue
		}
		if row.edit.Clicked(gtx) {
			imovel := row.imovel
			p.openForm(&imovel)
		}
		if row.del.Clicked(gtx) {
			p.askDelete(row.imovel)
		}
	}
	if p.novoBtn.Clicked(gtx) && p.deps.CanManage() {
		p.openForm(nil)
	}

	var headerActions []layout.FlexChild
	if p.deps.CanManage() {
		headerActions = append(headerActions,
			layout.Rigid(ui.PrimaryButton(th, &p.novoBtn, "Novo Imóvel").Layout))
	}

	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Marketplace", headerActions...)),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if p.ls.loading || p.ls.errMsg != "" || len(p.rows) > 0 {
				return layout.Dimensions{}
			}
			return emptyHint(th, "Nenhum imóvel anunciado.")(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &p.list).Layout(gtx, len(p.rows), func(gtx layout.Context, i int) layout.Dimensions {
				return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, p.layoutImovelCard(th, p.rows[i]))
			})
		}),
	)

	p.layoutFormModal(gtx, th)
	p.layoutFotosModal(gtx, th)
	p.confirm.Layout(gtx, th)
	return dims
}

func (p *MarketplacePage) layoutImovelCard(th *material.Theme, row *imovelRow) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		im := row.imovel
		return ui.Card(th, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := material.Body1(th, im.Titulo)
							lbl.Font.Weight = font.Bold
							return lbl.Layout(gtx)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							endereco := im.Endereco
							if im.Bairro != "" {
								endereco += ", " + im.Bairro
							}
							if im.Numero != "" {
								endereco += ", nº " + im.Numero
							}
							lbl := material.Body2(th, endereco)
							lbl.Color = ui.Colors.TextMuted
							return lbl.Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Height: ui.TightVSpacer}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
								layout.Rigid(components.StatusBadge(th, im.Status)),
								layout.Rigid(layout.Spacer{Width: ui.DefaultVSpacer}.Layout),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									meta := fmt.Sprintf("%d fotos", len(im.Fotos))
									if im.Metragem != "" {
										meta = im.Metragem + " · " + meta
									}
									lbl := material.Body2(th, meta)
									lbl.Color = ui.Colors.Grey600
									return lbl.Layout(gtx)
								}),
							)
						}),
					)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					actions := []layout.FlexChild{
						iconAction(th, &row.fotos, ui.IconImage, "Fotos"),
					}
					if p.deps.CanManage() {
						actions = append(actions,
							iconAction(th, &row.edit, ui.IconEdit, "Editar"),
							iconAction(th, &row.del, ui.IconDelete, "Remover"),
						)
					}
					return layout.Flex{}.Layout(gtx, actions...)
				}),
			)
		})(gtx)
	}
}

// --- Modal de criação/edição ---

func (p *MarketplacePage) openForm(imovel *models.Imovel) {
	p.formBusy = false
	if imovel == nil {
		p.editingID = 0
		for _, ed := range []*widget.Editor{
			&p.tituloEd, &p.enderecoEd, &p.bairroEd, &p.numeroEd, &p.cepEd,
			&p.metragemEd, &p.propEd, &p.obsEd, &p.capaPathEd,
		} {
			ed.SetText("")
		}
	} else {
		p.editingID = imovel.ID
		p.tituloEd.SetText(imovel.Titulo)
		p.enderecoEd.SetText(imovel.Endereco)
		p.bairroEd.SetText(imovel.Bairro)
		p.numeroEd.SetText(imovel.Numero)
		p.cepEd.SetText(imovel.CEP)
		p.metragemEd.SetText(imovel.Metragem)
		p.propEd.SetText(imovel.Proprietario)
		p.obsEd.SetText(imovel.Observacoes)
		status := imovel.Status
		if status == "" {
			status = models.ImovelStatusAVenda
		}
		p.statusEnum.Value = status
	}
	p.formModal.Show()
}

func (p *MarketplacePage) submitForm() {
	if p.formBusy {
		return
	}
	p.formBusy = true
	p.formModal.SetError("")

	editingID := p.editingID
	capaPath := strings.TrimSpace(p.capaPathEd.Text())
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()

		var err error
		if editingID == 0 {
			form := services.ImovelForm{
				Titulo:       p.tituloEd.Text(),
				Endereco:     p.enderecoEd.Text(),
				Bairro:       p.bairroEd.Text(),
				Numero:       p.numeroEd.Text(),
				CEP:          p.cepEd.Text(),
				Metragem:     p.metragemEd.Text(),
				Proprietario: p.propEd.Text(),
				Observacoes:  p.obsEd.Text(),
			}
			if capaPath != "" {
				content, readErr := os.ReadFile(capaPath)
				if readErr != nil {
					err = core.NewValidationError("Não foi possível ler o ficheiro da foto de capa.", nil)
				} else {
					form.FotoCapaFilename = filepath.Base(capaPath)
					form.FotoCapaContent = content
				}
			}
			if err == nil {
				err = p.deps.Marketplace.Create(ctx, form)
			}
		} else {
			err = p.deps.Marketplace.Update(ctx, editingID, models.ImovelUpdate{
				Titulo:       p.tituloEd.Text(),
				Endereco:     p.enderecoEd.Text(),
				Bairro:       p.bairroEd.Text(),
				Numero:       p.numeroEd.Text(),
				CEP:          p.cepEd.Text(),
				Metragem:     p.metragemEd.Text(),
				Proprietario: p.propEd.Text(),
				Observacoes:  p.obsEd.Text(),
				Status:       p.statusEnum.Value,
			})
		}

		p.deps.Win.Execute(func() {
			p.formBusy = false
			if err != nil {
				p.formModal.SetError(core.UserMessage(err, msgFalhaSalvar))
				return
			}
			p.formModal.Hide()
			p.deps.Win.ShowMessage(ui.MessageSuccess, "Imóvel salvo com sucesso!")
			p.deps.Router.Refresh(auth.ViewMarketplace)
		})
	}()
}

func (p *MarketplacePage) layoutFormModal(gtx layout.Context, th *material.Theme) {
	if !p.formModal.Visible() {
		return
	}
	if p.formSaveBtn.Clicked(gtx) {
		p.submitForm()
	}

	title := "Novo Imóvel"
	if p.editingID != 0 {
		title = "Editar Imóvel"
	}

	p.formModal.Layout(gtx, th, title,
		func(gtx layout.Context) layout.Dimensions {
			fields := []layout.FlexChild{
				layout.Rigid(formField(th, "Título", &p.tituloEd, "Título do anúncio")),
				layout.Rigid(formField(th, "Endereço", &p.enderecoEd, "Rua/Avenida")),
				layout.Rigid(formField(th, "Bairro", &p.bairroEd, "")),
				layout.Rigid(formField(th, "Número", &p.numeroEd, "")),
				layout.Rigid(formField(th, "CEP", &p.cepEd, "00000-000")),
				layout.Rigid(formField(th, "Metragem", &p.metragemEd, "ex.: 120m²")),
				layout.Rigid(formField(th, "Proprietário", &p.propEd, "")),
				layout.Rigid(formField(th, "Observações", &p.obsEd, "")),
			}
			if p.editingID == 0 {
				fields = append(fields,
					layout.Rigid(formField(th, "Foto de capa (caminho do ficheiro)", &p.capaPathEd, "/caminho/para/foto.jpg (opcional)")))
			} else {
				fields = append(fields, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.LabeledInputLayout(th, "Status", func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{}.Layout(gtx,
							radioOption(th, &p.statusEnum, models.ImovelStatusAVenda, "À venda"),
							radioOption(th, &p.statusEnum, models.ImovelStatusEmNegociacao, "Em negociação"),
							radioOption(th, &p.statusEnum, models.ImovelStatusVendido, "Vendida"),
						)
					}, "")(gtx)
				}))
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

func (p *MarketplacePage) askDelete(imovel models.Imovel) {
	p.confirm.Show("Remover imóvel",
		"Remover o anúncio \""+imovel.Titulo+"\"? Esta ação não pode ser desfeita.",
		"Remover",
		func() {
			go func() {
				ctx, cancel := p.deps.Ctx()
				defer cancel()
				err := p.deps.Marketplace.Delete(ctx, imovel.ID)
				p.deps.Win.Execute(func() {
					if err != nil {
						p.confirm.SetError(core.UserMessage(err, msgFalhaRemover))
						return
					}
					p.confirm.Hide()
					p.deps.Win.ShowMessage(ui.MessageSuccess, "Imóvel removido.")
					p.deps.Router.Refresh(auth.ViewMarketplace)
				})
			}()
		})
}

// --- Galeria de fotos ---

func (p *MarketplacePage) openFotos(imovel models.Imovel) {
	p.fotosImovel = imovel
	p.fotoPathEd.SetText("")
	p.fotoBusy = false
	p.fotosModal.Show()
}

func (p *MarketplacePage) addFoto() {
	if p.fotoBusy {
		return
	}
	path := strings.TrimSpace(p.fotoPathEd.Text())
	if path == "" {
		p.fotosModal.SetError("Informe o caminho do ficheiro da foto.")
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		p.fotosModal.SetError("Não foi possível ler o ficheiro da foto.")
		return
	}

	p.fotoBusy = true
	p.fotosModal.SetError("")
	imovelID := p.fotosImovel.ID
	filename := filepath.Base(path)

	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		uploadErr := p.deps.Marketplace.UploadFoto(ctx, imovelID, filename, content)
		p.deps.Win.Execute(func() {
			p.fotoBusy = false
			if uploadErr != nil {
				p.fotosModal.SetError(core.UserMessage(uploadErr, msgFalhaSalvar))
				return
			}
			p.fotoPathEd.SetText("")
			p.deps.Win.ShowMessage(ui.MessageSuccess, "Foto enviada!")
			p.deps.Router.Refresh(auth.ViewMarketplace)
		})
	}()
}

func (p *MarketplacePage) layoutFotosModal(gtx layout.Context, th *material.Theme) {
	if !p.fotosModal.Visible() {
		return
	}
	if p.fotoAddBtn.Clicked(gtx) && p.deps.CanManage() {
		p.addFoto()
	}

	p.fotosModal.Layout(gtx, th, "Fotos de "+p.fotosImovel.Titulo,
		func(gtx layout.Context) layout.Dimensions {
			fotos := p.fotosImovel.Fotos
			var children []layout.FlexChild
			if p.fotosImovel.FotoCapa != "" {
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Body2(th, "Capa: "+filepath.Base(p.fotosImovel.FotoCapa))
					lbl.Font.Weight = font.Bold
					return layout.Inset{Bottom: ui.TightVSpacer}.Layout(gtx, lbl.Layout)
				}))
			}
			if len(fotos) == 0 {
				children = append(children, layout.Rigid(emptyHint(th, "Nenhuma foto na galeria.")))
			} else {
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.List(th, &p.fotosList).Layout(gtx, len(fotos), func(gtx layout.Context, i int) layout.Dimensions {
						foto := fotos[i]
						name := foto.Filename
						if name == "" {
							name = filepath.Base(foto.FilePath)
						}
						return layout.Inset{Bottom: ui.TightVSpacer}.Layout(gtx,
							material.Body2(th, name).Layout)
					})
				}))
			}
			if p.deps.CanManage() {
				children = append(children,
					layout.Rigid(layout.Spacer{Height: ui.DefaultVSpacer}.Layout),
					layout.Rigid(formField(th, "Nova foto (caminho do ficheiro)", &p.fotoPathEd, "/caminho/para/foto.jpg")),
				)
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
		},
		func(gtx layout.Context) layout.Dimensions {
			if !p.deps.CanManage() {
				return layout.Dimensions{}
			}
			if p.fotoBusy {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(24))
				return material.Loader(th).Layout(gtx)
			}
			return ui.PrimaryButton(th, &p.fotoAddBtn, "Anexar").Layout(gtx)
		},
	)
}
