package pages

import (
	"strings"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// GlobalDocumentosPage lista todos os documentos de todas as obras com
// busca local. Prestadores não veem o caminho dos ficheiros no servidor.
type GlobalDocumentosPage struct {
	deps *Deps

	ls     loadState
	docs   []models.Documento
	search widget.Editor
	list   widget.List
}

// NewGlobalDocumentosPage cria a página de documentos global.
func NewGlobalDocumentosPage(deps *Deps) *GlobalDocumentosPage {
	p := &GlobalDocumentosPage{deps: deps}
	p.search.SingleLine = true
	p.list.Axis = layout.Vertical
	return p
}

func (p *GlobalDocumentosPage) OnShow() {}

func (p *GlobalDocumentosPage) load(key uint64) {
	seq := p.ls.begin(key)
	go func() {
		ctx, cancel := p.deps.Ctx()
		defer cancel()
		docs, err := p.deps.Documentos.GlobalReport(ctx)

		p.deps.Win.Execute(func() {
			errMsg := ""
			if err != nil {
				errMsg = core.UserMessage(err, msgFalhaCarregar)
			}
			if !p.ls.done(seq, errMsg) {
				return
			}
			if err == nil {
				p.docs = docs
			}
		})
	}()
}

// filtered aplica a busca local sobre nome do ficheiro, obra e tipo.
func (p *GlobalDocumentosPage) filtered() []models.Documento {
	query := strings.ToLower(strings.TrimSpace(p.search.Text()))
	if query == "" {
		return p.docs
	}
	var out []models.Documento
	for _, doc := range p.docs {
		haystack := strings.ToLower(doc.Filename + " " + doc.ObraNome + " " + doc.Tipo)
		if strings.Contains(haystack, query) {
			out = append(out, doc)
		}
	}
	return out
}

func (p *GlobalDocumentosPage) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	key := p.deps.Router.RefreshKey(auth.ViewDocumentos)
	if p.ls.needsLoad(key) {
		p.load(key)
	}

	showPath := p.deps.Role() != auth.RolePrestador
	docs := p.filtered()

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(pageHeader(th, "Documentos")),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: ui.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = gtx.Dp(360)
				return formEditor(th, &p.search, "Buscar por ficheiro, obra ou tipo...")(gtx)
			})
		}),
		layout.Rigid(statusLine(th, &p.ls)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if p.ls.loading || p.ls.errMsg != "" {
				return layout.Dimensions{}
			}
			if len(docs) == 0 {
				return emptyHint(th, "Nenhum documento encontrado.")(gtx)
			}
			return p.layoutTable(gtx, th, docs, showPath)
		}),
	)
}

func (p *GlobalDocumentosPage) layoutTable(gtx layout.Context, th *material.Theme, docs []models.Documento, showPath bool) layout.Dimensions {
	header := []layout.FlexChild{
		headerCell(th, "Ficheiro", 2),
		headerCell(th, "Obra", 1.5),
		headerCell(th, "Tipo", 1),
		headerCell(th, "Tamanho", 1),
		headerCell(th, "Enviado por", 1.5),
		headerCell(th, "Data", 1),
	}
	if showPath {
		header = append(header, headerCell(th, "Caminho", 2))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(tableRow(header...)),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(th, &p.list).Layout(gtx, len(docs), func(gtx layout.Context, i int) layout.Dimensions {
				doc := docs[i]
				cells := []layout.FlexChild{
					cell(th, doc.Filename, 2),
					cell(th, doc.ObraNome, 1.5),
					cell(th, doc.Tipo, 1),
					cell(th, utils.FormatFileSize(doc.FileSize), 1),
					cell(th, doc.UploadedByNome, 1.5),
					cell(th, utils.FormatDate(doc.UploadedAt), 1),
				}
				if showPath {
					cells = append(cells, cell(th, doc.FilePath, 2))
				}
				return tableRow(cells...)(gtx)
			})
		}),
	)
}
