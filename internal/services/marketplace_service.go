package services

import (
	"context"
	"fmt"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// ImovelForm é o rascunho de criação de um anúncio. A foto de capa é opcional.
type ImovelForm struct {
	Titulo           string
	Endereco         string
	Bairro           string
	Numero           string
	CEP              string
	Metragem         string
	Proprietario     string
	Observacoes      string
	FotoCapaFilename string
	FotoCapaContent  []byte
}

/// MarketplaceService cobre o marketplace de imóveis: anúncios e galeria de fotos.
type MarketplaceService struct {
	api *apiclient.Client
}

func NewMarketplaceService(api *apiclient.Client) *MarketplaceService {
	return &MarketplaceService{api: api}
}

// List retorna todos os anúncios.
func (s *MarketplaceService) List(ctx context.Context) ([]models.Imovel, error) {
	var imoveis []models.Imovel
	if err := s.api.GetJSON(ctx, "/marketplace/", &imoveis); err != nil {
		return nil, err
	}
	return imoveis, nil
}

// Create publica um anúncio novo via multipart (a capa acompanha o formulário).
// Título e endereço são obrigatórios.
func (s *MarketplaceService) Create(ctx context.Context, input ImovelForm) error {
	if err := utils.RequireField(input.Titulo, "titulo", "O título é obrigatório."); err != nil {
		return err
	}
	if err := utils.RequireField(input.Endereco, "endereco", "O endereço é obrigatório."); err != nil {
		return err
	}

	form := apiclient.NewMultipartForm().
		AddField("titulo", input.Titulo).
		AddField("endereco", input.Endereco).
		AddField("bairro", input.Bairro).
		AddField("numero", input.Numero).
		AddField("cep", input.CEP).
		AddField("metragem", input.Metragem).
		AddField("proprietario", input.Proprietario).
		AddField("observacoes", input.Observacoes)
	if len(input.FotoCapaContent) > 0 {
		if err := utils.ValidateFotoAnexo(input.FotoCapaFilename, int64(len(input.FotoCapaContent)), models.ChecklistMaxAnexoBytes); err != nil {
			return err
		}
		form.AddFile("foto_capa", input.FotoCapaFilename, input.FotoCapaContent)
	}

	if err := s.api.PostMultipart(ctx, "/marketplace/", form, nil); err != nil {
		return err
	}
	appLogger.Infof("Anúncio '%s' publicado no marketplace", input.Titulo)
	return nil
}

// Update edita um anúncio (JSON, inclui mudança de status do imóvel).
func (s *MarketplaceService) Update(ctx context.Context, id int64, input models.ImovelUpdate) error {
	if err := utils.RequireField(input.Titulo, "titulo", "O título é obrigatório."); err != nil {
		return err
	}
	if err := utils.RequireField(input.Endereco, "endereco", "O endereço é obrigatório."); err != nil {
		return err
	}
	return s.api.PutJSON(ctx, fmt.Sprintf("/marketplace/%d/", id), input, nil)
}

// Delete remove um anúncio. A confirmação é responsabilidade da UI.
func (s *MarketplaceService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/marketplace/%d/", id))
}

// UploadFoto adiciona uma foto à galeria do anúncio (multipart 'foto').
func (s *MarketplaceService) UploadFoto(ctx context.Context, id int64, filename string, content []byte) error {
	if err := utils.ValidateFotoAnexo(filename, int64(len(content)), models.ChecklistMaxAnexoBytes); err != nil {
		return err
	}
	form := apiclient.NewMultipartForm().AddFile("foto", filename, content)
	return s.api.PostMultipart(ctx, fmt.Sprintf("/marketplace/%d/fotos/", id), form, nil)
}
