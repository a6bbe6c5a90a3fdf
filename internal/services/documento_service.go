package services

import (
	"context"
	"fmt"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/utils"
)

// DocumentoService cobre os documentos por obra e a listagem global.
type DocumentoService struct {
	api *apiclient.Client
}

func NewDocumentoService(api *apiclient.Client) *DocumentoService {
	return &DocumentoService{api: api}
}

// ListByObra retorna os documentos de uma obra.
func (s *DocumentoService) ListByObra(ctx context.Context, obraID int64) ([]models.Documento, error) {
	var docs []models.Documento
	if err := s.api.GetJSON(ctx, fmt.Sprintf("/obras/%d/documentos/", obraID), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GlobalReport retorna GET /reports/global-documents/ (todas as obras).
func (s *DocumentoService) GlobalReport(ctx context.Context) ([]models.Documento, error) {
	var docs []models.Documento
	if err := s.api.GetJSON(ctx, "/reports/global-documents/", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Upload envia um documento (multipart 'file' + campo 'tipo') para uma obra.
func (s *DocumentoService) Upload(ctx context.Context, obraID int64, tipo, filename string, content []byte) error {
	if err := utils.RequireField(filename, "file", "Selecione um ficheiro."); err != nil {
		return err
	}
	form := apiclient.NewMultipartForm().
		AddFile("file", filename, content).
		AddField("tipo", tipo)
	if err := s.api.PostMultipart(ctx, fmt.Sprintf("/obras/%d/documentos/", obraID), form, nil); err != nil {
		return err
	}
	appLogger.Infof("Documento '%s' (%s) enviado para a obra %d", filename, tipo, obraID)
	return nil
}

// Delete remove um documento. A confirmação é responsabilidade da UI.
func (s *DocumentoService) Delete(ctx context.Context, docID int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/documentos/%d/", docID))
}
