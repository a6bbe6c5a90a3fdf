// Package apiclient é o gateway HTTP único da aplicação: todas as chamadas
// ao backend passam por aqui. Ele injeta o bearer token da sessão, define o
// content-type adequado (JSON ou multipart com boundary do transporte),
// decodifica o corpo de erro `{"error": "..."}` e propaga falhas sem retry —
// cada página/modal trata e exibe seus próprios erros.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
)

// TokenSource fornece o token de acesso corrente (vazio quando anônimo).
// O SessionStore implementa esta interface; o gateway nunca grava o token.
type TokenSource interface {
	Token() string
}

// Client é o cliente HTTP da API. Seguro para uso concorrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New cria o cliente apontando para `<APIBaseURL>/api`.
func New(cfg *core.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		tokens:     tokens,
	}
}

// apiErrorBody é o envelope de erro do backend.
type apiErrorBody struct {
	Error string `json:"error"`
}

// GetJSON faz GET e decodifica a resposta JSON em out (pode ser nil).
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON faz POST com corpo JSON.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	rdr, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, "application/json", rdr, out)
}

// PutJSON faz PUT com corpo JSON.
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	rdr, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, "application/json", rdr, out)
}

// Delete faz DELETE sem corpo.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// PostMultipart faz POST com um formulário multipart (uploads de arquivo).
// O content-type com o boundary vem do próprio formulário.
func (c *Client) PostMultipart(ctx context.Context, path string, form *MultipartForm, out interface{}) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, contentType, body, out)
}

// PutMultipart faz PUT com um formulário multipart.
func (c *Client) PutMultipart(ctx context.Context, path string, form *MultipartForm, out interface{}) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, contentType, body, out)
}

func encodeJSON(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, core.WrapErrorf(err, "falha ao serializar corpo da requisição")
	}
	return bytes.NewReader(buf), nil
}

// do monta, envia e interpreta uma requisição. É o único ponto que toca a rede.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return core.WrapErrorf(err, "falha ao montar requisição %s %s", method, path)
	}

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		appLogger.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"request_id": requestID,
		}).Warnf("Falha de transporte: %v", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return core.WrapErrorf(core.ErrNetwork, "%s %s", method, path)
	}
	defer resp.Body.Close()

	appLogger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start).String(),
		"request_id": requestID,
	}).Debug("Requisição à API concluída")

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // corpo vazio em 2xx é aceitável
		}
		return core.WrapErrorf(err, "falha ao decodificar resposta de %s %s", method, path)
	}
	return nil
}

// decodeAPIError extrai a mensagem `{"error"}` do corpo; sem corpo
// decodificável, usa o status text.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var envelope apiErrorBody
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return core.NewAPIError(resp.StatusCode, envelope.Error)
	}
	return core.NewAPIError(resp.StatusCode, "")
}
