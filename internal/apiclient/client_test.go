package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	return New(cfg, staticToken(token))
}

func TestHeadersDaRequisicao(t *testing.T) {
	var gotAuth, gotRequestID string
	c := testClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})

	if err := c.GetJSON(context.Background(), "/obras/", nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID ausente")
	}
}

func TestSemTokenNaoEnviaAuthorization(t *testing.T) {
	var gotAuth string
	hasHeader := false
	c := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.GetJSON(context.Background(), "/marketplace/", nil); err != nil {
		t.Fatal(err)
	}
	if hasHeader || gotAuth != "" {
		t.Errorf("anônimo não deve enviar Authorization, veio %q", gotAuth)
	}
}

func TestPrefixoAPI(t *testing.T) {
	var gotPath string
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})
	_ = c.GetJSON(context.Background(), "/reports/kpis/", nil)
	if gotPath != "/api/reports/kpis/" {
		t.Errorf("path = %q, quer /api/reports/kpis/", gotPath)
	}
}

func TestDecodificaEnvelopeDeErro(t *testing.T) {
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "Já existe uma obra com este nome."}`))
	})

	err := c.PostJSON(context.Background(), "/obras/", map[string]string{"nome": "x"}, nil)
	if err == nil {
		t.Fatal("esperava erro")
	}

	var ae *core.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("quer APIError, veio %T", err)
	}
	if ae.Message != "Já existe uma obra com este nome." {
		t.Errorf("mensagem = %q", ae.Message)
	}
	if !errors.Is(err, core.ErrConflict) {
		t.Error("409 deve mapear para ErrConflict")
	}
	if !errors.Is(err, core.ErrAPI) {
		t.Error("todo APIError satisfaz ErrAPI")
	}
	if got := core.UserMessage(err, "fallback"); got != "Já existe uma obra com este nome." {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestErroSemCorpoUsaStatusText(t *testing.T) {
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := c.Delete(context.Background(), "/obras/1/")
	var ae *core.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("quer APIError, veio %T", err)
	}
	if ae.Message != http.StatusText(http.StatusForbidden) {
		t.Errorf("mensagem = %q", ae.Message)
	}
	if !errors.Is(err, core.ErrPermissionDenied) {
		t.Error("403 deve mapear para ErrPermissionDenied")
	}
}

func TestMapeamentoDeStatus(t *testing.T) {
	cases := []struct {
		status int
		target error
	}{
		{http.StatusUnauthorized, core.ErrUnauthorized},
		{http.StatusForbidden, core.ErrPermissionDenied},
		{http.StatusNotFound, core.ErrNotFound},
		{http.StatusConflict, core.ErrConflict},
	}
	for _, cse := range cases {
		status := cse.status
		c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		err := c.GetJSON(context.Background(), "/x/", nil)
		if !errors.Is(err, cse.target) {
			t.Errorf("status %d: errors.Is(%v) falhou (err = %v)", status, cse.target, err)
		}
	}
}

func TestServidorForaDoArMapeiaErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // derruba antes de usar
	cfg := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: time.Second}
	c := New(cfg, staticToken(""))

	err := c.GetJSON(context.Background(), "/obras/", nil)
	if !errors.Is(err, core.ErrNetwork) {
		t.Errorf("falha de transporte deve mapear para ErrNetwork, veio %v", err)
	}
}

func TestCorpoVazioEm2xxEAceito(t *testing.T) {
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	var out struct{ ID int64 }
	if err := c.GetJSON(context.Background(), "/x/", &out); err != nil {
		t.Errorf("corpo vazio em 200 não deve falhar: %v", err)
	}
}

func TestPostMultipart(t *testing.T) {
	var gotTipo, gotFilename string
	var gotContent []byte
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotTipo = r.FormValue("tipo")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		buf := make([]byte, header.Size)
		file.Read(buf)
		gotContent = buf
		w.Write([]byte(`{}`))
	})

	form := NewMultipartForm().
		AddField("tipo", "contrato").
		AddFile("file", "contrato.pdf", []byte("conteudo-pdf"))
	if err := c.PostMultipart(context.Background(), "/documentos/", form, nil); err != nil {
		t.Fatal(err)
	}
	if gotTipo != "contrato" {
		t.Errorf("tipo = %q", gotTipo)
	}
	if gotFilename != "contrato.pdf" {
		t.Errorf("filename = %q", gotFilename)
	}
	if string(gotContent) != "conteudo-pdf" {
		t.Errorf("conteúdo = %q", gotContent)
	}
}

func TestContextoCanceladoPropaga(t *testing.T) {
	c := testClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.GetJSON(ctx, "/obras/", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelamento deve propagar context.Canceled, veio %v", err)
	}
}
