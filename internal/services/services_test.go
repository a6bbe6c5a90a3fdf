package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

type anonToken struct{}

func (anonToken) Token() string { return "token-de-teste" }

// testAPI cria um cliente apontando para um servidor de teste e devolve
// também o contador de requisições que chegaram nele.
func testAPI(t *testing.T, handler http.HandlerFunc) (*apiclient.Client, *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	cfg := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	return apiclient.New(cfg, anonToken{}), &hits
}

func okJSON(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{}`))
}

func ctx() context.Context { return context.Background() }
