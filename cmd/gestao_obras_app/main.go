package main

import (
	"log"
	"os"

	"gioui.org/app"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/apiclient"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/services"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/ui/pages"
)

func main() {
	// app.Main precisa da thread principal; o resto roda numa goroutine.
	go run()
	app.Main()
}

func run() {
	// --- 1. Carregar Configurações ---
	cfg, err := core.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Erro CRÍTICO ao carregar configuração: %v", err)
	}

	// --- 2. Configurar Logger ---
	if err := appLogger.SetupLogger(cfg); err != nil {
		log.Fatalf("Erro CRÍTICO ao configurar logger: %v", err)
	}
	appLogger.Info("=====================================================")
	appLogger.Infof("Iniciando %s v%s...", cfg.AppName, cfg.AppVersion)
	appLogger.Debugf("Modo Debug: %t", cfg.AppDebug)
	appLogger.Info("=====================================================")

	// --- 3. Sessão local e cliente da API ---
	session := auth.NewSessionStore(cfg)
	session.Hydrate()
	api := apiclient.New(cfg, session)

	// --- 4. Serviços de domínio ---
	deps := &pages.Deps{
		Cfg:         cfg,
		Session:     session,
		Auth:        services.NewAuthService(api),
		Obras:       services.NewObraService(api),
		Financeiro:  services.NewFinanceiroService(api),
		Inventario:  services.NewInventarioService(api),
		Checklist:   services.NewChecklistService(api),
		Documentos:  services.NewDocumentoService(api),
		Vinculos:    services.NewVinculoService(api),
		Users:       services.NewUserService(api),
		Reports:     services.NewReportService(api),
		Marketplace: services.NewMarketplaceService(api),
	}

	// --- 5. Janela, tema e navegação ---
	theme := ui.NewAppTheme()
	router := ui.NewRouter()
	win := ui.NewAppWindow(cfg, theme, session, router)
	deps.Win = win
	deps.Router = router

	// --- 6. Telas ---
	shell := pages.NewMainLayout(deps)
	shell.Register(auth.ViewDashboard, pages.NewDashboardPage(deps))
	shell.Register(auth.ViewObraDetail, pages.NewObraDetailPage(deps))
	shell.Register(auth.ViewInventario, pages.NewGlobalInventarioPage(deps))
	shell.Register(auth.ViewFinanceiro, pages.NewGlobalFinanceiroPage(deps))
	shell.Register(auth.ViewChecklist, pages.NewGlobalChecklistPage(deps))
	shell.Register(auth.ViewDocumentos, pages.NewGlobalDocumentosPage(deps))
	shell.Register(auth.ViewFuncionarios, pages.NewUsersPage(deps))
	shell.Register(auth.ViewRelatorios, pages.NewRelatoriosPage(deps))
	shell.Register(auth.ViewMarketplace, pages.NewMarketplacePage(deps))

	win.SetScreens(pages.NewLoginPage(deps), pages.NewForcePasswordPage(deps), shell)

	// --- 7. Loop de eventos ---
	appLogger.Info("Janela principal criada. Iniciando loop de eventos...")
	if err := win.Run(); err != nil {
		appLogger.Fatalf("Erro no loop de eventos da janela: %v", err)
	}
	appLogger.Info("Aplicação encerrada.")
	os.Exit(0)
}
