package core

import (
	"errors"
	"fmt"
	"log" // Usado para logs iniciais antes que o logger da aplicação esteja configurado
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config struct para armazenar todas as configurações da aplicação.
type Config struct {
	AppName    string
	AppVersion string
	AppDebug   bool
	SecretKey  string // Usada para cifrar o arquivo de sessão local.

	// Backend (API REST)
	APIBaseURL  string // Ex: http://localhost:8000 (o cliente acrescenta /api)
	HTTPTimeout time.Duration

	// Logging
	LogDir         string
	LogLevel       string
	LogMaxBytes    int
	LogBackupCount int
	LogToConsole   bool

	// Sessão local (token + perfil do usuário, nada além disso)
	SessionFile string

	// Export
	ExportDir string
}

// LoadConfig carrega as configurações do arquivo .env especificado ou encontrado na árvore de diretórios.
func LoadConfig(envPath string) (*Config, error) {
	foundEnvPath, err := findEnvFile(envPath)
	if err != nil {
		log.Printf("Aviso: Arquivo .env em '%s' não encontrado ou inacessível: %v. Tentando carregar variáveis de ambiente globais.", envPath, err)
		if loadErr := godotenv.Load(); loadErr != nil {
			log.Printf("Aviso: Nenhum arquivo .env carregado: %v. Usando apenas variáveis de ambiente existentes ou defaults.", loadErr)
		}
	} else {
		log.Printf("Carregando configurações de: %s", foundEnvPath)
		if err := godotenv.Load(foundEnvPath); err != nil {
			log.Printf("Aviso: Erro ao carregar arquivo .env de '%s': %v. Usando valores padrão ou variáveis de ambiente existentes.", foundEnvPath, err)
		}
	}

	cfg := &Config{}

	cfg.AppName = getEnv("APP_NAME", "Gestão de Obras")
	cfg.AppVersion = getEnv("APP_VERSION", "1.0.0-go")
	cfg.AppDebug = getEnvAsBool("APP_DEBUG", false)
	cfg.SecretKey = getEnv("SECRET_KEY", "default_secret_key_please_change_this_in_production_12345") // Chave padrão fraca

	cfg.APIBaseURL = strings.TrimRight(getEnv("APP_API_BASE_URL", "http://localhost:8000"), "/")
	cfg.HTTPTimeout = getEnvAsDuration("APP_HTTP_TIMEOUT", 30)

	cfg.LogDir = getEnv("APP_LOG_DIR", "./app_logs")
	cfg.LogLevel = strings.ToUpper(getEnv("APP_LOG_LEVEL", "INFO"))
	cfg.LogMaxBytes = getEnvAsInt("APP_LOG_MAX_BYTES", 5*1024*1024) // 5MB
	cfg.LogBackupCount = getEnvAsInt("APP_LOG_BACKUP_COUNT", 7)
	cfg.LogToConsole = getEnvAsBool("APP_LOG_TO_CONSOLE", true)

	cfg.SessionFile = getEnv("APP_SESSION_FILE", "session_go.bin")

	cfg.ExportDir = getEnv("APP_EXPORT_DIR", "./app_exports")

	// Validações de Configurações Críticas
	if !cfg.AppDebug && cfg.SecretKey == "default_secret_key_please_change_this_in_production_12345" {
		return nil, fmt.Errorf("%w: SECRET_KEY não pode ser o valor padrão em ambiente de não depuração (AppDebug=false)", ErrConfiguration)
	}
	if len(cfg.SecretKey) < 32 && !cfg.AppDebug {
		log.Printf("AVISO: SECRET_KEY tem menos de 32 caracteres (%d). Recomenda-se uma chave mais longa para produção.", len(cfg.SecretKey))
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("%w: APP_API_BASE_URL inválida '%s': %w", ErrConfiguration, cfg.APIBaseURL, err)
	}

	// Garantir que diretórios essenciais existam
	if err := ensureDir(cfg.LogDir, true); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de log essencial '%s': %w", cfg.LogDir, err)
	}
	_ = ensureDir(cfg.ExportDir, false)
	sessionDir := filepath.Dir(cfg.SessionFile)
	if sessionDir != "." && sessionDir != string(filepath.Separator) {
		_ = ensureDir(sessionDir, false)
	}

	log.Println("Configurações carregadas e validadas.")
	return cfg, nil
}

// findEnvFile tenta localizar o arquivo .env.
// Primeiro no path fornecido, depois subindo na árvore de diretórios a partir do CWD.
func findEnvFile(envPath string) (string, error) {
	if _, err := os.Stat(envPath); err == nil {
		absPath, _ := filepath.Abs(envPath)
		return absPath, nil
	}

	// Tentar encontrar subindo na árvore de diretórios (máximo 5 níveis)
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("não foi possível obter o diretório de trabalho atual: %w", err)
	}

	for i := 0; i < 5; i++ {
		tryPath := filepath.Join(cwd, ".env")
		if _, err := os.Stat(tryPath); err == nil {
			return tryPath, nil
		}
		parent := filepath.Dir(cwd)
		if parent == cwd { // Chegou à raiz
			break
		}
		cwd = parent
	}
	return "", fmt.Errorf("arquivo .env não encontrado no caminho '%s' ou nos diretórios pais", envPath)
}

// ensureDir garante que um diretório exista, criando-o se necessário.
// Se 'critical' for true, retorna erro em caso de falha. Caso contrário, apenas loga um aviso.
func ensureDir(dirPath string, critical bool) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		msg := fmt.Sprintf("Não foi possível resolver o caminho absoluto para '%s': %v", dirPath, err)
		if critical {
			log.Println("ERRO CRÍTICO:", msg)
			return errors.New(msg)
		}
		log.Println("AVISO:", msg)
		return nil
	}

	if err := os.MkdirAll(absPath, os.ModePerm); err != nil {
		msg := fmt.Sprintf("Não foi possível criar o diretório '%s': %v", absPath, err)
		if critical {
			log.Println("ERRO CRÍTICO:", msg)
			return errors.New(msg)
		}
		log.Println("AVISO:", msg)
	}
	return nil
}

// getEnv recupera o valor de uma variável de ambiente ou retorna um fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt recupera uma variável de ambiente como int ou retorna um fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsBool recupera uma variável de ambiente como bool ou retorna um fallback.
func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration recupera uma variável de ambiente como time.Duration em segundos, ou retorna um fallback.
func getEnvAsDuration(key string, fallbackSeconds int) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	return time.Duration(fallbackSeconds) * time.Second
}
