package auth

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

// SessionState é o estado de autenticação da aplicação.
type SessionState int

const (
	// StateUnchecked: antes da hidratação inicial (roda uma única vez por processo).
	StateUnchecked SessionState = iota
	// StateAnonymous: sem sessão; a tela de login é exibida.
	StateAnonymous
	// StateAuthenticated: sessão válida; o shell principal é exibido.
	StateAuthenticated
	// StateMustChangePassword: login válido mas o backend exige troca de senha
	// antes de liberar o restante da aplicação.
	StateMustChangePassword
)

// sessionPayload é o que vai (cifrado) para o disco: exatamente token + perfil.
type sessionPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

const (
	sessionSaltLen = 16
	scryptN        = 1 << 15
	scryptR        = 8
	scryptP        = 1
)

// SessionStore guarda o token e o perfil do usuário, persiste ambos em um
// único arquivo cifrado e expõe as transições login/logout/troca-de-senha.
// O token é lido por toda requisição (TokenSource do gateway); só as
// transições do próprio store o escrevem.
type SessionStore struct {
	mu       sync.RWMutex
	cfg      *core.Config
	state    SessionState
	token    string
	user     *models.User
	hydrated bool
}

// NewSessionStore cria o store no estado Unchecked.
func NewSessionStore(cfg *core.Config) *SessionStore {
	return &SessionStore{cfg: cfg, state: StateUnchecked}
}

// Hydrate tenta restaurar a sessão persistida. Qualquer falha (arquivo
// ausente, corrompido, indecifrável, token expirado) degrada para Anonymous
// com logout implícito. Roda exatamente uma vez; chamadas subsequentes são no-op.
func (s *SessionStore) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated {
		return
	}
	s.hydrated = true

	payload, err := s.loadFromFile()
	if err != nil {
		if !os.IsNotExist(err) {
			appLogger.Warnf("Sessão persistida inválida, descartando: %v", err)
			_ = os.Remove(s.cfg.SessionFile)
		}
		s.clearLocked()
		return
	}

	// Invariante: sem token, o perfil armazenado não vale nada.
	if payload.Token == "" {
		appLogger.Warn("Sessão persistida sem token. Descartando.")
		_ = os.Remove(s.cfg.SessionFile)
		s.clearLocked()
		return
	}

	if tokenExpired(payload.Token) {
		appLogger.Info("Token persistido expirado. Novo login necessário.")
		_ = os.Remove(s.cfg.SessionFile)
		s.clearLocked()
		return
	}

	s.token = payload.Token
	user := payload.User
	s.user = &user
	if user.MustChangePassword {
		s.state = StateMustChangePassword
	} else {
		s.state = StateAuthenticated
	}
	appLogger.Infof("Sessão restaurada para '%s' (cargo %s)", user.Username, user.Role)
}

// tokenExpired inspeciona a claim `exp` do JWT sem verificar assinatura —
// a validação real é do servidor; isto só evita abrir o shell com um token
// que certamente será rejeitado.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false // formato opaco: deixa o backend decidir
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// State retorna o estado corrente.
func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token implementa apiclient.TokenSource.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser retorna uma cópia do perfil corrente, ou nil quando anônimo.
func (s *SessionStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role retorna o cargo corrente (Prestador quando anônimo, por segurança de UX).
func (s *SessionStore) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return RolePrestador
	}
	return ParseRole(s.user.Role)
}

// HandleLogin registra uma sessão recém-autenticada e a persiste.
// O estado resultante depende da flag must_change_password do perfil.
func (s *SessionStore) HandleLogin(token string, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
	if user.MustChangePassword {
		s.state = StateMustChangePassword
	} else {
		s.state = StateAuthenticated
	}
	if err := s.saveToFile(); err != nil {
		appLogger.Errorf("Falha ao persistir sessão: %v", err)
	}
	appLogger.Infof("Login de '%s' (cargo %s, troca de senha: %v)", user.Username, user.Role, user.MustChangePassword)
}

// HandlePasswordChanged substitui o perfil pelo retornado na troca forçada
// de senha e libera o shell principal sem novo login.
func (s *SessionStore) HandlePasswordChanged(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.MustChangePassword = false
	s.user = &user
	s.state = StateAuthenticated
	if err := s.saveToFile(); err != nil {
		appLogger.Errorf("Falha ao persistir sessão após troca de senha: %v", err)
	}
}

// Logout limpa token e perfil e apaga o arquivo persistido. Requisições em
// voo não são canceladas (melhor esforço).
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	username := ""
	if s.user != nil {
		username = s.user.Username
	}
	s.clearLocked()
	if err := os.Remove(s.cfg.SessionFile); err != nil && !os.IsNotExist(err) {
		appLogger.Warnf("Falha ao remover arquivo de sessão: %v", err)
	}
	if username != "" {
		appLogger.Infof("Logout de '%s'", username)
	}
}

func (s *SessionStore) clearLocked() {
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
}

// --- Persistência cifrada ---
// Formato do arquivo: [salt 16][nonce 24][ciphertext]. A chave é derivada da
// SecretKey da configuração via scrypt com o salt do próprio arquivo.

func (s *SessionStore) deriveKey(salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(s.cfg.SecretKey), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}

func (s *SessionStore) saveToFile() error {
	payload := sessionPayload{Token: s.token}
	if s.user != nil {
		payload.User = *s.user
	}
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return core.WrapErrorf(err, "falha ao serializar sessão")
	}

	salt := make([]byte, sessionSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return core.WrapErrorf(err, "falha ao gerar salt")
	}
	key, err := s.deriveKey(salt)
	if err != nil {
		return core.WrapErrorf(err, "falha ao derivar chave de sessão")
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return core.WrapErrorf(err, "falha ao inicializar cifra")
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return core.WrapErrorf(err, "falha ao gerar nonce")
	}

	blob := append(append(salt, nonce...), aead.Seal(nil, nonce, plaintext, nil)...)

	// Escrita atômica: grava em tmp e renomeia.
	tmpPath := s.cfg.SessionFile + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0600); err != nil {
		return core.WrapErrorf(err, "falha ao escrever arquivo de sessão temporário")
	}
	if err := os.Rename(tmpPath, s.cfg.SessionFile); err != nil {
		_ = os.Remove(tmpPath)
		return core.WrapErrorf(err, "falha ao renomear arquivo de sessão")
	}
	return nil
}

func (s *SessionStore) loadFromFile() (*sessionPayload, error) {
	blob, err := os.ReadFile(s.cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	if len(blob) < sessionSaltLen+chacha20poly1305.NonceSizeX+1 {
		return nil, fmt.Errorf("arquivo de sessão truncado (%d bytes)", len(blob))
	}
	salt := blob[:sessionSaltLen]
	nonce := blob[sessionSaltLen : sessionSaltLen+chacha20poly1305.NonceSizeX]
	ciphertext := blob[sessionSaltLen+chacha20poly1305.NonceSizeX:]

	key, err := s.deriveKey(salt)
	if err != nil {
		return nil, core.WrapErrorf(err, "falha ao derivar chave de sessão")
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, core.WrapErrorf(err, "falha ao inicializar cifra")
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, core.WrapErrorf(core.ErrInvalidSession, "falha ao decifrar arquivo de sessão")
	}

	var payload sessionPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, core.WrapErrorf(core.ErrInvalidSession, "sessão persistida ilegível")
	}
	return &payload, nil
}

// SessionFilePath é o caminho absoluto do arquivo de sessão (diagnóstico).
func (s *SessionStore) SessionFilePath() string {
	abs, err := filepath.Abs(s.cfg.SessionFile)
	if err != nil {
		return s.cfg.SessionFile
	}
	return abs
}
