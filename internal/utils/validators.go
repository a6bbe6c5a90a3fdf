package utils

import (
	"net/mail"
	"path/filepath"
	"strconv"
	"strings"

	appErrors "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

// Validações de formulário executadas ANTES de qualquer requisição: uma
// falha aqui nunca chega à rede. As mensagens são exibidas inline no modal,
// exatamente como estão.

// RequireField valida um campo obrigatório de texto.
// `message` é a mensagem exibível (ex: "O nome da obra é obrigatório.").
func RequireField(value, field, message string) error {
	if strings.TrimSpace(value) == "" {
		return appErrors.NewValidationError(message, map[string]string{field: "obrigatório"})
	}
	return nil
}

// ValidatePositiveAmount valida o valor de uma transação financeira.
func ValidatePositiveAmount(v float64) error {
	if v <= 0 {
		return appErrors.NewValidationError("O valor deve ser positivo.", map[string]string{"valor": "deve ser maior que zero"})
	}
	return nil
}

// ValidateQuantity valida a quantidade de um item de inventário.
func ValidateQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, appErrors.NewValidationError("A quantidade é obrigatória.", map[string]string{"quantidade": "obrigatória"})
	}
	q, err := strconv.Atoi(s)
	if err != nil || q < 0 {
		return 0, appErrors.NewValidationError("A quantidade deve ser um número inteiro não negativo.", map[string]string{"quantidade": "inválida"})
	}
	return q, nil
}

// Extensões aceitas para fotos de anexo (checklist e marketplace).
var fotoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ValidateFotoAnexo valida tipo e tamanho de uma foto antes do upload.
// maxBytes tipicamente é models.ChecklistMaxAnexoBytes (5MB).
func ValidateFotoAnexo(filename string, size int64, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !fotoExtensions[ext] {
		return appErrors.NewValidationError("Tipo de ficheiro inválido. Use PNG, JPG ou GIF.", map[string]string{"photo": "tipo inválido"})
	}
	if size > maxBytes {
		return appErrors.NewValidationError("O ficheiro da foto é demasiado grande (máx 5MB).", map[string]string{"photo": "muito grande"})
	}
	return nil
}

// ValidateEmail faz a validação de formato de e-mail usada no cadastro de
// usuários. O backend revalida; isto só evita uma ida à rede.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return appErrors.NewValidationError("E-mail é obrigatório.", map[string]string{"email": "obrigatório"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return appErrors.NewValidationError("Formato de e-mail inválido.", map[string]string{"email": "formato inválido"})
	}
	return nil
}

// IsValidCPF verifica os dígitos verificadores de um CPF (apenas dígitos).
// Usado como aviso no cadastro de trabalhador sem registro; o envio não é
// bloqueado pelo cliente.
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 || allDigitsEqual(cpf) {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	d1 := (sum * 10) % 11
	if d1 == 10 {
		d1 = 0
	}
	if d1 != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	d2 := (sum * 10) % 11
	if d2 == 10 {
		d2 = 0
	}
	return d2 == int(cpf[10]-'0')
}

// allDigitsEqual verifica se todos os caracteres de uma string são iguais.
func allDigitsEqual(s string) bool {
	if len(s) < 2 {
		return true
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
