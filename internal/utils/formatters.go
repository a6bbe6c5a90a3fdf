package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sentinelas de exibição para datas ausentes/inválidas.
const (
	DateEmpty       = "N/A"
	DateTimeEmpty   = "N/D"
	DateInvalid     = "Data inválida"
	currencyZero    = "R$ 0,00"
	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formata um valor para exibição em tabelas ("R$ 1.234,56").
// Valores não-numéricos (NaN/Inf) viram o literal zero. Não precisa fazer
// round-trip — para inputs use FormatCurrencyInput/ParseCurrency.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return currencyZero
	}
	return "R$ " + ptBR.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// FormatCurrencyInput transforma o texto cru digitado em um campo de valor
// na forma de exibição "milhares.com.ponto,centavos": descarta tudo que não
// é dígito, trata o resultado como centavos (com padding à esquerda até 3
// dígitos, então um único dígito vira "0,0X") e agrupa a parte inteira.
//
//	""       → ""
//	"5"      → "0,05"
//	"100"    → "1,00"
//	"123456" → "1.234,56"
//
// É uma transformação cru→exibição; reaplicar sobre a própria saída exige
// novo strip dos dígitos.
func FormatCurrencyInput(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	for len(d) < 3 {
		d = "0" + d
	}

	cents := d[len(d)-2:]
	intPart := strings.TrimLeft(d[:len(d)-2], "0")
	if intPart == "" {
		intPart = "0"
	}
	return groupThousands(intPart) + "," + cents
}

// groupThousands insere o separador de milhar pt-BR ('.') em uma string de dígitos.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var sb strings.Builder
	first := n % 3
	if first > 0 {
		sb.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// ParseCurrency converte a forma de exibição de volta para o valor canônico
// enviado ao backend: remove separadores de milhar, troca a vírgula decimal
// por ponto e faz o parse. Entrada vazia ou inválida resulta em 0.0.
func ParseCurrency(display string) float64 {
	s := strings.TrimSpace(display)
	if s == "" {
		return 0.0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// FormatDate renderiza uma data ISO (YYYY-MM-DD ou RFC3339) como DD/MM/YYYY.
// Datas sem hora são ancoradas à meia-noite UTC e renderizadas em UTC, para
// que o dia exibido nunca mude com o fuso do usuário.
func FormatDate(iso string) string {
	s := strings.TrimSpace(iso)
	if s == "" {
		return DateEmpty
	}
	if len(s) == 10 {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return DateInvalid
		}
		return t.UTC().Format(displayDate)
	}
	t, err := parseISODateTime(s)
	if err != nil {
		return DateInvalid
	}
	return t.Local().Format(displayDate)
}

// FormatDateTime renderiza um instante ISO como DD/MM/YYYY HH:MM no fuso local.
func FormatDateTime(iso string) string {
	s := strings.TrimSpace(iso)
	if s == "" {
		return DateTimeEmpty
	}
	t, err := parseISODateTime(s)
	if err != nil {
		return DateInvalid
	}
	return t.Local().Format(displayDateTime)
}

func parseISODateTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", s)
}

// FormatFileSize formata um tamanho em bytes para exibição em listas de
// documentos e anexos.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes <= 0:
		return "0 Bytes"
	case bytes < 1024:
		return fmt.Sprintf("%d Bytes", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
