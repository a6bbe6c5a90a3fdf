package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{-50, "R$ -50,00"},
		{1000000, "R$ 1.000.000,00"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, quer %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrencyInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"5", "0,05"},
		{"50", "0,50"},
		{"100", "1,00"},
		{"123456", "1.234,56"},
		{"1.234,56", "1.234,56"}, // reaplicar sobre a própria saída é estável
		{"R$ 99", "0,99"},
		{"123456789", "1.234.567,89"},
	}
	for _, c := range cases {
		if got := FormatCurrencyInput(c.in); got != c.want {
			t.Errorf("FormatCurrencyInput(%q) = %q, quer %q", c.in, got, c.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"lixo", 0},
		{"0,05", 0.05},
		{"1.234,56", 1234.56},
		{"1.000.000,00", 1000000},
	}
	for _, c := range cases {
		if got := ParseCurrency(c.in); got != c.want {
			t.Errorf("ParseCurrency(%q) = %v, quer %v", c.in, got, c.want)
		}
	}
}

func TestParseCurrencyRoundTrip(t *testing.T) {
	// digitado → exibição → valor canônico
	if got := ParseCurrency(FormatCurrencyInput("123456")); got != 1234.56 {
		t.Fatalf("round-trip de \"123456\" = %v, quer 1234.56", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "N/A"},
		{"2025-03-01", "01/03/2025"}, // data pura é ancorada em UTC
		{"01/03/2025", "Data inválida"},
		{"2025-13-40", "Data inválida"},
	}
	for _, c := range cases {
		if got := FormatDate(c.in); got != c.want {
			t.Errorf("FormatDate(%q) = %q, quer %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime(""); got != "N/D" {
		t.Errorf("FormatDateTime(\"\") = %q, quer N/D", got)
	}
	if got := FormatDateTime("não-é-data"); got != DateInvalid {
		t.Errorf("FormatDateTime inválido = %q, quer %q", got, DateInvalid)
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{-10, "0 Bytes"},
		{512, "512 Bytes"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, c := range cases {
		if got := FormatFileSize(c.in); got != c.want {
			t.Errorf("FormatFileSize(%d) = %q, quer %q", c.in, got, c.want)
		}
	}
}
