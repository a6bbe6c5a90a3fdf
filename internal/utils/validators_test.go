package utils

import (
	"errors"
	"testing"

	appErrors "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
)

func TestRequireField(t *testing.T) {
	if err := RequireField("ok", "nome", "obrigatório"); err != nil {
		t.Fatalf("campo preenchido não deve falhar: %v", err)
	}
	err := RequireField("   ", "nome", "O nome é obrigatório.")
	if err == nil {
		t.Fatal("campo em branco deve falhar")
	}
	var ve *appErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("quer ValidationError, veio %T", err)
	}
	if ve.Message != "O nome é obrigatório." {
		t.Errorf("mensagem = %q", ve.Message)
	}
}

func TestValidatePositiveAmount(t *testing.T) {
	if err := ValidatePositiveAmount(10.5); err != nil {
		t.Errorf("valor positivo não deve falhar: %v", err)
	}
	if err := ValidatePositiveAmount(0); err == nil {
		t.Error("zero deve falhar")
	}
	if err := ValidatePositiveAmount(-5); err == nil {
		t.Error("negativo deve falhar")
	}
}

func TestValidateQuantity(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{" 0 ", 0, false},
		{"", 0, true},
		{"-1", 0, true},
		{"dez", 0, true},
		{"1.5", 0, true},
	}
	for _, c := range cases {
		got, err := ValidateQuantity(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ValidateQuantity(%q): err = %v, wantErr = %t", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("ValidateQuantity(%q) = %d, quer %d", c.in, got, c.want)
		}
	}
}

func TestValidateFotoAnexo(t *testing.T) {
	const max = 5 * 1024 * 1024
	if err := ValidateFotoAnexo("obra.JPG", 1024, max); err != nil {
		t.Errorf("extensão válida (case-insensitive) não deve falhar: %v", err)
	}
	if err := ValidateFotoAnexo("laudo.pdf", 1024, max); err == nil {
		t.Error("extensão não suportada deve falhar")
	}
	if err := ValidateFotoAnexo("foto.png", max+1, max); err == nil {
		t.Error("ficheiro acima do limite deve falhar")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("gestor@obras.com.br"); err != nil {
		t.Errorf("e-mail válido não deve falhar: %v", err)
	}
	for _, in := range []string{"", "sem-arroba", "a@b@c", "Nome <a@b.com>"} {
		if err := ValidateEmail(in); err == nil {
			t.Errorf("ValidateEmail(%q) deveria falhar", in)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"52998224725", true},  // dígitos verificadores corretos
		{"52998224724", false}, // segundo dígito errado
		{"11111111111", false}, // todos iguais
		{"123", false},
		{"5299822472a", false},
	}
	for _, c := range cases {
		if got := IsValidCPF(c.in); got != c.want {
			t.Errorf("IsValidCPF(%q) = %t, quer %t", c.in, got, c.want)
		}
	}
}
