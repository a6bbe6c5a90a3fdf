package pages

import "testing"

func TestCpfAviso(t *testing.T) {
	cases := []struct {
		nome      string
		in        string
		querAviso bool
	}{
		{"vazio não avisa", "", false},
		{"incompleto não avisa durante a digitação", "529982", false},
		{"CPF válido não avisa", "52998224725", false},
		{"dígito verificador errado avisa", "52998224726", true},
		{"todos iguais avisa", "11111111111", true},
		{"espaços em volta são ignorados", " 52998224725 ", false},
	}
	for _, c := range cases {
		got := cpfAviso(c.in)
		if c.querAviso && got == "" {
			t.Errorf("%s: cpfAviso(%q) vazio, queria aviso", c.nome, c.in)
		}
		if !c.querAviso && got != "" {
			t.Errorf("%s: cpfAviso(%q) = %q, não queria aviso", c.nome, c.in, got)
		}
	}
}
