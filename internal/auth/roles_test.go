package auth

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"Administrador", RoleAdministrador},
		{"Gestor", RoleGestor},
		{"Prestador", RolePrestador},
		{"", RolePrestador},
		{"SuperUser", RolePrestador}, // desconhecido cai no mais restritivo
	}
	for _, c := range cases {
		if got := ParseRole(c.in); got != c.want {
			t.Errorf("ParseRole(%q) = %v, quer %v", c.in, got, c.want)
		}
	}
}

func TestVisibleViews(t *testing.T) {
	admin := VisibleViews(RoleAdministrador)
	if len(admin) != len(allViews) {
		t.Errorf("Administrador vê %d views, quer %d", len(admin), len(allViews))
	}

	gestor := VisibleViews(RoleGestor)
	for _, v := range gestor {
		if v == ViewFuncionarios {
			t.Error("Gestor não deve ver a gestão de usuários")
		}
	}
	if len(gestor) != len(allViews)-1 {
		t.Errorf("Gestor vê %d views, quer %d", len(gestor), len(allViews)-1)
	}

	prestador := VisibleViews(RolePrestador)
	want := []ViewID{ViewDashboard, ViewChecklist}
	if len(prestador) != len(want) {
		t.Fatalf("Prestador vê %v, quer %v", prestador, want)
	}
	for i, v := range want {
		if prestador[i] != v {
			t.Errorf("Prestador[%d] = %v, quer %v", i, prestador[i], v)
		}
	}
}

func TestCanView(t *testing.T) {
	if !CanView(RolePrestador, ViewChecklist) {
		t.Error("Prestador deve ver o checklist")
	}
	if CanView(RolePrestador, ViewFinanceiro) {
		t.Error("Prestador não deve ver o financeiro")
	}
	// Detalhe de obra herda a visibilidade do dashboard.
	if !CanView(RolePrestador, ViewObraDetail) {
		t.Error("detalhe de obra deve seguir o dashboard")
	}
	if !CanView(RoleGestor, ViewMarketplace) {
		t.Error("Gestor deve ver o marketplace")
	}
}

func TestCanManageEIsAdmin(t *testing.T) {
	if !CanManage(RoleAdministrador) || !CanManage(RoleGestor) {
		t.Error("Administrador e Gestor podem gerir")
	}
	if CanManage(RolePrestador) {
		t.Error("Prestador não pode gerir")
	}
	if CanManage(Role("qualquer coisa")) {
		t.Error("cargo desconhecido não pode gerir")
	}
	if !IsAdmin(RoleAdministrador) || IsAdmin(RoleGestor) {
		t.Error("apenas Administrador é admin")
	}
}

func TestViewLabel(t *testing.T) {
	if got := ViewLabel(ViewInventario); got != "Inventário" {
		t.Errorf("ViewLabel(inventario) = %q", got)
	}
	if got := ViewLabel(ViewID("inexistente")); got != "inexistente" {
		t.Errorf("ViewLabel desconhecida = %q, quer o próprio id", got)
	}
}
