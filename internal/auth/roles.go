package auth

// Role é o cargo do usuário, imutável durante a sessão. Mudanças de cargo
// feitas por um administrador só têm efeito quando o usuário afetado fizer
// novo login — o cliente nunca atualiza o cargo no meio da sessão.
type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleGestor        Role = "Gestor"
	RolePrestador     Role = "Prestador"
)

// ViewID identifica uma entrada de navegação da aplicação.
type ViewID string

const (
	ViewDashboard    ViewID = "dashboard"
	ViewObraDetail   ViewID = "obra_detail"
	ViewInventario   ViewID = "inventario"
	ViewFinanceiro   ViewID = "financeiro"
	ViewChecklist    ViewID = "checklist"
	ViewDocumentos   ViewID = "documentos"
	ViewFuncionarios ViewID = "funcionarios"
	ViewRelatorios   ViewID = "relatorios"
	ViewMarketplace  ViewID = "marketplace"
)

// allViews é a ordem canônica da barra lateral.
var allViews = []ViewID{
	ViewDashboard,
	ViewInventario,
	ViewFinanceiro,
	ViewChecklist,
	ViewDocumentos,
	ViewFuncionarios,
	ViewRelatorios,
	ViewMarketplace,
}

// viewLabels são os rótulos exibidos na barra lateral.
var viewLabels = map[ViewID]string{
	ViewDashboard:    "Dashboard",
	ViewInventario:   "Inventário",
	ViewFinanceiro:   "Financeiro",
	ViewChecklist:    "Checklist",
	ViewDocumentos:   "Documentos",
	ViewFuncionarios: "Funcionários",
	ViewRelatorios:   "Relatórios",
	ViewMarketplace:  "Marketplace",
}

// ViewLabel retorna o rótulo de exibição de uma view.
func ViewLabel(v ViewID) string {
	if label, ok := viewLabels[v]; ok {
		return label
	}
	return string(v)
}

// ParseRole normaliza a string de cargo vinda do backend. Cargo desconhecido
// ou vazio cai no conjunto mais restritivo (Prestador).
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdministrador, RoleGestor, RolePrestador:
		return Role(s)
	}
	return RolePrestador
}

// VisibleViews é a função pura cargo → views navegáveis, recalculada a cada
// frame (barata; o cargo é imutável na sessão, então cache é desnecessário):
//
//	Administrador: todas
//	Gestor:        todas exceto funcionários
//	Prestador:     dashboard e checklist
func VisibleViews(role Role) []ViewID {
	switch ParseRole(string(role)) {
	case RoleAdministrador:
		out := make([]ViewID, len(allViews))
		copy(out, allViews)
		return out
	case RoleGestor:
		out := make([]ViewID, 0, len(allViews)-1)
		for _, v := range allViews {
			if v != ViewFuncionarios {
				out = append(out, v)
			}
		}
		return out
	default:
		return []ViewID{ViewDashboard, ViewChecklist}
	}
}

// CanView informa se uma view aparece para o cargo.
func CanView(role Role, view ViewID) bool {
	if view == ViewObraDetail {
		view = ViewDashboard // detalhe de obra é alcançado a partir do dashboard
	}
	for _, v := range VisibleViews(role) {
		if v == view {
			return true
		}
	}
	return false
}

// CanManage controla as ações administrativas/destrutivas dentro das páginas
// (botões de adicionar/editar/remover, downloads). É avaliado independente da
// navegação: um Prestador que alcance uma página por estado antigo continua
// sem nenhum controle de gestão. Apenas UX — o servidor é a autoridade.
func CanManage(role Role) bool {
	return ParseRole(string(role)) != RolePrestador
}

// IsAdmin controla a administração global de usuários.
func IsAdmin(role Role) bool {
	return ParseRole(string(role)) == RoleAdministrador
}
