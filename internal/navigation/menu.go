// Package navigation mantém a tabela de páginas do menu e as funções que podem acessá-las.
//
// A mesma tabela monta o menu exibido e protege as rotas no servidor.
package navigation

import "github.com/hugohenrick/gestor-pme/internal/domain/user"

// Page identifica uma página da aplicação
type Page string

const (
	PageDashboard     Page = "Dashboard"
	PagePOS           Page = "PDV"
	PageQuotes        Page = "Orcamentos"
	PageServiceOrders Page = "OrdemServico"
	PageServices      Page = "Servicos"
	PageFinancial     Page = "Financeiro"
	PageProducts      Page = "Produtos"
	PageClients       Page = "Clientes"
	PageReports       Page = "Relatorios"
	PageCalendar      Page = "Calendario"
	PageEmployees     Page = "Funcionarios"
	PageSettings      Page = "Configuracoes"
)

// Item é uma entrada do menu lateral
type Item struct {
	Page  Page        `json:"page"`
	Title string      `json:"title"`
	Icon  string      `json:"icon"`
	URL   string      `json:"url"`
	Roles []user.Role `json:"roles"`
}

var (
	allStaff   = []user.Role{user.RoleAdministrator, user.RoleAdministrative, user.RoleManager, user.RoleSeller}
	sales      = []user.Role{user.RoleAdministrator, user.RoleManager, user.RoleSeller}
	finance    = []user.Role{user.RoleAdministrator, user.RoleAdministrative, user.RoleManager}
	management = []user.Role{user.RoleAdministrator, user.RoleManager}
	adminOnly  = []user.Role{user.RoleAdministrator}
)

// menu segue a ordem do menu lateral
var menu = []Item{
	{Page: PageDashboard, Title: "Dashboard", Icon: "layout-dashboard", Roles: allStaff},
	{Page: PagePOS, Title: "PDV", Icon: "shopping-cart", Roles: sales},
	{Page: PageQuotes, Title: "Orçamentos", Icon: "file-text", Roles: sales},
	{Page: PageServiceOrders, Title: "Ordem de Serviço", Icon: "clipboard-list", Roles: allStaff},
	{Page: PageServices, Title: "Serviços", Icon: "wrench", Roles: allStaff},
	{Page: PageFinancial, Title: "Financeiro", Icon: "dollar-sign", Roles: finance},
	{Page: PageProducts, Title: "Produtos", Icon: "package", Roles: allStaff},
	{Page: PageClients, Title: "Clientes", Icon: "users", Roles: allStaff},
	{Page: PageReports, Title: "Relatórios", Icon: "bar-chart", Roles: management},
	{Page: PageCalendar, Title: "Calendário", Icon: "calendar", Roles: allStaff},
	{Page: PageEmployees, Title: "Funcionários", Icon: "user-cog", Roles: management},
	{Page: PageSettings, Title: "Configurações", Icon: "settings", Roles: adminOnly},
}

func init() {
	for i := range menu {
		menu[i].URL = PageURL(menu[i].Page)
	}
}

// PageURL monta a rota nomeada da página
func PageURL(p Page) string {
	return "/" + string(p)
}

// Items retorna uma cópia da tabela completa
func Items() []Item {
	out := make([]Item, len(menu))
	copy(out, menu)
	return out
}

// Visible lista os itens exibidos para a função. Sem função, todos os itens são exibidos.
func Visible(role user.Role) []Item {
	if role == "" {
		return Items()
	}
	out := make([]Item, 0, len(menu))
	for _, it := range menu {
		if hasRole(it.Roles, role) {
			out = append(out, it)
		}
	}
	return out
}

// Allowed informa se a função pode acessar a página. Função vazia nunca é autorizada.
func Allowed(role user.Role, page Page) bool {
	if role == "" {
		return false
	}
	for _, it := range menu {
		if it.Page == page {
			return hasRole(it.Roles, role)
		}
	}
	return false
}

// RolesFor retorna as funções autorizadas para a página
func RolesFor(page Page) []user.Role {
	for _, it := range menu {
		if it.Page == page {
			return append([]user.Role(nil), it.Roles...)
		}
	}
	return nil
}

func hasRole(roles []user.Role, role user.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
