package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("usuário não encontrado")
	ErrDuplicateEmail = errors.New("já existe um usuário com este email")
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyEmail     = errors.New("email não pode ser vazio")
	ErrInvalidRole    = errors.New("função de usuário inválida")
	ErrInvalidTheme   = errors.New("tema inválido")
	ErrWeakPassword   = errors.New("a senha deve ter ao menos 6 caracteres")
	ErrInvalidDepart  = errors.New("departamento inválido")
)

// Role representa o papel/função do usuário
type Role string

// Constantes para Role
const (
	RoleAdministrator  Role = "administrador"  // Administrador do sistema
	RoleManager        Role = "gerente"        // Gerente
	RoleSeller         Role = "vendedor"       // Vendedor
	RoleAdministrative Role = "administrativo" // Administrativo
	RoleUser           Role = "user"           // Usuário comum

	// roleLegacyAdmin é o valor antigo gravado para administradores
	roleLegacyAdmin Role = "admin"
)

// Roles lista as funções na ordem exibida
var Roles = []Role{RoleAdministrator, RoleManager, RoleSeller, RoleAdministrative, RoleUser}

// ParseRole normaliza o valor recebido; "admin" é tratado como administrador
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r == roleLegacyAdmin {
		return RoleAdministrator, nil
	}
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid informa se a função é conhecida
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleSeller, RoleAdministrative, RoleUser:
		return true
	}
	return false
}

// Label retorna o rótulo de exibição
func (r Role) Label() string {
	switch r {
	case RoleAdministrator:
		return "Administrador"
	case RoleManager:
		return "Gerente"
	case RoleSeller:
		return "Vendedor"
	case RoleAdministrative:
		return "Administrativo"
	case RoleUser:
		return "Usuário"
	}
	return string(r)
}

// Department representa o departamento do funcionário
type Department string

const (
	DepartmentSales          Department = "vendas"
	DepartmentFinance        Department = "financeiro"
	DepartmentAdministrative Department = "administrativo"
	DepartmentServices       Department = "servicos"
	DepartmentManagement     Department = "gerencia"
)

// Valid informa se o departamento é conhecido
func (d Department) Valid() bool {
	switch d {
	case DepartmentSales, DepartmentFinance, DepartmentAdministrative, DepartmentServices, DepartmentManagement:
		return true
	}
	return false
}

// View retorna rótulo e cor do departamento
func (d Department) View() entity.StatusView {
	switch d {
	case DepartmentSales:
		return entity.StatusView{Value: string(d), Label: "Vendas", Color: entity.ColorBlue}
	case DepartmentFinance:
		return entity.StatusView{Value: string(d), Label: "Financeiro", Color: entity.ColorGreen}
	case DepartmentAdministrative:
		return entity.StatusView{Value: string(d), Label: "Administrativo", Color: entity.ColorPurple}
	case DepartmentServices:
		return entity.StatusView{Value: string(d), Label: "Serviços", Color: entity.ColorYellow}
	case DepartmentManagement:
		return entity.StatusView{Value: string(d), Label: "Gerência", Color: entity.ColorRed}
	}
	return entity.StatusView{Value: string(d), Label: string(d), Color: entity.ColorGray}
}

// Theme é a preferência visual do usuário
type Theme string

const (
	ThemeLight Theme = "claro"
	ThemeDark  Theme = "escuro"
)

// Valid informa se o tema é conhecido
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle alterna entre claro e escuro
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// CompanyData reúne os dados da empresa exibidos em documentos e no cabeçalho
type CompanyData struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
}

// User representa um usuário do sistema
type User struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Password    string      `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role        Role        `json:"role"`
	Department  Department  `json:"department"`
	Position    string      `json:"position"`
	Phone       string      `json:"phone"`
	PhotoURL    string      `json:"photo_url"`
	Theme       Theme       `json:"theme"`
	CompanyData CompanyData `json:"company_data"`
	Active      bool        `json:"active"`
	LastLoginAt *time.Time  `json:"last_login_at"`
	CreatedDate time.Time   `json:"created_date"`
	UpdatedDate time.Time   `json:"updated_date"`
}

// NewUser cria um novo usuário ativo com tema claro
func NewUser(fullName, email string, role Role, password string) (*User, error) {
	u := &User{
		ID:          uuid.New().String(),
		FullName:    strings.TrimSpace(fullName),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Role:        role,
		Theme:       ThemeLight,
		Active:      true,
		CreatedDate: time.Now(),
		UpdatedDate: time.Now(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate verifica nome, email, função, tema e departamento
func (u *User) Validate() error {
	if u.FullName == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Role != "" && !u.Role.Valid() {
		return ErrInvalidRole
	}
	if u.Theme != "" && !u.Theme.Valid() {
		return ErrInvalidTheme
	}
	if u.Department != "" && !u.Department.Valid() {
		return ErrInvalidDepart
	}
	return nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Active
}

// IsAdmin verifica se o usuário é administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

// IsManagement verifica se o usuário é administrador ou gerente
func (u *User) IsManagement() bool {
	return u.Role == RoleAdministrator || u.Role == RoleManager
}

// Matches aplica a busca da listagem por nome ou email
func (u *User) Matches(search string) bool {
	return entity.ContainsFold(u.FullName, search) || entity.ContainsFold(u.Email, search)
}

// ProfileUpdate são os campos que o próprio usuário pode alterar.
// Nome, email e função ficam de fora.
type ProfileUpdate struct {
	Department *Department
	Position   *string
	Phone      *string
	PhotoURL   *string
	Theme      *Theme
}

// ApplyProfile aplica uma atualização do próprio usuário
func (u *User) ApplyProfile(p ProfileUpdate) error {
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Position != nil {
		u.Position = *p.Position
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.PhotoURL != nil {
		u.PhotoURL = *p.PhotoURL
	}
	if p.Theme != nil {
		u.Theme = *p.Theme
	}
	u.UpdatedDate = time.Now()
	return u.Validate()
}

// ToggleTheme alterna o tema e retorna o novo valor
func (u *User) ToggleTheme() Theme {
	u.Theme = u.Theme.Toggle()
	u.UpdatedDate = time.Now()
	return u.Theme
}

// SetCompanyData substitui os dados da empresa
func (u *User) SetCompanyData(c CompanyData) {
	u.CompanyData = c
	u.UpdatedDate = time.Now()
}
