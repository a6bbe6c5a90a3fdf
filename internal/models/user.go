package models

// User é o perfil do usuário como retornado pelo backend.
// É cacheado localmente junto com o token e substituído por inteiro no login,
// na troca forçada de senha e na atualização de credenciais (que força re-login).
type User struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
	FotoPath           string `json:"foto_path,omitempty"`
}

// LoginResponse é o corpo de resposta de POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// UsersResponse é o corpo de resposta de GET /users/.
type UsersResponse struct {
	Users []User `json:"users"`
}

// RoleInfo descreve um cargo disponível (GET /users/roles/).
type RoleInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserCreate é o payload de POST /users/ (somente Administrador).
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	CPF      string `json:"cpf,omitempty"`
	RG       string `json:"rg,omitempty"`
	Role     string `json:"role"`
}

// UserUpdate é o payload de PUT /users/{id}. O cargo não é editável —
// mudanças de cargo só têm efeito após novo login do usuário afetado.
type UserUpdate struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	CPF      string `json:"cpf,omitempty"`
	RG       string `json:"rg,omitempty"`
}
