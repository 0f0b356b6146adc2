package dto

// RegisterRequest representa o cadastro de um cliente
type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6,max=72"`
	Telefone string `json:"telefone" binding:"required,max=30"`
	CPF      string `json:"cpf" binding:"required,cpf"`
}

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// AuthResponse é devolvido por cadastro e login
type AuthResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// VerifyResponse confirma um token válido
type VerifyResponse struct {
	IsValid bool `json:"isValid"`
	IsAdmin bool `json:"isAdmin"`
}
