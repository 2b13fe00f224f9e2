package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser usuario tal como viaja al frontend: id, email y rol vigente.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse token firmado + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// RegisterAdminRequest alta del primer administrador del sistema.
type RegisterAdminRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Phone     string `json:"phone"`
}

// SystemStatusResponse indica si ya existe un ADMIN.
type SystemStatusResponse struct {
	Initialized bool `json:"initialized"`
}

// VerifySessionResponse resultado de re-validar la sesión contra la DB.
type VerifySessionResponse struct {
	Valid bool         `json:"valid"`
	User  *SessionUser `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}
