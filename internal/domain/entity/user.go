package entity

import "time"

// RoleName es el conjunto cerrado de roles del sistema. Las listas de roles
// permitidos por ruta se expresan sobre este tipo, nunca sobre strings
// arbitrarios.
type RoleName string

const (
	RoleAdmin         RoleName = "ADMIN"
	RoleRecepcionista RoleName = "RECEPCIONISTA"
	RoleLimpieza      RoleName = "LIMPIEZA"
)

// Valid indica si el nombre pertenece al conjunto cerrado de roles.
func (r RoleName) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecepcionista, RoleLimpieza:
		return true
	}
	return false
}

func (r RoleName) String() string { return string(r) }

// AllRoles lista completa; la usa verify-session, que solo quiere saber si
// el usuario sigue siendo válido sin restringir por rol.
func AllRoles() []RoleName {
	return []RoleName{RoleAdmin, RoleRecepcionista, RoleLimpieza}
}

// Role registro persistido de un rol (se crea perezosamente al referenciarlo
// por nombre).
type Role struct {
	ID          string
	Name        RoleName
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User identidad del sistema. La contraseña solo vive como hash bcrypt.
// DeletedAt distinto de nil marca borrado lógico: el guard lo rechaza aunque
// el registro siga presente.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	RoleID       string
	IsActive     bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Person datos de perfil en relación 1:1 con User (vía UserID); se crea
// junto con el usuario en la misma operación.
type Person struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Document  string
	Phone     string
	Status    string // ACTIVE, INACTIVE
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserWithDetails proyección usuario + persona + rol para los listados de
// administración.
type UserWithDetails struct {
	User   User
	Person Person
	Role   Role
}
