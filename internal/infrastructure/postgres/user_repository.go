package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Necesita el pool (no un Querier) porque Save y Update abren su propia
// transacción.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, role_id, is_active, deleted_at, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RoleID, &u.IsActive, &u.DeletedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByID obtiene un usuario por ID. Devuelve nil si no existe; los borrados
// lógicos SÍ se devuelven (con DeletedAt seteado) para que la capa de
// autorización distinga "no existe" de "eliminado".
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail obtiene un usuario por email (excluye borrados lógicos).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND deleted_at IS NULL`, email)
	return scanUser(row)
}

// FindRoleByID obtiene un rol por ID. Devuelve nil si no existe.
func (r *UserRepo) FindRoleByID(id string) (*entity.Role, error) {
	return r.findRole(`WHERE id = $1`, id)
}

// FindRoleByName obtiene un rol por nombre. Devuelve nil si no existe.
func (r *UserRepo) FindRoleByName(name entity.RoleName) (*entity.Role, error) {
	return r.findRole(`WHERE name = $1`, string(name))
}

func (r *UserRepo) findRole(where string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM roles `+where, arg,
	).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// FindPersonByUserID obtiene la persona vinculada a un usuario.
func (r *UserRepo) FindPersonByUserID(userID string) (*entity.Person, error) {
	var p entity.Person
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, user_id, first_name, last_name, document, phone, status, created_at, updated_at
		FROM persons WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Document, &p.Phone, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return &p, nil
}

// ListWithDetails lista usuarios no eliminados con persona y rol.
func (r *UserRepo) ListWithDetails() ([]*entity.UserWithDetails, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT u.id, u.email, u.password_hash, u.role_id, u.is_active, u.deleted_at, u.created_at, u.updated_at,
		       p.id, p.user_id, p.first_name, p.last_name, p.document, p.phone, p.status, p.created_at, p.updated_at,
		       r.id, r.name, r.description, r.created_at, r.updated_at
		FROM users u
		JOIN persons p ON p.user_id = u.id
		JOIN roles r ON r.id = u.role_id
		WHERE u.deleted_at IS NULL
		ORDER BY u.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserWithDetails
	for rows.Next() {
		var d entity.UserWithDetails
		if err := rows.Scan(
			&d.User.ID, &d.User.Email, &d.User.PasswordHash, &d.User.RoleID, &d.User.IsActive,
			&d.User.DeletedAt, &d.User.CreatedAt, &d.User.UpdatedAt,
			&d.Person.ID, &d.Person.UserID, &d.Person.FirstName, &d.Person.LastName,
			&d.Person.Document, &d.Person.Phone, &d.Person.Status, &d.Person.CreatedAt, &d.Person.UpdatedAt,
			&d.Role.ID, &d.Role.Name, &d.Role.Description, &d.Role.CreatedAt, &d.Role.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user details: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// IsInitialized indica si ya existe al menos un usuario activo con rol ADMIN.
func (r *UserRepo) IsInitialized() (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM users u
			JOIN roles r ON r.id = u.role_id
			WHERE r.name = $1 AND u.deleted_at IS NULL
		)`, string(entity.RoleAdmin)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check initialized: %w", err)
	}
	return exists, nil
}

// Save crea rol (si no existe por nombre), usuario y persona en una sola
// transacción. Actualiza role.ID y user.RoleID con el rol efectivo cuando ya
// existía uno con ese nombre.
func (r *UserRepo) Save(user *entity.User, person *entity.Person, role *entity.Role) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Creación perezosa del rol: si ya hay uno con ese nombre, se reutiliza.
	var roleID string
	err = tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, string(role.Name)).Scan(&roleID)
	if errors.Is(err, pgx.ErrNoRows) {
		roleID = role.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO roles (id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			role.ID, string(role.Name), role.Description, role.CreatedAt, role.UpdatedAt)
	}
	if err != nil {
		return fmt.Errorf("ensure role: %w", err)
	}
	role.ID = roleID
	user.RoleID = roleID

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role_id, is_active, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.RoleID, user.IsActive, user.DeletedAt, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO persons (id, user_id, first_name, last_name, document, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		person.ID, person.UserID, person.FirstName, person.LastName, person.Document,
		person.Phone, person.Status, person.CreatedAt, person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update persiste usuario y persona juntos en una transacción.
func (r *UserRepo) Update(user *entity.User, person *entity.Person) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE users SET email = $2, password_hash = $3, role_id = $4, is_active = $5, updated_at = $6
		WHERE id = $1`,
		user.ID, user.Email, user.PasswordHash, user.RoleID, user.IsActive, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE persons SET first_name = $2, last_name = $3, document = $4, phone = $5, status = $6, updated_at = $7
		WHERE user_id = $1`,
		person.UserID, person.FirstName, person.LastName, person.Document, person.Phone, person.Status, person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete borrado lógico: marca deleted_at y conserva usuario y persona. El
// registro sigue siendo visible por FindByID para que el guard responda
// USER_DELETED en el siguiente request del token todavía vigente.
func (r *UserRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `
		UPDATE users SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
