package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, full_name, email, password, role, department, position, phone, photo_url,
	theme, company_data, active, last_login_at, created_date, updated_date`

var userSort = baseSortColumns("full_name", "email", "role", "last_login_at")

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row scanner) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.Password, &u.Role, &u.Department,
		&u.Position, &u.Phone, &u.PhotoURL, &u.Theme, &u.CompanyData,
		&u.Active, &u.LastLoginAt, &u.CreatedDate, &u.UpdatedDate)
	if err != nil {
		return nil, err
	}
	// registros antigos gravaram "admin"
	if role, err := user.ParseRole(string(u.Role)); err == nil {
		u.Role = role
	}
	return &u, nil
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		u.ID, u.FullName, strings.ToLower(u.Email), u.Password, u.Role, u.Department,
		u.Position, u.Phone, u.PhotoURL, u.Theme, u.CompanyData,
		u.Active, u.LastLoginAt, u.CreatedDate, u.UpdatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) findOne(ctx context.Context, query, arg string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	return u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, opts entity.ListOptions) ([]*user.User, error) {
	order, err := orderBy(opts.Sort, userSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler usuários: %w", err)
	}
	return entity.Filter(users, opts.Search, (*user.User).Matches), nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET
			full_name = $2, email = $3, password = $4, role = $5, department = $6,
			position = $7, phone = $8, photo_url = $9, theme = $10, company_data = $11,
			active = $12, updated_date = $13
		WHERE id = $1`,
		u.ID, u.FullName, strings.ToLower(u.Email), u.Password, u.Role, u.Department,
		u.Position, u.Phone, u.PhotoURL, u.Theme, u.CompanyData,
		u.Active, u.UpdatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	return affected(tag, user.ErrNotFound)
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar último login: %w", err)
	}
	return affected(tag, user.ErrNotFound)
}
