package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shanuka19697/LMS-sub001/internal/data/pgxutil"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// AdminRepo provides CRUD operations for admin accounts. It also backs the
// role re-resolution path used when cached role cookies are not trusted.
type AdminRepo struct {
	DB *sql.DB
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

const adminColumns = `id, username, full_name, role, password_hash, created_at, updated_at`

// Create inserts a new admin. PasswordHash must already be hashed by the caller.
func (r *AdminRepo) Create(ctx context.Context, req *model.CreateAdminRequest, passwordHash string) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO admins (username, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + adminColumns

	var out model.Admin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query,
			strings.TrimSpace(req.Username), strings.TrimSpace(req.FullName),
			string(req.Role), passwordHash)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches an admin by ID.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return r.getOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

// GetByUsername fetches an admin by their unique username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.getOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1`, username)
}

func (r *AdminRepo) getOne(ctx context.Context, query string, arg any) (*model.Admin, error) {
	var out model.Admin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ResolveRole returns the current role for a username. Implements
// ports.RoleResolver for deployments that re-check roles on every request.
func (r *AdminRepo) ResolveRole(ctx context.Context, username string) (domainauth.Role, error) {
	var role string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT role FROM admins WHERE username = $1`, username).Scan(&role)
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return domainauth.Role(role), nil
}

// List returns admins ordered by username with pagination.
func (r *AdminRepo) List(ctx context.Context, limit, offset int) ([]*model.Admin, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		ORDER BY username ASC
		LIMIT $1 OFFSET $2`

	var out []model.Admin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Admin])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies an admin's mutable fields. Username is immutable.
func (r *AdminRepo) Update(ctx context.Context, id string, req model.UpdateAdminRequest) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	argIdx := 1

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.FullName))
		argIdx++
	}
	if req.Role != nil {
		setParts = append(setParts, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, string(*req.Role))
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE admins SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + adminColumns

	var out model.Admin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// UpdatePasswordHash replaces an admin's stored credential.
func (r *AdminRepo) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`UPDATE admins SET password_hash = $2, updated_at = now() WHERE username = $1`, username, passwordHash)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return apperrors.MapDBError(err)
}

// Delete removes an admin by ID. Returns false when no row matched.
func (r *AdminRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return affected > 0, nil
}
