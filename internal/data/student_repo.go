package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shanuka19697/LMS-sub001/internal/data/pgxutil"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// StudentRepo provides CRUD operations for student accounts.
type StudentRepo struct {
	DB *sql.DB
}

// NewStudentRepo creates a new StudentRepo.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{DB: db}
}

const studentColumns = `id, index_number, full_name, email, password_hash, created_at, updated_at`

// Create inserts a new student. PasswordHash must already be hashed by the caller.
func (r *StudentRepo) Create(ctx context.Context, req *model.CreateStudentRequest, passwordHash string) (*model.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO students (index_number, full_name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + studentColumns

	var out model.Student
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query,
			strings.TrimSpace(req.IndexNumber), strings.TrimSpace(req.FullName),
			strings.TrimSpace(req.Email), passwordHash)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a student by ID.
func (r *StudentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
}

// GetByIndexNumber fetches a student by their unique index number.
func (r *StudentRepo) GetByIndexNumber(ctx context.Context, indexNumber string) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE index_number = $1`, indexNumber)
}

func (r *StudentRepo) getOne(ctx context.Context, query string, arg any) (*model.Student, error) {
	var out model.Student
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns students ordered by index number with pagination.
func (r *StudentRepo) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY index_number ASC
		LIMIT $1 OFFSET $2`

	var out []model.Student
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list students: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a student's mutable fields.
func (r *StudentRepo) Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error) {
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
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Email))
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE students SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + studentColumns

	var out model.Student
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// UpdatePasswordHash replaces a student's stored credential.
func (r *StudentRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`UPDATE students SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
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

// Delete removes a student by ID. Returns false when no row matched.
func (r *StudentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
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
