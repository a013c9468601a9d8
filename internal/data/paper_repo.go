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

// PaperRepo provides CRUD operations for exam papers.
type PaperRepo struct {
	DB *sql.DB
}

// NewPaperRepo creates a new PaperRepo.
func NewPaperRepo(db *sql.DB) *PaperRepo {
	return &PaperRepo{DB: db}
}

const paperColumns = `id, title, type, year, created_at, updated_at`

// Create inserts a new paper.
func (r *PaperRepo) Create(ctx context.Context, req *model.CreatePaperRequest) (*model.Paper, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO papers (title, type, year)
		VALUES ($1, $2, $3)
		RETURNING ` + paperColumns

	var out model.Paper
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, strings.TrimSpace(req.Title), string(req.Type), req.Year)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Paper])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a paper by ID.
func (r *PaperRepo) GetByID(ctx context.Context, id string) (*model.Paper, error) {
	var out model.Paper
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+paperColumns+` FROM papers WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Paper])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns papers, newest year first, with pagination.
func (r *PaperRepo) List(ctx context.Context, limit, offset int) ([]*model.Paper, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + paperColumns + `
		FROM papers
		ORDER BY year DESC, created_at DESC
		LIMIT $1 OFFSET $2`

	var out []model.Paper
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Paper])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a paper's mutable fields. Type is immutable.
func (r *PaperRepo) Update(ctx context.Context, id string, req model.UpdatePaperRequest) (*model.Paper, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	argIdx := 1

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Title))
		argIdx++
	}
	if req.Year != nil {
		setParts = append(setParts, fmt.Sprintf("year = $%d", argIdx))
		args = append(args, *req.Year)
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE papers SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + paperColumns

	var out model.Paper
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Paper])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a paper by ID. Returns false when no row matched.
func (r *PaperRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM papers WHERE id = $1`, id)
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
