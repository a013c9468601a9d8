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

// PaperMarkRepo provides CRUD operations for recorded paper marks.
// The (paper_id, student_id) pair is unique at the schema level; duplicates
// surface as Conflict through the shared error mapping.
type PaperMarkRepo struct {
	DB *sql.DB
}

// NewPaperMarkRepo creates a new PaperMarkRepo.
func NewPaperMarkRepo(db *sql.DB) *PaperMarkRepo {
	return &PaperMarkRepo{DB: db}
}

const paperMarkColumns = `id, paper_id, student_id, mcq_mark, structured_mark, created_at, updated_at`

// Create records a student's mark for a paper.
func (r *PaperMarkRepo) Create(ctx context.Context, req *model.CreatePaperMarkRequest) (*model.PaperMark, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO paper_marks (paper_id, student_id, mcq_mark, structured_mark)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + paperMarkColumns

	var out model.PaperMark
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, req.PaperID, req.StudentID, req.MCQMark, req.StructuredMark)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PaperMark])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a mark by ID.
func (r *PaperMarkRepo) GetByID(ctx context.Context, id string) (*model.PaperMark, error) {
	var out model.PaperMark
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+paperMarkColumns+` FROM paper_marks WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PaperMark])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByPaper returns all marks recorded for one paper, with pagination.
func (r *PaperMarkRepo) ListByPaper(ctx context.Context, paperID string, limit, offset int) ([]*model.PaperMark, error) {
	return r.list(ctx, `WHERE paper_id = $1`, paperID, limit, offset)
}

// ListByStudent returns all marks recorded for one student, with pagination.
func (r *PaperMarkRepo) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.PaperMark, error) {
	return r.list(ctx, `WHERE student_id = $1`, studentID, limit, offset)
}

func (r *PaperMarkRepo) list(ctx context.Context, where string, arg any, limit, offset int) ([]*model.PaperMark, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + paperMarkColumns + `
		FROM paper_marks ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var out []model.PaperMark
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PaperMark])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list paper marks: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a mark's sub-scores.
func (r *PaperMarkRepo) Update(ctx context.Context, id string, req model.UpdatePaperMarkRequest) (*model.PaperMark, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	argIdx := 1

	if req.MCQMark != nil {
		setParts = append(setParts, fmt.Sprintf("mcq_mark = $%d", argIdx))
		args = append(args, *req.MCQMark)
		argIdx++
	}
	if req.StructuredMark != nil {
		setParts = append(setParts, fmt.Sprintf("structured_mark = $%d", argIdx))
		args = append(args, *req.StructuredMark)
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE paper_marks SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + paperMarkColumns

	var out model.PaperMark
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PaperMark])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a mark by ID. Returns false when no row matched.
func (r *PaperMarkRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM paper_marks WHERE id = $1`, id)
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
