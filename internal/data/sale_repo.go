package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shanuka19697/LMS-sub001/internal/data/pgxutil"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// SaleRepo records lesson purchases. The (student_id, lesson_id) pair is
// unique at the schema level; a repeat purchase surfaces as Conflict.
type SaleRepo struct {
	DB *sql.DB
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo(db *sql.DB) *SaleRepo {
	return &SaleRepo{DB: db}
}

const saleColumns = `id, student_id, lesson_id, price_cents, created_at`

// Create records a purchase. The price is copied from the lesson row inside
// the insert so a concurrent price change cannot skew the recorded amount.
func (r *SaleRepo) Create(ctx context.Context, req *model.CreateSaleRequest) (*model.Sale, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO sales (student_id, lesson_id, price_cents)
		SELECT $1, l.id, l.price_cents FROM lessons l WHERE l.id = $2
		RETURNING ` + saleColumns

	var out model.Sale
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, req.StudentID, req.LessonID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Sale])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a sale by ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*model.Sale, error) {
	var out model.Sale
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Sale])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns sales, newest first, with pagination.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*model.Sale, error) {
	limit, offset = clampPage(limit, offset)
	return r.listWhere(ctx, "", nil, limit, offset)
}

// ListByStudent returns one student's purchases, newest first.
func (r *SaleRepo) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.Sale, error) {
	limit, offset = clampPage(limit, offset)
	return r.listWhere(ctx, `WHERE student_id = $3`, studentID, limit, offset)
}

func (r *SaleRepo) listWhere(ctx context.Context, where string, extra any, limit, offset int) ([]*model.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	args := []any{limit, offset}
	if extra != nil {
		args = append(args, extra)
	}

	var out []model.Sale
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Sale])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// HasPurchase reports whether a student already owns a lesson.
func (r *SaleRepo) HasPurchase(ctx context.Context, studentID, lessonID string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM sales WHERE student_id = $1 AND lesson_id = $2)`,
			studentID, lessonID).Scan(&exists)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return exists, nil
}

// Delete removes a sale by ID. Returns false when no row matched.
func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
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
