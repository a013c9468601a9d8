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
	"github.com/shanuka19697/LMS-sub001/internal/util"
)

// LessonRepo provides CRUD operations for lessons.
type LessonRepo struct {
	DB *sql.DB
}

// NewLessonRepo creates a new LessonRepo.
func NewLessonRepo(db *sql.DB) *LessonRepo {
	return &LessonRepo{DB: db}
}

const lessonColumns = `id, title, subject, date, meeting_id, meeting_password, price_cents, created_at, updated_at`

// Create inserts a new lesson. The meeting URL is decomposed into meeting
// ID and password before storage and the date normalized to UTC midnight.
func (r *LessonRepo) Create(ctx context.Context, req *model.CreateLessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	meetingID, meetingPassword, err := model.ParseMeetingURL(req.MeetingURL)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO lessons (title, subject, date, meeting_id, meeting_password, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + lessonColumns

	var out model.Lesson
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query,
			strings.TrimSpace(req.Title), strings.TrimSpace(req.Subject),
			util.UTCMidnight(req.Date), meetingID, meetingPassword, req.PriceCents)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lesson])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a lesson by ID.
func (r *LessonRepo) GetByID(ctx context.Context, id string) (*model.Lesson, error) {
	var out model.Lesson
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+lessonColumns+` FROM lessons WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lesson])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns lessons, newest date first, with pagination.
func (r *LessonRepo) List(ctx context.Context, limit, offset int) ([]*model.Lesson, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2`

	var out []model.Lesson
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Lesson])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a lesson's mutable fields.
func (r *LessonRepo) Update(ctx context.Context, id string, req model.UpdateLessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	argIdx := 1

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Title))
		argIdx++
	}
	if req.Subject != nil {
		setParts = append(setParts, fmt.Sprintf("subject = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Subject))
		argIdx++
	}
	if req.Date != nil {
		setParts = append(setParts, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, util.UTCMidnight(*req.Date))
		argIdx++
	}
	if req.MeetingURL != nil {
		meetingID, meetingPassword, err := model.ParseMeetingURL(*req.MeetingURL)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
		setParts = append(setParts, fmt.Sprintf("meeting_id = $%d", argIdx))
		args = append(args, meetingID)
		argIdx++
		setParts = append(setParts, fmt.Sprintf("meeting_password = $%d", argIdx))
		args = append(args, meetingPassword)
		argIdx++
	}
	if req.PriceCents != nil {
		setParts = append(setParts, fmt.Sprintf("price_cents = $%d", argIdx))
		args = append(args, *req.PriceCents)
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE lessons SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + lessonColumns

	var out model.Lesson
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lesson])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a lesson by ID. Returns false when no row matched.
// Deleting a lesson referenced by sales surfaces as a ForeignKey error.
func (r *LessonRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
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
