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

// NotificationRepo provides CRUD operations for site notifications.
type NotificationRepo struct {
	DB *sql.DB
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{DB: db}
}

const notificationColumns = `id, title, body, created_at, updated_at`

// Create publishes a new notification.
func (r *NotificationRepo) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO notifications (title, body)
		VALUES ($1, $2)
		RETURNING ` + notificationColumns

	var out model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, strings.TrimSpace(req.Title), strings.TrimSpace(req.Body))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a notification by ID.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	var out model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns notifications, newest first, with pagination.
func (r *NotificationRepo) List(ctx context.Context, limit, offset int) ([]*model.Notification, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var out []model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a notification's title or body.
func (r *NotificationRepo) Update(ctx context.Context, id string, req model.UpdateNotificationRequest) (*model.Notification, error) {
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
	if req.Body != nil {
		setParts = append(setParts, fmt.Sprintf("body = $%d", argIdx))
		args = append(args, strings.TrimSpace(*req.Body))
		argIdx++
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)

	query := "UPDATE notifications SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + notificationColumns

	var out model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a notification by ID. Returns false when no row matched.
func (r *NotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
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
