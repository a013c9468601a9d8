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

// MessageRepo provides CRUD operations for messages.
type MessageRepo struct {
	DB *sql.DB
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{DB: db}
}

const messageColumns = `id, title, body, created_at, updated_at`

// Create posts a new message.
func (r *MessageRepo) Create(ctx context.Context, req *model.CreateMessageRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	query := `
		INSERT INTO messages (title, body)
		VALUES ($1, $2)
		RETURNING ` + messageColumns

	var out model.Message
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, strings.TrimSpace(req.Title), strings.TrimSpace(req.Body))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Message])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID fetches a message by ID.
func (r *MessageRepo) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var out model.Message
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Message])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns messages, newest first, with pagination.
func (r *MessageRepo) List(ctx context.Context, limit, offset int) ([]*model.Message, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	var out []model.Message
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Message])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", apperrors.MapDBError(err))
	}
	return toPtrSlice(out), nil
}

// Update modifies a message's title or body.
func (r *MessageRepo) Update(ctx context.Context, id string, req model.UpdateMessageRequest) (*model.Message, error) {
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

	query := "UPDATE messages SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + messageColumns

	var out model.Message
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Message])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a message by ID. Returns false when no row matched.
func (r *MessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
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
