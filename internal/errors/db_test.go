package errors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_ContextErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{"deadline exceeded", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", context.Canceled, ErrCodeCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err)
			if GetCode(err) != tt.wantCode {
				t.Errorf("code = %v, want %v", GetCode(err), tt.wantCode)
			}
			if !errors.Is(err, tt.err) {
				t.Error("cause should be preserved")
			}
		})
	}
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Errorf("MapDBError(pgx.ErrNoRows) should be NotFound, got %v", GetCode(err))
	}
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantField   string
		wantMessage string
	}{
		{
			name: "duplicate index number via detail",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "students_index_number_key",
				Detail:         "Key (index_number)=(IT2026001) already exists.",
			},
			wantField:   "index_number",
			wantMessage: "A student with this index number is already registered.",
		},
		{
			name: "duplicate username via column metadata",
			pgErr: &pgconn.PgError{
				Code:       pgerrcode.UniqueViolation,
				ColumnName: "username",
			},
			wantField:   "username",
			wantMessage: "This username is already taken.",
		},
		{
			name: "duplicate paper mark pair",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "paper_marks_paper_id_student_id_key",
				Detail:         "Key (paper_id, student_id)=(3, 9) already exists.",
			},
			wantField:   "paper_id, student_id",
			wantMessage: "This student already has a mark recorded for this paper.",
		},
		{
			name: "duplicate sale pair",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (student_id, lesson_id)=(9, 4) already exists.",
			},
			wantField:   "student_id, lesson_id",
			wantMessage: "This student has already purchased this lesson.",
		},
		{
			name: "constraint name inference",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "admins_username_key",
			},
			wantField:   "username",
			wantMessage: "This username is already taken.",
		},
		{
			name: "ambiguous constraint yields generic message",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "idx_lower_title",
			},
			wantField:   "",
			wantMessage: "This value already exists. Please choose a different one.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsConflict(err) {
				t.Fatalf("should be Conflict, got %v", GetCode(err))
			}
			if got := GetField(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			var appErr *AppError
			errors.As(err, &appErr)
			if appErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantContain string
	}{
		{
			name: "delete lesson referenced by sales",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (id)=(4) is still referenced from table "sales".`,
			},
			wantContain: "in use by Sale",
		},
		{
			name: "delete student referenced by paper marks",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (id)=(9) is still referenced from table "paper_marks".`,
			},
			wantContain: "in use by Paper Mark",
		},
		{
			name: "insert mark for missing student",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (student_id)=(99) is not present in table "students".`,
			},
			wantContain: "referenced Student does not exist",
		},
		{
			name: "constraint name fallback",
			pgErr: &pgconn.PgError{
				Code:           pgerrcode.ForeignKeyViolation,
				ConstraintName: "sales_lesson_id_fkey",
			},
			wantContain: "sales are recorded",
		},
		{
			name:        "no metadata at all",
			pgErr:       &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantContain: "is in use",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsForeignKey(err) {
				t.Fatalf("should be ForeignKey, got %v", GetCode(err))
			}
			var appErr *AppError
			errors.As(err, &appErr)
			if !strings.Contains(appErr.Message, tt.wantContain) {
				t.Errorf("message %q should contain %q", appErr.Message, tt.wantContain)
			}
		})
	}
}

func TestMapDBError_CheckAndNotNull(t *testing.T) {
	check := MapDBError(&pgconn.PgError{
		Code:       pgerrcode.CheckViolation,
		ColumnName: "mcq_mark",
	})
	if !IsValidation(check) {
		t.Errorf("check violation should be Validation, got %v", GetCode(check))
	}
	if GetField(check) != "mcq_mark" {
		t.Errorf("field = %q", GetField(check))
	}

	notNull := MapDBError(&pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		ColumnName: "title",
	})
	if !IsValidation(notNull) {
		t.Errorf("not-null violation should be Validation, got %v", GetCode(notNull))
	}
	if GetField(notNull) != "title" {
		t.Errorf("field = %q", GetField(notNull))
	}
}

func TestMapDBError_UnknownPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	if !IsInternal(err) {
		t.Errorf("unknown pg error should map to Internal, got %v", GetCode(err))
	}
}

func TestMapDBError_PassThrough(t *testing.T) {
	plain := errors.New("not a database error")
	if got := MapDBError(plain); got != plain {
		t.Errorf("unrecognized error should pass through, got %v", got)
	}
}
