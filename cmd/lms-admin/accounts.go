package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shanuka19697/LMS-sub001/internal/data"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

const defaultAccountTimeout = 30 * time.Second

type createAdminOptions struct {
	Username string
	FullName string
	Role     string
	Password string
	Timeout  time.Duration
}

type resetPasswordOptions struct {
	Key      string
	Password string
	Timeout  time.Duration
}

type listAdminsOptions struct {
	Limit   int
	Offset  int
	Timeout time.Duration
}

func runCreateAdmin(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateAdminFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		svc := service.MustNewAdminService(service.AdminServiceOptions{
			Repo: data.NewAdminRepo(db),
		})

		admin, createErr := svc.Create(ctx, &model.CreateAdminRequest{
			Username: opts.Username,
			FullName: opts.FullName,
			Role:     domainauth.Role(opts.Role),
			Password: opts.Password,
		})
		if createErr != nil {
			if apperrors.IsConflict(createErr) {
				return fmt.Errorf("admin %q already exists", opts.Username)
			}
			return fmt.Errorf("create admin: %w", createErr)
		}

		cmdCtx.Logger.Info("admin created", "username", admin.Username, "role", admin.Role, "id", admin.ID)
		return nil
	})
}

func runListAdmins(cmdCtx *commandContext, args []string) error {
	opts, err := parseListAdminsFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		svc := service.MustNewAdminService(service.AdminServiceOptions{
			Repo: data.NewAdminRepo(db),
		})

		admins, listErr := svc.List(ctx, opts.Limit, opts.Offset)
		if listErr != nil {
			return fmt.Errorf("list admins: %w", listErr)
		}

		if len(admins) == 0 {
			return writeln(os.Stdout, "No admin accounts found.")
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if writeErr := writef(tw, "USERNAME\tFULL NAME\tROLE\tCREATED\n"); writeErr != nil {
			return writeErr
		}
		for _, a := range admins {
			if writeErr := writef(
				tw,
				"%s\t%s\t%s\t%s\n",
				a.Username,
				a.FullName,
				a.Role,
				a.CreatedAt.Format(time.RFC3339),
			); writeErr != nil {
				return writeErr
			}
		}
		return tw.Flush()
	})
}

func runResetAdminPassword(cmdCtx *commandContext, args []string) error {
	opts, err := parseResetPasswordFlags("reset-admin-password", "username", args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		svc := service.MustNewAdminService(service.AdminServiceOptions{
			Repo: data.NewAdminRepo(db),
		})

		if resetErr := svc.ResetPassword(ctx, opts.Key, opts.Password); resetErr != nil {
			if apperrors.IsNotFound(resetErr) {
				return fmt.Errorf("admin %q not found", opts.Key)
			}
			return fmt.Errorf("reset admin password: %w", resetErr)
		}

		cmdCtx.Logger.Info("admin password reset", "username", opts.Key)
		return nil
	})
}

func runResetStudentPassword(cmdCtx *commandContext, args []string) error {
	opts, err := parseResetPasswordFlags("reset-student-password", "index-number", args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		svc := service.MustNewStudentService(service.StudentServiceOptions{
			Repo: data.NewStudentRepo(db),
		})

		student, lookupErr := svc.GetByIndexNumber(ctx, opts.Key)
		if lookupErr != nil {
			if apperrors.IsNotFound(lookupErr) {
				return fmt.Errorf("student %q not found", opts.Key)
			}
			return fmt.Errorf("look up student: %w", lookupErr)
		}

		if resetErr := svc.ResetPassword(ctx, student.ID, opts.Password); resetErr != nil {
			return fmt.Errorf("reset student password: %w", resetErr)
		}

		cmdCtx.Logger.Info("student password reset", "index_number", opts.Key)
		return nil
	})
}

func parseCreateAdminFlags(args []string) (createAdminOptions, error) {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := createAdminOptions{
		Timeout: defaultAccountTimeout,
	}

	fs.StringVar(&opts.Username, "username", "", "Username for the new admin account")
	fs.StringVar(&opts.FullName, "name", "", "Full name for the new admin account")
	fs.StringVar(
		&opts.Role,
		"role",
		string(domainauth.RoleSuperAdmin),
		"Role: SUPER_ADMIN, PAPER_ADMIN, or MESSAGE_ADMIN",
	)
	fs.StringVar(&opts.Password, "password", "", "Initial password for the new admin account")
	fs.DurationVar(&opts.Timeout, "timeout", defaultAccountTimeout, "Maximum duration to wait for the operation")

	if err := fs.Parse(args); err != nil {
		return createAdminOptions{}, err
	}

	if opts.Username == "" {
		return createAdminOptions{}, errors.New("--username is required")
	}
	if opts.FullName == "" {
		return createAdminOptions{}, errors.New("--name is required")
	}
	if opts.Password == "" {
		return createAdminOptions{}, errors.New("--password is required")
	}
	if !domainauth.Role(opts.Role).Valid() {
		return createAdminOptions{}, fmt.Errorf("invalid role %q", opts.Role)
	}
	if opts.Timeout <= 0 {
		return createAdminOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseResetPasswordFlags(name, keyFlag string, args []string) (resetPasswordOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := resetPasswordOptions{
		Timeout: defaultAccountTimeout,
	}

	fs.StringVar(&opts.Key, keyFlag, "", "Account to reset the password for")
	fs.StringVar(&opts.Password, "password", "", "New password")
	fs.DurationVar(&opts.Timeout, "timeout", defaultAccountTimeout, "Maximum duration to wait for the operation")

	if err := fs.Parse(args); err != nil {
		return resetPasswordOptions{}, err
	}

	if opts.Key == "" {
		return resetPasswordOptions{}, fmt.Errorf("--%s is required", keyFlag)
	}
	if opts.Password == "" {
		return resetPasswordOptions{}, errors.New("--password is required")
	}
	if opts.Timeout <= 0 {
		return resetPasswordOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}

func parseListAdminsFlags(args []string) (listAdminsOptions, error) {
	fs := flag.NewFlagSet("list-admins", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := listAdminsOptions{
		Limit:   100,
		Offset:  0,
		Timeout: defaultAccountTimeout,
	}

	fs.IntVar(&opts.Limit, "limit", 100, "Maximum number of accounts to list")
	fs.IntVar(&opts.Offset, "offset", 0, "Number of accounts to skip")
	fs.DurationVar(&opts.Timeout, "timeout", defaultAccountTimeout, "Maximum duration to wait for the operation")

	if err := fs.Parse(args); err != nil {
		return listAdminsOptions{}, err
	}

	if opts.Limit <= 0 {
		return listAdminsOptions{}, errors.New("--limit must be greater than zero")
	}
	if opts.Offset < 0 {
		return listAdminsOptions{}, errors.New("--offset cannot be negative")
	}
	if opts.Timeout <= 0 {
		return listAdminsOptions{}, errors.New("--timeout must be greater than zero")
	}

	return opts, nil
}
