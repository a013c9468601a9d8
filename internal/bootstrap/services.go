package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/shanuka19697/LMS-sub001/config"
	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/data"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// ServicesConfig contains the shared dependencies services are built from.
type ServicesConfig struct {
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Config      *config.AppConfig
	Logger      *slog.Logger
}

// ServiceContainer holds all constructed services and the auth plumbing
// the HTTP layer needs alongside them.
type ServiceContainer struct {
	Auth          *service.AuthService
	Students      *service.StudentService
	Admins        *service.AdminService
	Lessons       *service.LessonService
	Papers        *service.PaperService
	Marks         *service.PaperMarkService
	Messages      *service.MessageService
	Notifications *service.NotificationService
	Sales         *service.SaleService

	Tokens    ports.SessionCodec
	Roles     ports.RoleResolver
	PageCache core.PageCache
}

// BuildServices constructs every service with its repositories. The page
// cache is optional; everything else is required.
func BuildServices(cfg ServicesConfig) (ServiceContainer, error) {
	if cfg.DB == nil {
		return ServiceContainer{}, errors.New("database connection is required")
	}
	if cfg.Config == nil {
		return ServiceContainer{}, errors.New("app config is required")
	}

	tokens, err := BuildSessionCodec(cfg.Config.Auth)
	if err != nil {
		return ServiceContainer{}, err
	}

	pageCache := BuildPageCache(cfg.RedisClient, cfg.Config.Cache.PageTTL, cfg.Logger)

	var dbg service.DebugLogger
	if cfg.Logger != nil {
		dbg = cfg.Logger
	}

	students := data.NewStudentRepo(cfg.DB)
	admins := data.NewAdminRepo(cfg.DB)
	lessons := data.NewLessonRepo(cfg.DB)
	papers := data.NewPaperRepo(cfg.DB)
	marks := data.NewPaperMarkRepo(cfg.DB)
	messages := data.NewMessageRepo(cfg.DB)
	notifications := data.NewNotificationRepo(cfg.DB)
	sales := data.NewSaleRepo(cfg.DB)

	auth, err := service.NewAuthService(service.AuthServiceOptions{
		Students: students,
		Admins:   admins,
		Tokens:   tokens,
		Config: service.AuthConfig{
			StudentSessionTTL: cfg.Config.Auth.StudentClaimTTL,
			AdminSessionTTL:   cfg.Config.Auth.AdminSessionTTL,
		},
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create auth service: %w", err)
	}

	studentSvc, err := service.NewStudentService(service.StudentServiceOptions{
		Repo:   students,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create student service: %w", err)
	}

	adminSvc, err := service.NewAdminService(service.AdminServiceOptions{
		Repo:   admins,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create admin service: %w", err)
	}

	lessonSvc, err := service.NewLessonService(service.LessonServiceOptions{
		Repo:   lessons,
		Sales:  sales,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create lesson service: %w", err)
	}

	paperSvc, err := service.NewPaperService(service.PaperServiceOptions{
		Repo:   papers,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create paper service: %w", err)
	}

	markSvc, err := service.NewPaperMarkService(service.PaperMarkServiceOptions{
		Marks:  marks,
		Papers: papers,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create paper mark service: %w", err)
	}

	messageSvc, err := service.NewMessageService(service.MessageServiceOptions{
		Repo:   messages,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create message service: %w", err)
	}

	notificationSvc, err := service.NewNotificationService(service.NotificationServiceOptions{
		Repo:   notifications,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create notification service: %w", err)
	}

	saleSvc, err := service.NewSaleService(service.SaleServiceOptions{
		Repo:   sales,
		Cache:  pageCache,
		Logger: dbg,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create sale service: %w", err)
	}

	return ServiceContainer{
		Auth:          auth,
		Students:      studentSvc,
		Admins:        adminSvc,
		Lessons:       lessonSvc,
		Papers:        paperSvc,
		Marks:         markSvc,
		Messages:      messageSvc,
		Notifications: notificationSvc,
		Sales:         saleSvc,
		Tokens:        tokens,
		Roles:         admins,
		PageCache:     pageCache,
	}, nil
}
