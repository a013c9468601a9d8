// Package devseed populates a development database with a usable set of
// accounts, lessons, papers, and announcements. Seeding is idempotent:
// records that already exist are left alone.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shanuka19697/LMS-sub001/internal/data"
	"github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB            *sql.DB
	students      *service.StudentService
	admins        *service.AdminService
	lessons       *service.LessonService
	papers        *service.PaperService
	marks         *service.PaperMarkService
	messages      *service.MessageService
	notifications *service.NotificationService
	sales         *service.SaleService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	studentRepo := data.NewStudentRepo(db)
	adminRepo := data.NewAdminRepo(db)
	lessonRepo := data.NewLessonRepo(db)
	paperRepo := data.NewPaperRepo(db)
	markRepo := data.NewPaperMarkRepo(db)
	messageRepo := data.NewMessageRepo(db)
	notificationRepo := data.NewNotificationRepo(db)
	saleRepo := data.NewSaleRepo(db)

	return Services{
		DB:       db,
		students: service.MustNewStudentService(service.StudentServiceOptions{Repo: studentRepo}),
		admins:   service.MustNewAdminService(service.AdminServiceOptions{Repo: adminRepo}),
		lessons: service.MustNewLessonService(service.LessonServiceOptions{
			Repo:  lessonRepo,
			Sales: saleRepo,
		}),
		papers: service.MustNewPaperService(service.PaperServiceOptions{Repo: paperRepo}),
		marks: service.MustNewPaperMarkService(service.PaperMarkServiceOptions{
			Marks:  markRepo,
			Papers: paperRepo,
		}),
		messages:      service.MustNewMessageService(service.MessageServiceOptions{Repo: messageRepo}),
		notifications: service.MustNewNotificationService(service.NotificationServiceOptions{Repo: notificationRepo}),
		sales:         service.MustNewSaleService(service.SaleServiceOptions{Repo: saleRepo}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedAdmins(ctx, svcs.admins, logger)

	students, studentFailures := seedStudents(ctx, svcs.students, logger)
	failures += studentFailures

	lessons, lessonFailures := seedLessons(ctx, svcs.lessons, logger)
	failures += lessonFailures

	papers, paperFailures := seedPapers(ctx, svcs.papers, logger)
	failures += paperFailures

	failures += seedAnnouncements(ctx, svcs, logger)
	failures += seedSales(ctx, svcs.sales, students, lessons, logger)
	failures += seedMarks(ctx, svcs.marks, students, papers, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

const seedListLimit = 200

func seedAdmins(ctx context.Context, svc *service.AdminService, logger *slog.Logger) int {
	failures := 0
	admins := []model.CreateAdminRequest{
		{Username: "super", FullName: "Super Admin", Role: auth.RoleSuperAdmin, Password: "super-dev-pass"},
		{Username: "papers", FullName: "Paper Admin", Role: auth.RolePaperAdmin, Password: "papers-dev-pass"},
		{Username: "messages", FullName: "Message Admin", Role: auth.RoleMessageAdmin, Password: "messages-dev-pass"},
	}

	for i := range admins {
		req := admins[i]
		_, err := svc.Create(ctx, &req)
		switch {
		case err == nil:
			logger.InfoContext(ctx, "seeded admin", "username", req.Username, "role", req.Role)
		case apperrors.IsConflict(err):
			logger.DebugContext(ctx, "admin already exists", "username", req.Username)
		default:
			logger.ErrorContext(ctx, "seed admin failed", "username", req.Username, "error", err)
			failures++
		}
	}
	return failures
}

func seedStudents(
	ctx context.Context,
	svc *service.StudentService,
	logger *slog.Logger,
) (map[string]string, int) {
	failures := 0
	students := []model.CreateStudentRequest{
		{IndexNumber: "2024001", FullName: "Amara Perera", Email: "amara@example.com", Password: "amara-dev-pass"},
		{IndexNumber: "2024002", FullName: "Bimal Silva", Email: "bimal@example.com", Password: "bimal-dev-pass"},
		{IndexNumber: "2024003", FullName: "Chamodi Fernando", Email: "chamodi@example.com", Password: "chamodi-dev-pass"},
	}

	ids := make(map[string]string, len(students))
	for i := range students {
		req := students[i]
		created, err := svc.Create(ctx, &req)
		switch {
		case err == nil:
			ids[req.IndexNumber] = created.ID
			logger.InfoContext(ctx, "seeded student", "index_number", req.IndexNumber)
		case apperrors.IsConflict(err):
			existing, lookupErr := svc.GetByIndexNumber(ctx, req.IndexNumber)
			if lookupErr != nil {
				logger.ErrorContext(ctx, "lookup seeded student failed", "index_number", req.IndexNumber, "error", lookupErr)
				failures++
				continue
			}
			ids[req.IndexNumber] = existing.ID
		default:
			logger.ErrorContext(ctx, "seed student failed", "index_number", req.IndexNumber, "error", err)
			failures++
		}
	}
	return ids, failures
}

func seedLessons(
	ctx context.Context,
	svc *service.LessonService,
	logger *slog.Logger,
) (map[string]string, int) {
	lessons := []model.CreateLessonRequest{
		{
			Title:      "Mechanics I",
			Subject:    "Physics",
			Date:       nextSaturday(),
			MeetingURL: "https://zoom.us/j/91234567890?pwd=mechanics",
			PriceCents: 150000,
		},
		{
			Title:      "Organic Chemistry Basics",
			Subject:    "Chemistry",
			Date:       nextSaturday().AddDate(0, 0, 7),
			MeetingURL: "https://zoom.us/j/98765432100?pwd=organic",
			PriceCents: 150000,
		},
		{
			Title:      "Calculus Revision",
			Subject:    "Combined Maths",
			Date:       nextSaturday().AddDate(0, 0, 14),
			MeetingURL: "https://zoom.us/j/90011223344?pwd=calculus",
			PriceCents: 0,
		},
	}

	existing, err := svc.List(ctx, seedListLimit, 0)
	if err != nil {
		logger.ErrorContext(ctx, "list lessons for seeding failed", "error", err)
		return nil, 1
	}
	byTitle := make(map[string]string, len(existing))
	for _, l := range existing {
		byTitle[l.Title] = l.ID
	}

	failures := 0
	ids := make(map[string]string, len(lessons))
	for i := range lessons {
		req := lessons[i]
		if id, ok := byTitle[req.Title]; ok {
			ids[req.Title] = id
			continue
		}
		created, createErr := svc.Create(ctx, &req)
		if createErr != nil {
			logger.ErrorContext(ctx, "seed lesson failed", "title", req.Title, "error", createErr)
			failures++
			continue
		}
		ids[req.Title] = created.ID
		logger.InfoContext(ctx, "seeded lesson", "title", req.Title)
	}
	return ids, failures
}

func seedPapers(
	ctx context.Context,
	svc *service.PaperService,
	logger *slog.Logger,
) (map[string]string, int) {
	papers := []model.CreatePaperRequest{
		{Title: "Physics 2023 Past Paper", Type: model.PaperTypeMCQ, Year: 2023},
		{Title: "Chemistry 2023 Past Paper", Type: model.PaperTypeStructured, Year: 2023},
	}

	existing, err := svc.List(ctx, seedListLimit, 0)
	if err != nil {
		logger.ErrorContext(ctx, "list papers for seeding failed", "error", err)
		return nil, 1
	}
	byTitle := make(map[string]string, len(existing))
	for _, p := range existing {
		byTitle[p.Title] = p.ID
	}

	failures := 0
	ids := make(map[string]string, len(papers))
	for i := range papers {
		req := papers[i]
		if id, ok := byTitle[req.Title]; ok {
			ids[req.Title] = id
			continue
		}
		created, createErr := svc.Create(ctx, &req)
		if createErr != nil {
			logger.ErrorContext(ctx, "seed paper failed", "title", req.Title, "error", createErr)
			failures++
			continue
		}
		ids[req.Title] = created.ID
		logger.InfoContext(ctx, "seeded paper", "title", req.Title)
	}
	return ids, failures
}

func seedAnnouncements(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0

	messages := []model.CreateMessageRequest{
		{Title: "Welcome", Body: "Welcome to the new term. Check the lessons page for the updated timetable."},
		{Title: "Payment reminder", Body: "Lesson fees for this month are due by the 10th."},
	}
	existingMessages, err := svcs.messages.List(ctx, seedListLimit, 0)
	if err != nil {
		logger.ErrorContext(ctx, "list messages for seeding failed", "error", err)
		failures++
	} else {
		known := make(map[string]bool, len(existingMessages))
		for _, m := range existingMessages {
			known[m.Title] = true
		}
		for i := range messages {
			req := messages[i]
			if known[req.Title] {
				continue
			}
			if _, createErr := svcs.messages.Create(ctx, &req); createErr != nil {
				logger.ErrorContext(ctx, "seed message failed", "title", req.Title, "error", createErr)
				failures++
			}
		}
	}

	notifications := []model.CreateNotificationRequest{
		{Title: "New past papers", Body: "2023 past papers are now available under the papers section."},
	}
	existingNotifications, err := svcs.notifications.List(ctx, seedListLimit, 0)
	if err != nil {
		logger.ErrorContext(ctx, "list notifications for seeding failed", "error", err)
		failures++
		return failures
	}
	known := make(map[string]bool, len(existingNotifications))
	for _, n := range existingNotifications {
		known[n.Title] = true
	}
	for i := range notifications {
		req := notifications[i]
		if known[req.Title] {
			continue
		}
		if _, createErr := svcs.notifications.Create(ctx, &req); createErr != nil {
			logger.ErrorContext(ctx, "seed notification failed", "title", req.Title, "error", createErr)
			failures++
		}
	}
	return failures
}

func seedSales(
	ctx context.Context,
	svc *service.SaleService,
	students, lessons map[string]string,
	logger *slog.Logger,
) int {
	purchases := []struct {
		indexNumber string
		lessonTitle string
	}{
		{indexNumber: "2024001", lessonTitle: "Mechanics I"},
		{indexNumber: "2024002", lessonTitle: "Mechanics I"},
		{indexNumber: "2024001", lessonTitle: "Organic Chemistry Basics"},
	}

	failures := 0
	for _, p := range purchases {
		studentID, lessonID := students[p.indexNumber], lessons[p.lessonTitle]
		if studentID == "" || lessonID == "" {
			continue
		}
		has, err := svc.HasPurchase(ctx, studentID, lessonID)
		if err != nil {
			logger.ErrorContext(ctx, "check purchase failed", "index_number", p.indexNumber, "error", err)
			failures++
			continue
		}
		if has {
			continue
		}
		if _, err = svc.Purchase(ctx, &model.CreateSaleRequest{StudentID: studentID, LessonID: lessonID}); err != nil {
			logger.ErrorContext(ctx, "seed sale failed", "index_number", p.indexNumber, "lesson", p.lessonTitle, "error", err)
			failures++
		}
	}
	return failures
}

func seedMarks(
	ctx context.Context,
	svc *service.PaperMarkService,
	students, papers map[string]string,
	logger *slog.Logger,
) int {
	marks := []struct {
		indexNumber string
		paperTitle  string
		mcq         int
		structured  int
	}{
		{indexNumber: "2024001", paperTitle: "Physics 2023 Past Paper", mcq: 42, structured: 0},
		{indexNumber: "2024002", paperTitle: "Physics 2023 Past Paper", mcq: 37, structured: 0},
		{indexNumber: "2024001", paperTitle: "Chemistry 2023 Past Paper", mcq: 18, structured: 31},
	}

	failures := 0
	for _, m := range marks {
		studentID, paperID := students[m.indexNumber], papers[m.paperTitle]
		if studentID == "" || paperID == "" {
			continue
		}
		if hasMark(ctx, svc, paperID, studentID) {
			continue
		}
		req := model.CreatePaperMarkRequest{
			PaperID:        paperID,
			StudentID:      studentID,
			MCQMark:        m.mcq,
			StructuredMark: m.structured,
		}
		if _, err := svc.Create(ctx, &req); err != nil {
			logger.ErrorContext(ctx, "seed paper mark failed", "index_number", m.indexNumber, "paper", m.paperTitle, "error", err)
			failures++
		}
	}
	return failures
}

func hasMark(ctx context.Context, svc *service.PaperMarkService, paperID, studentID string) bool {
	existing, err := svc.ListByPaper(ctx, paperID, seedListLimit, 0)
	if err != nil {
		return false
	}
	for _, mark := range existing {
		if mark.StudentID == studentID {
			return true
		}
	}
	return false
}

// nextSaturday returns the upcoming Saturday at 09:00 UTC so seeded
// lessons always sit in the near future.
func nextSaturday() time.Time {
	now := time.Now().UTC()
	days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC)
}
