package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/access"
	"github.com/shanuka19697/LMS-sub001/internal/core"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// Role sets for the admin JSON API. They mirror the page-gate policy:
// the API guarding a resource accepts exactly the roles whose pages may
// manage it.
var (
	superOnly    = []domainauth.Role{domainauth.RoleSuperAdmin}
	paperRoles   = []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin}
	messageRoles = []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RoleMessageAdmin}
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth          *service.AuthService
	Students      *service.StudentService
	Admins        *service.AdminService
	Lessons       *service.LessonService
	Papers        *service.PaperService
	Marks         *service.PaperMarkService
	Messages      *service.MessageService
	Notifications *service.NotificationService
	Sales         *service.SaleService

	// Tokens verifies session cookies; normally the same codec the auth
	// service issues with.
	Tokens ports.SessionCodec
	// Roles re-resolves admin roles when TrustCachedRole is false.
	Roles ports.RoleResolver
	// TrustCachedRole accepts the role cookie without a store lookup.
	TrustCachedRole bool

	PageCache    core.PageCache // optional
	CookieDomain string
	// DevMode relaxes cookie Secure flags for plain-HTTP local serving.
	DevMode bool
	Logger  *slog.Logger // optional
}

// NewRouter creates and configures the HTTP router: auth endpoints, the
// student portal API, the admin API, and the gated page shells.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		DevMode:      services.DevMode,
		Logger:       services.Logger,
	}
	portal := &PortalHandlers{
		Students: services.Students,
		Lessons:  services.Lessons,
		Marks:    services.Marks,
		Sales:    services.Sales,
		Messages: services.Messages,
		Notices:  services.Notifications,
	}

	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})

	registerAuthRoutes(mux, authHandlers, csrf)
	registerPortalRoutes(mux, portal)
	registerAdminAPIRoutes(mux, services)
	registerPageRoutes(mux, services, csrf)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Session decoding wraps everything so the gate, the API guards, and
	// the status endpoint all see the same carrier.
	decode := DecodeSessions(SessionConfig{
		Tokens:          services.Tokens,
		Roles:           services.Roles,
		TrustCachedRole: services.TrustCachedRole,
		Logger:          services.Logger,
	})
	return decode(mux)
}

// registerAuthRoutes wires login, registration, and logout. The POST
// endpoints sit behind CSRF validation; the token cookie is planted by
// the login page shells.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, csrf func(http.Handler) http.Handler) {
	mux.Handle("POST /login", csrf(http.HandlerFunc(h.StudentLogin)))
	mux.Handle("POST /register", csrf(http.HandlerFunc(h.Register)))
	mux.Handle("POST /admin/login", csrf(http.HandlerFunc(h.AdminLogin)))
	mux.Handle("POST /logout", csrf(http.HandlerFunc(h.StudentLogout)))
	mux.Handle("POST /admin/logout", csrf(http.HandlerFunc(h.AdminLogout)))
	mux.HandleFunc("GET /auth/status", h.Status)
}

// registerPortalRoutes wires the student-facing JSON API.
func registerPortalRoutes(mux *http.ServeMux, h *PortalHandlers) {
	student := RequireStudentAPI()
	mux.Handle("GET /api/me", student(http.HandlerFunc(h.Profile)))
	mux.Handle("GET /api/lessons", student(http.HandlerFunc(h.ListLessons)))
	mux.Handle("GET /api/lessons/{id}", student(http.HandlerFunc(h.GetLesson)))
	mux.Handle("POST /api/purchases", student(http.HandlerFunc(h.Purchase)))
	mux.Handle("GET /api/purchases", student(http.HandlerFunc(h.ListPurchases)))
	mux.Handle("GET /api/results", student(http.HandlerFunc(h.ListResults)))
	mux.Handle("GET /api/messages", student(http.HandlerFunc(h.ListMessages)))
	mux.Handle("GET /api/notifications", student(http.HandlerFunc(h.ListNotifications)))
}

// registerAdminAPIRoutes wires the admin JSON API with per-resource role
// guards.
func registerAdminAPIRoutes(mux *http.ServeMux, services RouterServices) {
	studentHandlers := &StudentHandlers{Svc: services.Students}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/students",
		Create:     studentHandlers.Create,
		List:       studentHandlers.List,
		GetByID:    studentHandlers.GetByID,
		Update:     studentHandlers.Update,
		Delete:     studentHandlers.Delete,
		Middleware: RequireAdminAPI(superOnly...),
	})
	mux.Handle("POST /api/admin/students/{id}/password",
		RequireAdminAPI(superOnly...)(http.HandlerFunc(studentHandlers.ResetPassword)))

	adminHandlers := &AdminHandlers{Svc: services.Admins}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/admins",
		Create:     adminHandlers.Create,
		List:       adminHandlers.List,
		GetByID:    adminHandlers.GetByID,
		Update:     adminHandlers.Update,
		Delete:     adminHandlers.Delete,
		Middleware: RequireAdminAPI(superOnly...),
	})
	mux.Handle("POST /api/admin/admins/{username}/password",
		RequireAdminAPI(superOnly...)(http.HandlerFunc(adminHandlers.ResetPassword)))

	lessonHandlers := &LessonHandlers{Svc: services.Lessons}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/lessons",
		Create:     lessonHandlers.Create,
		List:       lessonHandlers.List,
		GetByID:    lessonHandlers.GetByID,
		Update:     lessonHandlers.Update,
		Delete:     lessonHandlers.Delete,
		Middleware: RequireAdminAPI(superOnly...),
	})

	paperHandlers := &PaperHandlers{Svc: services.Papers}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/papers",
		Create:     paperHandlers.Create,
		List:       paperHandlers.List,
		GetByID:    paperHandlers.GetByID,
		Update:     paperHandlers.Update,
		Delete:     paperHandlers.Delete,
		Middleware: RequireAdminAPI(paperRoles...),
	})

	registerPaperMarkRoutes(mux, &PaperMarkHandlers{Svc: services.Marks})

	messageHandlers := &MessageHandlers{Svc: services.Messages}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/messages",
		Create:     messageHandlers.Create,
		List:       messageHandlers.List,
		GetByID:    messageHandlers.GetByID,
		Update:     messageHandlers.Update,
		Delete:     messageHandlers.Delete,
		Middleware: RequireAdminAPI(messageRoles...),
	})

	notificationHandlers := &NotificationHandlers{Svc: services.Notifications}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/admin/notifications",
		Create:     notificationHandlers.Create,
		List:       notificationHandlers.List,
		GetByID:    notificationHandlers.GetByID,
		Update:     notificationHandlers.Update,
		Delete:     notificationHandlers.Delete,
		Middleware: RequireAdminAPI(superOnly...),
	})

	registerSaleRoutes(mux, &SaleHandlers{Svc: services.Sales})
}

// registerPaperMarkRoutes wires paper marks, which list by paper instead
// of a plain list and so do not fit registerCRUD.
func registerPaperMarkRoutes(mux *http.ServeMux, h *PaperMarkHandlers) {
	guard := RequireAdminAPI(paperRoles...)
	mux.Handle("POST /api/admin/paper-marks", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/admin/paper-marks", guard(http.HandlerFunc(h.ListByPaper)))
	mux.Handle("GET /api/admin/paper-marks/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/admin/paper-marks/{id}", guard(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/admin/paper-marks/{id}", guard(http.HandlerFunc(h.Delete)))
}

// registerSaleRoutes wires the sales ledger; sales have no update.
func registerSaleRoutes(mux *http.ServeMux, h *SaleHandlers) {
	guard := RequireAdminAPI(superOnly...)
	mux.Handle("POST /api/admin/sales", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/admin/sales", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/admin/sales/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("DELETE /api/admin/sales/{id}", guard(http.HandlerFunc(h.Delete)))
}

// registerPageRoutes wires the HTML shells. Every page goes through the
// access gate; the gate, not the handler, owns redirects. CSRF wraps the
// pages so the token cookie exists before any form posts.
func registerPageRoutes(mux *http.ServeMux, services RouterServices, csrf func(http.Handler) http.Handler) {
	pages := &PageHandlers{Cache: services.PageCache, Logger: services.Logger}
	gate := AccessGate(access.NewGate())

	page := func(title string) http.Handler {
		return gate(csrf(pages.Page(title)))
	}

	mux.Handle("GET /{$}", page("Welcome"))
	mux.Handle("GET /login", page("Sign in"))
	mux.Handle("GET /register", page("Create account"))
	mux.Handle("GET /admin/login", page("Staff sign in"))

	mux.Handle("GET /dashboard", page("Dashboard"))
	mux.Handle("GET /dashboard/lessons", page("Lessons"))
	mux.Handle("GET /dashboard/papers", page("Papers"))
	mux.Handle("GET /dashboard/messages", page("Messages"))
	mux.Handle("GET /dashboard/notifications", page("Notifications"))

	mux.Handle("GET /admin/{$}", page("Admin"))
	mux.Handle("GET /admin/students", page("Manage students"))
	mux.Handle("GET /admin/admins", page("Manage staff"))
	mux.Handle("GET /admin/lessons", page("Manage lessons"))
	mux.Handle("GET /admin/papers", page("Manage papers"))
	mux.Handle("GET /admin/paper-marks", page("Manage marks"))
	mux.Handle("GET /admin/messages", page("Manage messages"))
	mux.Handle("GET /admin/notifications", page("Manage notifications"))
	mux.Handle("GET /admin/sales", page("Sales ledger"))
}

// registerCRUD registers standard CRUD routes for a resource base path, applying mw if non-nil.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
