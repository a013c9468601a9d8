package service

import (
	"context"

	"github.com/shanuka19697/LMS-sub001/internal/core"
)

// DebugLogger is a minimal logger interface for optional debug logging.
type DebugLogger interface {
	Debug(msg string, keyvals ...any)
}

// Cached page paths per entity. Every write to an entity drops the pages
// that render it so the next request re-renders from the database.
var (
	studentPages      = []string{"/admin/students"}
	adminPages        = []string{"/admin/admins"}
	lessonPages       = []string{"/dashboard", "/dashboard/lessons", "/admin/lessons"}
	paperPages        = []string{"/dashboard/papers", "/admin/papers"}
	paperMarkPages    = []string{"/dashboard/papers", "/admin/paper-marks"}
	messagePages      = []string{"/dashboard/messages", "/admin/messages"}
	notificationPages = []string{"/dashboard", "/dashboard/notifications", "/admin/notifications"}
	salePages         = []string{"/dashboard/lessons", "/admin/sales"}
)

// invalidatePages drops cached pages after a write. Invalidation is
// best-effort: the TTL backstop bounds how stale a missed page can get.
func invalidatePages(ctx context.Context, cache core.PageCache, log DebugLogger, paths []string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidatePages(ctx, paths...); err != nil && log != nil {
		log.Debug("invalidate cached pages failed", "paths", paths, "err", err)
	}
}
