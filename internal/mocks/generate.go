// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockStudentRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(student, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=student_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core StudentRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admin_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core AdminRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=lesson_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core LessonRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=paper_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core PaperRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=paper_mark_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core PaperMarkRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=message_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core MessageRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=notification_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core NotificationRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=sale_repository_mock.go github.com/shanuka19697/LMS-sub001/internal/core SaleRepository

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=page_cache_mock.go github.com/shanuka19697/LMS-sub001/internal/core PageCache
