package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/crypto"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
	mockauth "github.com/shanuka19697/LMS-sub001/internal/mocks/auth"
)

// testHashParams keeps argon2 cheap in unit tests.
var testHashParams = crypto.Argon2Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLen:     16,
	KeyLen:      32,
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := crypto.HashPassword(password, testHashParams)
	require.NoError(t, err)
	return h
}

func newTestAuthService(t *testing.T, students *mocks.MockStudentRepository, admins *mocks.MockAdminRepository) *AuthService {
	t.Helper()
	svc, err := NewAuthService(AuthServiceOptions{
		Students: students,
		Admins:   admins,
		Tokens:   &mockauth.MockSessionCodec{},
		Config: AuthConfig{
			StudentSessionTTL: 720 * time.Hour,
			AdminSessionTTL:   24 * time.Hour,
		},
	})
	require.NoError(t, err)
	svc.hash = testHashParams
	return svc
}

func TestNewAuthService_RequiredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	codec := &mockauth.MockSessionCodec{}

	cases := []struct {
		name string
		opts AuthServiceOptions
	}{
		{"missing students", AuthServiceOptions{Admins: admins, Tokens: codec}},
		{"missing admins", AuthServiceOptions{Students: students, Tokens: codec}},
		{"missing codec", AuthServiceOptions{Students: students, Admins: admins}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := NewAuthService(tc.opts)
			require.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestAuthService_AuthenticateStudent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	students.EXPECT().
		GetByIndexNumber(ctx, "2024/IT/0042").
		Return(&model.Student{
			ID:           "s-1",
			IndexNumber:  "2024/IT/0042",
			PasswordHash: mustHash(t, "hunter2hunter2"),
		}, nil)

	result, err := svc.AuthenticateStudent(ctx, "2024/IT/0042", "hunter2hunter2")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "2024/IT/0042", result.Session.Subject)
	assert.Equal(t, domainauth.KindStudent, result.Session.Kind)
	assert.Empty(t, result.Session.Role)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), result.Session.ExpiresAt, time.Minute)
}

func TestAuthService_AuthenticateStudent_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	students.EXPECT().
		GetByIndexNumber(ctx, "2024/IT/0042").
		Return(&model.Student{
			IndexNumber:  "2024/IT/0042",
			PasswordHash: mustHash(t, "the-right-password"),
		}, nil)

	result, err := svc.AuthenticateStudent(ctx, "2024/IT/0042", "the-wrong-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AuthenticateStudent_UnknownAccountSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	students.EXPECT().
		GetByIndexNumber(ctx, "no/such/user").
		Return(nil, assert.AnError)

	// An unknown account must be indistinguishable from a wrong password.
	result, err := svc.AuthenticateStudent(ctx, "no/such/user", "whatever-pass")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, assert.AnError)
}

func TestAuthService_AuthenticateAdmin_CarriesRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	admins.EXPECT().
		GetByUsername(ctx, "marker").
		Return(&model.Admin{
			ID:           "a-1",
			Username:     "marker",
			Role:         domainauth.RolePaperAdmin,
			PasswordHash: mustHash(t, "grade-all-day"),
		}, nil)

	result, err := svc.AuthenticateAdmin(ctx, "marker", "grade-all-day")
	require.NoError(t, err)
	assert.Equal(t, domainauth.KindAdmin, result.Session.Kind)
	assert.Equal(t, domainauth.RolePaperAdmin, result.Session.Role)
	assert.Equal(t, "marker", result.Session.Subject)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.Session.ExpiresAt, time.Minute)
}

func TestAuthService_AuthenticateAdmin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	admins.EXPECT().
		GetByUsername(ctx, "ghost").
		Return(nil, assert.AnError)

	result, err := svc.AuthenticateAdmin(ctx, "ghost", "any-password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterStudent_IssuesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	ctx := context.Background()
	req := &model.CreateStudentRequest{
		IndexNumber: "2026/CS/001",
		FullName:    "New Student",
		Email:       "new@example.com",
		Password:    "first-password",
	}
	students.EXPECT().
		Create(ctx, req, gomock.Not(gomock.Eq(""))).
		DoAndReturn(func(_ context.Context, r *model.CreateStudentRequest, hash string) (*model.Student, error) {
			ok, verr := crypto.VerifyPassword("first-password", hash)
			require.NoError(t, verr)
			assert.True(t, ok, "stored hash must verify the submitted password")
			return &model.Student{ID: "s-9", IndexNumber: r.IndexNumber, PasswordHash: hash}, nil
		})

	result, err := svc.RegisterStudent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "2026/CS/001", result.Session.Subject)
	assert.Equal(t, domainauth.KindStudent, result.Session.Kind)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_RegisterStudent_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	students := mocks.NewMockStudentRepository(ctrl)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := newTestAuthService(t, students, admins)

	result, err := svc.RegisterStudent(context.Background(), &model.CreateStudentRequest{
		IndexNumber: "2026/CS/002",
		FullName:    "Short Password",
		Email:       "short@example.com",
		Password:    "short",
	})
	assert.Nil(t, result)
	assert.Error(t, err)
}
