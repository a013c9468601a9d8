package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"encoding/json"
	"errors"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionCodec = (*MockSessionCodec)(nil)
	_ ports.RoleResolver = (*MockRoleResolver)(nil)
)

// ErrBadToken is returned by the mock codec for tokens it did not issue.
var ErrBadToken = errors.New("mock: bad token")

// MockSessionCodec round-trips sessions through plain JSON, so tests can
// exercise issue/verify flows without real signing keys. Override
// IssueFunc or VerifyFunc for failure-path tests.
type MockSessionCodec struct {
	IssueFunc  func(sess domainauth.Session) (string, error)
	VerifyFunc func(token string) (domainauth.Session, error)
}

func (m *MockSessionCodec) Issue(sess domainauth.Session) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(sess)
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (m *MockSessionCodec) Verify(token string) (domainauth.Session, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	var sess domainauth.Session
	if err := json.Unmarshal([]byte(token), &sess); err != nil {
		return domainauth.Session{}, ErrBadToken
	}
	return sess, nil
}

// MockRoleResolver answers role lookups from a static map.
type MockRoleResolver struct {
	Roles map[string]domainauth.Role
	Err   error

	// Calls records the usernames looked up, in order.
	Calls []string
}

func (m *MockRoleResolver) ResolveRole(_ context.Context, username string) (domainauth.Role, error) {
	m.Calls = append(m.Calls, username)
	if m.Err != nil {
		return "", m.Err
	}
	role, ok := m.Roles[username]
	if !ok {
		return "", errors.New("mock: unknown admin")
	}
	return role, nil
}
