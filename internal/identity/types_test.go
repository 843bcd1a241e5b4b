package identity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tidynest/sitekit/internal/identity"
)

func validProfile() identity.UserProfile {
	return identity.UserProfile{
		ID:          identity.UUID("user:editor@example.com"),
		Email:       "editor@example.com",
		DisplayName: "Site Editor",
		Role:        "editor",
		CreatedAt:   time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestUserProfileValidate(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cases := map[string]func(*identity.UserProfile){
		"nil id":       func(p *identity.UserProfile) { p.ID = uuid.Nil },
		"bad email":    func(p *identity.UserProfile) { p.Email = "editor.example.com" },
		"blank name":   func(p *identity.UserProfile) { p.DisplayName = "   " },
		"unknown role": func(p *identity.UserProfile) { p.Role = "superuser" },
	}
	for name, mutate := range cases {
		profile := validProfile()
		mutate(&profile)
		if err := profile.Validate(); err == nil {
			t.Errorf("%s: Validate() accepted", name)
		}
	}
}

func TestUserProfileRoles(t *testing.T) {
	for _, role := range []identity.Role{identity.RoleAdmin, identity.RoleEditor, identity.RoleViewer} {
		profile := validProfile()
		profile.Role = role
		if err := profile.Validate(); err != nil {
			t.Errorf("role %q rejected: %v", role, err)
		}
	}
}

func validSession() identity.Session {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return identity.Session{
		Token:     "tok-123",
		UserID:    identity.UUID("user:editor@example.com"),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(time.Hour),
	}
}

func TestSessionValidate(t *testing.T) {
	if err := validSession().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cases := map[string]func(*identity.Session){
		"missing token": func(s *identity.Session) { s.Token = "" },
		"nil user":      func(s *identity.Session) { s.UserID = uuid.Nil },
		"expiry before issue": func(s *identity.Session) {
			s.ExpiresAt = s.IssuedAt.Add(-time.Minute)
		},
	}
	for name, mutate := range cases {
		session := validSession()
		mutate(&session)
		if err := session.Validate(); err == nil {
			t.Errorf("%s: Validate() accepted", name)
		}
	}
}

func TestSessionExpired(t *testing.T) {
	session := validSession()

	if session.Expired(session.ExpiresAt.Add(-time.Second)) {
		t.Error("session expired before deadline")
	}
	if !session.Expired(session.ExpiresAt) {
		t.Error("session still live at deadline")
	}
	if !session.Expired(session.ExpiresAt.Add(time.Second)) {
		t.Error("session still live after deadline")
	}
}
