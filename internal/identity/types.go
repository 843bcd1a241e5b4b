package identity

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Role enumerates the access levels a profile can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// UserProfile describes an authenticated operator of the content layer.
type UserProfile struct {
	ID          uuid.UUID         `json:"id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"displayName"`
	Role        Role              `json:"role"`
	Preferences map[string]string `json:"preferences,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Validate checks the structural invariants of a profile.
func (p UserProfile) Validate() error {
	errs := validation.Errors{}
	if p.ID == uuid.Nil {
		errs["id"] = validation.NewError("sitekit.identity.profile.id_required", "id is required")
	}
	if !strings.Contains(p.Email, "@") {
		errs["email"] = validation.NewError("sitekit.identity.profile.email_invalid", "email is invalid")
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		errs["displayName"] = validation.NewError("sitekit.identity.profile.display_name_required", "displayName is required")
	}
	switch p.Role {
	case RoleAdmin, RoleEditor, RoleViewer:
	default:
		errs["role"] = validation.NewError("sitekit.identity.profile.role_invalid", "role is not a known role")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Session represents an authenticated browsing session at the boundary.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Validate checks session invariants.
func (s Session) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(s.Token) == "" {
		errs["token"] = validation.NewError("sitekit.identity.session.token_required", "token is required")
	}
	if s.UserID == uuid.Nil {
		errs["userId"] = validation.NewError("sitekit.identity.session.user_required", "userId is required")
	}
	if !s.ExpiresAt.After(s.IssuedAt) {
		errs["expiresAt"] = validation.NewError("sitekit.identity.session.expiry_invalid", "expiresAt must be after issuedAt")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Expired reports whether the session has lapsed at the supplied instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
