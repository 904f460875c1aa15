// Package session holds the client-side state shared by every screen: the
// signed-in record with its role, and the task modal's visibility.
//
// The task screen is the only writer of ModalData. Every other screen reads
// through the accessors.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

var (
	// ErrNoCompany is returned by Start when no company id is configured
	ErrNoCompany = errors.New("no company id configured")
	// ErrUserNotFound is returned by Start when the configured user is not in the company
	ErrUserNotFound = errors.New("user not found in company")
)

// ModalData describes the add/edit task modal
type ModalData struct {
	Open    bool
	Editing bool
	TaskID  types.TaskID
}

// Session is passed explicitly to everything that needs the signed-in user
type Session struct {
	CompanyData *models.Company
	ModalData   ModalData
}

// New wraps an already resolved record
func New(record *models.Company) *Session {
	return &Session{CompanyData: record}
}

// Start resolves userID within companyID against the remote store. A zero
// userID signs in as the company root account.
func Start(ctx context.Context, store api.CompanyStore, companyID, userID types.CompanyID) (*Session, error) {
	if !companyID.Valid() {
		return nil, ErrNoCompany
	}
	records, err := store.ListCompanies(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %d: %w", companyID, err)
	}

	for _, r := range records {
		if userID.Valid() && r.ID == userID {
			return New(r), nil
		}
		if !userID.Valid() && r.IsCompany {
			return New(r), nil
		}
	}

	slog.Warn("configured user not found", "company_id", companyID, "user_id", userID)
	return nil, fmt.Errorf("%w: company %d user %d", ErrUserNotFound, companyID, userID)
}

// Clear drops the signed-in record and closes any modal
func (s *Session) Clear() {
	s.CompanyData = nil
	s.ModalData = ModalData{}
}

// Active reports whether a user is signed in
func (s *Session) Active() bool {
	return s != nil && s.CompanyData != nil
}

// Role returns the signed-in role, nil when signed out or absent
func (s *Session) Role() *models.Role {
	if !s.Active() {
		return nil
	}
	return s.CompanyData.Role
}

// CompanyID returns the tenant id the session is scoped to, zero when signed out
func (s *Session) CompanyID() types.CompanyID {
	if !s.Active() {
		return 0
	}
	return s.CompanyData.CompanyID
}

func (s *Session) CompanyName() string {
	if !s.Active() {
		return ""
	}
	return s.CompanyData.CompanyName
}

func (s *Session) UserID() types.CompanyID {
	if !s.Active() {
		return 0
	}
	return s.CompanyData.ID
}

// OpenModal shows the task modal. A zero id opens it in add mode.
func (s *Session) OpenModal(id types.TaskID) {
	s.ModalData = ModalData{Open: true, Editing: id.Valid(), TaskID: id}
}

func (s *Session) CloseModal() {
	s.ModalData = ModalData{}
}
