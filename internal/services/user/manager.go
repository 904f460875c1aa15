package user

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	"github.com/flke/flke/internal/session"
	"github.com/flke/flke/internal/types"
)

// SortOrder orders Members by numeric id
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// Toggle flips the order
func (o SortOrder) Toggle() SortOrder {
	if o == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// Manager owns the cached record set of the session company, the edit
// target and the form. Its state is only mutated from the caller's
// goroutine; Execute and RemoveRemote only talk to the store.
type Manager struct {
	store   api.CompanyStore
	records []*models.Company
	editing types.CompanyID
	form    Form
}

func NewManager(store api.CompanyStore) *Manager {
	return &Manager{store: store}
}

// Records returns the full cached set, root account included
func (m *Manager) Records() []*models.Company {
	return slices.Clone(m.records)
}

// SetRecords replaces the cache with a fetched set
func (m *Manager) SetRecords(records []*models.Company) {
	m.records = slices.Clone(records)
}

// Members returns the member rows (not the root account) sorted by id
func (m *Manager) Members(order SortOrder) []*models.Company {
	var out []*models.Company
	for _, r := range m.records {
		if !r.IsCompany {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b *models.Company) int {
		if order == SortDescending {
			return cmp.Compare(b.ID, a.ID)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Fetch loads the record set of the session company. Without a company id
// it logs a warning and returns an empty set without contacting the store.
func (m *Manager) Fetch(ctx context.Context, sess *session.Session) ([]*models.Company, error) {
	companyID := sess.CompanyID()
	if !companyID.Valid() {
		slog.Warn("Invalid Id: skipping user list")
		return []*models.Company{}, nil
	}
	records, err := m.store.ListCompanies(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return records, nil
}

// Refresh fetches and caches the record set
func (m *Manager) Refresh(ctx context.Context, sess *session.Session) error {
	records, err := m.Fetch(ctx, sess)
	if err != nil {
		return err
	}
	m.SetRecords(records)
	return nil
}

// IsBad reports whether candidate's username or email is already used by
// a record in existing, case-insensitively.
func IsBad(existing []*models.Company, candidate Form) bool {
	for _, r := range existing {
		if r == nil {
			continue
		}
		if strings.EqualFold(r.Username, candidate.Username) {
			return true
		}
		if strings.EqualFold(r.Email, candidate.Email) {
			return true
		}
	}
	return false
}

// BeginEdit targets the record with id and prefills the form from it
func (m *Manager) BeginEdit(id types.CompanyID) (Form, error) {
	for _, r := range m.records {
		if r.ID == id {
			m.editing = id
			m.form = FormFrom(r)
			return m.form, nil
		}
	}
	return Form{}, fmt.Errorf("%w: %d", ErrUserNotFound, id)
}

// CancelEdit clears the edit target and resets the form
func (m *Manager) CancelEdit() {
	m.editing = 0
	m.form = Form{}
}

// Editing returns the edit target
func (m *Manager) Editing() (types.CompanyID, bool) {
	return m.editing, m.editing.Valid()
}

func (m *Manager) Form() Form { return m.form }

func (m *Manager) SetForm(f Form) { m.form = f }

// PlanKind is the mutation a submit resolves to
type PlanKind int

const (
	PlanReject PlanKind = iota
	PlanCreate
	PlanUpdate
)

// Plan is a resolved submit, ready to be executed against the store
type Plan struct {
	Kind    PlanKind
	Target  types.CompanyID
	Create  api.CreateUserRequest
	Update  api.UpdateCompanyRequest
	Form    Form
	Editing bool
}

// Plan resolves a submit of form. The duplicate check runs against the
// full cached set, including the record being edited:
//
//	editing and duplicate      -> update
//	not editing, no duplicate  -> create
//	otherwise                  -> reject
func (m *Manager) Plan(sess *session.Session, form Form) (Plan, error) {
	if !sess.Active() {
		return Plan{}, ErrNoSession
	}
	if err := permissions.Require(sess.Role(), permissions.ManageUsers); err != nil {
		return Plan{}, err
	}
	if err := form.Validate(); err != nil {
		return Plan{}, err
	}

	bad := IsBad(m.records, form)
	editing, isEditing := m.Editing()
	plan := Plan{Form: form, Editing: isEditing}

	switch {
	case bad && isEditing:
		plan.Kind = PlanUpdate
		plan.Target = editing
		plan.Update = api.UpdateCompanyRequest{
			CompanyID:   sess.CompanyID(),
			CompanyName: sess.CompanyName(),
			Name:        form.Name,
			Surname:     form.Surname,
			Username:    form.Username,
			Email:       form.Email,
			Password:    form.Password,
			IsCompany:   false,
			Role:        form.Role(),
		}
	case !bad && !isEditing:
		plan.Kind = PlanCreate
		plan.Create = api.CreateUserRequest{
			CompanyID:   sess.CompanyID(),
			CompanyName: sess.CompanyName(),
			Name:        form.Name,
			Surname:     form.Surname,
			Username:    form.Username,
			Email:       form.Email,
			Password:    form.Password,
			IsCompany:   false,
			Role:        form.Role(),
		}
	default:
		plan.Kind = PlanReject
	}
	return plan, nil
}

// Execute sends plan to the store. A rejected plan never reaches it.
func (m *Manager) Execute(ctx context.Context, plan Plan) (*models.Company, error) {
	switch plan.Kind {
	case PlanCreate:
		rec, err := m.store.CreateUser(ctx, plan.Create)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return rec, nil
	case PlanUpdate:
		rec, err := m.store.UpdateCompany(ctx, plan.Target, plan.Update)
		if err != nil {
			return nil, fmt.Errorf("failed to update user %d: %w", plan.Target, err)
		}
		return rec, nil
	default:
		return nil, ErrAlreadyRegistered
	}
}

// Complete applies the result of Execute. On success the edit state is
// cleared and the caller must refresh the list.
func (m *Manager) Complete(plan Plan, rec *models.Company, err error) (Notice, bool) {
	if plan.Kind == PlanReject {
		return AlreadyRegisteredNotice(), false
	}
	if err != nil {
		slog.Error("user write failed", "kind", plan.Kind, "target", plan.Target, "error", err)
		if api.IsConflict(err) {
			return AlreadyRegisteredNotice(), false
		}
		return ErrorNotice(), false
	}

	username := plan.Form.Username
	if rec != nil && rec.Username != "" {
		username = rec.Username
	}
	m.CancelEdit()
	if plan.Kind == PlanUpdate {
		return EditedNotice(username), true
	}
	return AddedNotice(username), true
}

// Submit runs Plan, Execute and Complete in one call and refreshes on
// success.
func (m *Manager) Submit(ctx context.Context, sess *session.Session, form Form) (Notice, error) {
	plan, err := m.Plan(sess, form)
	if err != nil {
		return Notice{}, err
	}
	if plan.Kind == PlanReject {
		notice, _ := m.Complete(plan, nil, nil)
		return notice, ErrAlreadyRegistered
	}

	rec, execErr := m.Execute(ctx, plan)
	notice, refresh := m.Complete(plan, rec, execErr)
	if execErr != nil {
		return notice, execErr
	}
	if refresh {
		if err := m.Refresh(ctx, sess); err != nil {
			slog.Error("failed to refresh users", "error", err)
		}
	}
	return notice, nil
}

// RemoveRemote deletes the record with id from the store
func (m *Manager) RemoveRemote(ctx context.Context, sess *session.Session, id types.CompanyID) error {
	if err := permissions.Require(sess.Role(), permissions.ManageUsers); err != nil {
		return err
	}
	if !id.Valid() {
		return ErrInvalidUserID
	}
	if err := m.store.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// CompleteDelete applies the result of RemoveRemote. The edit state is
// cleared whatever the outcome; refresh is true on success.
func (m *Manager) CompleteDelete(err error) (Notice, bool) {
	m.CancelEdit()
	if err != nil {
		slog.Error("user delete failed", "error", err)
		return ErrorNotice(), false
	}
	return DeletedNotice(), true
}

// Delete removes a record, then refreshes on success. Edit state is always
// cleared.
func (m *Manager) Delete(ctx context.Context, sess *session.Session, id types.CompanyID) (Notice, error) {
	err := m.RemoveRemote(ctx, sess, id)
	notice, refresh := m.CompleteDelete(err)
	if err != nil {
		return notice, err
	}
	if refresh {
		if rerr := m.Refresh(ctx, sess); rerr != nil {
			slog.Error("failed to refresh users", "error", rerr)
		}
	}
	return notice, nil
}
