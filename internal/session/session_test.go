package session

import (
	"context"
	"errors"
	"testing"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanies struct {
	records []*models.Company
	err     error
	calls   []types.CompanyID
}

func (s *stubCompanies) ListCompanies(_ context.Context, id types.CompanyID) ([]*models.Company, error) {
	s.calls = append(s.calls, id)
	return s.records, s.err
}

func (s *stubCompanies) CreateUser(context.Context, api.CreateUserRequest) (*models.Company, error) {
	return nil, errors.New("unused")
}

func (s *stubCompanies) UpdateCompany(context.Context, types.CompanyID, api.UpdateCompanyRequest) (*models.Company, error) {
	return nil, errors.New("unused")
}

func (s *stubCompanies) DeleteCompany(context.Context, types.CompanyID) error {
	return errors.New("unused")
}

func TestStart(t *testing.T) {
	root := &models.Company{ID: 1, CompanyID: 1, CompanyName: "Acme", IsCompany: true, Role: &models.Role{Admin: true}}
	member := &models.Company{ID: 5, CompanyID: 1, Username: "ann", Role: &models.Role{AddTask: true}}
	store := &stubCompanies{records: []*models.Company{root, member}}

	t.Run("root account when no user id", func(t *testing.T) {
		sess, err := Start(context.Background(), store, 1, 0)
		require.NoError(t, err)
		assert.Same(t, root, sess.CompanyData)
		assert.True(t, sess.Role().Admin)
	})

	t.Run("member by id", func(t *testing.T) {
		sess, err := Start(context.Background(), store, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, types.CompanyID(5), sess.UserID())
		assert.False(t, sess.Role().Admin)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := Start(context.Background(), store, 1, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing company id makes no request", func(t *testing.T) {
		before := len(store.calls)
		_, err := Start(context.Background(), store, 0, 0)
		assert.ErrorIs(t, err, ErrNoCompany)
		assert.Len(t, store.calls, before)
	})
}

func TestClearResetsAccessors(t *testing.T) {
	sess := New(&models.Company{ID: 2, CompanyID: 1, CompanyName: "Acme", Role: &models.Role{}})
	sess.OpenModal(4)
	require.True(t, sess.ModalData.Editing)

	sess.Clear()
	assert.False(t, sess.Active())
	assert.Nil(t, sess.Role())
	assert.Zero(t, sess.CompanyID())
	assert.Empty(t, sess.CompanyName())
	assert.Equal(t, ModalData{}, sess.ModalData)
}

func TestOpenModalAddMode(t *testing.T) {
	sess := New(&models.Company{})
	sess.OpenModal(0)
	assert.True(t, sess.ModalData.Open)
	assert.False(t, sess.ModalData.Editing)

	sess.CloseModal()
	assert.False(t, sess.ModalData.Open)
}
