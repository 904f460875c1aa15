package testutil

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
)

// Call records one request made against a FakeStore
type Call struct {
	Method string
	ID     int
}

// FakeStore is an in-memory api.Store. It records every call and can be
// told to fail a method with Errors.
type FakeStore struct {
	mu sync.Mutex

	Companies []*models.Company
	Tasks     []*models.Task
	Calls     []Call
	// Errors maps a method name (e.g. "UpdateTask") to the error it returns
	Errors map[string]error

	nextCompanyID types.CompanyID
	nextTaskID    types.TaskID
}

var _ api.Store = (*FakeStore)(nil)

// NewFakeStore seeds a store with a company root account named name
func NewFakeStore(companyID types.CompanyID, name string) *FakeStore {
	root := &models.Company{
		ID:          companyID,
		CompanyID:   companyID,
		CompanyName: name,
		Username:    strings.ToLower(name),
		Email:       strings.ToLower(name) + "@example.com",
		IsCompany:   true,
		Role:        FullRole(),
	}
	return &FakeStore{
		Companies:     []*models.Company{root},
		Errors:        map[string]error{},
		nextCompanyID: companyID + 1,
		nextTaskID:    1,
	}
}

// FullRole grants every capability
func FullRole() *models.Role {
	return &models.Role{Admin: true, AddTask: true, EditTask: true, DeleteTask: true, ChangeStatus: true, ChangeSettings: true}
}

// Fail makes method return err until cleared with Fail(method, nil)
func (s *FakeStore) Fail(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.Errors, method)
		return
	}
	s.Errors[method] = err
}

// CallCount returns how many times method was called
func (s *FakeStore) CallCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// AddMember inserts a member record directly and returns it
func (s *FakeStore) AddMember(companyID types.CompanyID, username, email string, role *models.Role) *models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := &models.Company{
		ID:        s.nextCompanyID,
		CompanyID: companyID,
		Name:      username,
		Surname:   "Tester",
		Username:  username,
		Email:     email,
		Password:  "secret",
		Role:      role,
	}
	s.nextCompanyID++
	s.Companies = append(s.Companies, rec)
	return cloneCompany(rec)
}

// AddTask inserts a task directly and returns it
func (s *FakeStore) AddTask(companyID types.CompanyID, title string, status models.Status) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	t := &models.Task{ID: s.nextTaskID, Title: title, Status: status, CompanyID: companyID, CreatedAt: now, UpdatedAt: now}
	s.nextTaskID++
	s.Tasks = append(s.Tasks, t)
	return t.Clone()
}

func (s *FakeStore) record(method string, id int) error {
	s.Calls = append(s.Calls, Call{Method: method, ID: id})
	return s.Errors[method]
}

func (s *FakeStore) ListCompanies(_ context.Context, companyID types.CompanyID) ([]*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("ListCompanies", companyID.ToInt()); err != nil {
		return nil, err
	}
	var out []*models.Company
	for _, c := range s.Companies {
		if c.CompanyID == companyID {
			out = append(out, cloneCompany(c))
		}
	}
	return out, nil
}

func (s *FakeStore) CreateUser(_ context.Context, req api.CreateUserRequest) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("CreateUser", 0); err != nil {
		return nil, err
	}
	if s.taken(req.CompanyID, 0, req.Username, req.Email) {
		return nil, &api.Error{Status: http.StatusConflict, Code: api.CodeConflict, Message: "username or email already registered"}
	}
	role := req.Role
	rec := &models.Company{
		ID:          s.nextCompanyID,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Name:        req.Name,
		Surname:     req.Surname,
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		IsCompany:   req.IsCompany,
		Role:        &role,
	}
	s.nextCompanyID++
	s.Companies = append(s.Companies, rec)
	return cloneCompany(rec), nil
}

func (s *FakeStore) UpdateCompany(_ context.Context, id types.CompanyID, req api.UpdateCompanyRequest) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("UpdateCompany", id.ToInt()); err != nil {
		return nil, err
	}
	for _, c := range s.Companies {
		if c.ID != id {
			continue
		}
		if s.taken(req.CompanyID, id, req.Username, req.Email) {
			return nil, &api.Error{Status: http.StatusConflict, Code: api.CodeConflict}
		}
		role := req.Role
		c.CompanyID = req.CompanyID
		c.CompanyName = req.CompanyName
		c.Name = req.Name
		c.Surname = req.Surname
		c.Username = req.Username
		c.Email = req.Email
		c.Password = req.Password
		c.IsCompany = req.IsCompany
		c.Role = &role
		return cloneCompany(c), nil
	}
	return nil, notFound("company", id.ToInt())
}

func (s *FakeStore) DeleteCompany(_ context.Context, id types.CompanyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("DeleteCompany", id.ToInt()); err != nil {
		return err
	}
	for i, c := range s.Companies {
		if c.ID == id {
			s.Companies = append(s.Companies[:i], s.Companies[i+1:]...)
			return nil
		}
	}
	return notFound("company", id.ToInt())
}

func (s *FakeStore) ListTasks(_ context.Context, companyID types.CompanyID) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("ListTasks", companyID.ToInt()); err != nil {
		return nil, err
	}
	var out []*models.Task
	for _, t := range s.Tasks {
		if t.CompanyID == companyID {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (s *FakeStore) CreateTask(_ context.Context, req api.CreateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("CreateTask", 0); err != nil {
		return nil, err
	}
	now := time.Now()
	t := &models.Task{
		ID:          s.nextTaskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		CompanyID:   req.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextTaskID++
	s.Tasks = append(s.Tasks, t)
	return t.Clone(), nil
}

func (s *FakeStore) UpdateTask(_ context.Context, id types.TaskID, req api.UpdateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("UpdateTask", id.ToInt()); err != nil {
		return nil, err
	}
	for _, t := range s.Tasks {
		if t.ID == id {
			t.Title = req.Title
			t.Description = req.Description
			t.Status = req.Status
			t.AssigneeID = req.AssigneeID
			t.CompanyID = req.CompanyID
			t.UpdatedAt = time.Now()
			return t.Clone(), nil
		}
	}
	return nil, notFound("task", id.ToInt())
}

func (s *FakeStore) DeleteTask(_ context.Context, id types.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("DeleteTask", id.ToInt()); err != nil {
		return err
	}
	for i, t := range s.Tasks {
		if t.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return nil
		}
	}
	return notFound("task", id.ToInt())
}

func (s *FakeStore) taken(companyID, except types.CompanyID, username, email string) bool {
	for _, c := range s.Companies {
		if c.CompanyID != companyID || c.ID == except {
			continue
		}
		if strings.EqualFold(c.Username, username) || strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func notFound(kind string, id int) error {
	return &api.Error{Status: http.StatusNotFound, Code: api.CodeNotFound, Message: fmt.Sprintf("%s %d not found", kind, id)}
}

func cloneCompany(c *models.Company) *models.Company {
	out := *c
	if c.Role != nil {
		role := *c.Role
		out.Role = &role
	}
	return &out
}
