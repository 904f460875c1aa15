package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/database"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/labstack/echo/v4"
)

// maxTitleLength matches the client-side limit
const maxTitleLength = 255

// Register wires up all store routes on the provided Echo instance.
func Register(e *echo.Echo, store *database.Store) {
	e.GET("/companies", listCompanies(store))
	e.POST("/companies", createCompany(store))
	e.PUT("/companies/:id", updateCompany(store))
	e.DELETE("/companies/:id", deleteCompany(store))

	e.GET("/tasks", listTasks(store))
	e.POST("/tasks", createTask(store))
	e.PUT("/tasks/:id", updateTask(store))
	e.DELETE("/tasks/:id", deleteTask(store))

	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func listCompanies(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		companyID, err := companyIDParam(c)
		if err != nil {
			return err
		}
		records, err := store.Companies.ListByCompany(c.Request().Context(), companyID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, records)
	}
}

func createCompany(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := validateIdentity(req.CompanyID, req.Username, req.Email); err != nil {
			return err
		}

		role := req.Role
		created, err := store.Companies.Create(c.Request().Context(), &models.Company{
			CompanyID:   req.CompanyID,
			CompanyName: req.CompanyName,
			Name:        req.Name,
			Surname:     req.Surname,
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			IsCompany:   req.IsCompany,
			Role:        &role,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateCompany(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		var req api.UpdateCompanyRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := validateIdentity(req.CompanyID, req.Username, req.Email); err != nil {
			return err
		}

		role := req.Role
		updated, err := store.Companies.Update(c.Request().Context(), types.CompanyID(id), &models.Company{
			CompanyID:   req.CompanyID,
			CompanyName: req.CompanyName,
			Name:        req.Name,
			Surname:     req.Surname,
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			IsCompany:   req.IsCompany,
			Role:        &role,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteCompany(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		if err := store.Companies.Delete(c.Request().Context(), types.CompanyID(id)); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func listTasks(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		companyID, err := companyIDParam(c)
		if err != nil {
			return err
		}
		tasks, err := store.Tasks.ListByCompany(c.Request().Context(), companyID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tasks)
	}
}

func createTask(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Status == "" {
			req.Status = models.StatusTodo
		}
		if err := validateTask(req.CompanyID, req.Title, req.Status); err != nil {
			return err
		}

		created, err := store.Tasks.Create(c.Request().Context(), &models.Task{
			CompanyID:   req.CompanyID,
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Status:      req.Status,
			AssigneeID:  req.AssigneeID,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateTask(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		var req api.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := validateTask(req.CompanyID, req.Title, req.Status); err != nil {
			return err
		}

		updated, err := store.Tasks.Update(c.Request().Context(), types.TaskID(id), &models.Task{
			CompanyID:   req.CompanyID,
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Status:      req.Status,
			AssigneeID:  req.AssigneeID,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteTask(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		if err := store.Tasks.Delete(c.Request().Context(), types.TaskID(id)); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", errInvalid, c.Param("id"))
	}
	return id, nil
}

func companyIDParam(c echo.Context) (types.CompanyID, error) {
	raw := c.QueryParam("companyId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: companyId %q", errInvalid, raw)
	}
	return types.CompanyID(id), nil
}

func validateIdentity(companyID types.CompanyID, username, email string) error {
	switch {
	case !companyID.Valid():
		return fmt.Errorf("%w: companyId is required", errInvalid)
	case strings.TrimSpace(username) == "":
		return fmt.Errorf("%w: username is required", errInvalid)
	case strings.TrimSpace(email) == "":
		return fmt.Errorf("%w: email is required", errInvalid)
	}
	return nil
}

func validateTask(companyID types.CompanyID, title string, status models.Status) error {
	title = strings.TrimSpace(title)
	switch {
	case !companyID.Valid():
		return fmt.Errorf("%w: companyId is required", errInvalid)
	case title == "":
		return fmt.Errorf("%w: title is required", errInvalid)
	case len(title) > maxTitleLength:
		return fmt.Errorf("%w: title exceeds %d characters", errInvalid, maxTitleLength)
	case !status.Valid():
		return fmt.Errorf("%w: unknown status %q", errInvalid, status)
	}
	return nil
}
