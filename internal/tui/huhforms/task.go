package huhforms

import (
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
	"github.com/flke/flke/internal/models"
	taskservice "github.com/flke/flke/internal/services/task"
	"github.com/flke/flke/internal/tui/state"
	"github.com/flke/flke/internal/types"
)

// TaskFormOptions configures the add/edit task modal
type TaskFormOptions struct {
	Editing          bool
	Members          []*models.Company
	DescriptionLines int
}

func validateTitle(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return taskservice.ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > taskservice.MaxTitleLength {
		return taskservice.ErrTitleTooLong
	}
	return nil
}

// CreateTaskForm creates a huh form for adding/editing a task.
// The form writes into v through pointers. The status select is only shown
// when adding; an existing task changes status by dragging.
func CreateTaskForm(v *state.TaskFormValues, opts TaskFormOptions) *huh.Form {
	lines := opts.DescriptionLines
	if lines <= 0 {
		lines = 6
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(validateTitle).
			Value(&v.Title),
		huh.NewText().
			Key("description").
			Title("Description").
			Description("Markdown is rendered in the task view").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(lines).
			Value(&v.Description),
	}

	if !opts.Editing {
		var statusOptions []huh.Option[models.Status]
		for _, s := range models.Statuses() {
			statusOptions = append(statusOptions, huh.NewOption(s.DisplayName(), s))
		}
		fields = append(fields,
			huh.NewSelect[models.Status]().
				Key("status").
				Title("Column").
				Options(statusOptions...).
				Value(&v.Status),
		)
	}

	assigneeOptions := []huh.Option[types.CompanyID]{huh.NewOption("Unassigned", types.CompanyID(0))}
	for _, m := range opts.Members {
		assigneeOptions = append(assigneeOptions, huh.NewOption(m.Username, m.ID))
	}
	fields = append(fields,
		huh.NewSelect[types.CompanyID]().
			Key("assignee").
			Title("Assignee").
			Options(assigneeOptions...).
			Value(&v.AssigneeID),
	)

	confirmTitle := "Add this task?"
	if opts.Editing {
		confirmTitle = "Save changes?"
	}
	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(formKeyMap()).WithShowHelp(false)
}
