// Package user holds the user management commands, e.g. flke user ...
package user

import (
	"context"
	"fmt"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/cli/handler"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/permissions"
	userservice "github.com/flke/flke/internal/services/user"
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage company members (admin only)",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// roleFlags maps each role switch to its form field
var roleFlags = []struct {
	name  string
	usage string
	field func(*userservice.Form) *bool
}{
	{"add-task", "Allow adding tasks", func(f *userservice.Form) *bool { return &f.AddTask }},
	{"edit-task", "Allow editing tasks", func(f *userservice.Form) *bool { return &f.EditTask }},
	{"delete-task", "Allow deleting tasks", func(f *userservice.Form) *bool { return &f.DeleteTask }},
	{"change-status", "Allow moving tasks between columns", func(f *userservice.Form) *bool { return &f.ChangeStatus }},
	{"change-settings", "Allow changing settings", func(f *userservice.Form) *bool { return &f.ChangeSettings }},
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "First name (at least 2 characters)")
	cmd.Flags().String("surname", "", "Surname (at least 2 characters)")
	cmd.Flags().String("username", "", "Username (at least 2 characters, unique)")
	cmd.Flags().String("email", "", "E-mail address (unique)")
	cmd.Flags().String("password", "", "Password")
	for _, rf := range roleFlags {
		cmd.Flags().Bool(rf.name, false, rf.usage)
	}
}

// applyFormFlags copies the flags that were set onto form
func applyFormFlags(p *handler.FlagParser, form *userservice.Form) {
	text := []struct {
		name string
		dst  *string
	}{
		{"name", &form.Name},
		{"surname", &form.Surname},
		{"username", &form.Username},
		{"email", &form.Email},
		{"password", &form.Password},
	}
	for _, tf := range text {
		if p.Changed(tf.name) {
			*tf.dst, _ = p.ParseStringOptional(tf.name)
		}
	}
	for _, rf := range roleFlags {
		if p.Changed(rf.name) {
			*rf.field(form), _ = p.ParseBool(rf.name)
		}
	}
}

// loadUsers checks the admin capability and caches the company record set
func loadUsers(ctx context.Context, c *cli.CLI) error {
	if err := permissions.Require(c.App.Session.Role(), permissions.ManageUsers); err != nil {
		return err
	}
	return c.App.Users.Refresh(ctx, c.App.Session)
}

// submit resolves and sends the form the way the Users screen does
func submit(ctx context.Context, c *cli.CLI, form userservice.Form) (*models.Company, userservice.Notice, error) {
	users := c.App.Users

	plan, err := users.Plan(c.App.Session, form)
	if err != nil {
		return nil, userservice.Notice{}, err
	}
	if plan.Kind == userservice.PlanReject {
		notice, _ := users.Complete(plan, nil, nil)
		return nil, notice, userservice.ErrAlreadyRegistered
	}

	rec, execErr := users.Execute(ctx, plan)
	notice, _ := users.Complete(plan, rec, execErr)
	if execErr != nil {
		return nil, notice, execErr
	}
	return rec, notice, nil
}

func printNotice(p *handler.FlagParser, rec *models.Company, notice userservice.Notice) (any, error) {
	formatter := p.Formatter()
	if formatter.JSON || formatter.Quiet {
		return rec, nil
	}
	fmt.Printf("✓ %s\n", notice)
	return nil, nil
}
