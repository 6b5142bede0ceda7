package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tasks/internal/output"
	"github.com/bjaus/tasks/internal/store"
	"github.com/bjaus/tasks/internal/task"
	"github.com/bjaus/tasks/tabular"
)

func newAddCommand(a *app) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "add DESCRIPTION...",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			input := task.NewTask{Description: strings.Join(args, " ")}
			if cmd.Flags().Changed("scope") {
				s := task.NewScope(scope)
				input.Scope = &s
			}
			t, err := st.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			a.logger.Debug("added task", "id", t.ID, "scope", t.ScopeOr(""))
			a.success.Fprintf(a.out, "Added task with id %d\n", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "scope to file the task under")
	return cmd
}

type listOptions struct {
	scope  string
	format string
	width  int
	border string
}

func newListCommand(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.scope, "scope", "s", "", "only list tasks in this scope")
	f.StringVarP(&opts.format, "output", "o", "", outputUsage())
	f.IntVarP(&opts.width, "width", "w", 0, "table width (default follows config, then terminal)")
	f.StringVar(&opts.border, "border", "", "table border style: "+strings.Join(tabular.Borders(), ", "))
	return cmd
}

func (a *app) runList(cmd *cobra.Command, opts listOptions) error {
	format, seps, err := a.presentation(opts.format, opts.border)
	if err != nil {
		return err
	}
	// Lay the table out before touching the database so a bad width fails
	// without partial output.
	tbl, err := taskTable(resolveWidth(opts.width, a.cfg.TableWidth, a.out), seps)
	if err != nil {
		return err
	}

	var scope *task.Scope
	if opts.scope != "" {
		s := task.NewScope(opts.scope)
		scope = &s
	}

	st, err := a.openStore(cmd.Context())
	if err != nil {
		return err
	}
	cur, err := st.List(cmd.Context(), scope)
	if err != nil {
		return err
	}
	defer cur.Close()

	if err := output.Write(a.out, format, tbl, cur.Tasks()); err != nil {
		return err
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if n := cur.Skipped(); n > 0 {
		a.logger.Warn("skipped unreadable tasks", "count", n)
	}
	return nil
}

func newCompleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete TASK_ID",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := task.ParseID(args[0])
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			t, err := st.ToggleComplete(cmd.Context(), id)
			switch {
			case errors.Is(err, store.ErrNotFound):
				a.notice.Fprintf(a.out, "Task with id %d not found\n", id)
				return nil
			case err != nil:
				return err
			case t.Completed():
				a.success.Fprintf(a.out, "Successfully completed task with id %d\n", id)
			default:
				a.notice.Fprintf(a.out, "Task with id %d is no longer completed\n", id)
			}
			return nil
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete TASK_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := task.ParseID(args[0])
			if err != nil {
				return err
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			err = st.Delete(cmd.Context(), id)
			switch {
			case errors.Is(err, store.ErrNotFound):
				a.notice.Fprintf(a.out, "Task with id %d not found\n", id)
				return nil
			case err != nil:
				return err
			}
			a.success.Fprintf(a.out, "Successfully deleted task with id %d\n", id)
			return nil
		},
	}
}

// presentation resolves the output format and border, falling back to the
// config for empty flags.
func (a *app) presentation(format, border string) (output.Format, tabular.Separators, error) {
	if format == "" {
		format = a.cfg.Output
	}
	if border == "" {
		border = a.cfg.Border
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return "", tabular.Separators{}, err
	}
	seps, err := tabular.ParseSeparators(border)
	if err != nil {
		return "", tabular.Separators{}, err
	}
	return f, seps, nil
}

func outputUsage() string {
	names := make([]string, 0, len(output.Formats())+1)
	for _, f := range output.Formats() {
		names = append(names, f.String())
	}
	names = append(names, "go-template=...")
	return fmt.Sprintf("output format: %s", strings.Join(names, ", "))
}
