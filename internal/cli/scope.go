package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tasks/internal/output"
	"github.com/bjaus/tasks/tabular"
)

func newScopeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Inspect task scopes",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newScopeListCommand(a))
	return cmd
}

func newScopeListCommand(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the scopes in use",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			scopes, err := st.Scopes(cmd.Context())
			if err != nil {
				return err
			}

			if opts.format == "" {
				fmt.Fprintln(a.out, "The following scopes have been found:")
				for _, s := range scopes {
					fmt.Fprintln(a.out, s)
				}
				return nil
			}

			format, seps, err := a.presentation(opts.format, opts.border)
			if err != nil {
				return err
			}
			tbl, err := scopeTable(resolveWidth(opts.width, a.cfg.TableWidth, a.out), seps)
			if err != nil {
				return err
			}
			return output.Write(a.out, format, tbl, slices.Values(scopes))
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.format, "output", "o", "", outputUsage())
	f.IntVarP(&opts.width, "width", "w", 0, "table width for the table format")
	f.StringVar(&opts.border, "border", "", "table border style: "+strings.Join(tabular.Borders(), ", "))
	return cmd
}
