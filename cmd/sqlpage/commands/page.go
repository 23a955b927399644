package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ncobase/sqlpage/paging"
	"github.com/spf13/cobra"
)

func newPageCommand(opts *rootOptions) *cobra.Command {
	var params paging.Params

	cmd := &cobra.Command{
		Use:   "page",
		Args:  cobra.NoArgs,
		Short: "Print one page as JSON",
		Long: `Print the page following --token, or the first page when no token is
given. Feed next_page_token back through --token to continue.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			a, cleanup, err := initApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			page, err := a.paginator.Paginate(cmd.Context(), params)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVarP(&params.Token, "token", "t", "", "page token from a previous page")
	cmd.Flags().Int64VarP(&params.PageSize, "size", "n", 0, "page size (default from config)")
	return cmd
}

func newDumpCommand(opts *rootOptions) *cobra.Command {
	var pageSize int64

	cmd := &cobra.Command{
		Use:   "dump",
		Args:  cobra.NoArgs,
		Short: "Walk every page and print items as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			a, cleanup, err := initApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			enc := json.NewEncoder(cmd.OutOrStdout())
			var pages int
			err = a.paginator.Walk(cmd.Context(), pageSize, func(p *paging.Page[any]) error {
				pages++
				for _, item := range p.Items {
					if err := enc.Encode(item); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			a.logger.Info(cmd.Context(), "dump complete", "pages", pages)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&pageSize, "size", "n", 0, "page size (default from config)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
