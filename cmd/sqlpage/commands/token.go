package commands

import (
	"fmt"

	"github.com/ncobase/sqlpage/paging"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Args:  cobra.NoArgs,
		Short: "Inspect and build page tokens",
	}
	cmd.AddCommand(newTokenDecodeCommand(), newTokenEncodeCommand())
	return cmd
}

func newTokenDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode TOKEN",
		Args:  cobra.ExactArgs(1),
		Short: "Print the state carried by a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := paging.DecodeToken(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}
}

func newTokenEncodeCommand() *cobra.Command {
	var (
		total    int64
		pageSize int64
		fetched  int64
		pageNum  int64
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Args:  cobra.NoArgs,
		Short: "Mint a token positioned after --fetched elements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := paging.State{
				TotalCount:      total,
				PageSize:        pageSize,
				Remaining:       total - fetched,
				PageNum:         pageNum,
				Offset:          fetched,
				ElementsFetched: fetched,
			}
			token, err := paging.EncodeToken(state)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&total, "total", 0, "total element count")
	cmd.Flags().Int64VarP(&pageSize, "size", "n", paging.DefaultPageSize, "page size")
	cmd.Flags().Int64Var(&fetched, "fetched", 0, "elements already returned")
	cmd.Flags().Int64Var(&pageNum, "page", 0, "page number")
	return cmd
}
