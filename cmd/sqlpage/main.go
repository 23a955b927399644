package main

import (
	"fmt"
	"os"

	"github.com/ncobase/sqlpage/cmd/sqlpage/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
