//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func (c *cli) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "view <sim> [file]",
		Short:  "Open a window stepping a grid-backed sim (requires -tags ebiten)",
		Hidden: true,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("the viewer requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/ca`")
		},
	}
}
