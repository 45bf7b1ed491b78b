// SPDX-License-Identifier: MIT
// Package: masseyramanujan/cmd/polydomain

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/recurrence"
)

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the registered recurrence families",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range recurrence.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
