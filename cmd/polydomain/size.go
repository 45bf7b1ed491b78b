// SPDX-License-Identifier: MIT
// Package: masseyramanujan/cmd/polydomain

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSizeCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the pre-filter domain size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, e, err := a.loadDomain(path)
			if err != nil {
				return err
			}
			s := e.Sizes()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "family: %s\na: %d\nb: %d\ntotal: %d\n",
				e.Family().Name(), s.A, s.B, s.Total)

			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "domain config file (.yaml, .yml, .toml)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
