/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/bemname/pkg/naming"
)

var sampleTuple = naming.Tuple{Block: "block", Elem: "elem", ModName: "mod", ModVal: "val"}

func newConventionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "conventions",
		Short:   "Lists naming conventions",
		Aliases: []string{"conv"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range naming.Presets() {
				c, err := naming.Preset(name)
				if err != nil {
					return err
				}
				cmd.Printf("%-12s %s\n", c.Name, c.Stringify(sampleTuple))
			}
			return nil
		},
	}
}
