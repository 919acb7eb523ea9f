/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/bemname/pkg/entityname"
	"github.com/voedger/bemname/pkg/naming"
)

type describeParams struct {
	block      string
	elem       string
	mod        string
	modVal     string
	convention string
	noColor    bool
}

func newDescribeCmd() *cobra.Command {
	p := describeParams{}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Prints id, type and structure of the entity name",
		Example: `  bemname describe --block menu --elem item --mod current
  bemname describe --block button --mod theme --mod-val islands --convention two-dashes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(cmd, p)
		},
	}
	cmd.Flags().StringVar(&p.block, "block", "", "Block name (required)")
	cmd.Flags().StringVar(&p.elem, "elem", "", "Element name")
	cmd.Flags().StringVar(&p.mod, "mod", "", "Modifier name")
	cmd.Flags().StringVar(&p.modVal, "mod-val", "", "Modifier value, modifier is simple (true) if omitted")
	cmd.Flags().StringVar(&p.convention, "convention", naming.Origin.Name, "Naming convention")
	cmd.Flags().BoolVar(&p.noColor, "no-color", false, "Disable colored output")
	return cmd
}

func describe(cmd *cobra.Command, p describeParams) error {
	conv, err := naming.Preset(p.convention)
	if err != nil {
		return err
	}

	in := entityname.Input{Block: p.block, Elem: p.elem, Mod: entityname.Shorthand(p.mod)}
	if cmd.Flags().Changed("mod-val") {
		in.Mod.Val = entityname.Val(p.modVal)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("input: %+v, convention: %v", in, conv))
	}

	n, err := entityname.New(in, entityname.WithConvention(conv))
	if err != nil {
		return err
	}

	label := color.New(color.FgCyan)
	value := color.New(color.FgGreen)
	if p.noColor {
		label.DisableColor()
		value.DisableColor()
	}

	cmd.Println(label.Sprint("id:  "), value.Sprint(n.ID()))
	cmd.Println(label.Sprint("type:"), value.Sprint(n.Type()))
	cmd.Println(fmt.Sprintf("%#v", n))
	return nil
}
