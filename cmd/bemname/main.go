/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/bemname/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := newRootCmd(os.Args, version).Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(args []string, ver string) *cobra.Command {
	return cobrau.PrepareRootCmd(
		"bemname",
		"BEM entity names utility",
		args,
		ver,
		newDescribeCmd(),
		newConventionsCmd(),
	)
}
