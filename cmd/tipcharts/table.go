// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/tipviz/tipcharts/dataset"
)

var cmdTableFlags = newFlagSet("table", "<tips.csv>")

func init() {
	addCommonFlags(cmdTableFlags, false)
	registerSubcommand("table", "print the parsed dataset", cmdTable, cmdTableFlags)
}

func cmdTable(args []string) error {
	ds, err := loadDataset(oneArg(cmdTableFlags, args))
	if err != nil {
		return err
	}
	return dataset.Fprint(os.Stdout, ds)
}
