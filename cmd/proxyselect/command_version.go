// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/antgroup/proxyselect/pkg/version"
)

type VersionInfo struct {
	JSON bool `short:"j" name:"json" help:"Print system information as JSON"`
}

func (c *VersionInfo) Run(g *Globals) error {
	info, err := version.Uname()
	if err != nil {
		fmt.Fprintf(os.Stderr, "proxyselect version: uname error: %v\n", err)
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Version string              `json:"version"`
			Commit  string              `json:"commit"`
			Built   string              `json:"built"`
			System  *version.SystemInfo `json:"system"`
		}{version.GetVersion(), version.GetBuildCommit(), version.GetBuildTime(), info})
	}
	fmt.Println(version.GetVersionString())
	fmt.Printf("system: %s %s %s (%s, %s family)\n", info.Name, info.Release, info.Machine, info.OS, info.Family)
	if len(info.Processor) != 0 {
		fmt.Printf("processor: %s\n", info.Processor)
	}
	return nil
}
