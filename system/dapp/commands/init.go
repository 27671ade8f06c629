// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// InitCmd 写入默认配置并创建数据库
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file and run genesis",
		Run:   initData,
	}
	cmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
	return cmd
}

func initData(cmd *cobra.Command, args []string) {
	conf := commandtypes.GetConf(cmd)
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(conf); err == nil && !force {
		fmt.Fprintln(os.Stderr, "config file exists:", conf)
		return
	}
	if err := os.WriteFile(conf, []byte(types.DefaultCfgString), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	exec, err := client.Open(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	fmt.Println("init ok, height:", exec.Height())
}
