// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli rps 命令行入口，交易以及查询都在本地数据目录上执行
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps-cli",
	Short: "rock-paper-scissors client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.InitCmd(),
		commands.AccountCmd(),
		commands.EventsCmd(),
	)
}

// Run 执行命令行，conf 为默认的配置文件
func Run(conf string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("conf", conf, "config file")
	rootCmd.PersistentFlags().String("from", "", "sender address of the transaction")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
