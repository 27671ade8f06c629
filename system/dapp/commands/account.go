// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令：账户、交易日志以及配置初始化
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GetBalanceCmd(),
	)

	return cmd
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance, or escrow balance inside an executor",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("exec", "e", "", "executor name, empty for coins balance")
}

func balance(cmd *cobra.Command, args []string) {
	addr, err := commandtypes.GetAddr(cmd, "addr")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	execer, _ := cmd.Flags().GetString("exec")
	exec, err := client.Open(commandtypes.GetConf(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	if execer == "" {
		client.PrintJSON(client.DecodeAccount(exec.GetAccount(addr)))
		return
	}
	client.PrintJSON(client.DecodeAccount(exec.GetExecAccount(execer, addr)))
}
