// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 管理插件命令
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	pty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/spf13/cobra"
)

// ConfigCmd config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage",
		Short: "Pause executors and manage pausers",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		PauseCmd(),
		UnpauseCmd(),
		AddPauserCmd(),
		RemovePauserCmd(),
		ConfigTxCmd(),
		QueryConfigCmd(),
		QueryPauseCmd(),
	)

	return cmd
}

// PauseCmd pause an executor
func PauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause create/play/reveal of an executor",
		Run:   pause,
	}
	addExecerFlags(cmd)
	return cmd
}

// UnpauseCmd unpause an executor
func UnpauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpause",
		Short: "Unpause an executor",
		Run:   unpause,
	}
	addExecerFlags(cmd)
	return cmd
}

func addExecerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("execer", "e", "", "executor name, rps or rps.<name>")
	cmd.MarkFlagRequired("execer")
}

func pause(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("execer")
	commandtypes.SendTx(cmd, pty.NewType(), pty.ManageX, "Pause", &pty.Pause{Execer: execer}, nil)
}

func unpause(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("execer")
	commandtypes.SendTx(cmd, pty.NewType(), pty.ManageX, "Unpause", &pty.Unpause{Execer: execer}, nil)
}

// AddPauserCmd add a pauser for an executor
func AddPauserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-pauser",
		Short: "Add a pauser of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			modifyPauser(cmd, pty.OpAdd)
		},
	}
	addPauserFlags(cmd)
	return cmd
}

// RemovePauserCmd remove a pauser of an executor
func RemovePauserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-pauser",
		Short: "Remove a pauser of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			modifyPauser(cmd, pty.OpDelete)
		},
	}
	addPauserFlags(cmd)
	return cmd
}

func addPauserFlags(cmd *cobra.Command) {
	addExecerFlags(cmd)
	cmd.Flags().StringP("addr", "a", "", "pauser address")
	cmd.MarkFlagRequired("addr")
}

func modifyPauser(cmd *cobra.Command, op string) {
	execer, _ := cmd.Flags().GetString("execer")
	addr, err := commandtypes.GetAddr(cmd, "addr")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	v := &pty.ModifyConfig{Key: pty.PauserKey(execer), Op: op, Value: addr.Hex()}
	commandtypes.SendTx(cmd, pty.NewType(), pty.ManageX, "Modify", v, nil)
}

// ConfigTxCmd config transaction
func ConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config_tx",
		Short: "Modify a list config item",
		Run:   configTx,
	}
	addConfigTxFlags(cmd)
	return cmd
}

func addConfigTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config_key", "c", "", "config key string")
	cmd.MarkFlagRequired("config_key")

	cmd.Flags().StringP("operation", "o", "", "adding or deletion operation")
	cmd.MarkFlagRequired("operation")

	cmd.Flags().StringP("value", "v", "", "operating object")
	cmd.MarkFlagRequired("value")
}

func configTx(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("config_key")
	op, _ := cmd.Flags().GetString("operation")
	value, _ := cmd.Flags().GetString("value")

	v := &pty.ModifyConfig{Key: key, Op: op, Value: value}
	commandtypes.SendTx(cmd, pty.NewType(), pty.ManageX, "Modify", v, nil)
}

// QueryConfigCmd  query config
func QueryConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_config",
		Short: "Query config item",
		Run:   queryConfig,
	}
	cmd.Flags().StringP("key", "k", "", "key string")
	cmd.MarkFlagRequired("key")
	return cmd
}

func queryConfig(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), pty.ManageX, pty.FuncNameGetConfigItem, &pty.ReqConfigItem{Key: key})
	ctx.Run()
}

// QueryPauseCmd query pause state
func QueryPauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paused",
		Short: "Query pause state of an executor",
		Run:   queryPause,
	}
	addExecerFlags(cmd)
	return cmd
}

func queryPause(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("execer")
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), pty.ManageX, pty.FuncNameGetPauseState, &pty.ReqPauseState{Execer: execer})
	ctx.Run()
}
