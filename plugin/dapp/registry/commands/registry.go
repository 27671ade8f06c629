// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands registry 命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	rgty "github.com/33cn/rps/plugin/dapp/registry/types"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// RegistryCmd registry command
func RegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Named game tables",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		LookupCmd(),
		ListCmd(),
	)
	return cmd
}

// CreateCmd register a named game table
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register rps.<name> with fixed terms, --from becomes its pauser",
		Run:   create,
	}
	cmd.Flags().StringP("name", "n", "", "table name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().StringP("creator", "c", "", "creator address")
	cmd.MarkFlagRequired("creator")
	cmd.Flags().StringP("opponent", "o", "", "opponent address")
	cmd.MarkFlagRequired("opponent")
	cmd.Flags().Uint64P("duration", "d", 600, "seconds until the deadline")
	cmd.Flags().StringP("bet", "b", "", "bet in coins")
	cmd.MarkFlagRequired("bet")
	return cmd
}

func create(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	duration, _ := cmd.Flags().GetUint64("duration")
	creator, err := commandtypes.GetAddr(cmd, "creator")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	opponent, err := commandtypes.GetAddr(cmd, "opponent")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	bet, err := commandtypes.GetAmountValue(cmd, "bet")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &rgty.CreateNamedGame{
		Name:     name,
		Creator:  creator,
		Opponent: opponent,
		Duration: duration,
		Bet:      bet,
	}
	commandtypes.SendTx(cmd, rgty.NewType(), rgty.RegistryX, "Create", payload, nil)
}

// LookupCmd query a table by name
func LookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Query a named table",
		Run:   lookup,
	}
	cmd.Flags().StringP("name", "n", "", "table name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func lookup(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), rgty.RegistryX, rgty.FuncNameLookup, &rgty.ReqLookup{Name: name})
	ctx.Run()
}

// ListCmd list tables
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List named tables",
		Run:   list,
	}
	cmd.Flags().StringP("name", "n", "", "last name of the previous page")
	cmd.Flags().Uint32P("count", "c", 20, "page size")
	cmd.Flags().Uint32P("direction", "d", 1, "0: desc, 1: asc")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	count, _ := cmd.Flags().GetUint32("count")
	direction, _ := cmd.Flags().GetUint32("direction")
	req := &rgty.ReqListInstances{Name: name, Count: count, Direction: direction}
	ctx := client.NewQueryCtx(commandtypes.GetConf(cmd), rgty.RegistryX, rgty.FuncNameListInstances, req)
	ctx.Run()
}
