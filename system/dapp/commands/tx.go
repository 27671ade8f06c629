// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/client"
	dbm "github.com/33cn/rps/common/db"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// EventsCmd 交易以及日志
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List executed transactions and their receipt logs",
		Run:   listEvents,
	}
	addEventsFlags(cmd)
	return cmd
}

func addEventsFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("height", "t", -1, "start height, exclusive, -1 for the first/last one")
	cmd.Flags().Int32P("count", "c", 10, "max number of transactions")
	cmd.Flags().Int32P("direction", "d", 0, "0: desc, 1: asc")
}

func listEvents(cmd *cobra.Command, args []string) {
	height, _ := cmd.Flags().GetInt64("height")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	if direction != dbm.ListASC {
		direction = dbm.ListDESC
	}
	exec, err := client.Open(commandtypes.GetConf(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	results, err := exec.ListTxResults(height, count, direction)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	out := make([]*client.TxResult, 0, len(results))
	for _, r := range results {
		out = append(out, client.DecodeTxResult(r))
	}
	client.PrintJSON(out)
}
