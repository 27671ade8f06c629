// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps 石头剪刀布：创建者提交 commitment 并下注，对手出招，
// 创建者揭晓后结算，超时一方被罚
package rps

import (
	"github.com/33cn/rps/plugin/dapp/rps/commands"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	"github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.RPSX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RPSCmd,
	})
}
