// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry 登记命名的游戏实例 rps.<name>，实例固定双方、时长以及下注
package registry

import (
	"github.com/33cn/rps/plugin/dapp/registry/commands"
	"github.com/33cn/rps/plugin/dapp/registry/executor"
	"github.com/33cn/rps/plugin/dapp/registry/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.RegistryX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RegistryCmd,
	})
}
