// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manage manage负责管理配置的插件
// 1. 超级管理员来自配置文件
// 2. 添加 pauser
// 3. 暂停 / 恢复执行器
package manage

import (
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/manage/commands"
	"github.com/33cn/rps/system/dapp/manage/executor"
	"github.com/33cn/rps/system/dapp/manage/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     types.ManageX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.ConfigCmd,
	})
}
