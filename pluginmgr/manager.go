// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 插件注册以及初始化
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

var (
	mu          sync.Mutex
	pluginItems = make(map[string]Plugin)
)

// InitExec 初始化所有插件的执行器
func InitExec(cfg *types.Config) {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range sortedNames() {
		pluginItems[name].InitExec(cfg)
	}
}

// HasExec 是否存在执行器
func HasExec(name string) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range sortedNames() {
		pluginItems[name].AddCmd(rootCmd)
	}
}

func sortedNames() []string {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
