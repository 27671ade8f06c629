// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
registry 登记有名称的游戏实例:
 1. create(name, creator, opponent, duration, bet) 登记 rps.<name>，调用者成为 pauser
 2. lookup(name) 只读查询，rps 执行器用它检查实例中的游戏条件
*/

import (
	"sync"

	"github.com/33cn/rps/common/log"
	rgty "github.com/33cn/rps/plugin/dapp/registry/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

var (
	rlog       = log.New("module", "execs.registry")
	driverName = rgty.RegistryX
	once       sync.Once
)

// Init 注册 registry 驱动
func Init(name string, cfg *types.Config) {
	once.Do(func() {
		drivers.Register(name, newRegistry)
	})
}

// GetName registry 执行器名称
func GetName() string {
	return newRegistry().GetName()
}

// Registry 实例登记执行器
type Registry struct {
	drivers.DriverBase
}

func newRegistry() drivers.Driver {
	r := &Registry{}
	r.SetChild(r)
	r.SetExecutorType(rgty.NewType())
	return r
}

// GetDriverName 驱动名称
func (r *Registry) GetDriverName() string {
	return driverName
}

// Allow registry 只接受精确的执行器名称
func (r *Registry) Allow(tx *types.Transaction, index int) error {
	if string(tx.Execer) == driverName {
		return nil
	}
	return types.ErrExecNameNotAllow
}
