// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
manage 负责管理配置
 1. 维护执行器的 pauser 列表
 1. 暂停 / 恢复执行器
*/

import (
	"sync"

	"github.com/33cn/rps/common/log"
	drivers "github.com/33cn/rps/system/dapp"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
)

var (
	clog       = log.New("module", "execs.manage")
	driverName = mty.ManageX
	once       sync.Once
)

// Init 注册 manage 驱动
func Init(name string, cfg *types.Config) {
	once.Do(func() {
		drivers.Register(name, newManage)
	})
}

// GetName manage 执行器名称
func GetName() string {
	return newManage().GetName()
}

// Manage 管理执行器
type Manage struct {
	drivers.DriverBase
}

func newManage() drivers.Driver {
	c := &Manage{}
	c.SetChild(c)
	c.SetExecutorType(mty.NewType())
	return c
}

// GetDriverName 驱动名称
func (c *Manage) GetDriverName() string {
	return driverName
}

// Allow manage 只接受精确的执行器名称
func (c *Manage) Allow(tx *types.Transaction, index int) error {
	if string(tx.Execer) == driverName {
		return nil
	}
	return types.ErrExecNameNotAllow
}

// IsSuperManager 是否为配置文件中的超级管理员
func IsSuperManager(cfg *types.Config, addr common.Address) bool {
	if cfg == nil || cfg.Manage == nil {
		return false
	}
	for _, m := range cfg.Manage.SuperManager {
		if common.HexToAddress(m) == addr {
			return true
		}
	}
	return false
}
