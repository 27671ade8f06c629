// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/rps/common/log"
	rgexec "github.com/33cn/rps/plugin/dapp/registry/executor"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

var (
	glog       = log.New("module", "execs.rps")
	driverName = rty.RPSX
	once       sync.Once
)

// Init 注册 rps 驱动
func Init(name string, cfg *types.Config) {
	once.Do(func() {
		drivers.Register(name, newRPS)
	})
}

// GetName rps 执行器名称
func GetName() string {
	return newRPS().GetName()
}

// RPS 石头剪刀布执行器
// rps 是默认的游戏桌，rps.<name> 是通过 registry 创建的实例，每个实例有独立的游戏表和托管账户
type RPS struct {
	drivers.DriverBase
}

func newRPS() drivers.Driver {
	r := &RPS{}
	r.SetChild(r)
	r.SetExecutorType(rty.NewType())
	return r
}

// GetDriverName 驱动名称
func (r *RPS) GetDriverName() string {
	return driverName
}

// CheckTx rps.<name> 必须已经在 registry 中登记
func (r *RPS) CheckTx(tx *types.Transaction, index int) error {
	name := instanceName(r.GetCurrentExecName())
	if name == "" {
		return nil
	}
	if _, err := rgexec.Lookup(r.GetStateDB(), name); err != nil {
		glog.Error("CheckTx", "execer", string(tx.Execer), "err", err)
		return err
	}
	return nil
}

// rps.league -> league, rps -> ""
func instanceName(execer string) string {
	if len(execer) > len(driverName)+1 && execer[len(driverName)] == '.' {
		return execer[len(driverName)+1:]
	}
	return ""
}
