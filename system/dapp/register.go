// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	closeHooks         []func(db dbm.KV)
)

// Register register driver in name
func Register(name string, create DriverCreate) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
}

// IsRegistered 驱动是否已经注册
func IsRegistered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registedExecDriver[name]
	return ok
}

// LoadDriver load driver, rps.xxx 加载 rps 驱动
func LoadDriver(name string) (driver Driver, err error) {
	realname := string(types.GetRealExecName([]byte(name)))
	mu.RLock()
	c, ok := registedExecDriver[realname]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, errors.Wrap(types.ErrExecNotFound, name)
	}
	return c(), nil
}

// LoadDriverAllow 加载驱动并检查是否允许执行该交易
func LoadDriverAllow(api API, tx *types.Transaction, index int, height, blocktime int64) (Driver, error) {
	exec, err := LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	exec.SetAPI(api)
	exec.SetEnv(height, blocktime)
	if err := exec.Allow(tx, index); err != nil {
		return nil, errors.Wrap(err, string(tx.Execer))
	}
	exec.SetName(string(types.GetRealExecName(tx.Execer)))
	exec.SetCurrentExecName(string(tx.Execer))
	return exec, nil
}

// ListDrivers 已注册的驱动名称
func ListDrivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterCloseHook 执行器关闭时调用，用于清理按状态数据库缓存的数据
func RegisterCloseHook(fn func(db dbm.KV)) {
	mu.Lock()
	defer mu.Unlock()
	closeHooks = append(closeHooks, fn)
}

// RunCloseHooks 状态数据库 db 不再使用
func RunCloseHooks(db dbm.KV) {
	mu.RLock()
	hooks := closeHooks
	mu.RUnlock()
	for _, fn := range hooks {
		fn(db)
	}
}
