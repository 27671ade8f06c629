// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Guard 执行器的暂停开关，游戏推进类的操作在入口处检查
type Guard struct {
	db dbm.KV
}

// NewGuard new
func NewGuard(db dbm.KV) *Guard {
	return &Guard{db: db}
}

// GetPauseState 读取暂停状态，不存在时返回未暂停
func (g *Guard) GetPauseState(execer string) (*PauseState, error) {
	value, err := g.db.Get(PauseKey(execer))
	if err != nil {
		return &PauseState{Execer: execer}, nil
	}
	var state PauseState
	if err := types.Decode(value, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// IsPaused 执行器是否暂停
func (g *Guard) IsPaused(execer string) bool {
	state, err := g.GetPauseState(execer)
	if err != nil {
		return false
	}
	return state.Paused
}

// CheckNotPaused 暂停时返回 ErrPaused
func (g *Guard) CheckNotPaused(execer string) error {
	if g.IsPaused(execer) {
		return errors.Wrap(types.ErrPaused, execer)
	}
	return nil
}

// GetConfigItem 读取配置项，不存在时返回空列表
func (g *Guard) GetConfigItem(key string) (*ConfigItem, error) {
	value, err := g.db.Get(ManageKey(key))
	if err != nil {
		return &ConfigItem{Key: key}, nil
	}
	var item ConfigItem
	if err := types.Decode(value, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// IsPauser addr 是否可以暂停 execer
func (g *Guard) IsPauser(execer string, addr common.Address) bool {
	item, err := g.GetConfigItem(PauserKey(execer))
	if err != nil {
		return false
	}
	for _, v := range item.Value {
		if common.HexToAddress(v) == addr {
			return true
		}
	}
	return false
}
