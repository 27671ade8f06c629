// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"

	dbm "github.com/33cn/rps/common/db"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type action struct {
	cfg      *types.Config
	db       dbm.KV
	guard    *mty.Guard
	txhash   []byte
	fromaddr common.Address
	height   int64
	index    int
}

func newAction(m *Manage, tx *types.Transaction, index int) *action {
	var cfg *types.Config
	if api := m.GetAPI(); api != nil {
		cfg = api.GetConfig()
	}
	return &action{cfg, m.GetStateDB(), mty.NewGuard(m.GetStateDB()), tx.Hash(), tx.From,
		m.GetHeight(), index}
}

func (a *action) modifyConfig(modify *mty.ModifyConfig) (*types.Receipt, error) {
	if !IsSuperManager(a.cfg, a.fromaddr) {
		clog.Error("modifyConfig", "from", a.fromaddr, "err", types.ErrNoPrivilege)
		return nil, types.ErrNoPrivilege
	}
	if len(modify.Key) == 0 || strings.HasPrefix(modify.Key, "paused-") {
		return nil, mty.ErrBadConfigKey
	}
	if modify.Op != mty.OpAdd && modify.Op != mty.OpDelete {
		return nil, mty.ErrBadConfigOp
	}
	if len(modify.Value) == 0 {
		return nil, mty.ErrBadConfigValue
	}
	return modifyItem(a.db, a.guard, modify, a.fromaddr)
}

// modifyItem 修改数组类型的配置项，不检查权限
func modifyItem(db dbm.KV, guard *mty.Guard, modify *mty.ModifyConfig, from common.Address) (*types.Receipt, error) {
	item, err := guard.GetConfigItem(modify.Key)
	if err != nil {
		clog.Error("modifyConfig", "decode db key", modify.Key)
		return nil, err
	}
	copyItem := &mty.ConfigItem{
		Key:   item.Key,
		Addr:  item.Addr,
		Value: append([]string{}, item.Value...),
	}

	switch modify.Op {
	case mty.OpAdd:
		for _, v := range item.Value {
			if v == modify.Value {
				return nil, errors.Wrapf(mty.ErrBadConfigValue, "%s already in %s", modify.Value, modify.Key)
			}
		}
		item.Value = append(item.Value, modify.Value)
		clog.Info("modifyConfig", "add key", modify.Key, "from", copyItem.Value, "to", item.Value)
	case mty.OpDelete:
		item.Value = make([]string, 0)
		for _, value := range copyItem.Value {
			if value != modify.Value {
				item.Value = append(item.Value, value)
			}
		}
		clog.Info("modifyConfig", "delete key", modify.Key, "from", copyItem.Value, "to", item.Value)
	}
	item.Addr = from

	key := mty.ManageKey(modify.Key)
	valueSave := types.Encode(item)
	if err := db.Set(key, valueSave); err != nil {
		return nil, err
	}
	log := &types.ReceiptLog{Ty: mty.TyLogModifyConfig, Log: types.Encode(&mty.ReceiptConfig{Prev: copyItem, Current: item})}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: key, Value: valueSave}}, Logs: []*types.ReceiptLog{log}}, nil
}

// AddPauser 把 addr 加入 execer 的 pauser 列表，由其他执行器在创建实例时调用
func AddPauser(db dbm.KV, execer string, addr common.Address) (*types.Receipt, error) {
	guard := mty.NewGuard(db)
	if guard.IsPauser(execer, addr) {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	modify := &mty.ModifyConfig{Key: mty.PauserKey(execer), Op: mty.OpAdd, Value: addr.Hex()}
	return modifyItem(db, guard, modify, addr)
}

func (a *action) checkPauser(execer string) error {
	if IsSuperManager(a.cfg, a.fromaddr) || a.guard.IsPauser(execer, a.fromaddr) {
		return nil
	}
	clog.Error("checkPauser", "execer", execer, "from", a.fromaddr, "err", types.ErrNoPrivilege)
	return types.ErrNoPrivilege
}

func (a *action) setPaused(execer string, paused bool) (*types.Receipt, error) {
	if len(execer) == 0 || execer == driverName {
		return nil, errors.Wrapf(types.ErrInvalidParam, "execer %q can not be paused", execer)
	}
	if err := a.checkPauser(execer); err != nil {
		return nil, err
	}
	state, err := a.guard.GetPauseState(execer)
	if err != nil {
		return nil, err
	}
	if paused && state.Paused {
		return nil, mty.ErrAlreadyPaused
	}
	if !paused && !state.Paused {
		return nil, mty.ErrNotPaused
	}
	state.Paused = paused
	state.Addr = a.fromaddr
	value := types.Encode(state)
	key := mty.PauseKey(execer)
	if err := a.db.Set(key, value); err != nil {
		return nil, err
	}
	ty := mty.TyLogUnpause
	if paused {
		ty = mty.TyLogPause
	}
	clog.Info("setPaused", "execer", execer, "paused", paused, "from", a.fromaddr)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{{Key: key, Value: value}},
		Logs: []*types.ReceiptLog{{Ty: ty, Log: value}},
	}, nil
}
