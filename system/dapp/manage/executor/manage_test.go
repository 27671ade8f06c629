// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	drivers "github.com/33cn/rps/system/dapp"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	superAddr  = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	pauserAddr = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	otherAddr  = common.HexToAddress("0x00000000000000000000000000000000000000c1")
)

type testAPI struct {
	cfg *types.Config
}

func (api *testAPI) GetConfig() *types.Config { return api.cfg }

func (api *testAPI) GetPayout() account.Payout { return account.CoinsPayout{} }

func newTestManage(t *testing.T) (drivers.Driver, dbm.DB) {
	db, err := dbm.NewDB("manage", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	cfg := types.InitCfgString(types.DefaultCfgString)
	m := newManage()
	m.SetStateDB(db)
	m.SetAPI(&testAPI{cfg: cfg})
	return m, db
}

func execManage(t *testing.T, m drivers.Driver, from common.Address, name string, action interface{}) (*types.Receipt, error) {
	payload, err := mty.NewType().CreatePayload(name, action)
	require.Nil(t, err)
	tx := types.NewTransaction(mty.ManageX, payload, from, nil)
	require.Nil(t, m.Allow(tx, 0))
	return m.Exec(tx, 0)
}

func TestModifyConfig(t *testing.T) {
	m, _ := newTestManage(t)
	key := mty.PauserKey("rps")

	_, err := execManage(t, m, otherAddr, "Modify", &mty.ModifyConfig{Key: key, Op: mty.OpAdd, Value: pauserAddr.Hex()})
	assert.Equal(t, types.ErrNoPrivilege, err)

	_, err = execManage(t, m, superAddr, "Modify", &mty.ModifyConfig{Key: key, Op: "update", Value: pauserAddr.Hex()})
	assert.Equal(t, mty.ErrBadConfigOp, err)

	_, err = execManage(t, m, superAddr, "Modify", &mty.ModifyConfig{Key: "paused-rps", Op: mty.OpAdd, Value: "1"})
	assert.Equal(t, mty.ErrBadConfigKey, err)

	receipt, err := execManage(t, m, superAddr, "Modify", &mty.ModifyConfig{Key: key, Op: mty.OpAdd, Value: pauserAddr.Hex()})
	require.Nil(t, err)
	require.Len(t, receipt.Logs, 1)
	name, v, err := types.DecodeLog(receipt.Logs[0])
	require.Nil(t, err)
	assert.Equal(t, "LogModifyConfig", name)
	assert.Equal(t, []string{pauserAddr.Hex()}, v.(*mty.ReceiptConfig).Current.Value)

	_, err = execManage(t, m, superAddr, "Modify", &mty.ModifyConfig{Key: key, Op: mty.OpAdd, Value: pauserAddr.Hex()})
	assert.True(t, errors.Is(err, mty.ErrBadConfigValue))

	msg, err := m.Query(mty.FuncNameGetConfigItem, types.Encode(&mty.ReqConfigItem{Key: key}))
	require.Nil(t, err)
	assert.Equal(t, []string{pauserAddr.Hex()}, msg.(*mty.ConfigItem).Value)

	_, err = execManage(t, m, superAddr, "Modify", &mty.ModifyConfig{Key: key, Op: mty.OpDelete, Value: pauserAddr.Hex()})
	require.Nil(t, err)
	msg, err = m.Query(mty.FuncNameGetConfigItem, types.Encode(&mty.ReqConfigItem{Key: key}))
	require.Nil(t, err)
	assert.Empty(t, msg.(*mty.ConfigItem).Value)
}

func TestPauseUnpause(t *testing.T) {
	m, db := newTestManage(t)
	guard := mty.NewGuard(db)

	_, err := execManage(t, m, pauserAddr, "Pause", &mty.Pause{Execer: "rps"})
	assert.Equal(t, types.ErrNoPrivilege, err)

	_, err = AddPauser(db, "rps", pauserAddr)
	require.Nil(t, err)
	assert.True(t, guard.IsPauser("rps", pauserAddr))
	assert.False(t, guard.IsPauser("rps.league", pauserAddr))
	receipt, err := AddPauser(db, "rps", pauserAddr)
	require.Nil(t, err)
	assert.Empty(t, receipt.KV)


	receipt, err = execManage(t, m, pauserAddr, "Pause", &mty.Pause{Execer: "rps"})
	require.Nil(t, err)
	assert.Equal(t, mty.TyLogPause, receipt.Logs[0].Ty)
	assert.True(t, guard.IsPaused("rps"))
	assert.True(t, errors.Is(guard.CheckNotPaused("rps"), types.ErrPaused))
	assert.Nil(t, guard.CheckNotPaused("rps.league"))

	_, err = execManage(t, m, pauserAddr, "Pause", &mty.Pause{Execer: "rps"})
	assert.Equal(t, mty.ErrAlreadyPaused, err)

	msg, err := m.Query(mty.FuncNameGetPauseState, types.Encode(&mty.ReqPauseState{Execer: "rps"}))
	require.Nil(t, err)
	assert.True(t, msg.(*mty.PauseState).Paused)
	assert.Equal(t, pauserAddr, msg.(*mty.PauseState).Addr)

	// 超级管理员不在 pauser 列表中也可以恢复
	receipt, err = execManage(t, m, superAddr, "Unpause", &mty.Unpause{Execer: "rps"})
	require.Nil(t, err)
	assert.Equal(t, mty.TyLogUnpause, receipt.Logs[0].Ty)
	assert.False(t, guard.IsPaused("rps"))

	_, err = execManage(t, m, superAddr, "Unpause", &mty.Unpause{Execer: "rps"})
	assert.Equal(t, mty.ErrNotPaused, err)

	_, err = execManage(t, m, superAddr, "Pause", &mty.Pause{Execer: mty.ManageX})
	assert.True(t, errors.Is(err, types.ErrInvalidParam))
}

func TestAllow(t *testing.T) {
	m, _ := newTestManage(t)
	tx := types.NewTransaction("manage.x", nil, superAddr, nil)
	assert.Equal(t, types.ErrExecNameNotAllow, m.Allow(tx, 0))
}

func TestIsSuperManager(t *testing.T) {
	cfg := types.InitCfgString(types.DefaultCfgString)
	assert.True(t, IsSuperManager(cfg, superAddr))
	assert.False(t, IsSuperManager(cfg, otherAddr))
	assert.False(t, IsSuperManager(nil, superAddr))
}
