// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"strings"
	"testing"
	"time"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/executor"
	_ "github.com/33cn/rps/plugin"
	rgty "github.com/33cn/rps/plugin/dapp/registry/types"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	_ "github.com/33cn/rps/system"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = common.HexToAddress("0x0000000000000000000000000000000000000e01")
	creator  = common.HexToAddress("0x0000000000000000000000000000000000000e02")
	opponent = common.HexToAddress("0x0000000000000000000000000000000000000e03")
)

func newTestExecutor(t *testing.T) *executor.Executor {
	db, err := dbm.NewDB("registry", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	mock := clock.NewMock()
	mock.Set(time.Unix(1600000000, 0))
	cfg := types.InitCfgString(`
[exec]
minDuration=300
[exec.sub.rps]
maxBet="10"
`)
	exec, err := executor.New(cfg, executor.WithClock(mock), executor.WithDB(db))
	require.Nil(t, err)
	t.Cleanup(exec.Close)
	return exec
}

func terms(name string) *rgty.CreateNamedGame {
	return &rgty.CreateNamedGame{
		Name:     name,
		Creator:  creator,
		Opponent: opponent,
		Duration: 600,
		Bet:      new(uint256.Int).Mul(uint256.NewInt(2), types.Coin),
	}
}

func createNamed(t *testing.T, exec *executor.Executor, from common.Address, create *rgty.CreateNamedGame, value *uint256.Int) (*types.TxResult, error) {
	payload, err := rgty.NewType().CreatePayload("Create", create)
	require.Nil(t, err)
	return exec.ExecTx(types.NewTransaction(rgty.RegistryX, payload, from, value))
}

func TestCreateNamedGame(t *testing.T) {
	exec := newTestExecutor(t)
	res, err := createNamed(t, exec, owner, terms("league"), nil)
	require.Nil(t, err)
	var created *rgty.ReceiptGameCreated
	var pauser *mty.ReceiptConfig
	for _, l := range res.Receipt.Logs {
		_, v, err := types.DecodeLog(l)
		require.Nil(t, err)
		switch l.Ty {
		case rgty.TyLogGameCreated:
			created = v.(*rgty.ReceiptGameCreated)
		case mty.TyLogModifyConfig:
			pauser = v.(*mty.ReceiptConfig)
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, "rps.league", created.Execer)
	assert.Equal(t, account.ExecAddress("rps.league"), created.ExecAddr)
	require.NotNil(t, pauser)
	assert.Equal(t, []string{owner.Hex()}, pauser.Current.Value)

	msg, err := exec.Query(rgty.RegistryX, rgty.FuncNameLookup, &rgty.ReqLookup{Name: "league"})
	require.Nil(t, err)
	inst := msg.(*rgty.Instance)
	assert.Equal(t, owner, inst.Owner)
	assert.Equal(t, creator, inst.Creator)
	assert.Equal(t, opponent, inst.Opponent)
	assert.Equal(t, uint64(600), inst.Duration)
	assert.Equal(t, uint64(2e8), inst.GetBet().Uint64())
	assert.Equal(t, uint64(exec.Now()), inst.CreateTime)

	msg, err = exec.Query(mty.ManageX, mty.FuncNameGetConfigItem, &mty.ReqConfigItem{Key: mty.PauserKey("rps.league")})
	require.Nil(t, err)
	assert.Equal(t, []string{owner.Hex()}, msg.(*mty.ConfigItem).Value)

	_, err = createNamed(t, exec, creator, terms("league"), nil)
	assert.Equal(t, rgty.ErrNameTaken, errors.Cause(err))
	_, err = exec.Query(rgty.RegistryX, rgty.FuncNameLookup, &rgty.ReqLookup{Name: "cup"})
	assert.Equal(t, rgty.ErrInstanceNotFound, errors.Cause(err))

	// 同一个 owner 可以登记多个实例
	_, err = createNamed(t, exec, owner, terms("cup"), nil)
	require.Nil(t, err)
}

func TestCreateNamedGameCheck(t *testing.T) {
	exec := newTestExecutor(t)
	for _, name := range []string{"", "a.b", "a-b", "a:b", "a b", strings.Repeat("x", rgty.MaxNameLength+1)} {
		_, err := createNamed(t, exec, owner, terms(name), nil)
		assert.Equal(t, rty.ErrInvalidArgument, errors.Cause(err), "name %q", name)
	}

	_, err := createNamed(t, exec, owner, terms("league"), uint256.NewInt(1))
	assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err))

	bad := terms("league")
	bad.Duration = 299
	_, err = createNamed(t, exec, owner, bad, nil)
	assert.Equal(t, rty.ErrDeadlineTooShort, errors.Cause(err))

	bad = terms("league")
	bad.Opponent = creator
	_, err = createNamed(t, exec, owner, bad, nil)
	assert.Equal(t, rty.ErrInvalidArgument, errors.Cause(err))

	bad = terms("league")
	bad.Bet = new(uint256.Int).Mul(uint256.NewInt(11), types.Coin)
	_, err = createNamed(t, exec, owner, bad, nil)
	assert.Equal(t, rty.ErrInvalidArgument, errors.Cause(err))

	// 只能使用 registry 这个名称
	payload, err := rgty.NewType().CreatePayload("Create", terms("league"))
	require.Nil(t, err)
	_, err = exec.ExecTx(types.NewTransaction("registry.x", payload, owner, nil))
	assert.Equal(t, types.ErrExecNameNotAllow, errors.Cause(err))
	assert.Equal(t, int64(0), exec.Height())
}

func TestListInstances(t *testing.T) {
	exec := newTestExecutor(t)
	list := func(req *rgty.ReqListInstances) (names []string) {
		msg, err := exec.Query(rgty.RegistryX, rgty.FuncNameListInstances, req)
		require.Nil(t, err)
		for _, inst := range msg.(*rgty.ReplyInstances).Instances {
			names = append(names, inst.Name)
		}
		return names
	}
	assert.Empty(t, list(&rgty.ReqListInstances{}))

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		_, err := createNamed(t, exec, owner, terms(name), nil)
		require.Nil(t, err)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, list(&rgty.ReqListInstances{Direction: 1}))
	assert.Equal(t, []string{"charlie", "bravo", "alpha"}, list(&rgty.ReqListInstances{}))
	assert.Equal(t, []string{"alpha", "bravo"}, list(&rgty.ReqListInstances{Count: 2, Direction: 1}))
	assert.Equal(t, []string{"charlie"}, list(&rgty.ReqListInstances{Name: "bravo", Count: 2, Direction: 1}))
}
