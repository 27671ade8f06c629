// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"
	"time"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/executor"
	_ "github.com/33cn/rps/plugin"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	_ "github.com/33cn/rps/system"
	"github.com/33cn/rps/types"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

var (
	superAddr = common.HexToAddress("0x0000000000000000000000000000000000000a11")
	p1        = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	p2        = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	p3        = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

var testCfg = `
Title="test"

[store]
driver="memdb"

[exec]
minDuration=300

[manage]
superManager=["0x0000000000000000000000000000000000000a11"]

[[genesis]]
address="0x0000000000000000000000000000000000000a11"
amount="100"

[[genesis]]
address="0x00000000000000000000000000000000000000a1"
amount="100"

[[genesis]]
address="0x00000000000000000000000000000000000000b2"
amount="100"

[[genesis]]
address="0x00000000000000000000000000000000000000c3"
amount="100"
`

type testEnv struct {
	t     *testing.T
	exec  *executor.Executor
	clock *clock.Mock
}

func newTestEnv(t *testing.T, opts ...executor.Option) *testEnv {
	db, err := dbm.NewDB("rps", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	mock := clock.NewMock()
	mock.Set(time.Unix(1600000000, 0))
	opts = append([]executor.Option{executor.WithClock(mock), executor.WithDB(db)}, opts...)
	exec, err := executor.New(types.InitCfgString(testCfg), opts...)
	require.Nil(t, err)
	t.Cleanup(func() {
		exec.Close()
		db.Close()
	})
	return &testEnv{t: t, exec: exec, clock: mock}
}

func coins(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), types.Coin)
}

func commit(t *testing.T, addr common.Address, nonce string, move rty.Move) common.Hash {
	h, err := rty.ComputeCommitment(addr, []byte(nonce), move)
	require.Nil(t, err)
	return h
}

func (env *testEnv) sendTx(ety types.ExecutorType, execer string, from common.Address, action string, payload interface{}, value *uint256.Int) (*types.TxResult, error) {
	data, err := ety.CreatePayload(action, payload)
	require.Nil(env.t, err)
	return env.exec.ExecTx(types.NewTransaction(execer, data, from, value))
}

func (env *testEnv) rps(from common.Address, action string, payload interface{}, value *uint256.Int) (*types.TxResult, error) {
	return env.sendTx(rty.NewType(), rty.RPSX, from, action, payload, value)
}

func (env *testEnv) create(execer string, from, opponent common.Address, h common.Hash, bet uint64) (*types.TxResult, error) {
	create := &rty.RPSCreate{Commitment: h, Opponent: opponent, Duration: 600, Bet: coins(bet)}
	return env.sendTx(rty.NewType(), execer, from, "Create", create, coins(bet))
}

func (env *testEnv) play(execer string, from common.Address, h common.Hash, sub rty.MoveSubmission, bet uint64) (*types.TxResult, error) {
	return env.sendTx(rty.NewType(), execer, from, "Play", &rty.RPSPlay{Commitment: h, Submission: sub}, coins(bet))
}

func (env *testEnv) resolve(from common.Address, h common.Hash, nonce string, move rty.Move) (*types.TxResult, error) {
	return env.rps(from, "Resolve", &rty.RPSResolve{Commitment: h, Nonce: []byte(nonce), Move: move}, nil)
}

func (env *testEnv) cancel(from common.Address, h common.Hash, nonce string, move rty.Move) (*types.TxResult, error) {
	return env.rps(from, "Cancel", &rty.RPSCancel{Commitment: h, Nonce: []byte(nonce), Move: move}, nil)
}

func (env *testEnv) penalize(from common.Address, h common.Hash) (*types.TxResult, error) {
	return env.rps(from, "Penalize", &rty.RPSPenalize{Commitment: h}, nil)
}

func (env *testEnv) withdraw(from common.Address) (*types.TxResult, error) {
	return env.rps(from, "Withdraw", &rty.RPSWithdraw{}, nil)
}

func (env *testEnv) game(execer string, h common.Hash) *rty.GameRecord {
	msg, err := env.exec.Query(execer, rty.FuncNameGetGameByCommitment, &rty.ReqGameByCommitment{Commitment: h})
	require.Nil(env.t, err)
	return msg.(*rty.GameRecord)
}

func (env *testEnv) escrow(execer string, addr common.Address) *types.Account {
	return env.exec.GetExecAccount(execer, addr)
}

// 余额断言：coins 为单位
func (env *testEnv) requireCoins(expect uint64, actual *uint256.Int, msgAndArgs ...interface{}) {
	require.Equal(env.t, coins(expect).Dec(), actual.Dec(), msgAndArgs...)
}

func decodeLog(t *testing.T, res *types.TxResult, ty uint32) interface{} {
	for _, l := range res.Receipt.Logs {
		if l.Ty != ty {
			continue
		}
		_, v, err := types.DecodeLog(l)
		require.Nil(t, err)
		return v
	}
	require.Failf(t, "log not found", "ty=%d", ty)
	return nil
}
