// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/executor"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// create, play, resolve, withdraw
func TestRPSResolveAndWithdraw(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	now := uint64(env.exec.Now())

	res, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	created := decodeLog(t, res, rty.TyLogRPSCreate).(*rty.ReceiptRPSCreate)
	assert.Equal(t, h, created.Commitment)
	assert.Equal(t, p1, created.Creator)
	assert.Equal(t, p2, created.Opponent)
	assert.Equal(t, uint64(1), created.SessionID)
	assert.Equal(t, now+600, created.Deadline)
	env.requireCoins(95, env.exec.GetAccount(p1).GetBalance())
	env.requireCoins(5, env.escrow(rty.RPSX, p1).GetFrozen())

	env.clock.Add(time.Minute)
	res, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)
	moved := decodeLog(t, res, rty.TyLogRPSMove).(*rty.ReceiptRPSMove)
	assert.Equal(t, p2, moved.Player)
	assert.Equal(t, rty.MovePaper, moved.Move)
	game := env.game(rty.RPSX, h)
	assert.Equal(t, rty.GameStatusPlayed, game.Status)
	assert.Equal(t, rty.MovePaper, game.OpponentMove)
	assert.False(t, game.Resolved)

	_, err = env.resolve(p1, h, "n2", rty.MoveRock)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	_, err = env.resolve(p1, h, "n1", rty.MovePaper)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	// commitment 绑定了创建者地址
	_, err = env.resolve(p2, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	_, err = env.resolve(p1, h, "", rty.MoveRock)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	_, err = env.resolve(p1, h, "n1", rty.MoveNone)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))

	res, err = env.resolve(p1, h, "n1", rty.MoveRock)
	require.Nil(t, err)
	resolved := decodeLog(t, res, rty.TyLogRPSResolve).(*rty.ReceiptRPSResolve)
	assert.Equal(t, p2, resolved.First)
	assert.Equal(t, p1, resolved.Second)
	assert.False(t, resolved.Tie)
	env.requireCoins(10, env.escrow(rty.RPSX, p2).GetBalance())
	env.requireCoins(0, env.escrow(rty.RPSX, p2).GetFrozen())
	env.requireCoins(0, env.escrow(rty.RPSX, p1).GetBalance())
	env.requireCoins(0, env.escrow(rty.RPSX, p1).GetFrozen())

	game = env.game(rty.RPSX, h)
	assert.True(t, game.Resolved)
	assert.Equal(t, rty.GameStatusResolved, game.Status)
	assert.Equal(t, rty.ResultOpponentWin, game.Result)
	assert.Equal(t, p2, game.Winner)
	assert.Equal(t, rty.MoveRock, game.CreatorMove)

	_, err = env.withdraw(p1)
	assert.Equal(t, rty.ErrNothingToWithdraw, errors.Cause(err))
	res, err = env.withdraw(p2)
	require.Nil(t, err)
	withdrawn := decodeLog(t, res, rty.TyLogRPSWithdraw).(*rty.ReceiptRPSWithdraw)
	assert.Equal(t, p2, withdrawn.Addr)
	env.requireCoins(10, withdrawn.Amount)
	env.requireCoins(105, env.exec.GetAccount(p2).GetBalance())
	env.requireCoins(95, env.exec.GetAccount(p1).GetBalance())
	_, err = env.withdraw(p2)
	assert.Equal(t, rty.ErrNothingToWithdraw, errors.Cause(err))

	// 结束之后所有的结算操作都失败
	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
	_, err = env.cancel(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MoveRock), 5)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
}

func TestRPSCancelAfterDeadline(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)

	env.clock.Add(601 * time.Second)
	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrOpponentHasNotPlayed, errors.Cause(err))
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	assert.Equal(t, rty.ErrDeadlineExpired, errors.Cause(err))

	_, err = env.cancel(p1, h, "n1", rty.MoveScissors)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	_, err = env.cancel(p1, h, "", rty.MoveRock)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	_, err = env.cancel(p1, h, "n1", rty.MoveNone)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
	res, err := env.cancel(p1, h, "n1", rty.MoveRock)
	require.Nil(t, err)
	cancelled := decodeLog(t, res, rty.TyLogRPSCancel).(*rty.ReceiptRPSCancel)
	assert.Equal(t, p1, cancelled.Creator)
	env.requireCoins(5, env.escrow(rty.RPSX, p1).GetBalance())
	env.requireCoins(0, env.escrow(rty.RPSX, p1).GetFrozen())
	assert.Equal(t, rty.GameStatusCancelled, env.game(rty.RPSX, h).Status)

	// 游戏结束之后先检查 ErrAlreadyResolved，不再返回 ErrOpponentHasNotPlayed
	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
	_, err = env.withdraw(p1)
	require.Nil(t, err)
	env.requireCoins(100, env.exec.GetAccount(p1).GetBalance())
}

func TestRPSCancelAfterPlay(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)
	_, err = env.cancel(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrOpponentAlreadyPlayed, errors.Cause(err))
	_, err = env.cancel(p2, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))
}

func TestRPSPenalizeCreator(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)

	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrDeadlineNotReached, errors.Cause(err))

	// deadline 本身已经过期
	env.clock.Add(600 * time.Second)
	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrDeadlineExpired, errors.Cause(err))
	_, err = env.penalize(p1, h)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))
	_, err = env.penalize(p3, h)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))

	res, err := env.penalize(p2, h)
	require.Nil(t, err)
	penalized := decodeLog(t, res, rty.TyLogRPSPenalize).(*rty.ReceiptRPSPenalize)
	assert.Equal(t, p2, penalized.Beneficiary)
	env.requireCoins(10, env.escrow(rty.RPSX, p2).GetBalance())
	env.requireCoins(0, env.escrow(rty.RPSX, p1).GetFrozen())
	game := env.game(rty.RPSX, h)
	assert.Equal(t, rty.GameStatusPenalized, game.Status)
	assert.Equal(t, rty.ResultOpponentWin, game.Result)

	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrAlreadyResolved, errors.Cause(err))
}

func TestRPSDeadlineTooShort(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	for _, create := range []*rty.RPSCreate{
		{Commitment: h, Opponent: p2, Duration: 240, Bet: coins(5)},
		{Commitment: h, Opponent: p1, Duration: 240, Bet: coins(5)},
		{Commitment: common.Hash{}, Opponent: common.Address{}, Duration: 240, Bet: new(uint256.Int)},
	} {
		_, err := env.rps(p1, "Create", create, coins(1))
		assert.Equal(t, rty.ErrDeadlineTooShort, errors.Cause(err))
	}
	env.requireCoins(100, env.exec.GetAccount(p1).GetBalance())
	assert.Equal(t, int64(0), env.exec.Height())
}

func TestRPSCreateCheck(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	bad := []*rty.RPSCreate{
		{Commitment: common.Hash{}, Opponent: p2, Duration: 600, Bet: coins(5)},
		{Commitment: h, Opponent: common.Address{}, Duration: 600, Bet: coins(5)},
		{Commitment: h, Opponent: p1, Duration: 600, Bet: coins(5)},
		{Commitment: h, Opponent: p2, Duration: 600, Bet: new(uint256.Int)},
		{Commitment: h, Opponent: p2, Duration: rty.MaxDuration + 1, Bet: coins(5)},
	}
	for i, create := range bad {
		_, err := env.rps(p1, "Create", create, coins(5))
		assert.Equal(t, rty.ErrInvalidArgument, errors.Cause(err), "case %d", i)
	}
	create := &rty.RPSCreate{Commitment: h, Opponent: p2, Duration: 600, Bet: coins(5)}
	_, err := env.rps(p1, "Create", create, coins(4))
	assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err))
	_, err = env.rps(p1, "Create", create, nil)
	assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err))
	// 余额不足
	_, err = env.create(rty.RPSX, p1, p2, h, 101)
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))

	_, err = env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.create(rty.RPSX, p1, p2, h, 5)
	assert.Equal(t, rty.ErrCommitmentCollision, errors.Cause(err))
	_, err = env.create(rty.RPSX, p3, p2, h, 5)
	assert.Equal(t, rty.ErrCommitmentCollision, errors.Cause(err))

	// 结束之后 commitment 也不能重复使用
	_, err = env.cancel(p1, h, "n1", rty.MoveRock)
	require.Nil(t, err)
	_, err = env.create(rty.RPSX, p1, p2, h, 5)
	assert.Equal(t, rty.ErrCommitmentCollision, errors.Cause(err))

	h2 := commit(t, p1, "n2", rty.MoveRock)
	res, err := env.create(rty.RPSX, p1, p2, h2, 5)
	require.Nil(t, err)
	assert.Equal(t, uint64(2), decodeLog(t, res, rty.TyLogRPSCreate).(*rty.ReceiptRPSCreate).SessionID)
}

func TestRPSPlayCheck(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	assert.Equal(t, rty.ErrGameNotFound, errors.Cause(err))

	_, err = env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p3, h, rty.Cleartext(rty.MovePaper), 5)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))
	_, err = env.play(rty.RPSX, p1, h, rty.Cleartext(rty.MovePaper), 5)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))
	for _, sub := range []rty.MoveSubmission{
		rty.Cleartext(rty.MoveNone),
		rty.Cleartext(rty.Move(4)),
		rty.Committed(common.Hash{}),
		{Kind: 9, Move: rty.MoveRock},
	} {
		_, err = env.play(rty.RPSX, p2, h, sub, 5)
		assert.Equal(t, rty.ErrInvalidMove, errors.Cause(err))
	}
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 4)
	assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err))
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)
	env.requireCoins(95, env.exec.GetAccount(p2).GetBalance())
	env.requireCoins(5, env.escrow(rty.RPSX, p2).GetFrozen())
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MoveRock), 5)
	assert.Equal(t, rty.ErrAlreadyPlayed, errors.Cause(err))
}

func TestRPSResolveBeforePlay(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrGameNotFound, errors.Cause(err))
	_, err = env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrOpponentHasNotPlayed, errors.Cause(err))
}

func TestRPSTie(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveScissors)
	_, err := env.create(rty.RPSX, p1, p2, h, 3)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MoveScissors), 3)
	require.Nil(t, err)
	res, err := env.resolve(p1, h, "n1", rty.MoveScissors)
	require.Nil(t, err)
	resolved := decodeLog(t, res, rty.TyLogRPSResolve).(*rty.ReceiptRPSResolve)
	assert.True(t, resolved.Tie)
	assert.Equal(t, p1, resolved.First)
	assert.Equal(t, p2, resolved.Second)
	env.requireCoins(3, env.escrow(rty.RPSX, p1).GetBalance())
	env.requireCoins(3, env.escrow(rty.RPSX, p2).GetBalance())
	game := env.game(rty.RPSX, h)
	assert.Equal(t, rty.ResultTie, game.Result)
	assert.Equal(t, common.Address{}, game.Winner)
}

func TestRPSCommittedMove(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	reveal := &rty.RPSReveal{Commitment: h, Nonce: []byte("s2"), Move: rty.MoveScissors}
	_, err = env.rps(p2, "Reveal", reveal, nil)
	assert.Equal(t, rty.ErrOpponentHasNotPlayed, errors.Cause(err))

	h2 := commit(t, p2, "s2", rty.MoveScissors)
	res, err := env.play(rty.RPSX, p2, h, rty.Committed(h2), 5)
	require.Nil(t, err)
	moved := decodeLog(t, res, rty.TyLogRPSMove).(*rty.ReceiptRPSMove)
	assert.Equal(t, rty.MoveNone, moved.Move)
	assert.Equal(t, h2, moved.Hash)

	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrOpponentHasNotPlayed, errors.Cause(err))
	_, err = env.cancel(p1, h, "n1", rty.MoveRock)
	assert.Equal(t, rty.ErrOpponentAlreadyPlayed, errors.Cause(err))

	_, err = env.rps(p2, "Reveal", reveal, coins(1))
	assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err))
	_, err = env.rps(p1, "Reveal", reveal, nil)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))
	_, err = env.rps(p2, "Reveal", &rty.RPSReveal{Commitment: h, Nonce: []byte("s2"), Move: rty.MovePaper}, nil)
	assert.Equal(t, rty.ErrRevealMismatch, errors.Cause(err))

	res, err = env.rps(p2, "Reveal", reveal, nil)
	require.Nil(t, err)
	revealed := decodeLog(t, res, rty.TyLogRPSReveal).(*rty.ReceiptRPSReveal)
	assert.Equal(t, rty.MoveScissors, revealed.Move)
	assert.Equal(t, rty.GameStatusPlayed, env.game(rty.RPSX, h).Status)
	_, err = env.rps(p2, "Reveal", reveal, nil)
	assert.Equal(t, rty.ErrMoveAlreadyRevealed, errors.Cause(err))

	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	require.Nil(t, err)
	env.requireCoins(10, env.escrow(rty.RPSX, p1).GetBalance())
	game := env.game(rty.RPSX, h)
	assert.Equal(t, rty.ResultCreatorWin, game.Result)
	assert.Equal(t, p1, game.Winner)
}

func TestRPSRevealCleartext(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)
	_, err = env.rps(p2, "Reveal", &rty.RPSReveal{Commitment: h, Nonce: []byte("s2"), Move: rty.MovePaper}, nil)
	assert.Equal(t, rty.ErrMoveAlreadyRevealed, errors.Cause(err))
}

// 对手提交了 commitment 但是没有揭晓，超时后创建者得到全部下注
func TestRPSCommittedNeverRevealed(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	h2 := commit(t, p2, "s2", rty.MovePaper)
	_, err = env.play(rty.RPSX, p2, h, rty.Committed(h2), 5)
	require.Nil(t, err)

	env.clock.Add(10 * time.Minute)
	_, err = env.rps(p2, "Reveal", &rty.RPSReveal{Commitment: h, Nonce: []byte("s2"), Move: rty.MovePaper}, nil)
	assert.Equal(t, rty.ErrDeadlineExpired, errors.Cause(err))
	_, err = env.penalize(p2, h)
	assert.Equal(t, rty.ErrUnauthorized, errors.Cause(err))
	res, err := env.penalize(p1, h)
	require.Nil(t, err)
	assert.Equal(t, p1, decodeLog(t, res, rty.TyLogRPSPenalize).(*rty.ReceiptRPSPenalize).Beneficiary)
	env.requireCoins(10, env.escrow(rty.RPSX, p1).GetBalance())
	env.requireCoins(0, env.escrow(rty.RPSX, p2).GetFrozen())
	assert.Equal(t, rty.ResultCreatorWin, env.game(rty.RPSX, h).Result)
}

func TestRPSNonPayable(t *testing.T) {
	env := newTestEnv(t)
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	for _, c := range []struct {
		action  string
		payload interface{}
	}{
		{"Resolve", &rty.RPSResolve{Commitment: h, Nonce: []byte("n1"), Move: rty.MoveRock}},
		{"Cancel", &rty.RPSCancel{Commitment: h, Nonce: []byte("n1"), Move: rty.MoveRock}},
		{"Penalize", &rty.RPSPenalize{Commitment: h}},
		{"Withdraw", &rty.RPSWithdraw{}},
	} {
		_, err = env.rps(p1, c.action, c.payload, coins(1))
		assert.Equal(t, rty.ErrValueMismatch, errors.Cause(err), c.action)
	}
}

func TestRPSWithdrawPayoutFail(t *testing.T) {
	fail := account.PayoutFunc(func(coins *account.DB, execaddr, to common.Address, amount *uint256.Int) (*types.Receipt, error) {
		return nil, errors.New("receiver rejected")
	})
	env := newTestEnv(t, executor.WithPayout(fail))
	h := commit(t, p1, "n1", rty.MoveRock)
	_, err := env.create(rty.RPSX, p1, p2, h, 5)
	require.Nil(t, err)
	_, err = env.play(rty.RPSX, p2, h, rty.Cleartext(rty.MovePaper), 5)
	require.Nil(t, err)
	_, err = env.resolve(p1, h, "n1", rty.MoveRock)
	require.Nil(t, err)

	height := env.exec.Height()
	_, err = env.withdraw(p2)
	assert.Equal(t, rty.ErrTransferFailed, errors.Cause(err))
	// 余额恢复，交易没有执行
	env.requireCoins(10, env.escrow(rty.RPSX, p2).GetBalance())
	env.requireCoins(95, env.exec.GetAccount(p2).GetBalance())
	assert.Equal(t, height, env.exec.Height())
}

// 随机操作序列下资金守恒
func TestRPSConservation(t *testing.T) {
	env := newTestEnv(t)
	players := []common.Address{p1, p2, p3}
	execAddr := account.ExecAddress(rty.RPSX)
	total := func() *uint256.Int {
		sum := new(uint256.Int)
		for _, addr := range append(players, superAddr, execAddr) {
			sum.Add(sum, env.exec.GetAccount(addr).GetBalance())
		}
		return sum
	}
	initial := total()
	env.requireCoins(400, initial)

	type secret struct {
		h       common.Hash
		creator common.Address
		nonce   string
		move    rty.Move
	}
	var games []secret
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		from := players[rnd.Intn(len(players))]
		move := rty.Move(rnd.Intn(3) + 1)
		switch rnd.Intn(7) {
		case 0:
			opponent := players[rnd.Intn(len(players))]
			nonce := fmt.Sprintf("nonce-%d", i)
			h := commit(t, from, nonce, move)
			if _, err := env.create(rty.RPSX, from, opponent, h, uint64(rnd.Intn(3)+1)); err == nil {
				games = append(games, secret{h: h, creator: from, nonce: nonce, move: move})
			}
		case 1:
			if len(games) > 0 {
				g := env.game(rty.RPSX, games[rnd.Intn(len(games))].h)
				env.play(rty.RPSX, from, g.Commitment, rty.Cleartext(move), g.GetBet().Uint64()/types.Coin.Uint64())
			}
		case 2:
			if len(games) > 0 {
				g := games[rnd.Intn(len(games))]
				env.resolve(g.creator, g.h, g.nonce, g.move)
			}
		case 3:
			if len(games) > 0 {
				g := games[rnd.Intn(len(games))]
				env.cancel(g.creator, g.h, g.nonce, g.move)
			}
		case 4:
			if len(games) > 0 {
				env.penalize(from, games[rnd.Intn(len(games))].h)
			}
		case 5:
			env.withdraw(from)
		default:
			env.clock.Add(time.Duration(rnd.Intn(400)) * time.Second)
		}

		require.Equal(t, initial.Dec(), total().Dec(), "step %d", i)
		escrowed := new(uint256.Int)
		for _, addr := range players {
			acc := env.escrow(rty.RPSX, addr)
			escrowed.Add(escrowed, acc.GetBalance())
			escrowed.Add(escrowed, acc.GetFrozen())
		}
		require.Equal(t, env.exec.GetAccount(execAddr).GetBalance().Dec(), escrowed.Dec(), "step %d", i)
	}
}
