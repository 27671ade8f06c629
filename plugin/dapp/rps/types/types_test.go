// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a1ce0")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func TestComputeCommitment(t *testing.T) {
	h, err := ComputeCommitment(alice, []byte("nonce"), MoveRock)
	require.Nil(t, err)
	data := append(append(alice.Bytes(), []byte("nonce")...), 1)
	assert.Equal(t, common.BytesToHash(crypto.Keccak256(data)), h)

	h2, err := ComputeCommitment(alice, []byte("nonce"), MoveRock)
	require.Nil(t, err)
	assert.Equal(t, h, h2)

	for _, other := range []struct {
		addr  common.Address
		nonce string
		move  Move
	}{
		{bob, "nonce", MoveRock},
		{alice, "nonce2", MoveRock},
		{alice, "nonce", MovePaper},
	} {
		h3, err := ComputeCommitment(other.addr, []byte(other.nonce), other.move)
		require.Nil(t, err)
		assert.NotEqual(t, h, h3)
	}

	_, err = ComputeCommitment(common.Address{}, []byte("nonce"), MoveRock)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	_, err = ComputeCommitment(alice, nil, MoveRock)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	_, err = ComputeCommitment(alice, []byte("nonce"), MoveNone)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	_, err = ComputeCommitment(alice, []byte("nonce"), Move(4))
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestJudge(t *testing.T) {
	cases := []struct {
		creator, opponent Move
		result            uint32
	}{
		{MoveRock, MoveRock, ResultTie},
		{MoveRock, MovePaper, ResultOpponentWin},
		{MoveRock, MoveScissors, ResultCreatorWin},
		{MovePaper, MoveRock, ResultCreatorWin},
		{MovePaper, MovePaper, ResultTie},
		{MovePaper, MoveScissors, ResultOpponentWin},
		{MoveScissors, MoveRock, ResultOpponentWin},
		{MoveScissors, MovePaper, ResultCreatorWin},
		{MoveScissors, MoveScissors, ResultTie},
	}
	for _, c := range cases {
		assert.Equal(t, c.result, Judge(c.creator, c.opponent), "%s vs %s", c.creator, c.opponent)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" Rock ")
	require.Nil(t, err)
	assert.Equal(t, MoveRock, m)
	m, err = ParseMove("3")
	require.Nil(t, err)
	assert.Equal(t, MoveScissors, m)
	_, err = ParseMove("lizard")
	assert.Equal(t, ErrInvalidMove, errors.Cause(err))

	assert.False(t, MoveNone.Valid())
	assert.True(t, MovePaper.Valid())
	assert.False(t, Move(4).Valid())
	assert.Equal(t, "paper", MovePaper.String())
	assert.Equal(t, "move(9)", Move(9).String())
}

func TestGameRecord(t *testing.T) {
	var g GameRecord
	assert.True(t, g.GetBet().IsZero())
	assert.False(t, g.HasPlayed())
	assert.False(t, g.MoveKnown())

	g.Submission = Committed(common.HexToHash("0x01"))
	assert.True(t, g.HasPlayed())
	assert.False(t, g.MoveKnown())

	g.OpponentMove = MovePaper
	assert.True(t, g.MoveKnown())

	g2 := GameRecord{Submission: Cleartext(MoveRock), OpponentMove: MoveRock}
	assert.True(t, g2.HasPlayed())
	assert.True(t, g2.MoveKnown())
}

func TestCheckTerms(t *testing.T) {
	cfg := types.InitCfgString(types.DefaultCfgString)
	bet := uint256.NewInt(1e8)
	assert.Nil(t, CheckTerms(cfg, alice, bob, 300, bet))

	err := CheckTerms(cfg, alice, bob, 299, bet)
	assert.Equal(t, ErrDeadlineTooShort, errors.Cause(err))
	// 时长优先
	err = CheckTerms(cfg, alice, alice, 10, nil)
	assert.Equal(t, ErrDeadlineTooShort, errors.Cause(err))

	bad := []error{
		CheckTerms(cfg, alice, bob, MaxDuration+1, bet),
		CheckTerms(cfg, common.Address{}, bob, 300, bet),
		CheckTerms(cfg, alice, common.Address{}, 300, bet),
		CheckTerms(cfg, alice, alice, 300, bet),
		CheckTerms(cfg, alice, bob, 300, nil),
		CheckTerms(cfg, alice, bob, 300, new(uint256.Int)),
	}
	for i, err := range bad {
		assert.Equal(t, ErrInvalidArgument, errors.Cause(err), "case %d", i)
	}
}

func TestMaxBet(t *testing.T) {
	cfg := types.InitCfgString(`
[exec]
minDuration=60
[exec.sub.rps]
maxBet="1.5"
`)
	assert.Equal(t, uint64(60), MinDuration(cfg))
	maxBet, err := LoadConfig(cfg).GetMaxBet()
	require.Nil(t, err)
	assert.Equal(t, uint256.NewInt(15e7), maxBet)

	assert.Nil(t, CheckTerms(cfg, alice, bob, 60, uint256.NewInt(15e7)))
	err = CheckTerms(cfg, alice, bob, 60, uint256.NewInt(15e7+1))
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	// 默认配置不限制
	maxBet, err = LoadConfig(types.InitCfgString(types.DefaultCfgString)).GetMaxBet()
	require.Nil(t, err)
	assert.Nil(t, maxBet)
	assert.Equal(t, uint64(types.DefaultMinDuration), MinDuration(nil))
}

func TestCreatePayload(t *testing.T) {
	payload, err := NewType().CreatePayload("Resolve", &RPSResolve{Commitment: common.HexToHash("0x02"), Nonce: []byte("n"), Move: MovePaper})
	require.Nil(t, err)
	tx := types.NewTransaction(RPSX, payload, alice, nil)
	name, v, err := NewType().DecodePayloadValue(tx)
	require.Nil(t, err)
	assert.Equal(t, "Resolve", name)
	assert.Equal(t, MovePaper, v.Interface().(*RPSResolve).Move)
	assert.Equal(t, "resolve", NewType().ActionName(tx))

	_, err = NewType().CreatePayload("Swap", &RPSResolve{})
	assert.NotNil(t, err)
}
