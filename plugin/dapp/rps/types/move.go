// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Move 出招，MoveNone 表示还没有出招
type Move uint8

// 出招
const (
	MoveNone Move = iota
	MoveRock
	MovePaper
	MoveScissors
)

var moveNames = []string{"none", "rock", "paper", "scissors"}

// Valid 是否为合法的出招
func (m Move) Valid() bool {
	return m >= MoveRock && m <= MoveScissors
}

func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("move(%d)", uint8(m))
}

// ParseMove 支持名称或者数字
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moveNames {
		if s == name || s == fmt.Sprint(i) {
			return Move(i), nil
		}
	}
	return MoveNone, errors.Wrapf(ErrInvalidMove, "%q", s)
}

// beats[m] 是 m 可以赢的出招
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MoveScissors: MovePaper,
	MovePaper:    MoveRock,
}

// Judge 比较创建者和对手的出招
func Judge(creator, opponent Move) uint32 {
	switch {
	case creator == opponent:
		return ResultTie
	case beats[creator] == opponent:
		return ResultCreatorWin
	default:
		return ResultOpponentWin
	}
}

// ComputeCommitment keccak256(addr ‖ nonce ‖ move)
func ComputeCommitment(addr common.Address, nonce []byte, move Move) (common.Hash, error) {
	if addr == (common.Address{}) {
		return common.Hash{}, errors.Wrap(ErrInvalidArgument, "zero address")
	}
	if len(nonce) == 0 {
		return common.Hash{}, errors.Wrap(ErrInvalidArgument, "empty nonce")
	}
	if !move.Valid() {
		return common.Hash{}, errors.Wrapf(ErrInvalidArgument, "move %s", move)
	}
	return crypto.Keccak256Hash(addr.Bytes(), nonce, []byte{byte(move)}), nil
}
