// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrInvalidArgument 参数错误
	ErrInvalidArgument = errors.New("ErrInvalidArgument")
	// ErrDeadlineTooShort 游戏持续时间小于最小值
	ErrDeadlineTooShort = errors.New("ErrDeadlineTooShort")
	// ErrValueMismatch 转入金额与下注不一致
	ErrValueMismatch = errors.New("ErrValueMismatch")
	// ErrCommitmentCollision commitment 已经被使用
	ErrCommitmentCollision = errors.New("ErrCommitmentCollision")
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = errors.New("ErrGameNotFound")
	// ErrDeadlineExpired 已经超过截止时间
	ErrDeadlineExpired = errors.New("ErrDeadlineExpired")
	// ErrDeadlineNotReached 还没有到截止时间
	ErrDeadlineNotReached = errors.New("ErrDeadlineNotReached")
	// ErrUnauthorized 调用者没有权限
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrAlreadyPlayed 对手已经出招
	ErrAlreadyPlayed = errors.New("ErrAlreadyPlayed")
	// ErrInvalidMove 非法的出招
	ErrInvalidMove = errors.New("ErrInvalidMove")
	// ErrOpponentHasNotPlayed 对手还没有出招
	ErrOpponentHasNotPlayed = errors.New("ErrOpponentHasNotPlayed")
	// ErrOpponentAlreadyPlayed 对手已经出招，不能取消
	ErrOpponentAlreadyPlayed = errors.New("ErrOpponentAlreadyPlayed")
	// ErrRevealMismatch 揭晓的 nonce 和 move 与 commitment 不符
	ErrRevealMismatch = errors.New("ErrRevealMismatch")
	// ErrAlreadyResolved 游戏已经结束
	ErrAlreadyResolved = errors.New("ErrAlreadyResolved")
	// ErrNothingToWithdraw 没有可以提取的余额
	ErrNothingToWithdraw = errors.New("ErrNothingToWithdraw")
	// ErrTransferFailed 提现转账失败
	ErrTransferFailed = errors.New("ErrTransferFailed")
	// ErrMoveAlreadyRevealed 明文出招或者已经揭晓
	ErrMoveAlreadyRevealed = errors.New("ErrMoveAlreadyRevealed")
)
