// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// action 类型
const (
	RPSActionCreate = uint32(iota + 1)
	RPSActionPlay
	RPSActionReveal
	RPSActionResolve
	RPSActionCancel
	RPSActionPenalize
	RPSActionWithdraw
)

// log 类型
const (
	TyLogRPSCreate   = uint32(701)
	TyLogRPSMove     = uint32(702)
	TyLogRPSReveal   = uint32(703)
	TyLogRPSResolve  = uint32(704)
	TyLogRPSCancel   = uint32(705)
	TyLogRPSPenalize = uint32(706)
	TyLogRPSWithdraw = uint32(707)
	// 状态变化，用于更新本地索引
	TyLogRPSIndex = uint32(708)
)

// game 的状态变化：
// Created -> Played -> Resolved / Penalized
// Created -> Cancelled
// Created -> Penalized 不存在，没有出招的一方不能被罚
const (
	GameStatusCreated   = uint32(1)
	GameStatusPlayed    = uint32(2)
	GameStatusResolved  = uint32(3)
	GameStatusCancelled = uint32(4)
	GameStatusPenalized = uint32(5)
)

// 游戏结果
const (
	ResultNone        = uint32(0)
	ResultCreatorWin  = uint32(1)
	ResultOpponentWin = uint32(2)
	ResultTie         = uint32(3)
)

// 对手出招方式
const (
	SubmissionNone      = uint8(0)
	SubmissionCleartext = uint8(1)
	SubmissionCommitted = uint8(2)
)

// 查询接口
const (
	FuncNameGetGame             = "GetGame"
	FuncNameGetGameByCommitment = "GetGameByCommitment"
	FuncNameListGames           = "ListGames"
	FuncNameCountGames          = "CountGames"
	FuncNameGetEscrow           = "GetEscrow"
	FuncNameComputeCommitment   = "ComputeCommitment"
)

// 列表查询
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)
