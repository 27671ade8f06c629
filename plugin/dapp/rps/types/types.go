// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 石头剪刀布游戏的结构体、常量以及错误定义
package types

import (
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// RPSX 执行器名称
	RPSX = "rps"
)

// MoveSubmission 对手的出招，明文或者 commitment
type MoveSubmission struct {
	Kind uint8
	Move Move
	Hash common.Hash
}

// Cleartext 明文出招
func Cleartext(m Move) MoveSubmission {
	return MoveSubmission{Kind: SubmissionCleartext, Move: m}
}

// Committed 只提交 commitment，之后需要 reveal
func Committed(h common.Hash) MoveSubmission {
	return MoveSubmission{Kind: SubmissionCommitted, Hash: h}
}

// GameRecord 一局游戏，按 SessionID 保存
type GameRecord struct {
	SessionID    uint64
	Commitment   common.Hash
	Creator      common.Address
	Opponent     common.Address
	Bet          *uint256.Int
	Deadline     uint64
	CreateTime   uint64
	Submission   MoveSubmission
	OpponentMove Move
	CreatorMove  Move
	Resolved     bool
	Status       uint32
	Result       uint32
	// 结束时获得全部下注的一方，平局以及取消时为空
	Winner       common.Address
	CloseTime    uint64
	Index        uint64
	PrevIndex    uint64
	CreateTxHash []byte
	PlayTxHash   []byte
	RevealTxHash []byte
	CloseTxHash  []byte
}

// GetBet never returns nil
func (g *GameRecord) GetBet() *uint256.Int {
	if g == nil || g.Bet == nil {
		return new(uint256.Int)
	}
	return g.Bet
}

// HasPlayed 对手是否已经提交了出招（明文或者 commitment）
func (g *GameRecord) HasPlayed() bool {
	return g.Submission.Kind != SubmissionNone
}

// MoveKnown 对手的出招是否已经公开
func (g *GameRecord) MoveKnown() bool {
	return g.OpponentMove != MoveNone
}

// RPSCreate 创建游戏，tx.Value 必须等于 Bet
type RPSCreate struct {
	Commitment common.Hash
	Opponent   common.Address
	Duration   uint64
	Bet        *uint256.Int
}

// RPSPlay 对手出招，tx.Value 必须等于游戏的 Bet
type RPSPlay struct {
	Commitment common.Hash
	Submission MoveSubmission
}

// RPSReveal 对手揭晓 commitment 方式提交的出招
type RPSReveal struct {
	Commitment common.Hash
	Nonce      []byte
	Move       Move
}

// RPSResolve 创建者揭晓并结算
type RPSResolve struct {
	Commitment common.Hash
	Nonce      []byte
	Move       Move
}

// RPSCancel 对手出招之前创建者取消
type RPSCancel struct {
	Commitment common.Hash
	Nonce      []byte
	Move       Move
}

// RPSPenalize 超时之后惩罚拖延的一方
type RPSPenalize struct {
	Commitment common.Hash
}

// RPSWithdraw 提取托管余额
type RPSWithdraw struct{}

// ReceiptRPSCreate 创建日志
type ReceiptRPSCreate struct {
	Commitment common.Hash
	SessionID  uint64
	Creator    common.Address
	Opponent   common.Address
	Bet        *uint256.Int
	Deadline   uint64
}

// ReceiptRPSMove 出招日志，commitment 方式出招时 Move 为 none
type ReceiptRPSMove struct {
	Commitment common.Hash
	SessionID  uint64
	Player     common.Address
	Move       Move
	Hash       common.Hash
}

// ReceiptRPSReveal 揭晓日志
type ReceiptRPSReveal struct {
	Commitment common.Hash
	SessionID  uint64
	Player     common.Address
	Move       Move
}

// ReceiptRPSResolve 结算日志，平局时 First 为创建者，Second 为对手
type ReceiptRPSResolve struct {
	Commitment common.Hash
	SessionID  uint64
	First      common.Address
	Second     common.Address
	Tie        bool
}

// ReceiptRPSCancel 取消日志
type ReceiptRPSCancel struct {
	Commitment common.Hash
	SessionID  uint64
	Creator    common.Address
}

// ReceiptRPSPenalize 惩罚日志
type ReceiptRPSPenalize struct {
	Commitment  common.Hash
	SessionID   uint64
	Beneficiary common.Address
}

// ReceiptRPSWithdraw 提现日志
type ReceiptRPSWithdraw struct {
	Addr   common.Address
	Amount *uint256.Int
}

// ReceiptRPSIndex 状态变化，本地索引据此更新
type ReceiptRPSIndex struct {
	SessionID  uint64
	Status     uint32
	PrevStatus uint32
	Creator    common.Address
	Opponent   common.Address
	Index      uint64
	PrevIndex  uint64
}

// ReqGame 按 session id 查询
type ReqGame struct {
	SessionID uint64
}

// ReqGameByCommitment 按 commitment 查询
type ReqGameByCommitment struct {
	Commitment common.Hash
}

// ReqListGames 分页查询，Addr 为空时按状态查询, Index 为上一页最后一条的 Index
type ReqListGames struct {
	Status    uint32
	Addr      common.Address
	Index     uint64
	Count     uint32
	Direction uint32
}

// ReplyGameList 游戏列表
type ReplyGameList struct {
	Games []*GameRecord
}

// ReqCountGames 按状态（以及地址）统计
type ReqCountGames struct {
	Status uint32
	Addr   common.Address
}

// ReplyCount 数量
type ReplyCount struct {
	Count uint64
}

// ReqEscrow 查询托管余额
type ReqEscrow struct {
	Addr common.Address
}

// ReqComputeCommitment 计算 commitment
type ReqComputeCommitment struct {
	Addr  common.Address
	Nonce []byte
	Move  Move
}

// ReplyCommitment commitment
type ReplyCommitment struct {
	Commitment common.Hash
}

// Config [exec.sub.rps] 配置
type Config struct {
	// 单局最大下注（coin），0 表示不限制
	MaxBet string `json:"maxBet"`
}

// RPSType 执行器类型
type RPSType struct {
	*types.ExecTypeBase
}

var rpsType = &RPSType{
	ExecTypeBase: types.NewExecTypeBase(RPSX, []*types.ActionInfo{
		{Name: "Create", Ty: RPSActionCreate, Value: &RPSCreate{}},
		{Name: "Play", Ty: RPSActionPlay, Value: &RPSPlay{}},
		{Name: "Reveal", Ty: RPSActionReveal, Value: &RPSReveal{}},
		{Name: "Resolve", Ty: RPSActionResolve, Value: &RPSResolve{}},
		{Name: "Cancel", Ty: RPSActionCancel, Value: &RPSCancel{}},
		{Name: "Penalize", Ty: RPSActionPenalize, Value: &RPSPenalize{}},
		{Name: "Withdraw", Ty: RPSActionWithdraw, Value: &RPSWithdraw{}},
	}),
}

func init() {
	types.RegisterLog(TyLogRPSCreate, "LogRPSCreate", &ReceiptRPSCreate{})
	types.RegisterLog(TyLogRPSMove, "LogRPSMove", &ReceiptRPSMove{})
	types.RegisterLog(TyLogRPSReveal, "LogRPSReveal", &ReceiptRPSReveal{})
	types.RegisterLog(TyLogRPSResolve, "LogRPSResolve", &ReceiptRPSResolve{})
	types.RegisterLog(TyLogRPSCancel, "LogRPSCancel", &ReceiptRPSCancel{})
	types.RegisterLog(TyLogRPSPenalize, "LogRPSPenalize", &ReceiptRPSPenalize{})
	types.RegisterLog(TyLogRPSWithdraw, "LogRPSWithdraw", &ReceiptRPSWithdraw{})
	types.RegisterLog(TyLogRPSIndex, "LogRPSIndex", &ReceiptRPSIndex{})
}

// NewType rps 执行器类型
func NewType() *RPSType {
	return rpsType
}
