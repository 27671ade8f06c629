// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor rps
import (
	"fmt"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	rgexec "github.com/33cn/rps/plugin/dapp/registry/executor"
	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	mty "github.com/33cn/rps/system/dapp/manage/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

/*
  一局游戏按 SessionID 保存，commitment 只作为校验字段以及唯一索引:
    mavl-<execer>-game-<%018d SessionID>  游戏记录
    mavl-<execer>-commit-<commitment>    commitment 到 SessionID，永远不会删除，所以 commitment 不能重复使用
    mavl-<execer>-session                已经分配的最大 SessionID

  资金托管在 coins 的执行器账户中 (mavl-coins-exec-<execaddr>:<addr>):
    下注时 coins 转入执行器并冻结，Frozen 为未结束游戏中的下注
    结束时解冻或者转移冻结资金，Balance 为可以提取的余额
    提取时先扣除 Balance 再从执行器地址转出
*/

func calcGameKey(execer string, id uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-game-%018d", execer, id))
}

func calcCommitKey(execer string, commitment common.Hash) []byte {
	return []byte("mavl-" + execer + "-commit-" + commitment.Hex())
}

func calcSessionKey(execer string) []byte {
	return []byte("mavl-" + execer + "-session")
}

// Action 一笔 rps 交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     common.Address
	value        *uint256.Int
	blocktime    int64
	height       int64
	execaddr     common.Address
	curname      string
	cfg          *types.Config
	payout       account.Payout
	guard        *mty.Guard
}

// NewAction new
func NewAction(r *RPS, tx *types.Transaction, index int) *Action {
	var cfg *types.Config
	var payout account.Payout = account.CoinsPayout{}
	if api := r.GetAPI(); api != nil {
		cfg = api.GetConfig()
		if p := api.GetPayout(); p != nil {
			payout = p
		}
	}
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		value:        tx.GetValue(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     r.GetExecAddress(),
		curname:      r.GetCurrentExecName(),
		cfg:          cfg,
		payout:       payout,
		guard:        mty.NewGuard(r.GetStateDB()),
	}
}

// 暂停 rps 时所有实例都暂停
func (action *Action) checkNotPaused() error {
	if err := action.guard.CheckNotPaused(action.curname); err != nil {
		return err
	}
	if action.curname != driverName {
		return action.guard.CheckNotPaused(driverName)
	}
	return nil
}

func (action *Action) checkNoValue() error {
	if !action.value.IsZero() {
		return errors.Wrapf(rty.ErrValueMismatch, "value %s sent to non-payable action", action.value.Dec())
	}
	return nil
}

func (action *Action) checkReveal(expect common.Hash, nonce []byte, move rty.Move) error {
	h, err := rty.ComputeCommitment(action.fromaddr, nonce, move)
	if err != nil {
		return errors.Wrap(rty.ErrRevealMismatch, err.Error())
	}
	if h != expect {
		return errors.Wrapf(rty.ErrRevealMismatch, "%s != %s", h.Hex(), expect.Hex())
	}
	return nil
}

func (action *Action) expired(game *rty.GameRecord) bool {
	return action.blocktime >= int64(game.Deadline)
}

func (action *Action) getIndex() uint64 {
	return uint64(action.height)
}

func (action *Action) readGameByCommitment(commitment common.Hash) (*rty.GameRecord, error) {
	return readGameByCommitment(action.db, action.curname, commitment)
}

func (action *Action) saveGame(game *rty.GameRecord) ([]*types.KeyValue, error) {
	key := calcGameKey(action.curname, game.SessionID)
	value := types.Encode(game)
	if err := action.db.Set(key, value); err != nil {
		return nil, err
	}
	return []*types.KeyValue{{Key: key, Value: value}}, nil
}

func (action *Action) nextSessionID() (uint64, *types.KeyValue, error) {
	var last uint64
	key := calcSessionKey(action.curname)
	value, err := action.db.Get(key)
	if err == nil {
		if err := types.Decode(value, &last); err != nil {
			return 0, nil, err
		}
	} else if errors.Cause(err) != types.ErrNotFound {
		return 0, nil, err
	}
	last++
	value = types.Encode(last)
	if err := action.db.Set(key, value); err != nil {
		return 0, nil, err
	}
	return last, &types.KeyValue{Key: key, Value: value}, nil
}

func (action *Action) getIndexLog(game *rty.GameRecord, prevStatus uint32) *types.ReceiptLog {
	r := &rty.ReceiptRPSIndex{
		SessionID:  game.SessionID,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Creator:    game.Creator,
		Opponent:   game.Opponent,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
	}
	return &types.ReceiptLog{Ty: rty.TyLogRPSIndex, Log: types.Encode(r)}
}

// 状态变化：保存游戏，生成索引日志
func (action *Action) changeStatus(game *rty.GameRecord, status uint32) ([]*types.KeyValue, *types.ReceiptLog, error) {
	prevStatus := game.Status
	game.Status = status
	game.PrevIndex = game.Index
	game.Index = action.getIndex()
	kv, err := action.saveGame(game)
	if err != nil {
		return nil, nil, err
	}
	return kv, action.getIndexLog(game, prevStatus), nil
}

// 下注：coins 转入执行器并冻结
func (action *Action) lockStake(amount *uint256.Int) (*types.Receipt, error) {
	receipt, err := action.coinsAccount.TransferToExec(action.fromaddr, action.execaddr, amount)
	if err != nil {
		glog.Error("lockStake.TransferToExec", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", amount, "err", err)
		return nil, err
	}
	receipt2, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, amount)
	if err != nil {
		glog.Error("lockStake.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", amount, "err", err)
		return nil, err
	}
	return mergeReceipt(receipt, receipt2), nil
}

// winner 拿回自己的下注，并得到 loser 的下注
func (action *Action) payWinner(winner, loser common.Address, bet *uint256.Int) (*types.Receipt, error) {
	receipt, err := action.coinsAccount.ExecActive(winner, action.execaddr, bet)
	if err != nil {
		glog.Error("payWinner.ExecActive", "addr", winner, "execaddr", action.execaddr, "amount", bet, "err", err)
		return nil, err
	}
	receipt2, err := action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, bet)
	if err != nil {
		glog.Error("payWinner.ExecTransferFrozen", "from", loser, "to", winner, "execaddr", action.execaddr, "amount", bet, "err", err)
		return nil, err
	}
	return mergeReceipt(receipt, receipt2), nil
}

// 平局各自解冻自己的下注
func (action *Action) refund(addrs []common.Address, bet *uint256.Int) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, addr := range addrs {
		r, err := action.coinsAccount.ExecActive(addr, action.execaddr, bet)
		if err != nil {
			glog.Error("refund.ExecActive", "addr", addr, "execaddr", action.execaddr, "amount", bet, "err", err)
			return nil, err
		}
		receipt = mergeReceipt(receipt, r)
	}
	return receipt, nil
}

func (action *Action) checkInstanceTerms(create *rty.RPSCreate) error {
	name := instanceName(action.curname)
	if name == "" {
		return nil
	}
	inst, err := rgexec.Lookup(action.db, name)
	if err != nil {
		return err
	}
	if inst.Creator != action.fromaddr || inst.Opponent != create.Opponent ||
		inst.Duration != create.Duration || !inst.GetBet().Eq(create.Bet) {
		return errors.Wrapf(rty.ErrInvalidArgument, "game does not match the terms of %s", action.curname)
	}
	return nil
}

// RPSCreate 创建游戏，锁定下注
func (action *Action) RPSCreate(create *rty.RPSCreate) (*types.Receipt, error) {
	if err := action.checkNotPaused(); err != nil {
		return nil, err
	}
	err := rty.CheckTerms(action.cfg, action.fromaddr, create.Opponent, create.Duration, create.Bet)
	if err != nil {
		glog.Error("RPSCreate", "addr", action.fromaddr, "execer", action.curname, "err", err)
		return nil, err
	}
	if create.Commitment == (common.Hash{}) {
		return nil, errors.Wrap(rty.ErrInvalidArgument, "zero commitment")
	}
	if err := action.checkInstanceTerms(create); err != nil {
		glog.Error("RPSCreate", "addr", action.fromaddr, "execer", action.curname, "err", err)
		return nil, err
	}
	if !action.value.Eq(create.Bet) {
		glog.Error("RPSCreate", "addr", action.fromaddr, "value", action.value, "bet", create.Bet, "err", rty.ErrValueMismatch)
		return nil, rty.ErrValueMismatch
	}
	commitKey := calcCommitKey(action.curname, create.Commitment)
	_, err = action.db.Get(commitKey)
	if err == nil {
		glog.Error("RPSCreate", "addr", action.fromaddr, "commitment", create.Commitment, "err", rty.ErrCommitmentCollision)
		return nil, rty.ErrCommitmentCollision
	}
	if errors.Cause(err) != types.ErrNotFound {
		return nil, err
	}

	receipt, err := action.lockStake(create.Bet)
	if err != nil {
		return nil, err
	}
	id, sessionKV, err := action.nextSessionID()
	if err != nil {
		return nil, err
	}
	game := &rty.GameRecord{
		SessionID:    id,
		Commitment:   create.Commitment,
		Creator:      action.fromaddr,
		Opponent:     create.Opponent,
		Bet:          create.Bet,
		Deadline:     uint64(action.blocktime) + create.Duration,
		CreateTime:   uint64(action.blocktime),
		CreateTxHash: action.txhash,
	}
	kv, indexLog, err := action.changeStatus(game, rty.GameStatusCreated)
	if err != nil {
		return nil, err
	}
	commitValue := types.Encode(id)
	if err := action.db.Set(commitKey, commitValue); err != nil {
		return nil, err
	}
	kv = append(kv, sessionKV, &types.KeyValue{Key: commitKey, Value: commitValue})

	createLog := &types.ReceiptLog{Ty: rty.TyLogRPSCreate, Log: types.Encode(&rty.ReceiptRPSCreate{
		Commitment: game.Commitment,
		SessionID:  game.SessionID,
		Creator:    game.Creator,
		Opponent:   game.Opponent,
		Bet:        game.Bet,
		Deadline:   game.Deadline,
	})}
	glog.Info("RPSCreate", "execer", action.curname, "session", id, "creator", game.Creator, "opponent", game.Opponent, "deadline", game.Deadline)
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{createLog, indexLog}}), nil
}

// RPSPlay 对手出招并下注
func (action *Action) RPSPlay(play *rty.RPSPlay) (*types.Receipt, error) {
	if err := action.checkNotPaused(); err != nil {
		return nil, err
	}
	game, err := action.readGameByCommitment(play.Commitment)
	if err != nil {
		glog.Error("RPSPlay", "addr", action.fromaddr, "commitment", play.Commitment, "err", err)
		return nil, err
	}
	if game.Resolved {
		return nil, rty.ErrAlreadyResolved
	}
	if action.expired(game) {
		glog.Error("RPSPlay", "session", game.SessionID, "deadline", game.Deadline, "now", action.blocktime, "err", rty.ErrDeadlineExpired)
		return nil, rty.ErrDeadlineExpired
	}
	if action.fromaddr != game.Opponent {
		glog.Error("RPSPlay", "session", game.SessionID, "addr", action.fromaddr, "opponent", game.Opponent, "err", rty.ErrUnauthorized)
		return nil, rty.ErrUnauthorized
	}
	if game.HasPlayed() {
		return nil, rty.ErrAlreadyPlayed
	}
	sub := play.Submission
	switch sub.Kind {
	case rty.SubmissionCleartext:
		if !sub.Move.Valid() {
			return nil, errors.Wrapf(rty.ErrInvalidMove, "move %s", sub.Move)
		}
		sub = rty.Cleartext(sub.Move)
	case rty.SubmissionCommitted:
		if sub.Hash == (common.Hash{}) {
			return nil, errors.Wrap(rty.ErrInvalidMove, "zero hash")
		}
		sub = rty.Committed(sub.Hash)
	default:
		return nil, errors.Wrapf(rty.ErrInvalidMove, "submission kind %d", sub.Kind)
	}
	if !action.value.Eq(game.GetBet()) {
		glog.Error("RPSPlay", "addr", action.fromaddr, "value", action.value, "bet", game.GetBet(), "err", rty.ErrValueMismatch)
		return nil, rty.ErrValueMismatch
	}

	receipt, err := action.lockStake(game.GetBet())
	if err != nil {
		return nil, err
	}
	game.Submission = sub
	game.OpponentMove = sub.Move
	game.PlayTxHash = action.txhash
	kv, indexLog, err := action.changeStatus(game, rty.GameStatusPlayed)
	if err != nil {
		return nil, err
	}
	moveLog := &types.ReceiptLog{Ty: rty.TyLogRPSMove, Log: types.Encode(&rty.ReceiptRPSMove{
		Commitment: game.Commitment,
		SessionID:  game.SessionID,
		Player:     action.fromaddr,
		Move:       sub.Move,
		Hash:       sub.Hash,
	})}
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{moveLog, indexLog}}), nil
}

// RPSReveal 对手揭晓 commitment 方式提交的出招
func (action *Action) RPSReveal(reveal *rty.RPSReveal) (*types.Receipt, error) {
	if err := action.checkNoValue(); err != nil {
		return nil, err
	}
	if err := action.checkNotPaused(); err != nil {
		return nil, err
	}
	game, err := action.readGameByCommitment(reveal.Commitment)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, rty.ErrAlreadyResolved
	}
	if !game.HasPlayed() {
		return nil, rty.ErrOpponentHasNotPlayed
	}
	if action.fromaddr != game.Opponent {
		return nil, rty.ErrUnauthorized
	}
	if game.Submission.Kind != rty.SubmissionCommitted || game.MoveKnown() {
		return nil, rty.ErrMoveAlreadyRevealed
	}
	if action.expired(game) {
		return nil, rty.ErrDeadlineExpired
	}
	if err := action.checkReveal(game.Submission.Hash, reveal.Nonce, reveal.Move); err != nil {
		glog.Error("RPSReveal", "session", game.SessionID, "addr", action.fromaddr, "err", err)
		return nil, err
	}

	game.OpponentMove = reveal.Move
	game.RevealTxHash = action.txhash
	kv, err := action.saveGame(game)
	if err != nil {
		return nil, err
	}
	revealLog := &types.ReceiptLog{Ty: rty.TyLogRPSReveal, Log: types.Encode(&rty.ReceiptRPSReveal{
		Commitment: game.Commitment,
		SessionID:  game.SessionID,
		Player:     action.fromaddr,
		Move:       reveal.Move,
	})}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{revealLog}}, nil
}

// RPSResolve 创建者揭晓出招，结算
func (action *Action) RPSResolve(resolve *rty.RPSResolve) (*types.Receipt, error) {
	if err := action.checkNoValue(); err != nil {
		return nil, err
	}
	game, err := action.readGameByCommitment(resolve.Commitment)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, rty.ErrAlreadyResolved
	}
	// commitment 方式出招但还没有揭晓，同样视为没有出招
	if !game.MoveKnown() {
		return nil, rty.ErrOpponentHasNotPlayed
	}
	if action.expired(game) {
		glog.Error("RPSResolve", "session", game.SessionID, "deadline", game.Deadline, "now", action.blocktime, "err", rty.ErrDeadlineExpired)
		return nil, rty.ErrDeadlineExpired
	}
	if err := action.checkReveal(game.Commitment, resolve.Nonce, resolve.Move); err != nil {
		glog.Error("RPSResolve", "session", game.SessionID, "addr", action.fromaddr, "err", err)
		return nil, err
	}

	result := rty.Judge(resolve.Move, game.OpponentMove)
	var receipt *types.Receipt
	resolveLog := &rty.ReceiptRPSResolve{Commitment: game.Commitment, SessionID: game.SessionID}
	switch result {
	case rty.ResultCreatorWin:
		receipt, err = action.payWinner(game.Creator, game.Opponent, game.GetBet())
		resolveLog.First, resolveLog.Second = game.Creator, game.Opponent
		game.Winner = game.Creator
	case rty.ResultOpponentWin:
		receipt, err = action.payWinner(game.Opponent, game.Creator, game.GetBet())
		resolveLog.First, resolveLog.Second = game.Opponent, game.Creator
		game.Winner = game.Opponent
	default:
		receipt, err = action.refund([]common.Address{game.Creator, game.Opponent}, game.GetBet())
		resolveLog.First, resolveLog.Second = game.Creator, game.Opponent
		resolveLog.Tie = true
	}
	if err != nil {
		return nil, err
	}
	game.CreatorMove = resolve.Move
	game.Result = result
	game.Resolved = true
	game.CloseTime = uint64(action.blocktime)
	game.CloseTxHash = action.txhash
	kv, indexLog, err := action.changeStatus(game, rty.GameStatusResolved)
	if err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{{Ty: rty.TyLogRPSResolve, Log: types.Encode(resolveLog)}, indexLog}
	glog.Info("RPSResolve", "execer", action.curname, "session", game.SessionID, "creator", resolve.Move, "opponent", game.OpponentMove, "result", result)
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}), nil
}

// RPSCancel 对手出招之前，创建者揭晓出招取消游戏
func (action *Action) RPSCancel(cancel *rty.RPSCancel) (*types.Receipt, error) {
	if err := action.checkNoValue(); err != nil {
		return nil, err
	}
	game, err := action.readGameByCommitment(cancel.Commitment)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, rty.ErrAlreadyResolved
	}
	if err := action.checkReveal(game.Commitment, cancel.Nonce, cancel.Move); err != nil {
		glog.Error("RPSCancel", "session", game.SessionID, "addr", action.fromaddr, "err", err)
		return nil, err
	}
	if game.HasPlayed() {
		return nil, rty.ErrOpponentAlreadyPlayed
	}

	receipt, err := action.refund([]common.Address{game.Creator}, game.GetBet())
	if err != nil {
		return nil, err
	}
	game.CreatorMove = cancel.Move
	game.Resolved = true
	game.CloseTime = uint64(action.blocktime)
	game.CloseTxHash = action.txhash
	kv, indexLog, err := action.changeStatus(game, rty.GameStatusCancelled)
	if err != nil {
		return nil, err
	}
	cancelLog := &types.ReceiptLog{Ty: rty.TyLogRPSCancel, Log: types.Encode(&rty.ReceiptRPSCancel{
		Commitment: game.Commitment,
		SessionID:  game.SessionID,
		Creator:    game.Creator,
	})}
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{cancelLog, indexLog}}), nil
}

// RPSPenalize 超过截止时间之后，没有拖延的一方拿走全部下注
// 对手已经公开出招：创建者没有及时结算，对手得到全部下注
// 对手没有揭晓 commitment：对手拖延，创建者得到全部下注
func (action *Action) RPSPenalize(penalize *rty.RPSPenalize) (*types.Receipt, error) {
	if err := action.checkNoValue(); err != nil {
		return nil, err
	}
	game, err := action.readGameByCommitment(penalize.Commitment)
	if err != nil {
		return nil, err
	}
	if game.Resolved {
		return nil, rty.ErrAlreadyResolved
	}
	if !game.HasPlayed() {
		return nil, rty.ErrOpponentHasNotPlayed
	}
	if !action.expired(game) {
		return nil, rty.ErrDeadlineNotReached
	}
	beneficiary, stalled, result := game.Opponent, game.Creator, rty.ResultOpponentWin
	if !game.MoveKnown() {
		beneficiary, stalled, result = game.Creator, game.Opponent, rty.ResultCreatorWin
	}
	if action.fromaddr != beneficiary {
		glog.Error("RPSPenalize", "session", game.SessionID, "addr", action.fromaddr, "beneficiary", beneficiary, "err", rty.ErrUnauthorized)
		return nil, rty.ErrUnauthorized
	}

	receipt, err := action.payWinner(beneficiary, stalled, game.GetBet())
	if err != nil {
		return nil, err
	}
	game.Result = result
	game.Winner = beneficiary
	game.Resolved = true
	game.CloseTime = uint64(action.blocktime)
	game.CloseTxHash = action.txhash
	kv, indexLog, err := action.changeStatus(game, rty.GameStatusPenalized)
	if err != nil {
		return nil, err
	}
	penalizeLog := &types.ReceiptLog{Ty: rty.TyLogRPSPenalize, Log: types.Encode(&rty.ReceiptRPSPenalize{
		Commitment:  game.Commitment,
		SessionID:   game.SessionID,
		Beneficiary: beneficiary,
	})}
	glog.Info("RPSPenalize", "execer", action.curname, "session", game.SessionID, "beneficiary", beneficiary, "stalled", stalled)
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{penalizeLog, indexLog}}), nil
}

// RPSWithdraw 提取全部可用余额，先扣除余额再转出
func (action *Action) RPSWithdraw(withdraw *rty.RPSWithdraw) (*types.Receipt, error) {
	if err := action.checkNoValue(); err != nil {
		return nil, err
	}
	acc := action.coinsAccount.LoadExecAccount(action.fromaddr, action.execaddr)
	amount := new(uint256.Int).Set(acc.GetBalance())
	if amount.IsZero() {
		return nil, rty.ErrNothingToWithdraw
	}
	receipt, err := action.coinsAccount.ExecWithdraw(action.execaddr, action.fromaddr, amount)
	if err != nil {
		glog.Error("RPSWithdraw.ExecWithdraw", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", amount, "err", err)
		return nil, err
	}
	receipt2, err := action.payout.Pay(action.coinsAccount, action.execaddr, action.fromaddr, amount)
	if err != nil {
		// 返回错误，整个交易回滚，余额恢复
		glog.Error("RPSWithdraw.Pay", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", amount, "err", err)
		return nil, errors.Wrap(rty.ErrTransferFailed, err.Error())
	}
	withdrawLog := &types.ReceiptLog{Ty: rty.TyLogRPSWithdraw, Log: types.Encode(&rty.ReceiptRPSWithdraw{
		Addr:   action.fromaddr,
		Amount: amount,
	})}
	receipt = mergeReceipt(receipt, receipt2)
	return mergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{withdrawLog}}), nil
}

func mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	if receipt2 == nil {
		return receipt
	}
	receipt.KV = append(receipt.KV, receipt2.KV...)
	receipt.Logs = append(receipt.Logs, receipt2.Logs...)
	return receipt
}

func readGame(db dbm.KV, execer string, id uint64) (*rty.GameRecord, error) {
	data, err := db.Get(calcGameKey(execer, id))
	if err != nil {
		if errors.Cause(err) == types.ErrNotFound {
			return nil, errors.Wrapf(rty.ErrGameNotFound, "session %d", id)
		}
		return nil, err
	}
	var game rty.GameRecord
	//decode
	if err := types.Decode(data, &game); err != nil {
		glog.Error("decode game have err:", "err", err)
		return nil, err
	}
	return &game, nil
}

func readGameByCommitment(db dbm.KV, execer string, commitment common.Hash) (*rty.GameRecord, error) {
	data, err := db.Get(calcCommitKey(execer, commitment))
	if err != nil {
		if errors.Cause(err) == types.ErrNotFound {
			return nil, errors.Wrap(rty.ErrGameNotFound, commitment.Hex())
		}
		return nil, err
	}
	var id uint64
	if err := types.Decode(data, &id); err != nil {
		return nil, err
	}
	return readGame(db, execer, id)
}
