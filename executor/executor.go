// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行环境：加载执行器驱动，串行执行交易，
// 成功时提交状态以及本地索引，失败时整体回滚
package executor

import (
	"fmt"
	"sync"
	"time"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/pluginmgr"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// Executor 交易执行器，同一时刻只执行一笔交易
type Executor struct {
	mu      sync.Mutex
	cfg     *types.Config
	db      dbm.DB
	ownDB   bool
	stateDB *StateDB
	localDB *LocalDB
	clock   clock.Clock
	payout  account.Payout
	height  int64
	metrics *metrics.ExecMetrics
}

// Option 执行器选项
type Option func(*Executor)

// WithClock 设置区块时间的时钟，测试中使用 clock.NewMock()
func WithClock(c clock.Clock) Option {
	return func(e *Executor) {
		e.clock = c
	}
}

// WithPayout 设置提现时的转出方式
func WithPayout(p account.Payout) Option {
	return func(e *Executor) {
		e.payout = p
	}
}

// WithDB 使用外部的数据库，Close 时不关闭
func WithDB(db dbm.DB) Option {
	return func(e *Executor) {
		e.db = db
	}
}

// New 创建执行器，第一次打开数据库时执行创世分配
func New(cfg *types.Config, opts ...Option) (*Executor, error) {
	if cfg == nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "nil config")
	}
	e := &Executor{cfg: cfg, clock: clock.New(), payout: account.CoinsPayout{}}
	for _, opt := range opts {
		opt(e)
	}
	pluginmgr.InitExec(cfg)
	if e.db == nil {
		db, err := dbm.NewDB("rps", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
		if err != nil {
			return nil, err
		}
		e.db = db
		e.ownDB = true
	}
	e.stateDB = NewStateDB(e.db)
	e.localDB = NewLocalDB(e.db)
	e.metrics = metrics.NewExecMetrics()

	height, err := e.loadHeight()
	if errors.Cause(err) == types.ErrNotFound {
		err = e.genesis()
	} else if err == nil {
		e.height = height
	}
	if err != nil {
		e.Close()
		return nil, err
	}
	metrics.StartMetrics(cfg.Metrics, e.metrics)
	elog.Info("executor started", "title", cfg.Title, "store", cfg.Store.Driver, "height", e.height)
	return e, nil
}

// GetConfig 配置
func (e *Executor) GetConfig() *types.Config {
	return e.cfg
}

// GetPayout 提现的转出方式
func (e *Executor) GetPayout() account.Payout {
	return e.payout
}

// Height 已执行的交易数量，创世为 0
func (e *Executor) Height() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

// Metrics 度量
func (e *Executor) Metrics() *metrics.ExecMetrics {
	return e.metrics
}

// Close 关闭数据库
func (e *Executor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ownDB && e.db != nil {
		e.db.Close()
	}
	e.db = nil
	drivers.RunCloseHooks(e.stateDB)
	e.metrics.Stop()
	elog.Info("exec module closed", "height", e.height, "metrics", e.metrics.Snapshot())
}

func (e *Executor) genesis() error {
	e.stateDB.Begin()
	coins := account.NewCoinsAccount(e.stateDB)
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, alloc := range e.cfg.Genesis {
		if !common.IsHexAddress(alloc.Address) {
			e.stateDB.Rollback()
			return errors.Wrapf(types.ErrInvalidParam, "genesis address %s", alloc.Address)
		}
		amount, err := types.ParseCoins(alloc.Amount)
		if err != nil {
			e.stateDB.Rollback()
			return err
		}
		r, err := coins.GenesisInit(common.HexToAddress(alloc.Address), amount)
		if err != nil {
			e.stateDB.Rollback()
			return err
		}
		receipt.KV = append(receipt.KV, r.KV...)
		receipt.Logs = append(receipt.Logs, r.Logs...)
		elog.Info("genesis", "addr", alloc.Address, "amount", alloc.Amount)
	}
	tx := types.NewTransaction("coins", nil, common.Address{}, nil)
	batch := e.db.NewBatch(true)
	e.stateDB.Commit(batch)
	e.saveResult(batch, tx, receipt, 0, e.clock.Now().Unix())
	if err := batch.Write(); err != nil {
		return err
	}
	e.height = 0
	return nil
}

// ExecTx 执行一笔交易，失败时所有修改回滚，不产生任何日志
func (e *Executor) ExecTx(tx *types.Transaction) (*types.TxResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	defer e.metrics.TxTimer.UpdateSince(start)
	result, err := e.execTx(tx)
	if err != nil {
		e.metrics.TxFail.Inc(1)
		if tx != nil {
			elog.Error("exec tx", "execer", string(tx.Execer), "from", tx.From, "err", err)
		}
		return nil, err
	}
	e.metrics.TxOk.Inc(1)
	return result, nil
}

func (e *Executor) execTx(tx *types.Transaction) (*types.TxResult, error) {
	if tx == nil || len(tx.Execer) == 0 {
		return nil, errors.Wrap(types.ErrInvalidParam, "empty tx")
	}
	if e.db == nil {
		return nil, errors.Wrap(types.ErrDBType, "executor closed")
	}
	height := e.height + 1
	blocktime := e.clock.Now().Unix()
	driver, err := drivers.LoadDriverAllow(e, tx, 0, height, blocktime)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(e.stateDB)
	driver.SetLocalDB(e.localDB)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	e.begin()
	receipt, err := e.execTxOne(driver, tx)
	if err != nil {
		e.rollback()
		return nil, err
	}
	batch := e.db.NewBatch(true)
	e.commit(batch)
	result := e.saveResult(batch, tx, receipt, height, blocktime)
	if err := batch.Write(); err != nil {
		return nil, err
	}
	e.height = height
	e.metrics.MarkAction(driver.GetCurrentExecName(), driver.GetActionName(tx))
	elog.Debug("exec tx = ", "height", height, "execer", string(tx.Execer), "action", driver.GetActionName(tx))
	return result, nil
}

func (e *Executor) execTxOne(driver drivers.Driver, tx *types.Transaction) (receipt *types.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			elog.Error("execTxOne panic", "execer", string(tx.Execer), "info", r)
			receipt = nil
			err = errors.Wrapf(types.ErrActionNotSupport, "panic: %v", r)
		}
	}()
	receipt, err = driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if err := e.checkKV(e.stateDB.GetSetKeys(), receipt.KV); err != nil {
		return nil, err
	}
	for _, kv := range receipt.KV {
		if !isAllowKeyWrite(kv.Key, tx.Execer) {
			elog.Error("err receipt key", "key", string(kv.Key), "tx.exec", string(tx.Execer),
				"tx.action", driver.GetActionName(tx))
			return nil, errors.Wrap(types.ErrNotAllowKey, string(kv.Key))
		}
	}
	set, err := driver.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	if err != nil {
		return nil, err
	}
	for _, kv := range set.KV {
		if err := isAllowLocalKey(kv.Key); err != nil {
			return nil, err
		}
		if err := e.localDB.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

func (e *Executor) checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.Key)] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			//非法的receipt，交易执行失败
			return errors.Wrap(types.ErrNotAllowMemSetKey, key)
		}
	}
	return nil
}

func (e *Executor) begin() {
	e.stateDB.Begin()
	e.localDB.Begin()
}

func (e *Executor) commit(batch dbm.Batch) {
	e.stateDB.Commit(batch)
	e.localDB.Commit(batch)
}

func (e *Executor) rollback() {
	e.stateDB.Rollback()
	e.localDB.Rollback()
}

// Query 调用执行器的 Query_<funcname>
func (e *Executor) Query(execer, funcname string, params types.Message) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.db == nil {
		return nil, errors.Wrap(types.ErrDBType, "executor closed")
	}
	driver, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetName(string(types.GetRealExecName([]byte(execer))))
	driver.SetCurrentExecName(execer)
	driver.SetAPI(e)
	driver.SetEnv(e.height, e.clock.Now().Unix())
	driver.SetStateDB(e.stateDB)
	driver.SetLocalDB(e.localDB)
	var data []byte
	if params != nil {
		data = types.Encode(params)
	}
	return driver.Query(funcname, data)
}

// GetAccount coins 账户
func (e *Executor) GetAccount(addr common.Address) *types.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return account.NewCoinsAccount(e.stateDB).LoadAccount(addr)
}

// GetExecAccount 地址在执行器中的托管账户
func (e *Executor) GetExecAccount(execer string, addr common.Address) *types.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return account.NewCoinsAccount(e.stateDB).LoadExecAccount(addr, account.ExecAddress(execer))
}

// Now 当前区块时间
func (e *Executor) Now() int64 {
	return e.clock.Now().Unix()
}

func (e *Executor) String() string {
	return fmt.Sprintf("executor(%s, height=%d)", e.cfg.Title, e.Height())
}
