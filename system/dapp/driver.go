// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的基础接口以及注册
package dapp

import (
	"reflect"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

// API 执行环境提供给驱动的服务
type API interface {
	GetConfig() *types.Config
	GetPayout() account.Payout
}

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	SetLocalDB(dbm.KVDB)
	//当前交易执行器名称
	GetCurrentExecName() string
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的别名(一个驱动允许创建多个执行器, rps.xxx 都由 rps 驱动执行）
	GetName() string
	SetName(string)
	SetCurrentExecName(string)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	SetAPI(API)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

// DriverBase 驱动的通用实现，具体驱动嵌入后调用 SetChild
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	curname      string
	child        Driver
	childValue   reflect.Value
	api          API
	ety          types.ExecutorType
}

// SetAPI set
func (d *DriverBase) SetAPI(api API) {
	d.api = api
}

// GetAPI get
func (d *DriverBase) GetAPI() API {
	return d.api
}

// SetEnv 设置区块高度和区块时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetExecutorType set
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType get
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// SetChild 设置具体的驱动，用于反射调用 Exec_ ExecLocal_ Query_ 方法
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// GetFuncMap 具体驱动的方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return ListMethod(d.child)
}

// Exec 根据 action 名称调用 Exec_<name>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = errors.Wrapf(types.ErrActionNotSupport, "panic: %v", r)
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.child.GetFuncMap()[funcname]
	if !ok {
		return nil, errors.Wrapf(types.ErrActionNotSupport, "%s.%s", d.child.GetDriverName(), funcname)
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	r1, err := checkReturn(valueret)
	if err != nil {
		return nil, err
	}
	if r1 != nil {
		r, ok := r1.(*types.Receipt)
		if !ok {
			return nil, errors.Wrapf(types.ErrActionNotSupport, "%s return type", funcname)
		}
		receipt = r
	}
	return receipt, nil
}

// ExecLocal 根据 action 名称调用 ExecLocal_<name>，没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	if d.ety == nil {
		return &set, nil
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.child.GetFuncMap()["ExecLocal_"+name]
	if !ok {
		return &set, nil
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	r1, err := checkReturn(valueret)
	if err != nil {
		blog.Error("call ExecLocal", "execer", string(tx.Execer), "action", name, "err", err)
		return nil, err
	}
	//merge
	if lset, ok := r1.(*types.LocalDBSet); ok && lset != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func checkReturn(valueret []reflect.Value) (interface{}, error) {
	if len(valueret) != 2 {
		return nil, errors.Wrap(types.ErrActionNotSupport, "method must return two values")
	}
	r1 := valueret[0].Interface()
	r2 := valueret[1].Interface()
	if r2 != nil {
		err, ok := r2.(error)
		if !ok {
			return nil, errors.Wrap(types.ErrActionNotSupport, "second return value is not error")
		}
		return nil, err
	}
	return r1, nil
}

// Allow 默认允许驱动名称以及 <driver>.xxx 形式的执行器名称
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if string(types.GetRealExecName(tx.Execer)) == d.child.GetDriverName() {
		return nil
	}
	return types.ErrExecNameNotAllow
}

// CheckTx 默认不做额外检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetStateDB get
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间，作为执行时的 now
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// GetCurrentExecName 当前交易的执行器名称
func (d *DriverBase) GetCurrentExecName() string {
	if d.curname == "" {
		return d.child.GetDriverName()
	}
	return d.curname
}

// SetName set
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// SetCurrentExecName set
func (d *DriverBase) SetCurrentExecName(name string) {
	d.curname = name
}

// GetActionName action 名称
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

// GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.statedb)
	}
	return d.coinsaccount
}

// GetExecAddress 当前执行器的托管地址
func (d *DriverBase) GetExecAddress() common.Address {
	return account.ExecAddress(d.GetCurrentExecName())
}
