// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// 账户相关日志类型
const (
	TyLogErr             = uint32(1)
	TyLogTransfer        = uint32(2)
	TyLogGenesisTransfer = uint32(3)
	TyLogDeposit         = uint32(4)
	TyLogExecTransfer    = uint32(5)
	TyLogExecWithdraw    = uint32(6)
	TyLogExecDeposit     = uint32(7)
	TyLogExecFrozen      = uint32(8)
	TyLogExecActive      = uint32(9)
	TyLogGenesisDeposit  = uint32(10)
)

// LogInfo 日志类型的名称以及结构体类型
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

var (
	logMu    sync.RWMutex
	logTypes = map[uint32]*LogInfo{}
)

func init() {
	RegisterLog(TyLogTransfer, "LogTransfer", &ReceiptAccountTransfer{})
	RegisterLog(TyLogGenesisTransfer, "LogGenesisTransfer", &ReceiptAccountTransfer{})
	RegisterLog(TyLogDeposit, "LogDeposit", &ReceiptAccountTransfer{})
	RegisterLog(TyLogExecTransfer, "LogExecTransfer", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecWithdraw, "LogExecWithdraw", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecDeposit, "LogExecDeposit", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecFrozen, "LogExecFrozen", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogExecActive, "LogExecActive", &ReceiptExecAccountTransfer{})
	RegisterLog(TyLogGenesisDeposit, "LogGenesisDeposit", &ReceiptExecAccountTransfer{})
}

// RegisterLog 注册日志类型，msg 必须是结构体指针
func RegisterLog(ty uint32, name string, msg interface{}) {
	logMu.Lock()
	defer logMu.Unlock()
	if _, ok := logTypes[ty]; ok {
		panic("log type registered twice: " + name)
	}
	logTypes[ty] = &LogInfo{Ty: reflect.TypeOf(msg).Elem(), Name: name}
}

// DecodeLog 根据类型解析日志
func DecodeLog(l *ReceiptLog) (string, interface{}, error) {
	if l.Ty == TyLogErr {
		return "LogErr", string(l.Log), nil
	}
	logMu.RLock()
	info, ok := logTypes[l.Ty]
	logMu.RUnlock()
	if !ok {
		return "", nil, errors.Wrapf(ErrLogType, "ty=%d", l.Ty)
	}
	v := reflect.New(info.Ty).Interface()
	if err := Decode(l.Log, v); err != nil {
		return info.Name, nil, err
	}
	return info.Name, v, nil
}
