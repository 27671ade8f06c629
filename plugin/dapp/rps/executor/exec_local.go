// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
)

/*
  游戏状态变化时建立新状态的索引，同时删除老状态的索引，以免形成脏数据:
    按状态:       LODB-rps-status:<execer>:<status>:<%018d index>
    按状态和地址: LODB-rps-addr:<execer>:<status>:<addr>:<%018d index>
  value 为 SessionID 以及 index，index 为状态变化时的高度
*/

// indexRecord 索引的 value
type indexRecord struct {
	SessionID uint64
	Index     uint64
}

// ExecLocal 根据 TyLogRPSIndex 更新本地索引
func (r *RPS) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := r.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rty.TyLogRPSIndex {
			continue
		}
		var indexLog rty.ReceiptRPSIndex
		if err := types.Decode(item.Log, &indexLog); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, r.updateIndex(&indexLog)...)
	}
	return set, nil
}

//更新索引
func (r *RPS) updateIndex(log *rty.ReceiptRPSIndex) (kvs []*types.KeyValue) {
	execer := r.GetCurrentExecName()
	//先保存本次Action产生的索引
	kvs = append(kvs, addStatusIndex(execer, log.Status, log.SessionID, log.Index))
	kvs = append(kvs, addAddrIndex(execer, log.Status, log.Creator, log.SessionID, log.Index))
	kvs = append(kvs, addAddrIndex(execer, log.Status, log.Opponent, log.SessionID, log.Index))
	if log.PrevStatus == 0 {
		return kvs
	}
	kvs = append(kvs, delStatusIndex(execer, log.PrevStatus, log.PrevIndex))
	kvs = append(kvs, delAddrIndex(execer, log.PrevStatus, log.Creator, log.PrevIndex))
	kvs = append(kvs, delAddrIndex(execer, log.PrevStatus, log.Opponent, log.PrevIndex))
	return kvs
}

func calcStatusIndexPrefix(execer string, status uint32) []byte {
	return []byte(fmt.Sprintf("LODB-rps-status:%s:%d:", execer, status))
}

func calcStatusIndexKey(execer string, status uint32, index uint64) []byte {
	return []byte(fmt.Sprintf("LODB-rps-status:%s:%d:%018d", execer, status, index))
}

func calcAddrIndexPrefix(execer string, status uint32, addr common.Address) []byte {
	return []byte(fmt.Sprintf("LODB-rps-addr:%s:%d:%s:", execer, status, addr.Hex()))
}

func calcAddrIndexKey(execer string, status uint32, addr common.Address, index uint64) []byte {
	return []byte(fmt.Sprintf("LODB-rps-addr:%s:%d:%s:%018d", execer, status, addr.Hex(), index))
}

func addStatusIndex(execer string, status uint32, id, index uint64) *types.KeyValue {
	return &types.KeyValue{
		Key:   calcStatusIndexKey(execer, status, index),
		Value: types.Encode(&indexRecord{SessionID: id, Index: index}),
	}
}

func addAddrIndex(execer string, status uint32, addr common.Address, id, index uint64) *types.KeyValue {
	return &types.KeyValue{
		Key:   calcAddrIndexKey(execer, status, addr, index),
		Value: types.Encode(&indexRecord{SessionID: id, Index: index}),
	}
}

func delStatusIndex(execer string, status uint32, index uint64) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(execer, status, index)}
}

func delAddrIndex(execer string, status uint32, addr common.Address, index uint64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcAddrIndexKey(execer, status, addr, index)}
}
