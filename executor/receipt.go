// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var (
	heightKey     = []byte("LODB-executor-height")
	receiptPrefix = []byte("LODB-executor-receipt:")
)

func receiptKey(height int64) []byte {
	return []byte(fmt.Sprintf("%s%018d", receiptPrefix, height))
}

func (e *Executor) loadHeight() (int64, error) {
	value, err := e.db.Get(heightKey)
	if err != nil {
		if errors.Cause(err) == dbm.ErrNotFoundInDb {
			return 0, types.ErrNotFound
		}
		return 0, err
	}
	var height uint64
	if err := types.Decode(value, &height); err != nil {
		return 0, err
	}
	return int64(height), nil
}

func (e *Executor) saveResult(batch dbm.Batch, tx *types.Transaction, receipt *types.Receipt, height, blocktime int64) *types.TxResult {
	result := &types.TxResult{
		Height:    uint64(height),
		Hash:      tx.Hash(),
		Tx:        tx,
		Receipt:   &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs},
		BlockTime: uint64(blocktime),
	}
	batch.Set(receiptKey(height), types.Encode(result))
	batch.Set(heightKey, types.Encode(uint64(height)))
	return result
}

// GetTxResult 按高度读取交易结果
func (e *Executor) GetTxResult(height int64) (*types.TxResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, err := e.localDB.Get(receiptKey(height))
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTxResults 分页读取交易结果, height 小于 0 时从头(ASC)或者尾(DESC)开始, 不包含 height 本身
func (e *Executor) ListTxResults(height int64, count, direction int32) ([]*types.TxResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var key []byte
	if height >= 0 {
		key = receiptKey(height)
	}
	values, err := e.localDB.List(receiptPrefix, key, count, direction)
	if err != nil {
		return nil, err
	}
	results := make([]*types.TxResult, 0, len(values))
	for _, value := range values {
		var result types.TxResult
		if err := types.Decode(value, &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, nil
}
