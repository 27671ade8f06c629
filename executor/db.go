// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

// StateDB 状态数据库，交易执行期间的写入先放在 txcache 中
// Commit 时写入 batch，Rollback 时直接丢弃
type StateDB struct {
	db      dbm.DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{db: db}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务中的写入加入 batch, batch.Write 之后才真正落盘
func (s *StateDB) Commit(batch dbm.Batch) {
	for _, k := range s.keys {
		v, ok := s.txcache[k]
		if !ok {
			continue
		}
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
		delete(s.txcache, k)
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	value, err := s.db.Get(key)
	if err != nil {
		if errors.Cause(err) == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set set value to state db, 只能在事务中写入
func (s *StateDB) Set(key []byte, value []byte) error {
	if !s.intx {
		return errors.Wrap(types.ErrDBType, "state db set out of tx")
	}
	skey := string(key)
	if s.txcache == nil {
		s.txcache = make(map[string][]byte)
	}
	if _, ok := s.txcache[skey]; !ok {
		s.keys = append(s.keys, skey)
	}
	s.txcache[skey] = value
	return nil
}

// GetSetKeys 本次事务中写过的 key
func (s *StateDB) GetSetKeys() []string {
	return s.keys
}

// LocalDB 本地数据库，不参与状态，用于索引以及查询
// List 只读取已经落盘的数据
type LocalDB struct {
	*StateDB
	helper *dbm.ListHelper
}

// NewLocalDB 创建一个新的LocalDB
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{StateDB: NewStateDB(db), helper: dbm.NewListHelper(db)}
}

// List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.helper.List(prefix, key, count, direction)
	if values == nil {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 从数据库中查询指定前缀的key的数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.helper.PrefixCount(prefix)
}
