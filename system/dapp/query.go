// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

// Query 调用 Query_<funcname>，params 是参数结构体的编码
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcmap := d.child.GetFuncMap()
	funcname = "Query_" + funcname
	method, ok := funcmap[funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, errors.Wrap(types.ErrQueryNotSupport, funcname)
	}
	ty := method.Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, errors.Wrap(types.ErrQueryNotSupport, funcname)
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, errors.Wrap(types.ErrQueryNotSupport, funcname)
	}
	p := reflect.New(paramin.Elem())
	if len(params) > 0 {
		if err := types.Decode(params, p.Interface()); err != nil {
			return nil, err
		}
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, p})
	return checkReturn(valueret)
}

// GetPrefixCount 本地数据库中前缀的数量
func (d *DriverBase) GetPrefixCount(prefix []byte) int64 {
	return d.GetLocalDB().PrefixCount(prefix)
}
