// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"strings"
	"sync"
)

var (
	methodMu    sync.RWMutex
	methodCache = make(map[reflect.Type]map[string]reflect.Method)
)

var methodPrefix = []string{"Exec_", "ExecLocal_", "Query_"}

// ListMethod 列出驱动中 Exec_ ExecLocal_ Query_ 开头的导出方法，按类型缓存
func ListMethod(driver interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(driver)
	methodMu.RLock()
	methods, ok := methodCache[typ]
	methodMu.RUnlock()
	if ok {
		return methods
	}
	methods = make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		// Method must be exported.
		if method.PkgPath != "" {
			continue
		}
		for _, prefix := range methodPrefix {
			if strings.HasPrefix(method.Name, prefix) {
				methods[method.Name] = method
				break
			}
		}
	}
	methodMu.Lock()
	methodCache[typ] = methods
	methodMu.Unlock()
	return methods
}
