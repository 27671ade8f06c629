// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ExecutorType 执行器的 action 定义
type ExecutorType interface {
	GetName() string
	GetTypeMap() map[string]uint32
	GetPayload(name string) (interface{}, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	CreatePayload(name string, value interface{}) ([]byte, error)
}

// ActionInfo action 名称、编号以及参数结构体
type ActionInfo struct {
	Name  string
	Ty    uint32
	Value interface{}
}

// ExecTypeBase ExecutorType 的通用实现
type ExecTypeBase struct {
	name     string
	typeMap  map[string]uint32
	nameMap  map[uint32]string
	payloads map[uint32]reflect.Type
}

// NewExecTypeBase 根据 action 列表构造，Value 必须是结构体指针
func NewExecTypeBase(name string, actions []*ActionInfo) *ExecTypeBase {
	base := &ExecTypeBase{
		name:     name,
		typeMap:  make(map[string]uint32),
		nameMap:  make(map[uint32]string),
		payloads: make(map[uint32]reflect.Type),
	}
	for _, a := range actions {
		if _, ok := base.nameMap[a.Ty]; ok {
			panic("action type registered twice: " + a.Name)
		}
		t := reflect.TypeOf(a.Value)
		if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
			panic("action value must be a struct pointer: " + a.Name)
		}
		base.typeMap[a.Name] = a.Ty
		base.nameMap[a.Ty] = a.Name
		base.payloads[a.Ty] = t.Elem()
	}
	return base
}

// GetName 执行器名称
func (base *ExecTypeBase) GetName() string {
	return base.name
}

// GetTypeMap action 名称到编号
func (base *ExecTypeBase) GetTypeMap() map[string]uint32 {
	return base.typeMap
}

// GetPayload 返回 action 参数结构体的新实例
func (base *ExecTypeBase) GetPayload(name string) (interface{}, error) {
	ty, ok := base.typeMap[name]
	if !ok {
		return nil, errors.Wrapf(ErrActionNotSupport, "%s.%s", base.name, name)
	}
	return reflect.New(base.payloads[ty]).Interface(), nil
}

// DecodePayloadValue 解析交易 payload，返回 action 名称以及参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	env, err := DecodeEnvelope(tx.Payload)
	if err != nil {
		return "", reflect.Value{}, err
	}
	name, ok := base.nameMap[env.Ty]
	if !ok {
		return "", reflect.Value{}, errors.Wrapf(ErrActionNotSupport, "%s ty=%d", base.name, env.Ty)
	}
	v := reflect.New(base.payloads[env.Ty])
	if err := Decode(env.Value, v.Interface()); err != nil {
		return "", reflect.Value{}, err
	}
	return name, v, nil
}

// ActionName 交易的 action 名称，无法解析时返回 unknown
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	env, err := DecodeEnvelope(tx.Payload)
	if err != nil {
		return "unknown"
	}
	if name, ok := base.nameMap[env.Ty]; ok {
		return strings.ToLower(name)
	}
	return "unknown"
}

// CreatePayload 按 action 名称编码交易 payload
func (base *ExecTypeBase) CreatePayload(name string, value interface{}) ([]byte, error) {
	ty, ok := base.typeMap[name]
	if !ok {
		return nil, errors.Wrapf(ErrActionNotSupport, "%s.%s", base.name, name)
	}
	if reflect.TypeOf(value) != reflect.PtrTo(base.payloads[ty]) {
		return nil, errors.Wrapf(ErrInvalidParam, "%s.%s value type %T", base.name, name, value)
	}
	return EncodeAction(ty, value), nil
}

// GetRealExecName rps.league 这样的执行器名称对应的驱动是 rps
func GetRealExecName(execer []byte) []byte {
	s := string(execer)
	if i := strings.IndexByte(s, '.'); i > 0 {
		return []byte(s[:i])
	}
	return execer
}
