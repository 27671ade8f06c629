// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("addr", "", "")
	cmd.Flags().String("amount", "", "")
	return cmd
}

func TestGetAddr(t *testing.T) {
	cmd := newTestCmd()
	_, err := GetAddr(cmd, "addr")
	assert.True(t, errors.Is(err, types.ErrInvalidParam))

	cmd.Flags().Set("addr", "0x00000000000000000000000000000000000000b1")
	addr, err := GetAddr(cmd, "addr")
	assert.Nil(t, err)
	assert.Equal(t, common.HexToAddress("0xb1"), addr)
}

func TestGetAmountValue(t *testing.T) {
	cmd := newTestCmd()
	v, err := GetAmountValue(cmd, "amount")
	assert.Nil(t, err)
	assert.True(t, v.IsZero())

	cmd.Flags().Set("amount", "1.5")
	v, err = GetAmountValue(cmd, "amount")
	assert.Nil(t, err)
	assert.Equal(t, uint64(150000000), v.Uint64())

	cmd.Flags().Set("amount", "abc")
	_, err = GetAmountValue(cmd, "amount")
	assert.NotNil(t, err)
}
