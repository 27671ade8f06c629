// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowKeyWrite(t *testing.T) {
	cases := []struct {
		key    string
		execer string
		allow  bool
	}{
		{"mavl-rps-game:rps:1", "rps", true},
		{"mavl-rps.league-x", "rps.league", true},
		{"mavl-rps-game:rps:1", "rps.league", false},
		{"mavl-coins-exec-0x01:0x02", "registry", true},
		{"mavl-coins-0x02", "rps", true},
		{"mavl-coins-0x02", "rps.league", true},
		{"mavl-coins-0x02", "registry", false},
		{"mavl-manage-pauser-rps", "registry", true},
		{"mavl-manage-pauser-rps", "manage", true},
		{"mavl-manage-pauser-rps", "rps", false},
		{"mavl-registry-league", "rps", false},
		{"LODB-rps-status:rps:1:", "rps", false},
		{"mavl-", "rps", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allow, isAllowKeyWrite([]byte(c.key), []byte(c.execer)), "key=%s execer=%s", c.key, c.execer)
	}
}

func TestFindExecer(t *testing.T) {
	execer, err := findExecer([]byte("mavl-coins-exec-0x01"))
	assert.Nil(t, err)
	assert.Equal(t, "coins", string(execer))
	_, err = findExecer([]byte("LODB-coins-1"))
	assert.Equal(t, types.ErrMavlKeyNotStartWithMavl, err)
	_, err = findExecer([]byte("mavl-coins"))
	assert.Equal(t, types.ErrNoExecerInMavlKey, err)

	assert.True(t, isExecKey([]byte("mavl-coins-exec-0x01:0x02")))
	assert.False(t, isExecKey([]byte("mavl-coins-0x02")))
	assert.Nil(t, isAllowLocalKey([]byte("LODB-rps-1")))
	assert.Equal(t, types.ErrNotAllowLocalKey, isAllowLocalKey([]byte("mavl-rps-1")))
}
