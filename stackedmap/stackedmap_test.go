// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkadotters/SubAuction/stackedmap"
)

func TestStackedMap(t *testing.T) {
	src := map[string]string{"base": "src"}
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) {
		v, ok := src[key.(string)]
		return v, ok
	})

	v, ok := sm.Get("base")
	assert.True(t, ok)
	assert.Equal(t, "src", v)

	_, ok = sm.Get("missing")
	assert.False(t, ok)

	d0 := sm.Push()
	sm.Put("k", "v0")
	v, ok = sm.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v0", v)

	d1 := sm.Push()
	sm.Put("k", "v1")
	v, _ = sm.Get("k")
	assert.Equal(t, "v1", v)
	assert.Equal(t, 3, sm.Depth())

	sm.PopTo(d1)
	v, _ = sm.Get("k")
	assert.Equal(t, "v0", v)

	sm.PopTo(d0)
	_, ok = sm.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, sm.Depth())
}

func TestJournal(t *testing.T) {
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) {
		return nil, false
	})

	sm.Push()
	sm.Put("a", 1)
	depth := sm.Push()
	sm.Put("b", 2)
	sm.Put("a", 3)
	sm.PopTo(depth)

	kvs := make(map[interface{}]interface{})
	sm.Journal(func(key, value interface{}) bool {
		kvs[key] = value
		return true
	})
	assert.Equal(t, map[interface{}]interface{}{"a": 1}, kvs)
}

func TestPop(t *testing.T) {
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) {
		return nil, false
	})

	sm.Push()
	sm.Put("k", "v")
	sm.Pop()
	_, ok := sm.Get("k")
	assert.False(t, ok)
}
