// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap

// MapGetter defines a getter to access the backing map.
type MapGetter func(key interface{}) (value interface{}, exist bool)

type journalEntry struct {
	key   interface{}
	value interface{}
}

type level struct {
	kvs        map[interface{}]interface{}
	journalLen int
}

func newLevel(journalLen int) *level {
	return &level{kvs: make(map[interface{}]interface{}), journalLen: journalLen}
}

// StackedMap maintains maps in a stack.
// Each map inherits the key/value of the map below it.
// Changes are recorded in a journal so they can be replayed in order, and
// whole levels can be discarded to revert to an earlier revision.
type StackedMap struct {
	src     MapGetter
	stack   []*level
	journal []*journalEntry
}

// New creates an instance of StackedMap.
// src acts as the source of the bottom map.
func New(src MapGetter) *StackedMap {
	return &StackedMap{
		src:   src,
		stack: []*level{newLevel(0)},
	}
}

// Depth returns the count of stacked maps.
func (sm *StackedMap) Depth() int {
	return len(sm.stack)
}

// Push pushes a new map on the stack and returns its depth as a revision,
// to be passed to PopTo to revert.
func (sm *StackedMap) Push() int {
	sm.stack = append(sm.stack, newLevel(len(sm.journal)))
	return len(sm.stack) - 1
}

// Pop pops the map at the top of the stack, discarding its changes.
func (sm *StackedMap) Pop() {
	sm.PopTo(len(sm.stack) - 1)
}

// PopTo discards all maps above the given depth.
// Writes always land in the topmost map, so journal entries are strictly
// ordered by level and truncating at the first discarded level is enough.
func (sm *StackedMap) PopTo(depth int) {
	if depth < 1 || depth >= len(sm.stack) {
		return
	}
	sm.journal = sm.journal[:sm.stack[depth].journalLen]
	sm.stack = sm.stack[:depth]
}

// Get gets the value for the given key.
// It returns the value set in the topmost map that contains the key,
// falling through to the source getter.
func (sm *StackedMap) Get(key interface{}) (interface{}, bool) {
	for i := len(sm.stack) - 1; i >= 0; i-- {
		if v, ok := sm.stack[i].kvs[key]; ok {
			return v, true
		}
	}
	return sm.src(key)
}

// Put sets the value for the given key in the map at the top of the stack.
func (sm *StackedMap) Put(key, value interface{}) {
	top := sm.stack[len(sm.stack)-1]
	sm.journal = append(sm.journal, &journalEntry{key: key, value: value})
	top.kvs[key] = value
}

// Journal traverses journal entries in the order they were recorded.
// The traversal aborts when cb returns false.
func (sm *StackedMap) Journal(cb func(key, value interface{}) bool) {
	for _, e := range sm.journal {
		if !cb(e.key, e.value) {
			return
		}
	}
}
