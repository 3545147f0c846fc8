//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"sync/atomic"
)

// searchFlagState is the state of a SearchFlag.
type searchFlagState uint32

const (
	// Think is the normal searching state.
	Think searchFlagState = iota
	// Ponder is set while the worker searches the position it expects
	// the opponent to reach, before the opponent has actually moved.
	Ponder
	// PonderHit is set by the driver when the opponent played the
	// expected move; the worker switches time control on at its next poll.
	PonderHit
	// Exit tells the worker to stop and report its result as soon as possible.
	Exit
)

func (st searchFlagState) String() string {
	switch st {
	case Think:
		return "Think"
	case Ponder:
		return "Ponder"
	case PonderHit:
		return "PonderHit"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// SearchFlag is an atomic 4-state enum the UCI driver uses to control a
// running search worker. The driver stores with release semantics, the
// worker polls with acquire semantics - the only synchronization between
// the two goroutines. Its zero value is Exit, matching the state at
// program start and after a worker has exited.
type SearchFlag struct {
	v uint32
}

// NewSearchFlag creates a SearchFlag set to Exit.
func NewSearchFlag() *SearchFlag {
	return &SearchFlag{v: uint32(Exit)}
}

// Load atomically reads the current state (acquire semantics).
func (f *SearchFlag) Load() searchFlagState {
	return searchFlagState(atomic.LoadUint32(&f.v))
}

// Store atomically writes a new state (release semantics).
func (f *SearchFlag) Store(s searchFlagState) {
	atomic.StoreUint32(&f.v, uint32(s))
}

// CAS is an atomic compare-and-swap.
func (f *SearchFlag) CAS(old, new searchFlagState) bool {
	return atomic.CompareAndSwapUint32(&f.v, uint32(old), uint32(new))
}
