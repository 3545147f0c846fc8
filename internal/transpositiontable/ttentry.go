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

package transpositiontable

import (
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// TtEntry struct is the data structure for each slot in a tt bucket.
// Each entry has 16-bytes (128-bits).
type TtEntry struct {
	// struct is partially bit encoded to make it more compact
	// and stay <= 16 byte
	key   Key    // 64-bit Zobrist Key
	move  uint16 // 16-bit move part of a Move - convert with Move(e.Move)
	eval  int16  // 16-bit evaluation value by static evaluator
	value int16  // 16-bit value during search
	vmeta uint16 // 7-bit depth, 2-bit vtype, 4-bit age, 3-bit unused
}

// BucketSize is the number of TtEntry slots per bucket. Probe/Put scan
// all slots of a bucket; replacement picks the slot with the lowest
// priority among the bucket's slots.
const BucketSize = 4

// ttBucket groups BucketSize TtEntry slots behind one hash index.
type ttBucket struct {
	entries [BucketSize]TtEntry
}

const (
	// TtEntrySize is the size in bytes for each TtEntry
	TtEntrySize = 16 // 16 bytes

	ageMask    = uint16(0b0000_0000_0000_1111)
	vtypeMask  = uint16(0b0000_0000_0011_0000)
	vtypeShift = uint16(4)
	depthMask  = uint16(0b0001_1111_1100_0000)
	depthShift = uint16(6)

	// ageBits is the width of the age field; ages wrap modulo 1<<ageBits.
	ageBits  = 4
	maxAge   = 1<<ageBits - 1
)

func (e *TtEntry) set(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value, age uint8) {
	e.key = key
	if move != MoveNone {
		e.move = uint16(move)
	}
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(valueType)<<vtypeShift | uint16(age&maxAge)
}

// Key returns the Zobrist key stored in this entry
func (e *TtEntry) Key() Key {
	return e.key
}

// Move returns the move stored in this entry
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the search value stored in this entry
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored in this entry
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth this entry was stored at
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the search generation this entry was written in
func (e *TtEntry) Age() uint8 {
	return uint8(e.vmeta & ageMask)
}

// Vtype returns the bound type (Exact/Alpha/Beta) stored in this entry
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}

// priority computes the replacement priority of this entry given the
// table's current search generation. Higher priority entries are kept,
// lower priority entries are evicted first.
//  priority = depth - ((currentAge - entry.age) << 1)
func (e *TtEntry) priority(currentAge uint8) int {
	ageDiff := int(currentAge-e.Age()) & maxAge
	return int(e.Depth()) - (ageDiff << 1)
}
