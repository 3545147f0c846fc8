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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/FrankyGo/internal/types"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	assert.EqualValues(t, 0, h.HistoryValue(White, CreateMove(SqE2, SqE4, FlagDoublePush)))
	assert.False(t, h.IsKiller(0, CreateMove(SqE2, SqE4, FlagDoublePush)))
}

func TestBonus(t *testing.T) {
	assert.EqualValues(t, 16, Bonus(4))
	assert.EqualValues(t, HistMax, Bonus(1000))
}

func TestUpdateHistory(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqD2, SqD4, FlagDoublePush)

	h.UpdateHistory(White, m, Bonus(4))
	first := h.HistoryValue(White, m)
	assert.Greater(t, first, int64(0))

	// repeated positive updates move the counter towards HistMax but
	// never past it
	for i := 0; i < 10_000; i++ {
		h.UpdateHistory(White, m, Bonus(30))
	}
	assert.LessOrEqual(t, h.HistoryValue(White, m), int64(HistMax))

	// a different color/move pair is unaffected
	assert.EqualValues(t, 0, h.HistoryValue(Black, m))
	assert.EqualValues(t, 0, h.HistoryValue(White, CreateMove(SqA2, SqA4, FlagDoublePush)))
}

func TestUpdateHistoryNegativeBonus(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqG1, SqF3, FlagQuiet)
	h.UpdateHistory(White, m, -Bonus(4))
	assert.Less(t, h.HistoryValue(White, m), int64(0))
	assert.GreaterOrEqual(t, h.HistoryValue(White, m), int64(-HistMax))
}

func TestUpdateKiller(t *testing.T) {
	h := NewHistory()
	m1 := CreateMove(SqE2, SqE4, FlagDoublePush)
	m2 := CreateMove(SqD2, SqD4, FlagDoublePush)
	m3 := CreateMove(SqG1, SqF3, FlagQuiet)

	h.UpdateKiller(3, m1)
	assert.True(t, h.IsKiller(3, m1))
	assert.False(t, h.IsKiller(3, m2))

	h.UpdateKiller(3, m2)
	assert.True(t, h.IsKiller(3, m1))
	assert.True(t, h.IsKiller(3, m2))

	// a third killer pushes the oldest out
	h.UpdateKiller(3, m3)
	assert.True(t, h.IsKiller(3, m3))
	assert.True(t, h.IsKiller(3, m2))
	assert.False(t, h.IsKiller(3, m1))

	// re-recording the current first killer is a no-op
	h.UpdateKiller(3, m3)
	assert.True(t, h.IsKiller(3, m3))
	assert.True(t, h.IsKiller(3, m2))

	// a different ply is unaffected
	assert.False(t, h.IsKiller(4, m3))
}

func TestUpdateKillerOutOfRange(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	h.UpdateKiller(-1, m)
	h.UpdateKiller(MaxPly, m)
	assert.False(t, h.IsKiller(-1, m))
	assert.False(t, h.IsKiller(MaxPly, m))
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	h.UpdateHistory(White, m, Bonus(4))
	h.UpdateKiller(0, m)
	h.Clear()
	assert.EqualValues(t, 0, h.HistoryValue(White, m))
	assert.False(t, h.IsKiller(0, m))
}

func TestHistoryString(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	h.UpdateHistory(White, m, Bonus(4))
	s := h.String()
	assert.NotEmpty(t, s)
}
