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

// Package history provides data structures and functionality to manage
// history driven move tables (history counter, killer moves) used by
// search to order quiet moves.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/internal/util"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// HistMax bounds the history heuristic counters to +/- HistMax.
	HistMax = 8192

	// KillerSlots is the number of killer moves kept per ply.
	KillerSlots = 2

	// MaxPly bounds the per-ply killer table, matching the engine's
	// maximum search depth.
	MaxPly = MaxDepth
)

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting: a decaying
// history-heuristic counter per (color, from, to) and two killer moves
// per ply.
type History struct {
	HistoryCount [2][64][64]int64
	Killers      [MaxPly][KillerSlots]Move
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Clear resets all history counters and killer slots.
func (h *History) Clear() {
	*h = History{}
}

// Bonus returns the depth-squared bonus used to reward/punish quiet
// moves on a beta cutoff, clamped to +/- HistMax.
func Bonus(depth int) int64 {
	b := int64(depth) * int64(depth)
	return clamp(b)
}

func clamp(v int64) int64 {
	if v > HistMax {
		return HistMax
	}
	if v < -HistMax {
		return -HistMax
	}
	return v
}

// UpdateHistory applies the standard decaying history update to the
// (color, from, to) counter for move, given a (possibly negative)
// clamped bonus:
//  entry += clamped - entry*|clamped|/HistMax
func (h *History) UpdateHistory(c Color, m Move, bonus int64) {
	clamped := clamp(bonus)
	entry := &h.HistoryCount[c][m.From()][m.To()]
	*entry += clamped - (*entry * util.Abs64(clamped) / HistMax)
}

// HistoryValue returns the current history heuristic value for a move.
func (h *History) HistoryValue(c Color, m Move) int64 {
	return h.HistoryCount[c][m.From()][m.To()]
}

// UpdateKiller records a quiet beta-cutoff move as the new first killer
// at ply, shifting the previous first killer down to the second slot.
// A no-op if move is already the first killer at this ply.
func (h *History) UpdateKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	slots := &h.Killers[ply]
	if slots[0] == m {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// IsKiller returns true if move is one of the two killer moves at ply.
func (h *History) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	slots := &h.Killers[ply]
	return slots[0] == m || slots[1] == m
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			count0 := h.HistoryCount[White][sf][st]
			count1 := h.HistoryCount[Black][sf][st]
			if count0 == 0 && count1 == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: w=%-7d b=%-7d\n", sf.String(), st.String(), count0, count1))
		}
	}
	return sb.String()
}
