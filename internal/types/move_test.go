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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	assert.EqualValues(t, SqE2, m.From())
	assert.EqualValues(t, SqE4, m.To())
	assert.True(t, m.IsDoublePush())
	assert.True(t, m.IsQuiet())
	assert.False(t, m.IsCapture())

	m = CreateMove(SqE1, SqG1, FlagCastleKing)
	assert.True(t, m.IsCastling())
	assert.True(t, m.IsCastleKing())
	assert.False(t, m.IsCastleQueen())

	m = CreateMove(SqE1, SqC1, FlagCastleQueen)
	assert.True(t, m.IsCastling())
	assert.True(t, m.IsCastleQueen())
	assert.False(t, m.IsCastleKing())

	m = CreateMove(SqD5, SqE6, FlagEnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())

	m = CreateMove(SqD5, SqE6, FlagCapture)
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsQuiet())
}

func TestCreatePromotion(t *testing.T) {
	tests := []struct {
		promType PieceType
		capture  bool
	}{
		{Knight, false},
		{Bishop, false},
		{Rook, false},
		{Queen, false},
		{Knight, true},
		{Bishop, true},
		{Rook, true},
		{Queen, true},
	}
	for _, test := range tests {
		m := CreatePromotion(SqA7, SqA8, test.promType, test.capture)
		assert.True(t, m.IsPromotion())
		assert.EqualValues(t, test.promType, m.PromotionType())
		assert.EqualValues(t, test.capture, m.IsCapture())
		assert.EqualValues(t, SqA7, m.From())
		assert.EqualValues(t, SqA8, m.To())
	}
}

func TestMoveKind(t *testing.T) {
	tests := []struct {
		move     Move
		expected MoveKind
	}{
		{CreateMove(SqA2, SqA3, FlagQuiet), KindQuiet},
		{CreateMove(SqA2, SqA4, FlagDoublePush), KindDoublePush},
		{CreateMove(SqE1, SqG1, FlagCastleKing), KindCastleKing},
		{CreateMove(SqE1, SqC1, FlagCastleQueen), KindCastleQueen},
		{CreateMove(SqD4, SqE5, FlagCapture), KindCapture},
		{CreateMove(SqD5, SqE6, FlagEnPassant), KindEnPassant},
		{CreatePromotion(SqA7, SqA8, Queen, false), KindPromotion},
	}
	for _, test := range tests {
		assert.EqualValues(t, test.expected, test.move.Kind())
	}
}

func TestMoveNoneInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "NoMove", MoveNone.StringUci())
}

func TestMoveIsValid(t *testing.T) {
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	assert.True(t, m.IsValid())
	m = CreatePromotion(SqA7, SqA8, Queen, false)
	assert.True(t, m.IsValid())
}

func TestMoveStringUci(t *testing.T) {
	m := CreateMove(SqE2, SqE4, FlagDoublePush)
	assert.Equal(t, "e2e4", m.StringUci())
	m = CreatePromotion(SqA7, SqA8, Queen, false)
	assert.Equal(t, "a7a8Q", m.StringUci())
}

func TestMoveOf(t *testing.T) {
	m := CreateMove(SqB1, SqC3, FlagQuiet)
	assert.EqualValues(t, m, m.MoveOf())
}
