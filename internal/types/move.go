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
	"fmt"
	"strings"
)

// Move is a 16 bit packed chess move.
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                      1 1 1 1 1 1  from
//            1 1 1 1 1 1            to
//  1 1 1 1                          flags
//
// The 4 bit flags field is a compact enum with an embedded promotion bit:
// the low 3 bits select Quiet/DoublePush/CastleKing/CastleQueen/Capture/
// EnPassant when the promotion bit (0b1000) is clear; when the promotion
// bit is set, bit 2 is the capture bit and the low 2 bits select the
// promoted piece kind (Knight=0, Bishop=1, Rook=2, Queen=3).
type Move uint16

// MoveNone is the zero value and represents "no move"
const MoveNone Move = 0

const (
	fromShift  uint = 0
	toShift    uint = 6
	flagsShift uint = 12

	squareMask Move = 0x3F
	flagsMask  Move = 0xF
)

// Flag values for the 4 bit flags field (see type doc above)
const (
	FlagQuiet       uint8 = 0b0000
	FlagDoublePush  uint8 = 0b0001
	FlagCastleKing  uint8 = 0b0010
	FlagCastleQueen uint8 = 0b0011
	FlagCapture     uint8 = 0b0100
	FlagEnPassant   uint8 = 0b0101
	FlagPromotion   uint8 = 0b1000
)

// MoveKind is a tagged, pattern-matching friendly view of a Move's flags,
// used in do_move and move ordering.
type MoveKind uint8

// Move kinds
const (
	KindQuiet MoveKind = iota
	KindDoublePush
	KindCastleKing
	KindCastleQueen
	KindCapture
	KindEnPassant
	KindPromotion
)

// CreateMove returns an encoded quiet/capture/double-push/castling/en-passant
// move from the given from/to squares and flag nibble.
func CreateMove(from Square, to Square, flags uint8) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(flags&0xF)<<flagsShift
}

// CreatePromotion returns an encoded promotion move. capture marks a
// capture-promotion (the capture bit is OR-ed into the flags nibble).
func CreatePromotion(from Square, to Square, promType PieceType, capture bool) Move {
	sel := uint8(promType - Knight)
	flags := FlagPromotion | (sel & 0b11)
	if capture {
		flags |= FlagCapture
	}
	return CreateMove(from, to, flags)
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// flagBits returns the raw 4 bit flags nibble
func (m Move) flagBits() uint8 {
	return uint8((m >> flagsShift) & flagsMask)
}

// IsPromotion returns true if the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m.flagBits()&FlagPromotion != 0
}

// IsCapture returns true if the move captures a piece. True for normal
// captures, en passant and capture-promotions.
func (m Move) IsCapture() bool {
	return m.flagBits()&FlagCapture != 0
}

// IsEnPassant returns true if the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m.flagBits() == FlagEnPassant
}

// IsDoublePush returns true if the move is a pawn double push
func (m Move) IsDoublePush() bool {
	return m.flagBits() == FlagDoublePush
}

// IsCastling returns true if the move is a king-side or queen-side castle
func (m Move) IsCastling() bool {
	return m.flagBits()&^uint8(1) == FlagCastleKing
}

// IsCastleKing returns true if the move is king-side castling
func (m Move) IsCastleKing() bool {
	return m.flagBits() == FlagCastleKing
}

// IsCastleQueen returns true if the move is queen-side castling
func (m Move) IsCastleQueen() bool {
	return m.flagBits() == FlagCastleQueen
}

// IsQuiet returns true if the move is a plain, non-capturing, non-special move
func (m Move) IsQuiet() bool {
	f := m.flagBits()
	return f == FlagQuiet || f == FlagDoublePush
}

// PromotionType returns the promoted piece type. Must only be called when
// IsPromotion() is true; returns PtNone otherwise.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return PtNone
	}
	return Knight + PieceType(m.flagBits()&0b11)
}

// Kind returns the tagged view of the move's flags
func (m Move) Kind() MoveKind {
	switch {
	case m.IsPromotion():
		return KindPromotion
	case m.IsEnPassant():
		return KindEnPassant
	case m.IsCastleKing():
		return KindCastleKing
	case m.IsCastleQueen():
		return KindCastleQueen
	case m.IsCapture():
		return KindCapture
	case m.IsDoublePush():
		return KindDoublePush
	default:
		return KindQuiet
	}
}

// MoveOf returns the move unchanged - kept for symmetry with callers
// that previously stripped an embedded sort value.
func (m Move) MoveOf() Move {
	return m
}

// IsValid checks if the move has valid squares and, when a promotion,
// a valid promoted piece type. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() {
		return false
	}
	if m.IsPromotion() && !m.PromotionType().IsValid() {
		return false
	}
	return true
}

// String returns a human-readable representation of the move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  kind:%d  prom:%1s  (%d) }",
		m.StringUci(), m.Kind(), m.PromotionType().Char(), uint16(m))
}

// StringUci returns a UCI protocol compatible representation of the move
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}

// StringBits returns a string with the bit layout details of the move,
// useful for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Flags[%-0.4b] prom(%s) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.flagBits(), m.PromotionType().Char(),
		uint16(m))
}
