// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/quillboard/chesscore/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position and game status from a FEN description. ztable is the
// Zobrist table the resulting Position hashes itself against; chess960 selects the
// king-takes-own-rook castling convention and rook-from-square discovery used by
// board.NewPosition. Pass the same ztable to every Decode call whose positions will be
// hashed, compared or looked up in the same game tree.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string, ztable *board.ZobristTable, chess960 bool) (*board.Position, int, int, error) {
	// A FEN record contains six fields. The separator between fields is a
	// space. The fields are:

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, 0, 0, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	var pieces []board.Placement

	f, rk := 0, int(board.Rank8)
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			// "/" separate ranks.

			f = 0
			rk--

		case unicode.IsDigit(r):
			// Blank squares are noted using digits 1 through 8 (the number of blank squares).

			f += int(r - '0')

		case unicode.IsLetter(r):
			// Following the Standard Algebraic Notation (SAN), each piece is -
			// identified by a single letter taken from the standard English names -
			// (pawn = "P", knight = "N", bishop = "B", rook = "R", queen = "Q" and -
			// king = "K")[1]. White pieces are designated using upper-case letters -
			// ("PNBRQK") while Black take lowercase ("pnbrqk").

			pc, ok := parsePiece(r)
			if !ok {
				return nil, 0, 0, fmt.Errorf("invalid piece '%v' in FEN: '%v'", r, fen)
			}
			if f > int(board.FileH) || rk < int(board.Rank1) {
				return nil, 0, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(board.File(f), board.Rank(rk)), Piece: pc})
			f++

		default:
			return nil, 0, 0, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if rk != int(board.Rank1) || f != int(board.NumFiles) {
		return nil, 0, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}

	// (3) Castling availability. If neither side can castle, this is
	// "-". Otherwise, this has one or more letters: "K" (White can castle
	// kingside), "Q" (White can castle queenside), "k" (Black can castle
	// kingside), and/or "q" (Black can castle queenside).

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}

	// (4) En passant target square in algebraic notation. If there's no en
	// passant target square, this is "-". If a pawn has just made a
	// 2-square move, this is the position "behind" the pawn.

	ep := board.NoSquare
	if parts[3] != "-" {
		s, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		ep = s
	}

	// (5) Halfmove clock: This is the number of halfmoves since the last pawn
	// advance or capture. This is used to determine if a draw can be
	// claimed under the fifty move rule.

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 {
		return nil, 0, 0, fmt.Errorf("invalid halfmove in FEN: '%v'", fen)
	}

	// (6) Fullmove number: The number of the full move. It starts at 1, and is
	// incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 0 {
		return nil, 0, 0, fmt.Errorf("invalid full moves in FEN: '%v'", fen)
	}

	pos, err := board.NewPosition(pieces, castling, ep, active, chess960, ztable)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid position in FEN '%v': %w", fen, err)
	}
	return pos, np, fm, nil
}

// Encode encodes the position and game data in FEN notation.
func Encode(pos *board.Position, noprogress, fullmoves int) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.FileA; f <= board.FileH; f++ {
			pc := pos.PieceOn(board.NewSquare(f, r))
			if pc == board.NoPiece {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}

			sb.WriteRune(printPiece(pc))
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}

		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	turn := printColor(pos.SideToMove())
	castling := pos.CastlingRights().String()

	ep := "-"
	if sq := pos.EnPassantSquare(); sq != board.NoSquare {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, castling, ep, noprogress, fullmoves)
}

func parseCastling(str string) (board.CastlingRight, bool) {
	var ret board.CastlingRight

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSide
		case 'Q':
			ret |= board.WhiteQueenSide
		case 'k':
			ret |= board.BlackKingSide
		case 'q':
			ret |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Piece, bool) {
	pt, ok := board.ParsePieceType(r)
	if !ok {
		return board.NoPiece, false
	}
	c := board.Black
	if unicode.IsUpper(r) {
		c = board.White
	}
	return board.MakePiece(c, pt), true
}

func printPiece(p board.Piece) rune {
	r := []rune(p.Type().String())[0]
	if p.Color() == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
