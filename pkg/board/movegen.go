package board

// Selector chooses which subset of pseudo-legal (or, for Legal, fully legal) moves
// Generate produces.
type Selector int

const (
	// Captures generates all pseudo-legal captures and queen promotions (by push or capture).
	Captures Selector = iota
	// Quiets generates all pseudo-legal non-capturing moves and underpromotions (by push or
	// capture).
	Quiets
	// QuietChecks generates pseudo-legal non-capturing moves that give check. Assumes the
	// side to move is not currently in check.
	QuietChecks
	// Evasions generates all pseudo-legal moves when the side to move is in check.
	Evasions
	// NonEvasions generates all pseudo-legal moves when the side to move is not in check.
	NonEvasions
	// Legal generates all fully legal moves, in or out of check.
	Legal
)

// Generate appends the selected class of moves for the position's side to move to list.
// Captures, Quiets, QuietChecks and NonEvasions assume the mover is not in check; Evasions
// assumes it is; Legal handles either case and filters down to fully legal moves.
func Generate(pos *Position, list *MoveList, sel Selector) {
	switch sel {
	case QuietChecks:
		generateQuietChecks(pos, list)
	case Evasions:
		generateEvasions(pos, list)
	case Legal:
		generateLegal(pos, list)
	default:
		us := pos.SideToMove()
		var target Bitboard
		switch sel {
		case Captures:
			target = pos.PiecesByColor(us.Opponent())
		case Quiets:
			target = ^pos.Occupied()
		case NonEvasions:
			target = ^pos.PiecesByColor(us)
		}
		generateAll(pos, list, us, sel, target)
	}
}

// GenerateLegal is sugar for Generate(pos, list, Legal), for callers that only ever want
// fully legal moves and would otherwise spell out the selector at every call site.
func GenerateLegal(pos *Position, list *MoveList) {
	Generate(pos, list, Legal)
}

// generateAll generates moves landing on target for every piece type, plus king moves and
// castling where the selector allows them. Shared by the Captures/Quiets/NonEvasions direct
// paths and by generateEvasions/generateQuietChecks, which compute target themselves.
func generateAll(pos *Position, list *MoveList, us Color, sel Selector, target Bitboard) {
	generatePawnMoves(pos, list, us, sel, target)
	generatePieceMoves(pos, list, Knight, target, sel == QuietChecks)
	generatePieceMoves(pos, list, Bishop, target, sel == QuietChecks)
	generatePieceMoves(pos, list, Rook, target, sel == QuietChecks)
	generatePieceMoves(pos, list, Queen, target, sel == QuietChecks)

	if sel != QuietChecks && sel != Evasions {
		ksq := pos.KingSquare(us)
		b := pos.AttacksFrom(King, ksq) & target
		for b != 0 {
			to := b.LSB()
			b = b.ResetLSB()
			list.push(NewMove(ksq, to))
		}
	}

	if sel != Captures && sel != Evasions && pos.CastlingRights().ForColor(us) != NoCastling {
		generateCastling(pos, list, us, KingSide, sel == QuietChecks)
		generateCastling(pos, list, us, QueenSide, sel == QuietChecks)
	}
}

// generatePieceMoves generates moves for every piece of type pt landing on target. When
// checks is set (QuietChecks), it additionally restricts to moves that give check, skipping
// discovered-check candidates entirely (those are handled separately; see
// generateQuietChecks) and pruning sliders whose full pseudo-attack set can't reach a check
// square before paying for the (occupancy-dependent) real attack computation.
func generatePieceMoves(pos *Position, list *MoveList, pt PieceType, target Bitboard, checks bool) {
	fromBB := pos.PiecesCP(pos.SideToMove(), pt)
	for fromBB != 0 {
		from := fromBB.LSB()
		fromBB = fromBB.ResetLSB()

		if checks {
			if (pt == Bishop || pt == Rook || pt == Queen) && pseudoAttacks[pt][from]&target&pos.CheckSquares(pt) == 0 {
				continue
			}
			if pos.DiscoveredCheckCandidates()&BitMask(from) != 0 {
				continue
			}
		}

		b := pos.AttacksFrom(pt, from) & target
		if checks {
			b &= pos.CheckSquares(pt)
		}
		for b != 0 {
			to := b.LSB()
			b = b.ResetLSB()
			list.push(NewMove(from, to))
		}
	}
}

// generateCastling generates the (at most one) castling move for the given color/side, if
// the right is held, unimpeded, and the king's transit squares aren't attacked. checks
// restricts to the move only if it gives check (used by the QuietChecks selector).
func generateCastling(pos *Position, list *MoveList, us Color, side CastlingSide, checks bool) {
	cr := CastlingRightFor(us, side)
	if !pos.HasCastlingRight(cr) || pos.CastlingImpeded(cr) {
		return
	}

	kfrom := pos.KingSquare(us)
	rfrom := pos.CastlingRookSquare(cr)
	kto := NewSquare(FileG, kfrom.Rank())
	if side == QueenSide {
		kto = NewSquare(FileC, kfrom.Rank())
	}

	lo, hi := kfrom, kto
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		if s != kfrom && pos.AttackersTo(s)&pos.PiecesByColor(us.Opponent()) != 0 {
			return
		}
	}

	// Chess-960: sliding the king through its own rook can unmask a check from behind the
	// rook's original square, which the transit-square scan above never looks at.
	if pos.IsChess960() {
		occ := pos.Occupied() &^ BitMask(rfrom)
		if RookAttackboard(occ, kto)&pos.PiecesCPP(us.Opponent(), Rook, Queen) != 0 {
			return
		}
	}

	m := NewCastling(kfrom, rfrom)
	if checks && !pos.GivesCheck(m) {
		return
	}
	list.push(m)
}

// makePromotions appends the promotion moves for a pawn landing on to by stepping in the
// given direction, restricted to the promoted piece types the selector cares about: Queen
// for captures/evasions/non-evasions, Rook/Bishop/Knight for quiets/evasions/non-evasions, and (for
// QuietChecks) a Knight promotion iff it would check the defending king directly.
func makePromotions(list *MoveList, sel Selector, to, ksq Square, direction Direction) {
	from := to.Add(-direction)

	if sel == Captures || sel == Evasions || sel == NonEvasions {
		list.push(NewPromotion(from, to, Queen))
	}
	if sel == Quiets || sel == Evasions || sel == NonEvasions {
		list.push(NewPromotion(from, to, Rook))
		list.push(NewPromotion(from, to, Bishop))
		list.push(NewPromotion(from, to, Knight))
	}
	if sel == QuietChecks && pseudoAttacks[Knight][to]&BitMask(ksq) != 0 {
		list.push(NewPromotion(from, to, Knight))
	}
}

// generatePawnMoves generates pushes, promotions, captures and en passant captures for the
// side-to-move's pawns, constrained by target the way generateAll's other callers are.
func generatePawnMoves(pos *Position, list *MoveList, us Color, sel Selector, target Bitboard) {
	them := us.Opponent()
	rank8 := PawnPromotionRank(us)
	rank7 := relativeRankBB(us, Rank7)
	rank3 := relativeRankBB(us, Rank3)

	up := North.Relative(us)
	right := NorthEast.Relative(us)
	left := NorthWest.Relative(us)

	pawns := pos.PiecesCP(us, Pawn)
	pawnsOn7 := pawns & rank7
	pawnsNot7 := pawns &^ rank7

	var enemies Bitboard
	switch sel {
	case Evasions:
		enemies = pos.PiecesByColor(them) & target
	case Captures:
		enemies = target
	default:
		enemies = pos.PiecesByColor(them)
	}

	// emptySquares is threaded through both the pushes and promotions sections below,
	// exactly as upstream computes it: set once here (Captures never touches it, and
	// resets it itself below), then only further restricted (never recomputed) for
	// Evasions in the promotions section.
	var emptySquares Bitboard

	// Single and double pushes (no captures): skipped outright for Captures.
	if sel != Captures {
		if sel == Quiets || sel == QuietChecks {
			emptySquares = target
		} else {
			emptySquares = ^pos.Occupied()
		}

		b1 := shift(pawnsNot7, up) & emptySquares
		b2 := shift(b1&rank3, up) & emptySquares

		if sel == Evasions {
			b1 &= target
			b2 &= target
		}

		if sel == QuietChecks {
			b1 &= pos.CheckSquares(Pawn)
			b2 &= pos.CheckSquares(Pawn)

			// Pushes that aren't themselves direct pawn checks can still discover one.
			if dc := pos.DiscoveredCheckCandidates() & pawnsNot7; dc != 0 {
				ksqFile := pos.KingSquare(them).File()
				dc1 := shift(dc, up) & emptySquares &^ BitFile(ksqFile)
				dc2 := shift(dc1&rank3, up) & emptySquares
				b1 |= dc1
				b2 |= dc2
			}
		}

		for b1 != 0 {
			to := b1.LSB()
			b1 = b1.ResetLSB()
			list.push(NewMove(to.Add(-up), to))
		}
		for b2 != 0 {
			to := b2.LSB()
			b2 = b2.ResetLSB()
			list.push(NewMove(to.Add(-up).Add(-up), to))
		}
	}

	// Promotions: pushes and captures from the 7th rank.
	if pawnsOn7 != 0 && (sel != Evasions || target&rank8 != 0) {
		if sel == Captures {
			emptySquares = ^pos.Occupied()
		}
		if sel == Evasions {
			emptySquares &= target
		}

		ksq := pos.KingSquare(them)

		b1 := shift(pawnsOn7, right) & enemies
		for b1 != 0 {
			to := b1.LSB()
			b1 = b1.ResetLSB()
			makePromotions(list, sel, to, ksq, right)
		}
		b2 := shift(pawnsOn7, left) & enemies
		for b2 != 0 {
			to := b2.LSB()
			b2 = b2.ResetLSB()
			makePromotions(list, sel, to, ksq, left)
		}
		b3 := shift(pawnsOn7, up) & emptySquares
		for b3 != 0 {
			to := b3.LSB()
			b3 = b3.ResetLSB()
			makePromotions(list, sel, to, ksq, up)
		}
	}

	// Captures, including en passant.
	if sel == Captures || sel == Evasions || sel == NonEvasions {
		b1 := shift(pawnsNot7, right) & enemies
		for b1 != 0 {
			to := b1.LSB()
			b1 = b1.ResetLSB()
			list.push(NewMove(to.Add(-right), to))
		}
		b2 := shift(pawnsNot7, left) & enemies
		for b2 != 0 {
			to := b2.LSB()
			b2 = b2.ResetLSB()
			list.push(NewMove(to.Add(-left), to))
		}

		if ep := pos.EnPassantSquare(); ep != NoSquare {
			// In check from a pawn, capturing it en passant is only an evasion if the
			// checker itself (the square behind ep) is the blocker target demands.
			if sel == Evasions && target&BitMask(ep.Add(-up)) == 0 {
				return
			}
			b := pawnsNot7 & PawnCaptureboard(them, BitMask(ep))
			for b != 0 {
				from := b.LSB()
				b = b.ResetLSB()
				list.push(NewEnPassant(from, ep))
			}
		}
	}
}

// generateQuietChecks generates non-capturing moves of the side to move that give check:
// moves of pieces (other than pawns, handled inline by generatePawnMoves) sitting on a
// discovered-check line, including king moves off that line, plus the regular QuietChecks
// pass over all piece types.
func generateQuietChecks(pos *Position, list *MoveList) {
	us := pos.SideToMove()
	oksq := pos.KingSquare(us.Opponent())

	dc := pos.DiscoveredCheckCandidates()
	for dc != 0 {
		from := dc.LSB()
		dc = dc.ResetLSB()

		pt := pos.PieceOn(from).Type()
		if pt == Pawn {
			continue
		}

		b := pos.AttacksFrom(pt, from) &^ pos.Occupied()
		if pt == King {
			b &^= pseudoAttacks[Queen][oksq]
		}
		for b != 0 {
			to := b.LSB()
			b = b.ResetLSB()
			list.push(NewMove(from, to))
		}
	}

	generateAll(pos, list, us, QuietChecks, ^pos.Occupied())
}

// generateEvasions generates every pseudo-legal move available when the side to move is in
// check: king moves off squares a checking slider would still cover if the king stayed on
// its ray, plus -- when exactly one piece gives check -- any move blocking the checking ray
// or capturing the checker.
func generateEvasions(pos *Position, list *MoveList) {
	us := pos.SideToMove()
	ksq := pos.KingSquare(us)

	sliders := pos.Checkers() &^ pos.PiecesByTypes(Knight, Pawn)
	var sliderAttacks Bitboard
	for sliders != 0 {
		checkSq := sliders.LSB()
		sliders = sliders.ResetLSB()
		sliderAttacks |= LineBb(checkSq, ksq) &^ BitMask(checkSq)
	}

	b := pos.AttacksFrom(King, ksq) &^ pos.PiecesByColor(us) &^ sliderAttacks
	for b != 0 {
		to := b.LSB()
		b = b.ResetLSB()
		list.push(NewMove(ksq, to))
	}

	if pos.Checkers().MoreThanOne() {
		return // double check: only king moves are legal.
	}

	checkSq := pos.Checkers().LSB()
	target := BetweenBb(checkSq, ksq) | BitMask(checkSq)

	generateAll(pos, list, us, Evasions, target)
}

// generateLegal generates every legal move: pseudo-legal moves (evasions if in check,
// otherwise non-evasions) filtered down by Position.Legal, skipped entirely for moves that
// can't possibly be illegal (the mover isn't pinned, and it's neither a king move nor an en
// passant capture).
func generateLegal(pos *Position, list *MoveList) {
	us := pos.SideToMove()
	ksq := pos.KingSquare(us)
	pinned := pos.PinnedPieces(us)

	var pseudo MoveList
	if pos.Checkers() != 0 {
		generateEvasions(pos, &pseudo)
	} else {
		generateAll(pos, &pseudo, us, NonEvasions, ^pos.PiecesByColor(us))
	}

	for _, em := range pseudo.Moves() {
		m := em.Move
		if (pinned&BitMask(m.From()) == 0 && m.From() != ksq && m.Type() != EnPassant) || pos.Legal(m) {
			list.push(m)
		}
	}
}

// relativeRankBB returns the bitboard of the rank r as seen from color c's side, i.e. the
// same rank BitRank would return for White mirrored for Black.
func relativeRankBB(c Color, r Rank) Bitboard {
	if c == White {
		return BitRank(r)
	}
	return BitRank(Rank(int(Rank8) - int(r)))
}

// shift translates every set bit of b by d, masking off the file-wraparound results that a
// raw arithmetic shift would otherwise produce at the board edges. North/South never wrap;
// the four diagonal directions each remove the one file whose squares would have wrapped.
func shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case NorthEast:
		return (b << 9) &^ BitFile(FileA)
	case NorthWest:
		return (b << 7) &^ BitFile(FileH)
	case SouthEast:
		return (b >> 7) &^ BitFile(FileA)
	case SouthWest:
		return (b >> 9) &^ BitFile(FileH)
	default:
		panic("board: unsupported shift direction")
	}
}
