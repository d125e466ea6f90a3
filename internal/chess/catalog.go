package chess

// CanReach reports whether a piece of the given kind and colour standing on
// from could geometrically move to to on an empty board. Occupancy is not
// consulted: the pawn diagonal is reported reachable even though it is only
// usable as a capture, and sliding pieces ignore blockers.
func CanReach(kind PieceKind, colour Colour, from, to Square) bool {
	if !from.OnBoard() || !to.OnBoard() || from == to {
		return false
	}

	dx := to.File - from.File
	dy := to.Rank - from.Rank

	switch kind {
	case Pawn:
		return pawnShape(colour, from, dx, dy)
	case Knight:
		return abs(dx*dy) == 2
	case Bishop:
		return abs(dx) == abs(dy)
	case Rook:
		return dx == 0 || dy == 0
	case Queen:
		return abs(dx) == abs(dy) || dx == 0 || dy == 0
	case King:
		return abs(dx) <= 1 && abs(dy) <= 1
	}
	return false
}

// pawnShape covers the single step, the double step from the starting rank
// and the forward diagonal.
func pawnShape(colour Colour, from Square, dx, dy int) bool {
	dir := PawnDirection(colour)
	switch {
	case dx == 0 && dy == dir:
		return true
	case dx == 0 && dy == 2*dir:
		return from.Rank == PawnRank(colour)
	case abs(dx) == 1 && dy == dir:
		return true
	}
	return false
}

// IsSlider returns true for pieces whose moves can be blocked part way.
func IsSlider(kind PieceKind) bool {
	return kind == Bishop || kind == Rook || kind == Queen
}

// StepToward returns the unit step (df, dr) from one square toward another
// along a rank, file or diagonal. Both components are zero when the squares
// are not aligned.
func StepToward(from, to Square) (df, dr int) {
	dx := to.File - from.File
	dy := to.Rank - from.Rank
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return 0, 0
	}
	return sign(dx), sign(dy)
}
