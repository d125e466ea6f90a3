package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	df, dr := chess.StepToward(from, to)
	if df == 0 && dr == 0 {
		return false
	}

	cur := from.Offset(df, dr)
	for cur != to {
		if !board.IsEmpty(cur) {
			return false
		}
		cur = cur.Offset(df, dr)
	}
	return true
}
