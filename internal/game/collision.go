package game

// Collision predicates. All checks are pure functions over a snapshot of
// post-advance state; any single hit ends the tick in failure, so
// evaluation order does not matter.

// HitsBounds reports whether the given row touches the ceiling or floor.
func HitsBounds(position float64, numRows int) bool {
	return position <= 0 || position >= float64(numRows-1)
}

// HitsObstacle reports whether an actor at (actorColumn, position) crashes
// into the obstacle. The actor is in the obstacle's horizontal band when
// its column is within radius+1 of the pipe center; inside the band it is
// safe only strictly one row inside the opening edges.
func HitsObstacle(position float64, actorColumn int, o *Obstacle) bool {
	if actorColumn < o.CenterColumn()-o.Radius()-1 ||
		actorColumn > o.CenterColumn()+o.Radius()+1 {
		return false
	}
	return position < o.OpeningTopRow()+1 || position > o.OpeningBottomRow()-1
}
