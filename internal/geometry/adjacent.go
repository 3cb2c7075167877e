package geometry

// OverlapRange returns the closed overlap of two door lines once both
// are expressed in the same coordinate frame, i.e. the set of offsets
// at which sliding one along the other still keeps them coincident.
// Two lines only coincide if they share Orientation and are collinear
// on the perpendicular axis; ok is false otherwise.
func OverlapRange(a, b DoorLine) (DoorLine, bool) {
	if a.Orientation != b.Orientation {
		return DoorLine{}, false
	}
	if a.Orientation == Vertical {
		if a.From.X != b.From.X {
			return DoorLine{}, false
		}
		lo := max(min(a.From.Y, a.To.Y), min(b.From.Y, b.To.Y))
		hi := min(max(a.From.Y, a.To.Y), max(b.From.Y, b.To.Y))
		if lo > hi {
			return DoorLine{}, false
		}
		return DoorLine{From: Point{X: a.From.X, Y: lo}, To: Point{X: a.From.X, Y: hi}, Orientation: Vertical}, true
	}
	if a.From.Y != b.From.Y {
		return DoorLine{}, false
	}
	lo := max(min(a.From.X, a.To.X), min(b.From.X, b.To.X))
	hi := min(max(a.From.X, a.To.X), max(b.From.X, b.To.X))
	if lo > hi {
		return DoorLine{}, false
	}
	return DoorLine{From: Point{X: lo, Y: a.From.Y}, To: Point{X: hi, Y: a.From.Y}, Orientation: Horizontal}, true
}

// OffsetsForDoorPair returns the set of translations of the door-b
// owner that make door a and door b coincide. For two point doors
// this is the single offset aligning them; for segment doors it is
// every slide position along the overlapping range.
func OffsetsForDoorPair(a, b DoorLine) []Point {
	if a.Orientation != b.Orientation {
		return nil
	}
	if a.Orientation == Vertical {
		dx := a.From.X - b.From.X
		aLo, aHi := min(a.From.Y, a.To.Y), max(a.From.Y, a.To.Y)
		bLo, bHi := min(b.From.Y, b.To.Y), max(b.From.Y, b.To.Y)
		loOffset := aLo - bHi
		hiOffset := aHi - bLo
		offsets := make([]Point, 0, hiOffset-loOffset+1)
		for dy := loOffset; dy <= hiOffset; dy++ {
			offsets = append(offsets, Point{X: dx, Y: dy})
		}
		return offsets
	}
	dy := a.From.Y - b.From.Y
	aLo, aHi := min(a.From.X, a.To.X), max(a.From.X, a.To.X)
	bLo, bHi := min(b.From.X, b.To.X), max(b.From.X, b.To.X)
	loOffset := aLo - bHi
	hiOffset := aHi - bLo
	offsets := make([]Point, 0, hiOffset-loOffset+1)
	for dx := loOffset; dx <= hiOffset; dx++ {
		offsets = append(offsets, Point{X: dx, Y: dy})
	}
	return offsets
}
