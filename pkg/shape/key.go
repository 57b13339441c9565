package shape

const span = 2*MaxCoord + 1

// encode maps a bounded cell onto a unique integer key.
func encode(c Cell) int64 {
	return int64(c.X+MaxCoord)*span + int64(c.Y+MaxCoord)
}

func decode(k int64) Cell {
	return Cell{X: int(k/span) - MaxCoord, Y: int(k%span) - MaxCoord}
}
