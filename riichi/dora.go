package riichi

// DoraTiles 指示牌对应的宝牌
func DoraTiles(indicators []Tile) []Tile {
	doras := make([]Tile, 0, len(indicators))
	for _, t := range indicators {
		doras = append(doras, t.Next())
	}
	return doras
}

// CountDora 每张牌每个指示牌各计一次, 含副露牌
func CountDora(tiles []Tile, indicators []Tile) int {
	c := countTiles(tiles)
	n := 0
	for _, d := range DoraTiles(indicators) {
		if d.IsValid() {
			n += int(c[d.Index()])
		}
	}
	return n
}
