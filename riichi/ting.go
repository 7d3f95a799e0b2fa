package riichi

import "fmt"

// Waits 听牌: 返回加入后能组成和牌形的所有牌, 不判断是否有役.
// 四张已全部在手 (含副露) 的牌不算听
func Waits(tiles []Tile, melds []Meld) ([]Tile, error) {
	if len(melds) > GroupCountNormal {
		return nil, fmt.Errorf("%w: %d melds", ErrInvalidHand, len(melds))
	}
	for _, m := range melds {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	for _, t := range tiles {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidTile, int32(t))
		}
	}
	if want := TileCountWin - 1 - 3*len(melds); len(tiles) != want {
		return nil, fmt.Errorf("%w: %d concealed tiles with %d melds, want %d", ErrInvalidHand, len(tiles), len(melds), want)
	}

	hand := Hand{Tiles: tiles, Melds: melds}
	held := countTiles(hand.AllTiles())
	c := countTiles(tiles)
	needed := GroupCountNormal - len(melds)

	waits := make([]Tile, 0)
	for i := range TileKindCount {
		if held[i] >= SameTileCount {
			continue
		}
		next := c
		next[i]++
		if isWinningShape(next, needed) {
			waits = append(waits, TileFromIndex(i))
		}
	}
	return waits, nil
}

// IsTenpai 是否听牌, 非法手牌视为未听
func IsTenpai(tiles []Tile, melds []Meld) bool {
	waits, err := Waits(tiles, melds)
	return err == nil && len(waits) > 0
}
