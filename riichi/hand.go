package riichi

import "fmt"

// counts 34种牌各自的张数. 按值传递, 递归分支各持一份
type counts [TileKindCount]int8

func countTiles(tiles []Tile) counts {
	var c counts
	for _, t := range tiles {
		if t.IsValid() {
			c[t.Index()]++
		}
	}
	return c
}

func (c *counts) total() int {
	n := 0
	for _, v := range c {
		n += int(v)
	}
	return n
}

// Hand 和牌时的手牌. Tiles 为门内牌, 包含和牌张
type Hand struct {
	Tiles   []Tile
	Melds   []Meld
	WinTile Tile
}

// IsConcealed 门清 (暗杠不破门清)
func (h *Hand) IsConcealed() bool {
	for _, m := range h.Melds {
		if !m.IsConcealed() {
			return false
		}
	}
	return true
}

// AllTiles 门内牌加副露牌
func (h *Hand) AllTiles() []Tile {
	all := make([]Tile, 0, len(h.Tiles)+len(h.Melds)*4)
	all = append(all, h.Tiles...)
	for _, m := range h.Melds {
		all = append(all, m.Tiles...)
	}
	return all
}

func (h *Hand) MeldGroups() []Group {
	groups := make([]Group, 0, len(h.Melds))
	for _, m := range h.Melds {
		groups = append(groups, m.Group())
	}
	return groups
}

func (h *Hand) Validate() error {
	if len(h.Melds) > GroupCountNormal {
		return fmt.Errorf("%w: %d melds", ErrInvalidHand, len(h.Melds))
	}
	for _, m := range h.Melds {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, t := range h.Tiles {
		if !t.IsValid() {
			return fmt.Errorf("%w: %d", ErrInvalidTile, int32(t))
		}
	}
	if want := TileCountWin - 3*len(h.Melds); len(h.Tiles) != want {
		return fmt.Errorf("%w: %d concealed tiles with %d melds, want %d", ErrInvalidHand, len(h.Tiles), len(h.Melds), want)
	}
	if !h.WinTile.IsValid() {
		return fmt.Errorf("%w: winning tile %d", ErrInvalidTile, int32(h.WinTile))
	}
	c := countTiles(h.Tiles)
	if c[h.WinTile.Index()] == 0 {
		return fmt.Errorf("%w: winning tile %s not in hand", ErrInvalidHand, h.WinTile)
	}
	all := countTiles(h.AllTiles())
	for i, n := range all {
		if n > SameTileCount {
			return fmt.Errorf("%w: %d copies of %s", ErrInvalidHand, n, TileFromIndex(i))
		}
	}
	return nil
}
