package riichi

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Meld 副露. From 为被鸣牌的座位, 暗杠为 SeatNull
type Meld struct {
	Type  EMeldType
	Tiles []Tile
	From  int32
}

func NewChow(first Tile, from int32) Meld {
	s, p := first.Info()
	return Meld{Type: MeldTypeChow, Tiles: []Tile{first, MakeTile(s, p+1), MakeTile(s, p+2)}, From: from}
}

func NewPon(tile Tile, from int32) Meld {
	return Meld{Type: MeldTypePon, Tiles: makeTiles(tile, 3), From: from}
}

func NewKon(tile Tile, from int32) Meld {
	return Meld{Type: MeldTypeKon, Tiles: makeTiles(tile, 4), From: from}
}

// IsConcealed 暗杠不破门清
func (m Meld) IsConcealed() bool {
	return m.Type == MeldTypeKon && m.From == SeatNull
}

func (m Meld) Validate() error {
	for _, t := range m.Tiles {
		if !t.IsValid() {
			return fmt.Errorf("%w: tile %d in %s", ErrInvalidMeld, int32(t), m)
		}
	}
	if m.From < SeatNull || m.From >= NP4 {
		return fmt.Errorf("%w: source seat %d", ErrInvalidMeld, m.From)
	}
	tiles := SortedTiles(m.Tiles)
	switch m.Type {
	case MeldTypeChow:
		if len(tiles) != 3 || !isSequence(tiles[0], tiles[1], tiles[2]) {
			return fmt.Errorf("%w: chow %s", ErrInvalidMeld, TilesName(m.Tiles))
		}
	case MeldTypePon:
		if len(tiles) != 3 || tiles[0] != tiles[2] {
			return fmt.Errorf("%w: pon %s", ErrInvalidMeld, TilesName(m.Tiles))
		}
	case MeldTypeKon:
		if len(tiles) != 4 || tiles[0] != tiles[3] {
			return fmt.Errorf("%w: kon %s", ErrInvalidMeld, TilesName(m.Tiles))
		}
	default:
		return fmt.Errorf("%w: type %d", ErrInvalidMeld, m.Type)
	}
	if m.Type != MeldTypeKon && m.From == SeatNull {
		return fmt.Errorf("%w: open meld without source seat", ErrInvalidMeld)
	}
	return nil
}

// ParseMeld 解析 "555z@2" 形式: 牌型自动识别, @ 后为被鸣牌的座位. 无座位的四张为暗杠
func ParseMeld(s string) (Meld, error) {
	tilePart, seatPart, hasSeat := strings.Cut(s, "@")
	tiles, err := ParseTiles(tilePart)
	if err != nil {
		return Meld{}, err
	}
	m := Meld{Tiles: tiles, From: SeatNull}
	if hasSeat {
		seat, err := strconv.Atoi(seatPart)
		if err != nil {
			return Meld{}, fmt.Errorf("%w: seat %q", ErrInvalidMeld, seatPart)
		}
		m.From = int32(seat)
	}
	sorted := SortedTiles(tiles)
	switch {
	case len(sorted) == 4:
		m.Type = MeldTypeKon
	case len(sorted) == 3 && sorted[0] == sorted[2]:
		m.Type = MeldTypePon
	case len(sorted) == 3:
		m.Type = MeldTypeChow
	}
	if err := m.Validate(); err != nil {
		return Meld{}, err
	}
	return m, nil
}

// Group 返回副露对应的面子
func (m Meld) Group() Group {
	g := Group{Tile: slices.Min(m.Tiles), Open: !m.IsConcealed(), Meld: true}
	switch m.Type {
	case MeldTypeChow:
		g.Type = GroupTypeSequence
	case MeldTypePon:
		g.Type = GroupTypeTriplet
	case MeldTypeKon:
		g.Type = GroupTypeQuad
	}
	return g
}

func (m Meld) String() string {
	var name string
	switch m.Type {
	case MeldTypeChow:
		name = "chow"
	case MeldTypePon:
		name = "pon"
	case MeldTypeKon:
		name = "kon"
		if m.IsConcealed() {
			name = "ankan"
		}
	default:
		name = "none"
	}
	return name + "(" + TilesName(SortedTiles(m.Tiles)) + ")"
}

// Group 面子或雀头. 顺子的 Tile 为最小的那张
type Group struct {
	Type EGroupType
	Tile Tile
	Open bool // 明
	Meld bool // 来自副露
}

func (g Group) Tiles() []Tile {
	switch g.Type {
	case GroupTypePair:
		return makeTiles(g.Tile, 2)
	case GroupTypeTriplet:
		return makeTiles(g.Tile, 3)
	case GroupTypeQuad:
		return makeTiles(g.Tile, 4)
	case GroupTypeSequence:
		s, p := g.Tile.Info()
		return []Tile{g.Tile, MakeTile(s, p+1), MakeTile(s, p+2)}
	}
	return nil
}

func (g Group) Contains(t Tile) bool {
	return slices.Contains(g.Tiles(), t)
}

// IsTriplet 刻子或杠子
func (g Group) IsTriplet() bool {
	return g.Type == GroupTypeTriplet || g.Type == GroupTypeQuad
}

func (g Group) IsSequence() bool {
	return g.Type == GroupTypeSequence
}

func (g Group) IsPair() bool {
	return g.Type == GroupTypePair
}

// HasYaochu 含幺九牌
func (g Group) HasYaochu() bool {
	return slices.ContainsFunc(g.Tiles(), Tile.IsYaochu)
}

// HasTerminal 含老头牌
func (g Group) HasTerminal() bool {
	return slices.ContainsFunc(g.Tiles(), Tile.IsTerminal)
}

func (g Group) String() string {
	var sb strings.Builder
	if g.Open {
		sb.WriteString("open ")
	}
	sb.WriteString(g.Type.String())
	sb.WriteString("(")
	sb.WriteString(TilesName(g.Tiles()))
	sb.WriteString(")")
	return sb.String()
}

func isSequence(a, b, c Tile) bool {
	if !a.IsSuit() || a.Suit() != b.Suit() || a.Suit() != c.Suit() {
		return false
	}
	return b.Point() == a.Point()+1 && c.Point() == a.Point()+2
}
