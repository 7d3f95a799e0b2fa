package riichi

import (
	"fmt"
	"slices"
	"strings"
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(SuitEnd, 0)   // 无效牌
	TileEast  Tile = MakeTile(SuitHonor, 0) // 东 1z
	TileSouth Tile = MakeTile(SuitHonor, 1) // 南 2z
	TileWest  Tile = MakeTile(SuitHonor, 2) // 西 3z
	TileNorth Tile = MakeTile(SuitHonor, 3) // 北 4z
	TileWhite Tile = MakeTile(SuitHonor, 4) // 白 5z
	TileGreen Tile = MakeTile(SuitHonor, 5) // 发 6z
	TileRed   Tile = MakeTile(SuitHonor, 6) // 中 7z
)

var honorNames = [7]string{"East", "South", "West", "North", "White", "Green", "Red"}

// Tile is a tile identity. Copies of the same tile compare equal and the
// natural integer order is suit-major, rank-minor.
type Tile int32

func MakeTile(suit ESuit, point int) Tile {
	return Tile(int(suit)<<8 | (point << 4) | 1)
}

// TileFromIndex maps a slot of the 34 tile kinds back to its tile.
func TileFromIndex(index int) Tile {
	if index < 0 || index >= TileKindCount {
		return TileNull
	}
	for s := SuitHonor; s >= SuitBegin; s-- {
		if index >= IndexBeginBySuit[s] {
			return MakeTile(s, index-IndexBeginBySuit[s])
		}
	}
	return TileNull
}

func (t Tile) Suit() ESuit {
	return ESuit((t >> 8) & 0x0F)
}

// Point is the zero based rank inside the suit.
func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

// Rank is the printed rank, 1-9 for numbered suits and 1-7 for honors.
func (t Tile) Rank() int {
	return t.Point() + 1
}

func (t Tile) Info() (ESuit, int) {
	return t.Suit(), t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf || t&0x0F != 1 {
		return false
	}
	s, p := t.Info()
	return s >= SuitBegin && s < SuitEnd && p < PointCountBySuit[s]
}

// Index is the slot of the tile among the 34 kinds.
func (t Tile) Index() int {
	return IndexBeginBySuit[t.Suit()] + t.Point()
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Suit() != SuitHonor
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && t.Suit() == SuitHonor
}

func (t Tile) IsWind() bool { // 风牌
	return t.IsHonor() && t.Point() < 4
}

func (t Tile) IsDragon() bool { // 三元牌
	return t.IsHonor() && t.Point() >= 4
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

// IsYaochu reports terminals and honors.
func (t Tile) IsYaochu() bool {
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张牌
	return t.IsSuit() && !t.IsTerminal()
}

// IsGreen reports tiles allowed in the all-green hand: 2/3/4/6/8 sou and the green dragon.
func (t Tile) IsGreen() bool {
	if t == TileGreen {
		return true
	}
	if t.Suit() != SuitSou || !t.IsValid() {
		return false
	}
	switch t.Rank() {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// Next is the tile a dora indicator points to. Numbered suits wrap 9 to 1,
// winds cycle east to north, dragons cycle white to red.
func (t Tile) Next() Tile {
	s, p := t.Info()
	switch {
	case !t.IsValid():
		return TileNull
	case s != SuitHonor:
		return MakeTile(s, (p+1)%9)
	case p < 4:
		return MakeTile(s, (p+1)%4)
	default:
		return MakeTile(s, 4+(p-4+1)%3)
	}
}

// ID is the two character identifier, rank digit then suit letter.
func (t Tile) ID() string {
	if !t.IsValid() {
		return ""
	}
	return string([]byte{byte('1' + t.Point()), suitLetters[t.Suit()]})
}

func (t Tile) String() string {
	return t.ID()
}

func (t Tile) Name() string {
	if t.IsHonor() {
		return honorNames[t.Point()]
	}
	return t.ID()
}

func (t Tile) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTile, int32(t))
	}
	return []byte(t.ID()), nil
}

func (t *Tile) UnmarshalText(text []byte) error {
	tile, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = tile
	return nil
}

// ParseTile parses a two character identifier such as "5s" or "7z".
func ParseTile(id string) (Tile, error) {
	if len(id) != 2 {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, id)
	}
	suit := suitFromLetter(id[1])
	if suit == SuitUndefined || id[0] < '1' || id[0] > '9' {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, id)
	}
	point := int(id[0] - '1')
	if point >= PointCountBySuit[suit] {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, id)
	}
	return MakeTile(suit, point), nil
}

// ParseTiles accepts both spaced identifiers ("1m 2m 3m") and grouped
// notation where a suit letter closes a run of digits ("123m456p77z").
func ParseTiles(s string) ([]Tile, error) {
	var (
		tiles   []Tile
		pending []byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '1' && c <= '9':
			pending = append(pending, c)
		case c == ' ' || c == ',' || c == '\t':
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: digits without suit in %q", ErrInvalidTile, s)
			}
		default:
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit without digits in %q", ErrInvalidTile, s)
			}
			for _, d := range pending {
				t, err := ParseTile(string([]byte{d, c}))
				if err != nil {
					return nil, err
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: digits without suit in %q", ErrInvalidTile, s)
	}
	return tiles, nil
}

// MustParseTiles panics on malformed input; meant for fixtures and tables.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

func MustParseTile(id string) Tile {
	t, err := ParseTile(id)
	if err != nil {
		panic(err)
	}
	return t
}

func suitFromLetter(c byte) ESuit {
	for s, l := range suitLetters {
		if l == c {
			return ESuit(s)
		}
	}
	return SuitUndefined
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.ID())
	}
	return strings.Join(tileNames, " ")
}

// SortedTiles returns a sorted copy.
func SortedTiles(tiles []Tile) []Tile {
	res := slices.Clone(tiles)
	slices.Sort(res)
	return res
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// AllTiles lists the 34 tile kinds in sort order.
func AllTiles() []Tile {
	res := make([]Tile, 0, TileKindCount)
	for i := range TileKindCount {
		res = append(res, TileFromIndex(i))
	}
	return res
}
