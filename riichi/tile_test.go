package riichi_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestParseTile(t *testing.T) {
	tile, err := riichi.ParseTile("5s")
	if err != nil {
		t.Fatalf("ParseTile(5s) error: %v", err)
	}
	if tile.ID() != "5s" {
		t.Errorf("ID() = %q, want 5s", tile.ID())
	}
	if tile.Suit() != riichi.SuitSou || tile.Rank() != 5 {
		t.Errorf("suit, rank = %v, %d, want SuitSou, 5", tile.Suit(), tile.Rank())
	}
}

func TestTileRoundTrip(t *testing.T) {
	tiles := riichi.AllTiles()
	if len(tiles) != riichi.TileKindCount {
		t.Fatalf("AllTiles() len = %d, want %d", len(tiles), riichi.TileKindCount)
	}
	for i, tile := range tiles {
		got, err := riichi.ParseTile(tile.ID())
		if err != nil || got != tile {
			t.Errorf("ParseTile(%q) = %v, %v, want %v", tile.ID(), got, err, tile)
		}
		if tile.Index() != i || riichi.TileFromIndex(i) != tile {
			t.Errorf("index of %s = %d, want %d", tile, tile.Index(), i)
		}
		if i > 0 && tiles[i-1] >= tile {
			t.Errorf("%s does not sort after %s", tile, tiles[i-1])
		}
	}
}

func TestParseTileInvalid(t *testing.T) {
	for _, id := range []string{"", "5", "0m", "8z", "5x", "55m", "m5"} {
		t.Run(id, func(t *testing.T) {
			if _, err := riichi.ParseTile(id); !errors.Is(err, riichi.ErrInvalidTile) {
				t.Errorf("ParseTile(%q) error = %v, want ErrInvalidTile", id, err)
			}
		})
	}
}

func TestParseTiles(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "123m456p77z", want: "1m 2m 3m 4p 5p 6p 7z 7z"},
		{in: "1m 2m, 3m", want: "1m 2m 3m"},
		{in: "", want: ""},
		{in: "12", wantErr: true},
		{in: "12 m", wantErr: true},
		{in: "m", wantErr: true},
		{in: "89z", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			tiles, err := riichi.ParseTiles(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseTiles(%q) = %v, want error", tc.in, tiles)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTiles(%q) error: %v", tc.in, err)
			}
			if got := riichi.TilesName(tiles); got != tc.want {
				t.Errorf("ParseTiles(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTileClassify(t *testing.T) {
	testCases := []struct {
		id                                    string
		terminal, honor, yaochu, simple, green bool
	}{
		{id: "1m", terminal: true, yaochu: true},
		{id: "9p", terminal: true, yaochu: true},
		{id: "5p", simple: true},
		{id: "2s", simple: true, green: true},
		{id: "5s", simple: true},
		{id: "8s", simple: true, green: true},
		{id: "1z", honor: true, yaochu: true},
		{id: "5z", honor: true, yaochu: true},
		{id: "6z", honor: true, yaochu: true, green: true},
	}
	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			tile := riichi.MustParseTile(tc.id)
			if tile.IsTerminal() != tc.terminal || tile.IsHonor() != tc.honor ||
				tile.IsYaochu() != tc.yaochu || tile.IsSimple() != tc.simple || tile.IsGreen() != tc.green {
				t.Errorf("%s: terminal=%v honor=%v yaochu=%v simple=%v green=%v", tc.id,
					tile.IsTerminal(), tile.IsHonor(), tile.IsYaochu(), tile.IsSimple(), tile.IsGreen())
			}
		})
	}
}

func TestTileNext(t *testing.T) {
	testCases := map[string]string{
		"1m": "2m", "9m": "1m", "9s": "1s",
		"1z": "2z", "4z": "1z",
		"5z": "6z", "7z": "5z",
	}
	for in, want := range testCases {
		if got := riichi.MustParseTile(in).Next().ID(); got != want {
			t.Errorf("%s.Next() = %s, want %s", in, got, want)
		}
	}
}

func TestTileText(t *testing.T) {
	var tile riichi.Tile
	if err := tile.UnmarshalText([]byte("7z")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if tile != riichi.TileRed || tile.Name() != "Red" {
		t.Errorf("tile = %s (%s), want 7z (Red)", tile, tile.Name())
	}
	if _, err := riichi.TileNull.MarshalText(); !errors.Is(err, riichi.ErrInvalidTile) {
		t.Errorf("MarshalText(TileNull) error = %v, want ErrInvalidTile", err)
	}
}
