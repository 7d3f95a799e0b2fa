package riichi_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestYakuHanValue(t *testing.T) {
	testCases := []struct {
		yaku             riichi.Yaku
		concealed, opened int
	}{
		{riichi.YakuRiichi, 1, 0},
		{riichi.YakuPinfu, 1, 0},
		{riichi.YakuTanyao, 1, 1},
		{riichi.YakuChiitoitsu, 2, 0},
		{riichi.YakuToitoi, 2, 2},
		{riichi.YakuSanankou, 2, 2},
		{riichi.YakuSanshoku, 2, 1},
		{riichi.YakuIttsu, 2, 1},
		{riichi.YakuChanta, 3, 2},
		{riichi.YakuJunchan, 3, 2},
		{riichi.YakuHonitsu, 3, 2},
		{riichi.YakuChinitsu, 6, 5},
		{riichi.YakuDaisangen, 13, 13},
	}
	for _, tc := range testCases {
		t.Run(tc.yaku.String(), func(t *testing.T) {
			if got := tc.yaku.HanValue(false); got != tc.concealed {
				t.Errorf("concealed han = %d, want %d", got, tc.concealed)
			}
			if got := tc.yaku.HanValue(true); got != tc.opened {
				t.Errorf("open han = %d, want %d", got, tc.opened)
			}
		})
	}
}

func TestYakuTotals(t *testing.T) {
	yakus := []riichi.Yaku{riichi.YakuRiichi, riichi.YakuIttsu, riichi.YakuDora, riichi.YakuDora}
	if got := riichi.TotalHan(yakus, false); got != 5 {
		t.Errorf("TotalHan = %d, want 5", got)
	}
	if got := riichi.YakumanUnits([]riichi.Yaku{riichi.YakuDaisangen, riichi.YakuTsuuiisou}); got != 2 {
		t.Errorf("YakumanUnits = %d, want 2", got)
	}
	want := []string{"Riichi", "Ittsu", "Dora", "Dora"}
	if got := riichi.YakuNames(yakus); !slices.Equal(got, want) {
		t.Errorf("YakuNames = %v, want %v", got, want)
	}
	if riichi.YakuNone.String() != "Unknown" || riichi.YakuEnd.IsYakuman() {
		t.Errorf("out of range yaku should be unknown")
	}
}

func TestCountDora(t *testing.T) {
	tiles := riichi.MustParseTiles("123m456m789p234s99s")
	testCases := []struct {
		indicators string
		want       int
	}{
		{indicators: "", want: 0},
		{indicators: "8s", want: 2},
		{indicators: "8s8p", want: 3},
		{indicators: "9m", want: 1},
		{indicators: "4z", want: 0},
		{indicators: "8s8s", want: 4},
	}
	for _, tc := range testCases {
		t.Run(tc.indicators, func(t *testing.T) {
			if got := riichi.CountDora(tiles, riichi.MustParseTiles(tc.indicators)); got != tc.want {
				t.Errorf("CountDora(%s) = %d, want %d", tc.indicators, got, tc.want)
			}
		})
	}
}

func TestContextSeatWind(t *testing.T) {
	testCases := []struct {
		seat, dealer int32
		want         riichi.Tile
	}{
		{0, 0, riichi.TileEast},
		{1, 0, riichi.TileSouth},
		{0, 1, riichi.TileNorth},
		{3, 2, riichi.TileSouth},
	}
	for _, tc := range testCases {
		ctx := riichi.Context{RoundWind: riichi.TileSouth, Seat: tc.seat, DealerSeat: tc.dealer}
		if got := ctx.SeatWind(); got != tc.want {
			t.Errorf("SeatWind(seat=%d, dealer=%d) = %s, want %s", tc.seat, tc.dealer, got, tc.want)
		}
		if !ctx.IsValueTile(riichi.TileSouth) || !ctx.IsValueTile(riichi.TileRed) {
			t.Errorf("round wind and dragons are value tiles")
		}
	}
}

func TestGetNextSeat(t *testing.T) {
	testCases := []struct{ seat, step, want int32 }{
		{0, 1, 1}, {3, 1, 0}, {2, 3, 1}, {1, 4, 1},
	}
	for _, tc := range testCases {
		if got := riichi.GetNextSeat(tc.seat, tc.step, riichi.NP4); got != tc.want {
			t.Errorf("GetNextSeat(%d, %d) = %d, want %d", tc.seat, tc.step, got, tc.want)
		}
	}
}
