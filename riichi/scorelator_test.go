package riichi

import (
	"slices"
	"testing"
)

func TestScorelatorPayments(t *testing.T) {
	testCases := []struct {
		name          string
		dealer, tsumo bool
		fu, han       int
		wantTotal     int
		wantText      string
		wantTitle     string
	}{
		{name: "child ron 30fu1han", fu: 30, han: 1, wantTotal: 1000, wantText: "1000"},
		{name: "dealer ron 30fu1han", dealer: true, fu: 30, han: 1, wantTotal: 1500, wantText: "1500"},
		{name: "child tsumo 30fu1han", tsumo: true, fu: 30, han: 1, wantTotal: 1100, wantText: "300 / 500"},
		{name: "dealer tsumo 30fu1han", dealer: true, tsumo: true, fu: 30, han: 1, wantTotal: 1500, wantText: "500 all"},
		{name: "child tsumo pinfu", tsumo: true, fu: 20, han: 2, wantTotal: 1500, wantText: "400 / 700"},
		{name: "30fu4han", fu: 30, han: 4, wantTotal: 7700, wantText: "7700"},
		{name: "40fu4han mangan", fu: 40, han: 4, wantTotal: 8000, wantText: "8000", wantTitle: "Mangan"},
		{name: "dealer ron mangan", dealer: true, fu: 30, han: 5, wantTotal: 12000, wantText: "12000", wantTitle: "Mangan"},
		{name: "child tsumo mangan", tsumo: true, fu: 30, han: 5, wantTotal: 8000, wantText: "2000 / 4000", wantTitle: "Mangan"},
		{name: "dealer tsumo mangan", dealer: true, tsumo: true, fu: 30, han: 5, wantTotal: 12000, wantText: "4000 all", wantTitle: "Mangan"},
		{name: "haneman", fu: 30, han: 6, wantTotal: 12000, wantText: "12000", wantTitle: "Haneman"},
		{name: "baiman", fu: 30, han: 8, wantTotal: 16000, wantText: "16000", wantTitle: "Baiman"},
		{name: "sanbaiman", fu: 30, han: 11, wantTotal: 24000, wantText: "24000", wantTitle: "Sanbaiman"},
		{name: "kazoe", fu: 30, han: 13, wantTotal: 32000, wantText: "32000", wantTitle: "Kazoe Yakuman"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := newScorelator(tc.dealer, tc.tsumo).calculate(tc.fu, tc.han)
			if score.Total != tc.wantTotal || score.PayText != tc.wantText || score.Title != tc.wantTitle {
				t.Errorf("calculate(%d, %d) = %d %q %q, want %d %q %q", tc.fu, tc.han,
					score.Total, score.PayText, score.Title, tc.wantTotal, tc.wantText, tc.wantTitle)
			}
		})
	}
}

func TestScorelatorYakuman(t *testing.T) {
	testCases := []struct {
		name          string
		dealer, tsumo bool
		units         int
		wantTotal     int
		wantTitle     string
	}{
		{name: "child ron", units: 1, wantTotal: 32000, wantTitle: "Yakuman"},
		{name: "dealer ron", dealer: true, units: 1, wantTotal: 48000, wantTitle: "Yakuman"},
		{name: "child tsumo", tsumo: true, units: 1, wantTotal: 32000, wantTitle: "Yakuman"},
		{name: "dealer tsumo", dealer: true, tsumo: true, units: 1, wantTotal: 48000, wantTitle: "Yakuman"},
		{name: "double", units: 2, wantTotal: 64000, wantTitle: "2x Yakuman"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := newScorelator(tc.dealer, tc.tsumo).calculateYakuman(tc.units)
			if score.Total != tc.wantTotal || score.Title != tc.wantTitle {
				t.Errorf("calculateYakuman(%d) = %d %q, want %d %q", tc.units, score.Total, score.Title, tc.wantTotal, tc.wantTitle)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	for _, dealer := range []bool{false, true} {
		for _, tsumo := range []bool{false, true} {
			s := newScorelator(dealer, tsumo)
			pinned := s.calculate(30, kazoeHan).Total
			for fu := 20; fu <= 110; fu += 10 {
				prev := 0
				for han := 1; han <= 20; han++ {
					got := s.calculate(fu, han).Total
					if got < prev {
						t.Errorf("dealer=%v tsumo=%v fu=%d: han %d scores %d < %d", dealer, tsumo, fu, han, got, prev)
					}
					if han >= kazoeHan && got != pinned {
						t.Errorf("dealer=%v tsumo=%v fu=%d han=%d: %d, want pinned %d", dealer, tsumo, fu, han, got, pinned)
					}
					prev = got
				}
			}
		}
	}
}

func TestPaymentBreakdown(t *testing.T) {
	score := newScorelator(false, true).calculate(30, 5)
	want := []Payment{
		{Payer: PayerNonDealer, Count: 2, Amount: 2000},
		{Payer: PayerDealer, Count: 1, Amount: 4000},
	}
	if !slices.Equal(score.Payments, want) {
		t.Errorf("Payments = %v, want %v", score.Payments, want)
	}
}
