package riichi

import (
	"fmt"
	"strconv"
)

const (
	mangan       = 8000
	haneman      = 12000
	baiman       = 16000
	sanbaiman    = 24000
	yakuman      = 32000
	manganBasic  = 2000
	manganHan    = 5
	kazoeHan     = 13
	yakumanTitle = "Yakuman"
)

// Payment 一类付款方及每人应付点数
type Payment struct {
	Payer  EPayer
	Count  int // 付款人数
	Amount int // 每人
}

// Score 点数结果. Value 为子家荣和时的点数 (基本点的4倍)
type Score struct {
	Value    int
	Total    int
	Title    string
	Payments []Payment
	PayText  string
}

// scorelator 点数计算器
type scorelator struct {
	dealer bool
	tsumo  bool
}

func newScorelator(dealer, tsumo bool) *scorelator {
	return &scorelator{dealer: dealer, tsumo: tsumo}
}

// BasicPoints 基本点 fu×2^(han+2)
func BasicPoints(fu, han int) int {
	return fu * (1 << (2 + han))
}

// LimitValue 满贯以上的点数和称号, 未到满贯时返回0
func LimitValue(fu, han int) (int, string) {
	if han < manganHan && BasicPoints(fu, han) <= manganBasic {
		return 0, ""
	}
	switch {
	case han >= kazoeHan:
		return yakuman, "Kazoe Yakuman"
	case han >= 11:
		return sanbaiman, "Sanbaiman"
	case han >= 8:
		return baiman, "Baiman"
	case han >= 6:
		return haneman, "Haneman"
	default:
		return mangan, "Mangan"
	}
}

// calculate 普通和牌
func (s *scorelator) calculate(fu, han int) *Score {
	value, title := LimitValue(fu, han)
	if value == 0 {
		value = 4 * BasicPoints(fu, han)
	}
	return s.pay(value, title)
}

// calculateYakuman 役满按倍数累加
func (s *scorelator) calculateYakuman(units int) *Score {
	title := yakumanTitle
	if units > 1 {
		title = strconv.Itoa(units) + "x " + yakumanTitle
	}
	return s.pay(yakuman*units, title)
}

func (s *scorelator) pay(value int, title string) *Score {
	score := &Score{Value: value, Title: title}
	switch {
	case s.tsumo && s.dealer:
		each := RoundUpTo100(value / 2)
		score.Payments = []Payment{{Payer: PayerAll, Count: NP4 - 1, Amount: each}}
		score.PayText = fmt.Sprintf("%d all", each)
	case s.tsumo:
		child, parent := RoundUpTo100(value/4), RoundUpTo100(value/2)
		score.Payments = []Payment{
			{Payer: PayerNonDealer, Count: NP4 - 2, Amount: child},
			{Payer: PayerDealer, Count: 1, Amount: parent},
		}
		score.PayText = fmt.Sprintf("%d / %d", child, parent)
	default:
		amount := RoundUpTo100(value)
		if s.dealer {
			amount = RoundUpTo100(value * 3 / 2)
		}
		score.Payments = []Payment{{Payer: PayerDiscarder, Count: 1, Amount: amount}}
		score.PayText = strconv.Itoa(amount)
	}
	for _, p := range score.Payments {
		score.Total += p.Count * p.Amount
	}
	return score
}

// RoundUpTo100 向上取整到100
func RoundUpTo100(x int) int {
	return (x + 99) / 100 * 100
}
