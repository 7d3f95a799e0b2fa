package riichi

import "slices"

const (
	fuBase       = 20
	fuSevenPairs = 25
	fuPinfuTsumo = 20
	fuMenzenRon  = 10
	fuTsumo      = 2
	fuWait       = 2
	fuValuePair  = 2
	fuOpenRonMin = 30
)

// waitPatterns 和牌张在该拆法中可能的听型, 只看门内面子
func waitPatterns(groups []Group, win Tile) []EWait {
	var waits []EWait
	add := func(w EWait) {
		if !slices.Contains(waits, w) {
			waits = append(waits, w)
		}
	}
	for _, g := range groups {
		if g.Meld || !g.Contains(win) {
			continue
		}
		switch g.Type {
		case GroupTypePair:
			add(WaitTanki)
		case GroupTypeTriplet:
			add(WaitShanpon)
		case GroupTypeSequence:
			switch offset := win.Point() - g.Tile.Point(); {
			case offset == 1:
				add(WaitKanchan)
			case offset == 0 && g.Tile.Point() == 6, offset == 2 && g.Tile.Point() == 0:
				add(WaitPenchan)
			default:
				add(WaitRyanmen)
			}
		}
	}
	return waits
}

// tripletFu 刻子2符, 幺九翻倍, 暗刻翻倍, 杠子再乘4
func tripletFu(g Group) int {
	fu := 2
	if g.Tile.IsYaochu() {
		fu *= 2
	}
	if !g.Open {
		fu *= 2
	}
	if g.Type == GroupTypeQuad {
		fu *= 4
	}
	return fu
}

func (w *winInfo) pairFu(t Tile) int {
	fu := 0
	if t.IsDragon() {
		fu += fuValuePair
	}
	round, seat := t == w.ctx.RoundWind, t == w.ctx.SeatWind()
	switch {
	case round && seat && !w.rule.DoubleWindPairFu:
		fu += fuValuePair
	case round && seat:
		fu += 2 * fuValuePair
	case round || seat:
		fu += fuValuePair
	}
	return fu
}

// waitFu 单骑, 嵌张, 边张计2符. 平和且可读作两面时不计
func (w *winInfo) waitFu(yakus []Yaku) int {
	if slices.Contains(yakus, YakuPinfu) && slices.Contains(w.waits, WaitRyanmen) {
		return 0
	}
	for _, wait := range w.waits {
		switch wait {
		case WaitTanki, WaitKanchan, WaitPenchan:
			return fuWait
		}
	}
	return 0
}

// rawFu 进位前的符数
func (w *winInfo) rawFu(yakus []Yaku) int {
	if w.style == HandSevenPairs {
		return fuSevenPairs
	}
	if w.ctx.Tsumo && slices.Contains(yakus, YakuPinfu) {
		return fuPinfuTsumo
	}
	fu := fuBase
	if w.concealed && !w.ctx.Tsumo {
		fu += fuMenzenRon
	}
	if w.ctx.Tsumo {
		fu += fuTsumo
	}
	for _, g := range w.groups {
		switch {
		case g.IsTriplet():
			fu += tripletFu(g)
		case g.IsPair():
			fu += w.pairFu(g.Tile)
		}
	}
	return fu + w.waitFu(yakus)
}

// computeFu 符数, 七对子固定25符, 其余进位到10. 副露荣和20符按30符计
func (w *winInfo) computeFu(yakus []Yaku) int {
	fu := w.rawFu(yakus)
	if w.style == HandSevenPairs {
		return fu
	}
	fu = RoundUpFu(fu)
	if !w.concealed && !w.ctx.Tsumo && fu == fuBase {
		fu = fuOpenRonMin
	}
	return fu
}

// RoundUpFu 向上取整到10
func RoundUpFu(fu int) int {
	return (fu + 9) / 10 * 10
}
