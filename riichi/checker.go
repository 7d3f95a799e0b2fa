package riichi

import "slices"

// winInfo 一种解释下的和牌信息, 供役种检查器使用
type winInfo struct {
	hand      *Hand
	ctx       *Context
	rule      Rule
	style     EHandStyle
	groups    []Group // 门内面子加副露, 七对子为7个对子
	tiles     []Tile  // 门内牌加副露牌
	counts    counts
	concealed bool
	waits     []EWait
}

func newWinInfo(hand *Hand, ctx *Context, rule Rule) *winInfo {
	tiles := hand.AllTiles()
	return &winInfo{
		hand:      hand,
		ctx:       ctx,
		rule:      rule,
		tiles:     tiles,
		counts:    countTiles(tiles),
		concealed: hand.IsConcealed(),
	}
}

// withGroups 复制一份并绑定拆法
func (w *winInfo) withGroups(style EHandStyle, groups []Group) *winInfo {
	n := *w
	n.style = style
	n.groups = slices.Clone(groups)
	n.waits = nil
	if style == HandNormal {
		n.markRonTriplet()
		n.waits = waitPatterns(n.groups, w.hand.WinTile)
	}
	return &n
}

// markRonTriplet 荣和时和牌张只能落在暗刻上, 该刻子按明刻计
func (w *winInfo) markRonTriplet() {
	if w.ctx.Tsumo {
		return
	}
	win := w.hand.WinTile
	for _, g := range w.groups {
		if !g.Meld && !g.IsTriplet() && g.Contains(win) {
			return
		}
	}
	for i, g := range w.groups {
		if !g.Meld && g.Type == GroupTypeTriplet && g.Tile == win {
			w.groups[i].Open = true
			return
		}
	}
}

func (w *winInfo) allTiles(pred func(Tile) bool) bool {
	return !slices.ContainsFunc(w.tiles, func(t Tile) bool { return !pred(t) })
}

func (w *winInfo) allGroups(pred func(Group) bool) bool {
	return !slices.ContainsFunc(w.groups, func(g Group) bool { return !pred(g) })
}

func (w *winInfo) anyGroup(pred func(Group) bool) bool {
	return slices.ContainsFunc(w.groups, pred)
}

func (w *winInfo) hasTripletOf(t Tile) bool {
	return w.anyGroup(func(g Group) bool { return g.IsTriplet() && g.Tile == t })
}

func (w *winInfo) pair() Group {
	for _, g := range w.groups {
		if g.IsPair() {
			return g
		}
	}
	return Group{}
}

func (w *winInfo) sequences() []Group {
	var seqs []Group
	for _, g := range w.groups {
		if g.IsSequence() {
			seqs = append(seqs, g)
		}
	}
	return seqs
}

// suitMask 出现的数牌花色, 以及是否有字牌
func (w *winInfo) suitMask() (mask int, honor bool) {
	for _, t := range w.tiles {
		if t.IsHonor() {
			honor = true
		} else {
			mask |= 1 << t.Suit()
		}
	}
	return
}

func (w *winInfo) count(t Tile) int {
	return int(w.counts[t.Index()])
}

// yakuChecker 役种检查器
type yakuChecker interface {
	ID() Yaku
	Check(w *winInfo) bool
}

type yakuCheckerFunc struct {
	id    Yaku
	check func(w *winInfo) bool
}

func (f yakuCheckerFunc) ID() Yaku { return f.id }

func (f yakuCheckerFunc) Check(w *winInfo) bool { return f.check(w) }

func normalShape(w *winInfo) bool { return w.style == HandNormal }

// 普通役, 对每种拆法 (含七对子) 各检查一次
var yakuRegistry = []yakuChecker{
	// 两立直时不再单独计立直
	yakuCheckerFunc{id: YakuRiichi, check: func(w *winInfo) bool {
		return w.concealed && w.ctx.Riichi && !w.ctx.DoubleRiichi
	}},
	yakuCheckerFunc{id: YakuDoubleRiichi, check: func(w *winInfo) bool {
		return w.concealed && w.ctx.DoubleRiichi
	}},
	yakuCheckerFunc{id: YakuIppatsu, check: func(w *winInfo) bool {
		return w.concealed && w.ctx.Ippatsu && (w.ctx.Riichi || w.ctx.DoubleRiichi)
	}},
	yakuCheckerFunc{id: YakuMenzenTsumo, check: func(w *winInfo) bool {
		return w.concealed && w.ctx.Tsumo
	}},
	yakuCheckerFunc{id: YakuTanyao, check: func(w *winInfo) bool {
		return w.allTiles(Tile.IsSimple)
	}},
	yakuCheckerFunc{id: YakuHaku, check: func(w *winInfo) bool { return w.hasTripletOf(TileWhite) }},
	yakuCheckerFunc{id: YakuHatsu, check: func(w *winInfo) bool { return w.hasTripletOf(TileGreen) }},
	yakuCheckerFunc{id: YakuChun, check: func(w *winInfo) bool { return w.hasTripletOf(TileRed) }},
	yakuCheckerFunc{id: YakuBakaze, check: func(w *winInfo) bool { return w.hasTripletOf(w.ctx.RoundWind) }},
	yakuCheckerFunc{id: YakuJikaze, check: func(w *winInfo) bool { return w.hasTripletOf(w.ctx.SeatWind()) }},
	yakuCheckerFunc{id: YakuPinfu, check: checkPinfu},
	yakuCheckerFunc{id: YakuIipeikou, check: checkIipeikou},
	yakuCheckerFunc{id: YakuHaitei, check: func(w *winInfo) bool { return w.ctx.Haitei && w.ctx.Tsumo }},
	yakuCheckerFunc{id: YakuHoutei, check: func(w *winInfo) bool { return w.ctx.Houtei && !w.ctx.Tsumo }},
	yakuCheckerFunc{id: YakuRinshan, check: func(w *winInfo) bool { return w.ctx.Rinshan && w.ctx.Tsumo }},
	yakuCheckerFunc{id: YakuChiitoitsu, check: func(w *winInfo) bool { return w.style == HandSevenPairs }},
	yakuCheckerFunc{id: YakuToitoi, check: func(w *winInfo) bool {
		return normalShape(w) && w.allGroups(func(g Group) bool { return !g.IsSequence() })
	}},
	yakuCheckerFunc{id: YakuSanankou, check: checkSanankou},
	yakuCheckerFunc{id: YakuSanshoku, check: checkSanshoku},
	yakuCheckerFunc{id: YakuIttsu, check: checkIttsu},
	// 全带系需至少一组顺子, 否则为混老头/清老头
	yakuCheckerFunc{id: YakuChanta, check: func(w *winInfo) bool {
		return normalShape(w) && len(w.sequences()) > 0 && w.allGroups(Group.HasYaochu) &&
			w.anyGroup(func(g Group) bool { return g.Tile.IsHonor() }) &&
			w.anyGroup(func(g Group) bool { return !g.Tile.IsHonor() })
	}},
	yakuCheckerFunc{id: YakuJunchan, check: func(w *winInfo) bool {
		return normalShape(w) && len(w.sequences()) > 0 && w.allGroups(Group.HasTerminal)
	}},
	yakuCheckerFunc{id: YakuHonroutou, check: func(w *winInfo) bool {
		return w.allTiles(Tile.IsYaochu) && w.allGroups(func(g Group) bool { return !g.IsSequence() })
	}},
	yakuCheckerFunc{id: YakuChinitsu, check: func(w *winInfo) bool {
		mask, honor := w.suitMask()
		return !honor && isSingleSuit(mask)
	}},
	yakuCheckerFunc{id: YakuHonitsu, check: func(w *winInfo) bool {
		mask, honor := w.suitMask()
		return honor && isSingleSuit(mask)
	}},
	yakuCheckerFunc{id: YakuShousangen, check: checkShousangen},
}

func isSingleSuit(mask int) bool {
	return mask != 0 && mask&(mask-1) == 0
}

// checkPinfu 门清, 4顺子, 雀头非役牌. 严格模式下还需两面听
func checkPinfu(w *winInfo) bool {
	if !normalShape(w) || !w.concealed {
		return false
	}
	if !w.allGroups(func(g Group) bool { return g.IsSequence() || g.IsPair() }) {
		return false
	}
	if w.ctx.IsValueTile(w.pair().Tile) {
		return false
	}
	return !w.rule.StrictPinfu || slices.Contains(w.waits, WaitRyanmen)
}

func checkIipeikou(w *winInfo) bool {
	if !normalShape(w) || !w.concealed {
		return false
	}
	seqs := w.sequences()
	for i := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			if seqs[i].Tile == seqs[j].Tile {
				return true
			}
		}
	}
	return false
}

// checkSanankou 暗刻 (含暗杠) 三个以上, 荣和的刻子已按明刻计
func checkSanankou(w *winInfo) bool {
	if !normalShape(w) {
		return false
	}
	n := 0
	for _, g := range w.groups {
		if g.IsTriplet() && !g.Open {
			n++
		}
	}
	return n >= 3
}

func checkSanshoku(w *winInfo) bool {
	if !normalShape(w) {
		return false
	}
	var masks [9]int
	for _, g := range w.sequences() {
		masks[g.Tile.Point()] |= 1 << g.Tile.Suit()
	}
	return slices.Contains(masks[:], 0b111)
}

func checkIttsu(w *winInfo) bool {
	if !normalShape(w) {
		return false
	}
	var masks [SuitHonor]int
	for _, g := range w.sequences() {
		if p := g.Tile.Point(); p%3 == 0 {
			masks[g.Tile.Suit()] |= 1 << (p / 3)
		}
	}
	return slices.Contains(masks[:], 0b111)
}

// checkShousangen 两组三元刻子加三元雀头
func checkShousangen(w *winInfo) bool {
	if !normalShape(w) {
		return false
	}
	triplets := 0
	for _, t := range []Tile{TileWhite, TileGreen, TileRed} {
		if w.hasTripletOf(t) {
			triplets++
		}
	}
	return triplets == 2 && w.pair().Tile.IsDragon()
}

// 役满, 在拆分之前直接对牌做检查
var yakumanRegistry = []yakuChecker{
	yakuCheckerFunc{id: YakuKokushi, check: func(w *winInfo) bool {
		return len(w.hand.Melds) == 0 && thirteenOrphans(w.counts)
	}},
	yakuCheckerFunc{id: YakuSuuankou, check: checkSuuankou},
	yakuCheckerFunc{id: YakuDaisangen, check: func(w *winInfo) bool {
		return w.count(TileWhite) >= 3 && w.count(TileGreen) >= 3 && w.count(TileRed) >= 3
	}},
	yakuCheckerFunc{id: YakuTsuuiisou, check: func(w *winInfo) bool { return w.allTiles(Tile.IsHonor) }},
	yakuCheckerFunc{id: YakuRyuuiisou, check: func(w *winInfo) bool { return w.allTiles(Tile.IsGreen) }},
	yakuCheckerFunc{id: YakuChinroutou, check: func(w *winInfo) bool { return w.allTiles(Tile.IsTerminal) }},
	yakuCheckerFunc{id: YakuTenhou, check: func(w *winInfo) bool {
		return w.ctx.Tenhou && w.ctx.IsDealer() && w.ctx.Tsumo && w.concealed
	}},
	yakuCheckerFunc{id: YakuChiihou, check: func(w *winInfo) bool {
		return w.ctx.Chiihou && !w.ctx.IsDealer() && w.ctx.Tsumo && w.concealed
	}},
}

// checkSuuankou 仅门清自摸: 暗杠加门内刻子共4组, 余下恰好一对
func checkSuuankou(w *winInfo) bool {
	if !w.concealed || !w.ctx.Tsumo {
		return false
	}
	ankou := len(w.hand.Melds)
	rest := countTiles(w.hand.Tiles)
	for i, n := range rest {
		if n >= 3 {
			rest[i] -= 3
			ankou++
		}
	}
	if ankou != GroupCountNormal {
		return false
	}
	return rest.total() == 2 && slices.Contains(rest[:], 2)
}

func runCheckers(checkers []yakuChecker, w *winInfo) []Yaku {
	var yakus []Yaku
	for _, c := range checkers {
		if c.Check(w) {
			yakus = append(yakus, c.ID())
		}
	}
	return yakus
}
