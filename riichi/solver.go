package riichi

import (
	"fmt"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Solver 和牌计分入口, 无内部状态, 可并发使用
type Solver struct {
	rule     Rule
	yakus    []yakuChecker
	yakumans []yakuChecker
}

var DefaultSolver = NewSolver(DefaultRule())

func NewSolver(rule Rule) *Solver {
	return &Solver{
		rule:     rule,
		yakus:    yakuRegistry,
		yakumans: yakumanRegistry,
	}
}

func (s *Solver) Rule() Rule {
	return s.rule
}

// Solve 用默认规则计分
func Solve(hand Hand, ctx Context, dora []Tile) (*Verdict, error) {
	return DefaultSolver.Solve(hand, ctx, dora)
}

// Solve 依次尝试役满, 七对子和所有4面子1雀头的拆法, 取点数最高的解释.
// 只有违反调用约定时返回 error, 无役或未成形返回 CanWin 为 false 的结果
func (s *Solver) Solve(hand Hand, ctx Context, dora []Tile) (*Verdict, error) {
	if err := hand.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	for _, t := range dora {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: dora indicator %d", ErrInvalidTile, int32(t))
		}
	}

	base := newWinInfo(&hand, &ctx, s.rule)
	concealed := countTiles(hand.Tiles)
	needed := GroupCountNormal - len(hand.Melds)
	if !isWinningShape(concealed, needed) {
		logger.Log.Debugf("not a winning shape: %s %v", TilesName(hand.Tiles), hand.Melds)
		return noWin(), nil
	}

	if v := s.solveYakuman(base); v != nil {
		return v, nil
	}

	dealer := ctx.IsDealer()
	doraCount := CountDora(base.tiles, dora)
	var best *Verdict
	try := func(w *winInfo) {
		v := s.price(w, doraCount, dealer)
		if v == nil {
			return
		}
		logger.Log.Debugf("candidate %v han=%d fu=%d score=%d", v.YakuNames(), v.Han, v.Fu, v.Score)
		if best == nil || v.Score > best.Score {
			best = v
		}
	}

	if len(hand.Melds) == 0 {
		if pairs := sevenPairs(concealed); pairs != nil {
			try(base.withGroups(HandSevenPairs, pairs))
		}
	}
	meldGroups := hand.MeldGroups()
	for _, groups := range decomposeCounts(concealed, needed) {
		all := make([]Group, 0, len(groups)+len(meldGroups))
		all = append(all, groups...)
		all = append(all, meldGroups...)
		try(base.withGroups(HandNormal, all))
	}

	if best == nil {
		logger.Log.Debugf("no yaku: %s %v", TilesName(hand.Tiles), hand.Melds)
		return noWin(), nil
	}
	return best, nil
}

func (s *Solver) solveYakuman(w *winInfo) *Verdict {
	yakus := runCheckers(s.yakumans, w)
	if len(yakus) == 0 {
		return nil
	}
	style := HandNormal
	switch {
	case thirteenOrphans(countTiles(w.hand.Tiles)):
		style = HandThirteenOrphans
	case len(w.hand.Melds) == 0 && sevenPairs(countTiles(w.hand.Tiles)) != nil:
		style = HandSevenPairs
	}
	score := newScorelator(w.ctx.IsDealer(), w.ctx.Tsumo).calculateYakuman(YakumanUnits(yakus))
	logger.Log.Debugf("yakuman %v score=%d", YakuNames(yakus), score.Total)
	return &Verdict{
		CanWin:   true,
		Style:    style,
		Yaku:     yakus,
		Fu:       0,
		Han:      kazoeHan,
		Score:    score.Total,
		Payments: score.Payments,
		PayText:  score.PayText,
		Title:    score.Title,
	}
}

// price 对一种解释计番计符, 无役返回 nil
func (s *Solver) price(w *winInfo, doraCount int, dealer bool) *Verdict {
	yakus := runCheckers(s.yakus, w)
	if len(yakus) == 0 {
		return nil
	}
	fu := w.computeFu(yakus)
	for range doraCount {
		yakus = append(yakus, YakuDora)
	}
	han := TotalHan(yakus, !w.concealed)
	score := newScorelator(dealer, w.ctx.Tsumo).calculate(fu, han)
	return &Verdict{
		CanWin:   true,
		Style:    w.style,
		Groups:   w.groups,
		Yaku:     yakus,
		Fu:       fu,
		Han:      han,
		Score:    score.Total,
		Payments: score.Payments,
		PayText:  score.PayText,
		Title:    score.Title,
	}
}
