package riichi

import "slices"

// 国士无双所需的13种幺九牌
var yaochuIndexes = []int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33}

// Decompose 枚举门内牌所有4面子1雀头的拆法, groupsNeeded 为门内需凑的面子数.
// 先按牌序从小到大选雀头, 再对剩余牌从最小的牌起依次试刻子和顺子, 结果按此顺序排列.
// 每种拆法的最后一个元素为雀头. 无法拆出时返回空
func Decompose(tiles []Tile, groupsNeeded int) [][]Group {
	for _, t := range tiles {
		if !t.IsValid() {
			return nil
		}
	}
	return decomposeCounts(countTiles(tiles), groupsNeeded)
}

func decomposeCounts(c counts, groupsNeeded int) [][]Group {
	if groupsNeeded < 0 || c.total() != groupsNeeded*3+2 {
		return nil
	}
	var results [][]Group
	for i := range TileKindCount {
		if c[i] < 2 {
			continue
		}
		rest := c
		rest[i] -= 2
		head := Group{Type: GroupTypePair, Tile: TileFromIndex(i)}
		searchGroups(rest, groupsNeeded, make([]Group, 0, groupsNeeded+1), func(groups []Group) {
			results = append(results, append(groups, head))
		})
	}
	return results
}

// searchGroups 回溯: 每步取最小的剩余牌, 依次尝试刻子, 顺子
func searchGroups(c counts, needed int, current []Group, emit func([]Group)) {
	if needed == 0 {
		if c.total() == 0 {
			emit(slices.Clone(current))
		}
		return
	}
	first := slices.IndexFunc(c[:], func(n int8) bool { return n > 0 })
	if first < 0 {
		return
	}
	t := TileFromIndex(first)
	if c[first] >= 3 {
		next := c
		next[first] -= 3
		searchGroups(next, needed-1, append(current, Group{Type: GroupTypeTriplet, Tile: t}), emit)
	}
	if t.IsSuit() && t.Point() <= 6 && c[first+1] > 0 && c[first+2] > 0 {
		next := c
		next[first]--
		next[first+1]--
		next[first+2]--
		searchGroups(next, needed-1, append(current, Group{Type: GroupTypeSequence, Tile: t}), emit)
	}
}

// sevenPairs 七对子: 7种不同的对子. 四张相同不算两对
func sevenPairs(c counts) []Group {
	var groups []Group
	for i, n := range c {
		switch n {
		case 0:
		case 2:
			groups = append(groups, Group{Type: GroupTypePair, Tile: TileFromIndex(i)})
		default:
			return nil
		}
	}
	if len(groups) != PairCountSevenPairs {
		return nil
	}
	return groups
}

// IsSevenPairs 门内14张是否为七对子
func IsSevenPairs(tiles []Tile) bool {
	return len(tiles) == TileCountWin && sevenPairs(countTiles(tiles)) != nil
}

// thirteenOrphans 国士无双: 13种幺九牌各一张, 其中一种多一张
func thirteenOrphans(c counts) bool {
	if c.total() != TileCountWin {
		return false
	}
	dup := 0
	for _, i := range yaochuIndexes {
		switch c[i] {
		case 1:
		case 2:
			dup++
		default:
			return false
		}
	}
	return dup == 1
}

func IsThirteenOrphans(tiles []Tile) bool {
	return thirteenOrphans(countTiles(tiles))
}

// isWinningShape 任一和牌形. 七对子和国士只在门内14张时成立
func isWinningShape(c counts, groupsNeeded int) bool {
	if groupsNeeded == GroupCountNormal && (sevenPairs(c) != nil || thirteenOrphans(c)) {
		return true
	}
	return len(decomposeCounts(c, groupsNeeded)) > 0
}
