package riichi

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4

	// 和牌时的总张数
	TileCountWin = 14
	// 同种牌最多张数
	SameTileCount = 4
	// 4面子1雀头
	GroupCountNormal = 4
	// 七对子
	PairCountSevenPairs = 7
)

type ESuit int

const (
	SuitUndefined ESuit = -1
	SuitMan       ESuit = iota - 1 // 万子 m
	SuitPin                        // 筒子 p
	SuitSou                        // 索子 s
	SuitHonor                      // 字牌 z
	SuitEnd
	SuitBegin = SuitMan
)

// 每种花色的点数个数
var PointCountBySuit = [SuitEnd]int{9, 9, 9, 7}

// 每种花色在34种牌中的起始下标
var IndexBeginBySuit = [SuitEnd]int{0, 9, 18, 27}

const TileKindCount = 34

var suitLetters = [SuitEnd]byte{'m', 'p', 's', 'z'}

// EGroupType 面子/雀头类型
type EGroupType int

const (
	GroupTypeNone     EGroupType = iota
	GroupTypePair                // 雀头
	GroupTypeTriplet             // 刻子
	GroupTypeSequence            // 顺子
	GroupTypeQuad                // 杠子
)

func (g EGroupType) String() string {
	switch g {
	case GroupTypePair:
		return "pair"
	case GroupTypeTriplet:
		return "triplet"
	case GroupTypeSequence:
		return "sequence"
	case GroupTypeQuad:
		return "quad"
	default:
		return "none"
	}
}

// EMeldType 副露类型
type EMeldType int

const (
	MeldTypeNone EMeldType = iota
	MeldTypeChow           // 吃
	MeldTypePon            // 碰
	MeldTypeKon            // 杠 (From == SeatNull 为暗杠)
)

// EHandStyle 和牌形
type EHandStyle int

const (
	HandNone            EHandStyle = iota
	HandNormal                     // 4面子1雀头
	HandSevenPairs                 // 七对子
	HandThirteenOrphans            // 国士无双
)

// EWait 听牌形
type EWait int

const (
	WaitNone    EWait = iota
	WaitRyanmen       // 两面
	WaitKanchan       // 嵌张
	WaitPenchan       // 边张
	WaitTanki         // 单骑
	WaitShanpon       // 双碰
)

// EPayer 付款方
type EPayer int

const (
	PayerNone      EPayer = iota
	PayerAll              // 亲家自摸, 三家均摊
	PayerDealer           // 子家自摸时的亲家
	PayerNonDealer        // 子家自摸时的其他子家 (每人)
	PayerDiscarder        // 放铳者
)

func (p EPayer) String() string {
	switch p {
	case PayerAll:
		return "all"
	case PayerDealer:
		return "dealer"
	case PayerNonDealer:
		return "non-dealer"
	case PayerDiscarder:
		return "discarder"
	default:
		return "none"
	}
}

// GetNextSeat seat 之后第 step 个座位
func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
