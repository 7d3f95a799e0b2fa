package riichi

import "fmt"

// Context 和牌时的场况快照, 由调用方每次构造
type Context struct {
	RoundWind  Tile  // 场风
	Seat       int32 // 和牌者座位
	DealerSeat int32 // 亲家座位

	Tsumo        bool // 自摸
	Riichi       bool // 立直
	DoubleRiichi bool // 两立直
	Ippatsu      bool // 一发
	Haitei       bool // 海底摸月
	Houtei       bool // 河底捞鱼
	Rinshan      bool // 岭上开花
	Tenhou       bool // 天和
	Chiihou      bool // 地和
}

func (c *Context) IsDealer() bool {
	return c.Seat == c.DealerSeat
}

// SeatWind 亲家为东, 逆时针依次为南西北
func (c *Context) SeatWind() Tile {
	return MakeTile(SuitHonor, int(GetNextSeat(c.Seat, NP4-c.DealerSeat, NP4)))
}

// IsValueWind 场风或自风
func (c *Context) IsValueWind(t Tile) bool {
	return t == c.RoundWind || t == c.SeatWind()
}

// IsValueTile 三元牌, 场风或自风
func (c *Context) IsValueTile(t Tile) bool {
	return t.IsDragon() || c.IsValueWind(t)
}

func (c *Context) Validate() error {
	if !c.RoundWind.IsWind() {
		return fmt.Errorf("%w: round wind %s", ErrInvalidContext, c.RoundWind)
	}
	if c.Seat < 0 || c.Seat >= NP4 || c.DealerSeat < 0 || c.DealerSeat >= NP4 {
		return fmt.Errorf("%w: seat %d dealer %d", ErrInvalidContext, c.Seat, c.DealerSeat)
	}
	return nil
}
