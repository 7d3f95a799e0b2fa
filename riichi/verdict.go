package riichi

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/utils"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Verdict 和牌判定结果
type Verdict struct {
	CanWin   bool
	Style    EHandStyle
	Groups   []Group // 采用的拆法, 役满时为空
	Yaku     []Yaku  // 宝牌按张数重复
	Fu       int
	Han      int
	Score    int // 和牌者所得合计
	Payments []Payment
	PayText  string
	Title    string // 满贯以上的称号
}

func noWin() *Verdict {
	return &Verdict{CanWin: false, Yaku: []Yaku{}}
}

func (v *Verdict) YakuNames() []string {
	return YakuNames(v.Yaku)
}

func (v *Verdict) IsYakuman() bool {
	return YakumanUnits(v.Yaku) > 0
}

// ToStruct 编码为 structpb.Struct, 供上层传输
func (v *Verdict) ToStruct() (*structpb.Struct, error) {
	yaku := make([]any, 0, len(v.Yaku))
	for _, name := range v.YakuNames() {
		yaku = append(yaku, name)
	}
	groups := make([]any, 0, len(v.Groups))
	for _, g := range v.Groups {
		groups = append(groups, g.String())
	}
	payments := make([]any, 0, len(v.Payments))
	for _, p := range v.Payments {
		payments = append(payments, map[string]any{
			"payer":  p.Payer.String(),
			"count":  p.Count,
			"amount": p.Amount,
		})
	}
	return structpb.NewStruct(map[string]any{
		"can_win":  v.CanWin,
		"yaku":     yaku,
		"groups":   groups,
		"fu":       v.Fu,
		"han":      v.Han,
		"score":    v.Score,
		"payments": payments,
		"pay_text": v.PayText,
		"title":    v.Title,
	})
}

// ToAny 编码失败时返回 nil
func (v *Verdict) ToAny() *anypb.Any {
	st, err := v.ToStruct()
	if err != nil {
		return nil
	}
	return utils.ToAny(st)
}

// StructFromAny 解出 ToAny 打包的判定结果
func StructFromAny(data *anypb.Any) (*structpb.Struct, error) {
	if data == nil || !utils.IsType(data, (&structpb.Struct{}).ProtoReflect().Descriptor().FullName()) {
		return nil, fmt.Errorf("%w: type %s", ErrInvalidVerdict, data.GetTypeUrl())
	}
	msg, err := utils.FromAny(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVerdict, err)
	}
	return msg.(*structpb.Struct), nil
}
