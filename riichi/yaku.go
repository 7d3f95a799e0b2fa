package riichi

// Yaku 役种
type Yaku int

const (
	YakuNone Yaku = iota

	// 场况役
	YakuRiichi       // 立直
	YakuDoubleRiichi // 两立直
	YakuIppatsu      // 一发
	YakuMenzenTsumo  // 门前清自摸和
	YakuHaitei       // 海底摸月
	YakuHoutei       // 河底捞鱼
	YakuRinshan      // 岭上开花

	// 牌型役
	YakuTanyao      // 断幺九
	YakuPinfu       // 平和
	YakuIipeikou    // 一杯口
	YakuHaku        // 役牌 白
	YakuHatsu       // 役牌 发
	YakuChun        // 役牌 中
	YakuBakaze      // 场风
	YakuJikaze      // 自风
	YakuChiitoitsu  // 七对子
	YakuToitoi      // 对对和
	YakuSanankou    // 三暗刻
	YakuSanshoku    // 三色同顺
	YakuIttsu       // 一气通贯
	YakuChanta      // 混全带幺九
	YakuJunchan     // 纯全带幺九
	YakuHonroutou   // 混老头
	YakuShousangen  // 小三元
	YakuHonitsu     // 混一色
	YakuChinitsu    // 清一色
	YakuDora        // 宝牌, 每张一次

	// 役满
	YakuKokushi    // 国士无双
	YakuSuuankou   // 四暗刻
	YakuDaisangen  // 大三元
	YakuTsuuiisou  // 字一色
	YakuRyuuiisou  // 绿一色
	YakuChinroutou // 清老头
	YakuTenhou     // 天和
	YakuChiihou    // 地和

	YakuEnd
)

// YakuInfo 役的固定数据
type YakuInfo struct {
	Name      string
	Han       int  // 门清番数
	Kuisagari bool // 副露减一番
	Menzen    bool // 仅门清成立
	Yakuman   int  // 役满倍数, 非役满为0
}

var yakuInfos = [YakuEnd]YakuInfo{
	YakuRiichi:       {Name: "Riichi", Han: 1, Menzen: true},
	YakuDoubleRiichi: {Name: "Double Riichi", Han: 2, Menzen: true},
	YakuIppatsu:      {Name: "Ippatsu", Han: 1, Menzen: true},
	YakuMenzenTsumo:  {Name: "Menzen Tsumo", Han: 1, Menzen: true},
	YakuHaitei:       {Name: "Haitei Raoyue", Han: 1},
	YakuHoutei:       {Name: "Houtei Raoyui", Han: 1},
	YakuRinshan:      {Name: "Rinshan Kaihou", Han: 1},
	YakuTanyao:       {Name: "Tanyao", Han: 1},
	YakuPinfu:        {Name: "Pinfu", Han: 1, Menzen: true},
	YakuIipeikou:     {Name: "Iipeikou", Han: 1, Menzen: true},
	YakuHaku:         {Name: "Yakuhai (White Dragon)", Han: 1},
	YakuHatsu:        {Name: "Yakuhai (Green Dragon)", Han: 1},
	YakuChun:         {Name: "Yakuhai (Red Dragon)", Han: 1},
	YakuBakaze:       {Name: "Yakuhai (Round Wind)", Han: 1},
	YakuJikaze:       {Name: "Yakuhai (Seat Wind)", Han: 1},
	YakuChiitoitsu:   {Name: "Chiitoitsu", Han: 2, Menzen: true},
	YakuToitoi:       {Name: "Toitoi", Han: 2},
	YakuSanankou:     {Name: "Sanankou", Han: 2},
	YakuSanshoku:     {Name: "Sanshoku Doujun", Han: 2, Kuisagari: true},
	YakuIttsu:        {Name: "Ittsu", Han: 2, Kuisagari: true},
	YakuChanta:       {Name: "Chanta", Han: 3, Kuisagari: true},
	YakuJunchan:      {Name: "Junchan", Han: 3, Kuisagari: true},
	YakuHonroutou:    {Name: "Honroutou", Han: 1},
	YakuShousangen:   {Name: "Shousangen", Han: 1},
	YakuHonitsu:      {Name: "Honitsu", Han: 3, Kuisagari: true},
	YakuChinitsu:     {Name: "Chinitsu", Han: 6, Kuisagari: true},
	YakuDora:         {Name: "Dora", Han: 1},
	YakuKokushi:      {Name: "Kokushi Musou", Han: 13, Menzen: true, Yakuman: 1},
	YakuSuuankou:     {Name: "Suuankou", Han: 13, Menzen: true, Yakuman: 1},
	YakuDaisangen:    {Name: "Daisangen", Han: 13, Yakuman: 1},
	YakuTsuuiisou:    {Name: "Tsuuiisou", Han: 13, Yakuman: 1},
	YakuRyuuiisou:    {Name: "Ryuuiisou", Han: 13, Yakuman: 1},
	YakuChinroutou:   {Name: "Chinroutou", Han: 13, Yakuman: 1},
	YakuTenhou:       {Name: "Tenhou", Han: 13, Menzen: true, Yakuman: 1},
	YakuChiihou:      {Name: "Chiihou", Han: 13, Menzen: true, Yakuman: 1},
}

func (y Yaku) Info() YakuInfo {
	if y <= YakuNone || y >= YakuEnd {
		return YakuInfo{}
	}
	return yakuInfos[y]
}

func (y Yaku) String() string {
	if info := y.Info(); info.Name != "" {
		return info.Name
	}
	return "Unknown"
}

func (y Yaku) IsYakuman() bool {
	return y.Info().Yakuman > 0
}

// HanValue 该役的番数, open 为副露状态
func (y Yaku) HanValue(open bool) int {
	info := y.Info()
	if open && info.Menzen {
		return 0
	}
	if open && info.Kuisagari {
		return info.Han - 1
	}
	return info.Han
}

// TotalHan 合计番数, 宝牌按出现次数累加
func TotalHan(yakus []Yaku, open bool) int {
	han := 0
	for _, y := range yakus {
		han += y.HanValue(open)
	}
	return han
}

// YakumanUnits 役满倍数合计
func YakumanUnits(yakus []Yaku) int {
	units := 0
	for _, y := range yakus {
		units += y.Info().Yakuman
	}
	return units
}

func YakuNames(yakus []Yaku) []string {
	names := make([]string, 0, len(yakus))
	for _, y := range yakus {
		names = append(names, y.String())
	}
	return names
}
