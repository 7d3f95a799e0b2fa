package riichi

// Rule 计分规则选项
type Rule struct {
	// StrictPinfu 平和需要两面听
	StrictPinfu bool
	// DoubleWindPairFu 连风牌雀头计4符, 否则2符
	DoubleWindPairFu bool
}

func DefaultRule() Rule {
	return Rule{
		StrictPinfu:      false,
		DoubleWindPairFu: true,
	}
}
