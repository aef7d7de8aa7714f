package invariant

// Kind identifies which relation an assertion form checks.
type Kind uint8

const (
	KindGeneral Kind = iota
	KindEq
	KindNe
	KindLt
	KindLe
	KindGt
	KindGe
)

// Relation returns the source form of the relation, e.g. "==" for KindEq.
// KindGeneral has no relation and returns the empty string.
func (k Kind) Relation() string {
	switch k {
	case KindEq:
		return "=="
	case KindNe:
		return "!="
	case KindLt:
		return "<"
	case KindLe:
		return "<="
	case KindGt:
		return ">"
	case KindGe:
		return ">="
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindGeneral:
		return "invariant"
	case KindEq:
		return "invariant_eq"
	case KindNe:
		return "invariant_ne"
	case KindLt:
		return "invariant_lt"
	case KindLe:
		return "invariant_le"
	case KindGt:
		return "invariant_gt"
	case KindGe:
		return "invariant_ge"
	default:
		return "invariant_unknown"
	}
}
