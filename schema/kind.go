package schema

type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindSeq
	KindRef
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindSeq:    "seq",
	KindRef:    "ref",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsScalar() bool {
	return k <= KindString
}
