package interpreter

import (
	"fmt"
	"strconv"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueNumberType
	ValueStringType
)

var valueTypeNames = [...]string{
	ValueNilType:    "nil",
	ValueBoolType:   "bool",
	ValueNumberType: "number",
	ValueStringType: "string",
}

// String implements fmt.Stringer.
func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", uint(t))
}

// Value is a tagged runtime value. The tag is fixed when a literal is
// evaluated; operators switch on it rather than re-parsing text.
type Value interface {
	Type() ValueType
	fmt.Stringer
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueNumber int64
	ValueString string
)

var (
	NilValue   = ValueNil{}
	TrueValue  = ValueBool(true)
	FalseValue = ValueBool(false)
)

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueNumber) Type() ValueType {
	return ValueNumberType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

// String implements fmt.Stringer.
func (v ValueNil) String() string {
	return "nil"
}

// String implements fmt.Stringer.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String implements fmt.Stringer.
func (v ValueNumber) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// String implements fmt.Stringer.
func (v ValueString) String() string {
	return string(v)
}

// GoString implements fmt.GoStringer.
func (v ValueString) GoString() string {
	return strconv.Quote(string(v))
}

// literalValue tags a parser literal.
func literalValue(literal any) Value {
	switch v := literal.(type) {
	case nil:
		return NilValue
	case bool:
		return ValueBool(v)
	case int64:
		return ValueNumber(v)
	case string:
		return ValueString(v)
	}

	panic(fmt.Sprintf("unexpected literal %#v", literal))
}

// isEqual never fails: nil equals only nil, values of different types are
// never equal.
func isEqual(left, right Value) bool {
	return left == right
}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueNumber(0)
	_ Value = ValueString("")
)
