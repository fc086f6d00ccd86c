package strparse

import (
	"fmt"
	"strings"
)

// Kind represents a conversion target type
type Kind int

const (
	KindUndefined Kind = iota
	KindBool
	KindChar
	KindInt
	KindUint
	KindByte
	KindSByte
	KindShort
	KindUShort
	KindLong
	KindULong
	KindFloat
	KindDouble
	KindDecimal
)

var kindNames = []string{"", "bool", "char", "int", "uint", "byte", "sbyte", "short", "ushort", "long", "ulong", "float", "double", "decimal"}

var kindAliases = map[string]Kind{
	"boolean": KindBool,
	"rune":    KindChar,
	"int32":   KindInt,
	"uint32":  KindUint,
	"uint8":   KindByte,
	"int8":    KindSByte,
	"int16":   KindShort,
	"uint16":  KindUShort,
	"int64":   KindLong,
	"uint64":  KindULong,
	"float32": KindFloat,
	"float64": KindDouble,
}

// Kinds returns all defined kinds
func Kinds() []Kind {
	var result = make([]Kind, 0, len(kindNames)-1)
	for i := KindBool; int(i) < len(kindNames); i++ {
		result = append(result, i)
	}
	return result
}

// ParseKind returns a kind for supplied name or alias, case insensitive
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := 1; i < len(kindNames); i++ {
		if kindNames[i] == name {
			return Kind(i), nil
		}
	}
	if kind, ok := kindAliases[name]; ok {
		return kind, nil
	}
	return KindUndefined, fmt.Errorf("unsupported kind: %q", name)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Try runs the kind TryParse function
func (k Kind) Try(text string) (interface{}, bool) {
	switch k {
	case KindBool:
		return TryParseBoolean(text)
	case KindChar:
		return TryParseChar(text)
	case KindInt:
		return TryParseInteger(text)
	case KindUint:
		return TryParseUnsignedInteger(text)
	case KindByte:
		return TryParseByte(text)
	case KindSByte:
		return TryParseSignedByte(text)
	case KindShort:
		return TryParseShort(text)
	case KindUShort:
		return TryParseUnsignedShort(text)
	case KindLong:
		return TryParseLong(text)
	case KindULong:
		return TryParseUnsignedLong(text)
	case KindFloat:
		return TryParseFloat(text)
	case KindDouble:
		return TryParseDouble(text)
	case KindDecimal:
		return TryParseDecimal(text)
	}
	return nil, false
}

// Parse runs the kind Parse function
func (k Kind) Parse(text *string) (interface{}, error) {
	switch k {
	case KindBool:
		return ParseBoolean(text)
	case KindChar:
		return ParseChar(text)
	case KindInt:
		return ParseInteger(text)
	case KindUint:
		return ParseUnsignedInteger(text)
	case KindByte:
		return ParseByte(text)
	case KindSByte:
		return ParseSignedByte(text)
	case KindShort:
		return ParseShort(text)
	case KindUShort:
		return ParseUnsignedShort(text)
	case KindLong:
		return ParseLong(text)
	case KindULong:
		return ParseUnsignedLong(text)
	case KindFloat:
		return ParseFloat(text)
	case KindDouble:
		return ParseDouble(text)
	case KindDecimal:
		return ParseDecimal(text)
	}
	return nil, fmt.Errorf("unsupported kind: %v", k)
}
