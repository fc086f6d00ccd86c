// Package tags reads the parse struct tag controlling how text is converted into a field
package tags

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/strparse"
)

// TagName defines parse tag name
const TagName = "parse"

// Tag represents parse tag, i.e. `parse:"kind=char,try,default={ }"`
type Tag struct {
	Kind    strparse.Kind
	Try     bool
	Default *string
}

// Parse parses parse tag from supplied struct tag, missing tag returns an empty Tag
func Parse(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	literal, ok := tag.Lookup(TagName)
	if !ok || literal == "" {
		return ret, nil
	}
	err := Values(literal).MatchPairs(ret.update)
	if err != nil {
		return nil, fmt.Errorf("invalid %v tag %q: %w", TagName, literal, err)
	}
	return ret, nil
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "kind", "type":
		kind, err := strparse.ParseKind(value)
		if err != nil {
			return err
		}
		t.Kind = kind
	case "try":
		if value == "" {
			t.Try = true
			return nil
		}
		try, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid try value: %q", value)
		}
		t.Try = try
	case "mode":
		switch strings.ToLower(value) {
		case "try":
			t.Try = true
		case "parse":
			t.Try = false
		default:
			return fmt.Errorf("unsupported mode: %q", value)
		}
	case "default":
		t.Default = &value
	default:
		return fmt.Errorf("unsupported key: %q", key)
	}
	return nil
}
