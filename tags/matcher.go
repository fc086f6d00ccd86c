package tags

import (
	"bytes"
	"github.com/viant/parsly"
	"strings"
)

// Values represents comma separated tag elements
type Values string

// MatchPairs calls onMatch for every key[=value] element, bare keys have an empty value
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

// matchPair matches key=value, key={value}, key='value' or a bare key element
func matchPair(cursor *parsly.Cursor) (string, string) {
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return strings.TrimSpace(matchValue(cursor)), ""
	}
	match := cursor.MatchAny(eqTerminatorMatcher)
	key := match.Text(cursor)
	key = strings.TrimSpace(key[:len(key)-1]) //exclude =
	return key, matchValue(cursor)
}

func matchValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return value[1 : len(value)-1]
	case comaTerminatorToken:
		value := match.Text(cursor)
		return value[:len(value)-1] //exclude ,
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value
}
