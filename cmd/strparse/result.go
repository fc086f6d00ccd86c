package main

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/shopspring/decimal"
	"github.com/viant/strparse"
)

// result represents a single conversion outcome
type result struct {
	Kind  strparse.Kind
	Text  *string
	Try   bool
	Ok    bool
	Value interface{}
	Error error
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (r *result) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", r.Kind.String())
	enc.BoolKey("absent", r.Text == nil)
	if r.Text != nil {
		enc.StringKey("text", *r.Text)
	}
	enc.StringKey("mode", r.mode())
	enc.BoolKey("ok", r.Ok)
	if r.Ok {
		enc.StringKey("value", formatValue(r.Kind, r.Value))
	}
	if r.Error != nil {
		enc.StringKey("error", r.Error.Error())
	}
}

// IsNil implements gojay.MarshalerJSONObject
func (r *result) IsNil() bool {
	return r == nil
}

func (r *result) mode() string {
	if r.Try {
		return "try"
	}
	return "parse"
}

func convert(kind strparse.Kind, text *string, try bool) *result {
	ret := &result{Kind: kind, Text: text, Try: try}
	if try {
		if text != nil {
			ret.Value, ret.Ok = kind.Try(*text)
		}
		return ret
	}
	ret.Value, ret.Error = kind.Parse(text)
	ret.Ok = ret.Error == nil
	return ret
}

func formatValue(kind strparse.Kind, value interface{}) string {
	switch actual := value.(type) {
	case rune:
		if kind == strparse.KindChar {
			return string(actual)
		}
	case decimal.Decimal:
		return actual.String()
	}
	return fmt.Sprint(value)
}

func writeResult(w io.Writer, r *result) error {
	data, err := gojay.MarshalJSONObject(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
