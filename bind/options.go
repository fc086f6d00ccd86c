package bind

import (
	"github.com/viant/strparse/conv"
	"github.com/viant/tagly/format/text"
)

//Option binder option
type Option func(b *Binder)

//Options represents binder options
type Options []Option

//Apply applies options
func (o Options) Apply(b *Binder) {
	for _, opt := range o {
		opt(b)
	}
}

//WithConverter sets converter used for field values
func WithConverter(converter *conv.Converter) Option {
	return func(b *Binder) {
		b.converter = converter
	}
}

//WithCaseFormat sets case format of keys derived from field names
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(b *Binder) {
		b.caseFormat = caseFormat
	}
}

//WithStrict reports keys without corresponding field as an error
func WithStrict(strict bool) Option {
	return func(b *Binder) {
		b.strict = strict
	}
}

//WithMarkerOptions sets options used to build presence markers
func WithMarkerOptions(opts ...MarkerOption) Option {
	return func(b *Binder) {
		b.markerOpts = append(b.markerOpts, opts...)
	}
}
