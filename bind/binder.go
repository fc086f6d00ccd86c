// Package bind populates struct scalar fields from text key/value pairs
package bind

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/viant/strparse"
	"github.com/viant/strparse/conv"
	"github.com/viant/strparse/tags"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	//Binder binds text values into struct fields
	Binder struct {
		converter  *conv.Converter
		caseFormat text.CaseFormat
		strict     bool
		markerOpts []MarkerOption
		plans      sync.Map // map[reflect.Type]*plan
	}

	plan struct {
		fields []*field
		byName map[string]*field
		marker *Marker
	}

	field struct {
		name   string
		xField *xunsafe.Field
		tag    *tags.Tag
	}
)

//NewBinder creates a binder
func NewBinder(opts ...Option) *Binder {
	ret := &Binder{}
	Options(opts).Apply(ret)
	if ret.converter == nil {
		ret.converter = conv.NewConverter()
	}
	return ret
}

//Bind converts values into matching dest struct fields, dest has to be a non nil struct pointer.
//Fields without a value keep their state unless the parse tag defines a default.
func (b *Binder) Bind(values map[string]string, dest interface{}) error {
	destValue := reflect.ValueOf(dest)
	if dest == nil || destValue.Kind() != reflect.Ptr || destValue.IsNil() || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination has to be a non nil struct pointer, but had %T", dest)
	}
	aPlan, err := b.plan(destValue.Type().Elem())
	if err != nil {
		return err
	}
	if b.strict {
		for key := range values {
			if _, ok := aPlan.byName[key]; !ok {
				return fmt.Errorf("unknown key: %v", key)
			}
		}
	}
	ptr := xunsafe.AsPointer(dest)
	if aPlan.marker != nil {
		aPlan.marker.Init(ptr)
	}
	for _, aField := range aPlan.fields {
		if err := b.bindField(ptr, aPlan, aField, values); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binder) bindField(ptr unsafe.Pointer, aPlan *plan, aField *field, values map[string]string) error {
	raw, ok := values[aField.name]
	text := &raw
	if !ok {
		if aField.tag.Default == nil {
			return nil
		}
		text = aField.tag.Default
	}
	mode := b.converter.Options().Mode
	if aField.tag.Try {
		mode = conv.ModeTry
	}
	value, err := b.converter.ValueMode(mode, text, aField.tag.Kind, aField.xField.Type)
	if err != nil {
		return fmt.Errorf("failed to bind %v: %w", aField.name, err)
	}
	aField.xField.SetValue(ptr, value.Interface())
	if aPlan.marker != nil {
		if pos := aPlan.marker.Index(aField.xField.Name); pos != -1 {
			return aPlan.marker.Set(ptr, pos, ok)
		}
	}
	return nil
}

func (b *Binder) plan(structType reflect.Type) (*plan, error) {
	if cached, ok := b.plans.Load(structType); ok {
		return cached.(*plan), nil
	}
	marker, err := NewMarker(structType, b.markerOpts...)
	if err != nil {
		return nil, err
	}
	ret := &plan{byName: map[string]*field{}, marker: marker}
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if structField.PkgPath != "" || structField.Anonymous || IsSetMarker(structField.Tag) {
			continue
		}
		formatTag, err := format.Parse(structField.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid format tag on %v.%v: %w", structType.Name(), structField.Name, err)
		}
		if formatTag.Ignore {
			continue
		}
		parseTag, err := tags.Parse(structField.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid tag on %v.%v: %w", structType.Name(), structField.Name, err)
		}
		if parseTag.Kind == strparse.KindUndefined && !b.converter.Supports(structField.Type) {
			continue
		}
		aField := &field{
			name:   b.fieldName(structField.Name, formatTag),
			xField: xunsafe.NewField(structField),
			tag:    parseTag,
		}
		if _, ok := ret.byName[aField.name]; ok {
			return nil, fmt.Errorf("duplicate key %v in %v", aField.name, structType.Name())
		}
		ret.fields = append(ret.fields, aField)
		ret.byName[aField.name] = aField
	}
	actual, _ := b.plans.LoadOrStore(structType, ret)
	return actual.(*plan), nil
}

func (b *Binder) fieldName(name string, formatTag *format.Tag) string {
	if formatTag.Name != "" {
		return formatTag.Name
	}
	if !b.caseFormat.IsDefined() {
		return name
	}
	if name == "ID" {
		switch b.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, b.caseFormat)
}
