package bind

import (
	"fmt"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

//Marker records which struct fields were supplied during binding
type Marker struct {
	t        reflect.Type
	holder   *xunsafe.Field
	fields   []*xunsafe.Field
	index    map[string]int //owner field name to marker field position
	noStrict bool
}

//MarkerOption represents marker option
type MarkerOption func(m *Marker)

//WithMarkerIndex maps owner field names to owner field positions, unmapped fields use their own position
func WithMarkerIndex(index map[string]int) MarkerOption {
	return func(m *Marker) {
		for name, pos := range index {
			m.index[name] = pos
		}
	}
}

//WithNoStrictMarker allows marker fields without corresponding owner field
func WithNoStrictMarker() MarkerOption {
	return func(m *Marker) {
		m.noStrict = true
	}
}

//Index returns mapped field index or -1
func (p *Marker) Index(name string) int {
	if pos, ok := p.index[name]; ok {
		return pos
	}
	return -1
}

//Init allocates marker holder if needed and clears all flags
func (p *Marker) Init(ptr unsafe.Pointer) {
	if p.holder.IsNil(ptr) {
		p.holder.SetValue(ptr, reflect.New(p.holder.Type.Elem()).Interface())
		return
	}
	_ = p.SetAll(ptr, false)
}

//SetAll sets all marker fields with supplied flag
func (p *Marker) SetAll(ptr unsafe.Pointer, flag bool) error {
	if p.holder.IsNil(ptr) {
		return fmt.Errorf("failed to set all due to holder was empty")
	}
	markerPtr := p.holder.ValuePointer(ptr)
	for _, field := range p.fields {
		if field == nil {
			continue
		}
		field.SetBool(markerPtr, flag)
	}
	return nil
}

//Set sets field marker
func (p *Marker) Set(ptr unsafe.Pointer, index int, flag bool) error {
	if p.holder.IsNil(ptr) {
		return fmt.Errorf("marker holder was empty")
	}
	if index < 0 || index >= len(p.fields) || p.fields[index] == nil {
		return fmt.Errorf("field at index %v was missing in set marker", index)
	}
	p.fields[index].SetBool(p.holder.ValuePointer(ptr), flag)
	return nil
}

//IsSet returns true if field has been flagged as supplied, without holder all fields are assumed set
func (p *Marker) IsSet(ptr unsafe.Pointer, index int) bool {
	if p.holder.IsNil(ptr) {
		return true
	}
	if index < 0 || index >= len(p.fields) || p.fields[index] == nil {
		return false
	}
	return p.fields[index].Bool(p.holder.ValuePointer(ptr))
}

func (p *Marker) init() error {
	holderType := p.holder.Type
	if holderType.Kind() != reflect.Ptr || holderType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("marker holder %v has to be a pointer to struct", p.holder.Name)
	}
	markerType := holderType.Elem()
	for i := 0; i < markerType.NumField(); i++ {
		markerField := markerType.Field(i)
		pos, ok := p.index[markerField.Name]
		if !ok {
			if p.noStrict {
				continue
			}
			return fmt.Errorf("marker field: '%v' does not have corresponding struct field", markerField.Name)
		}
		if markerField.Type.Kind() != reflect.Bool {
			return fmt.Errorf("marker field: '%v' has to be bool", markerField.Name)
		}
		p.fields[pos] = xunsafe.NewField(markerField)
	}
	return nil
}

//NewMarker returns new struct field set marker or nil if struct does not define a marker holder
func NewMarker(t reflect.Type, opts ...MarkerOption) (*Marker, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("supplied type %v is not struct", t)
	}
	numField := t.NumField()
	var result = &Marker{t: t, fields: make([]*xunsafe.Field, numField), index: make(map[string]int, numField)}
	for _, opt := range opts {
		opt(result)
	}
	for name, pos := range result.index {
		if pos < 0 || pos >= numField {
			return nil, fmt.Errorf("marker index %v of %v is out of range [0,%v)", pos, name, numField)
		}
	}
	for i := 0; i < numField; i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) {
			result.holder = xunsafe.NewField(field)
			continue
		}
		if _, ok := result.index[field.Name]; !ok {
			result.index[field.Name] = field.Index[0]
		}
	}
	if result.holder == nil {
		return nil, nil
	}
	return result, result.init()
}
