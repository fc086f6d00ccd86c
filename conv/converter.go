package conv

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/viant/strparse"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// ConversionFunc defines a custom conversion function, dest is a pointer to the registered type
type ConversionFunc func(text *string, dest interface{}, opts Options) error

// Converter converts text into scalar values
type Converter struct {
	options       Options
	customConvMap sync.Map // map[reflect.Type]ConversionFunc
}

// NewConverter creates a new converter with the provided options
func NewConverter(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Converter{options: options}
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// RegisterConversion registers a custom conversion function for a destination type
func (c *Converter) RegisterConversion(destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(destType, fn)
}

// Supports returns true if the converter can produce values of the destination type
func (c *Converter) Supports(destType reflect.Type) bool {
	if _, ok := c.customConvMap.Load(destType); ok {
		return true
	}
	if destType.Kind() == reflect.Ptr {
		return c.Supports(destType.Elem())
	}
	_, err := KindOf(destType)
	return err == nil
}

// Convert converts text into the value pointed by dest, the conversion kind is derived from the destination type.
// A nil text leaves pointer destinations nil, for other destinations it follows the mode contract.
func (c *Converter) Convert(text *string, dest interface{}) error {
	return c.ConvertKind(text, strparse.KindUndefined, dest)
}

// ConvertKind converts text with explicit kind into the value pointed by dest
func (c *Converter) ConvertKind(text *string, kind strparse.Kind, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	value, err := c.Value(text, kind, destValue.Type().Elem())
	if err != nil {
		return err
	}
	destValue.Elem().Set(value)
	return nil
}

// Value converts text into a value of the destination type
func (c *Converter) Value(text *string, kind strparse.Kind, destType reflect.Type) (reflect.Value, error) {
	return c.ValueMode(c.options.Mode, text, kind, destType)
}

// ValueMode converts text into a value of the destination type with explicit mode
func (c *Converter) ValueMode(mode Mode, text *string, kind strparse.Kind, destType reflect.Type) (reflect.Value, error) {
	if fn, ok := c.customConvMap.Load(destType); ok {
		options := c.options
		options.Mode = mode
		ptr := reflect.New(destType)
		if err := fn.(ConversionFunc)(text, ptr.Interface(), options); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	}
	if destType.Kind() == reflect.Ptr {
		if text == nil {
			return reflect.Zero(destType), nil
		}
		value, err := c.ValueMode(mode, text, kind, destType.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(destType.Elem())
		ptr.Elem().Set(value)
		return ptr, nil
	}
	if kind == strparse.KindUndefined {
		var err error
		if kind, err = KindOf(destType); err != nil {
			return reflect.Value{}, err
		}
	}
	if destType.Kind() == reflect.String && kind != strparse.KindChar {
		return reflect.Value{}, fmt.Errorf("cannot convert %v into %v", kind, destType)
	}
	result, err := convert(mode, text, kind)
	if err != nil {
		return reflect.Value{}, err
	}
	value := reflect.ValueOf(result)
	if !value.Type().ConvertibleTo(destType) {
		return reflect.Value{}, fmt.Errorf("cannot convert %v into %v", kind, destType)
	}
	return value.Convert(destType), nil
}

func convert(mode Mode, text *string, kind strparse.Kind) (interface{}, error) {
	if mode == ModeParse {
		return kind.Parse(text)
	}
	if text == nil {
		return nil, fmt.Errorf("failed to convert absent text to %v: %w", kind, strparse.ErrInvalidFormat)
	}
	value, ok := kind.Try(*text)
	if !ok {
		return nil, fmt.Errorf("failed to convert %q to %v: %w", *text, kind, strparse.ErrInvalidFormat)
	}
	return value, nil
}

// KindOf returns default conversion kind for supplied type
func KindOf(rType reflect.Type) (strparse.Kind, error) {
	if rType == decimalType {
		return strparse.KindDecimal, nil
	}
	switch rType.Kind() {
	case reflect.Bool:
		return strparse.KindBool, nil
	case reflect.Int8:
		return strparse.KindSByte, nil
	case reflect.Int16:
		return strparse.KindShort, nil
	case reflect.Int32:
		return strparse.KindInt, nil
	case reflect.Int, reflect.Int64:
		return strparse.KindLong, nil
	case reflect.Uint8:
		return strparse.KindByte, nil
	case reflect.Uint16:
		return strparse.KindUShort, nil
	case reflect.Uint32:
		return strparse.KindUint, nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return strparse.KindULong, nil
	case reflect.Float32:
		return strparse.KindFloat, nil
	case reflect.Float64:
		return strparse.KindDouble, nil
	}
	return strparse.KindUndefined, fmt.Errorf("unsupported destination type: %v", rType)
}
