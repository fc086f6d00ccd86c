package bind

import "reflect"

//GenMarkerFields generates marker struct fields for exported owner fields, use reflect.StructOf to build a marker type
func GenMarkerFields(t reflect.Type) []reflect.StructField {
	var result []reflect.StructField
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return result
	}
	boolType := reflect.TypeOf(true)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) || field.PkgPath != "" {
			continue
		}
		result = append(result, reflect.StructField{Name: field.Name, Type: boolType})
	}
	return result
}
