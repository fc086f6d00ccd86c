package bind

import (
	"reflect"
	"strings"
)

const (
	//SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"

	presenceTagFragment = "presence=true"
)

//IsSetMarker returns true if a field holds set markers
func IsSetMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(SetMarkerTag); ok {
		return true
	}
	return strings.Contains(string(tag), presenceTagFragment)
}
