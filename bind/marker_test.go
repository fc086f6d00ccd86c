package bind

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/xunsafe"
	"reflect"
	"testing"
)

func TestMarker_IsSet(t *testing.T) {

	var testCases = []struct {
		description string
		provider    func() interface{}
		expectSet   []string
		expectUnset []string
		expectError bool
	}{
		{
			description: "aligned set marker",
			provider: func() interface{} {
				type EntityHas struct {
					Id     bool
					Name   bool
					Active bool
				}
				type Entity struct {
					Id     int
					Name   string
					Active bool
					Has    *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{Id: true, Active: true}, Id: 1, Active: true}
			},
			expectSet:   []string{"Id", "Active"},
			expectUnset: []string{"Name"},
		},
		{
			description: "un aligned set marker (more fields in the owner struct)",
			provider: func() interface{} {
				type EntityHas struct {
					Name bool
				}
				type Entity struct {
					Id   int
					Name string
					Nums []int
					Has  *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{Name: true}, Name: "abc"}
			},
			expectSet:   []string{"Name"},
			expectUnset: []string{"Id", "Nums"},
		},
		{
			description: "un aligned set marker (more fields in the marker struct)",
			provider: func() interface{} {
				type EntityHas struct {
					Id   bool
					Nums bool
				}
				type Entity struct {
					Id  int
					Has *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{}}
			},
			expectError: true,
		},
		{
			description: "non bool marker field",
			provider: func() interface{} {
				type EntityHas struct {
					Id int
				}
				type Entity struct {
					Id  int
					Has *EntityHas `setMarker:"true"`
				}
				return &Entity{Has: &EntityHas{}}
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		value := testCase.provider()
		marker, err := NewMarker(reflect.TypeOf(value))
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		ptr := xunsafe.AsPointer(value)
		for _, name := range testCase.expectSet {
			assert.True(t, marker.IsSet(ptr, marker.Index(name)), testCase.description+" "+name)
		}
		for _, name := range testCase.expectUnset {
			assert.False(t, marker.IsSet(ptr, marker.Index(name)), testCase.description+" "+name)
		}
	}
}

func TestMarker_Set(t *testing.T) {
	type EntityHas struct {
		Id   bool
		Name bool
	}
	type Entity struct {
		Id   int
		Name string
		Has  *EntityHas `setMarker:"true"`
	}
	marker, err := NewMarker(reflect.TypeOf(Entity{}))
	if !assert.Nil(t, err) {
		return
	}
	entity := &Entity{}
	ptr := xunsafe.AsPointer(entity)
	assert.True(t, marker.IsSet(ptr, marker.Index("Id")), "no holder assumes set")
	assert.NotNil(t, marker.Set(ptr, marker.Index("Id"), true))

	marker.Init(ptr)
	assert.NotNil(t, entity.Has)
	assert.Nil(t, marker.Set(ptr, marker.Index("Name"), true))
	assert.True(t, entity.Has.Name)
	assert.False(t, entity.Has.Id)
	assert.NotNil(t, marker.Set(ptr, marker.Index("Unknown"), true))

	assert.Nil(t, marker.SetAll(ptr, true))
	assert.True(t, entity.Has.Id)
	marker.Init(ptr)
	assert.EqualValues(t, EntityHas{}, *entity.Has, "init clears existing flags")

	type Plain struct {
		Id int
	}
	plain, err := NewMarker(reflect.TypeOf(Plain{}))
	assert.Nil(t, err)
	assert.Nil(t, plain)
}

func TestNewMarker_Options(t *testing.T) {
	type EntityHas struct {
		Name   bool
		Legacy bool
	}
	type Entity struct {
		Id   int
		Name string
		Has  *EntityHas `setMarker:"true"`
	}

	_, err := NewMarker(reflect.TypeOf(Entity{}))
	assert.NotNil(t, err, "marker field without owner field")

	marker, err := NewMarker(reflect.TypeOf(Entity{}), WithNoStrictMarker())
	if !assert.Nil(t, err) {
		return
	}
	entity := &Entity{}
	ptr := xunsafe.AsPointer(entity)
	marker.Init(ptr)
	assert.Nil(t, marker.Set(ptr, marker.Index("Name"), true))
	assert.EqualValues(t, EntityHas{Name: true}, *entity.Has)

	index := map[string]int{"Name": 0}
	marker, err = NewMarker(reflect.TypeOf(Entity{}), WithNoStrictMarker(), WithMarkerIndex(index))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, map[string]int{"Name": 0}, index, "caller index is not modified")
	assert.EqualValues(t, 0, marker.Index("Name"))
	assert.EqualValues(t, 0, marker.Index("Id"))
	assert.EqualValues(t, -1, marker.Index("Unknown"))

	_, err = NewMarker(reflect.TypeOf(Entity{}), WithNoStrictMarker(), WithMarkerIndex(map[string]int{"Name": 3}))
	assert.NotNil(t, err, "index out of range")
}
