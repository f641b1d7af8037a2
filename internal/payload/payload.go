// Package payload inspects upstream JSON bodies of unknown shape.
//
// Upstream lookup services answer with a bare object, a bare array, or an
// object wrapping either under "data". Resolve turns any of those into the
// effective record; Truthy and Displayable decide which values count as present.
package payload

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Shape names the envelope a response arrived in.
type Shape string

const (
	ShapeBare       Shape = "bare"
	ShapeArray      Shape = "array"
	ShapeDataArray  Shape = "data-array"
	ShapeDataObject Shape = "data-object"
)

type shapeRule struct {
	shape   Shape
	match   func(v gjson.Result) bool
	resolve func(v gjson.Result) gjson.Result
}

// Rules are checked in order; the first match wins. A body matching none is
// its own effective record.
var shapeRules = []shapeRule{
	{
		shape:   ShapeArray,
		match:   func(v gjson.Result) bool { return v.IsArray() },
		resolve: firstOrSelf,
	},
	{
		shape:   ShapeDataArray,
		match:   func(v gjson.Result) bool { return v.IsObject() && v.Get("data").IsArray() },
		resolve: func(v gjson.Result) gjson.Result { return firstOrSelf(v.Get("data")) },
	},
	{
		shape: ShapeDataObject,
		match: func(v gjson.Result) bool {
			d := v.Get("data")
			return v.IsObject() && Truthy(d) && !d.IsArray()
		},
		resolve: func(v gjson.Result) gjson.Result { return v.Get("data") },
	},
}

// Parse decodes raw JSON. ok is false when raw is not valid JSON.
func Parse(raw []byte) (gjson.Result, bool) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(raw), true
}

// Resolve returns the effective record of v and the shape it was found in.
func Resolve(v gjson.Result) (Shape, gjson.Result) {
	for _, rule := range shapeRules {
		if rule.match(v) {
			return rule.shape, rule.resolve(v)
		}
	}
	return ShapeBare, v
}

func firstOrSelf(arr gjson.Result) gjson.Result {
	items := arr.Array()
	if len(items) > 0 && Truthy(items[0]) {
		return items[0]
	}
	return arr
}

// IsEmpty reports whether a decoded body carries no result: a falsy value,
// an empty array, or an object whose "data" is an empty array.
func IsEmpty(v gjson.Result) bool {
	if !Truthy(v) {
		return true
	}
	if v.IsArray() {
		return len(v.Array()) == 0
	}
	if v.IsObject() {
		d := v.Get("data")
		return d.IsArray() && len(d.Array()) == 0
	}
	return false
}

// Truthy applies JavaScript truthiness to a JSON value. Missing values are falsy.
func Truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}

// Displayable is Truthy minus the placeholder strings "null" and "undefined"
// some upstreams emit instead of omitting a field.
func Displayable(v gjson.Result) bool {
	if !Truthy(v) {
		return false
	}
	if v.Type == gjson.String && (v.Str == "null" || v.Str == "undefined") {
		return false
	}
	return true
}

// Text renders a value for display. Objects and arrays become compact JSON.
func Text(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.JSON:
		return string(pretty.Ugly([]byte(v.Raw)))
	default:
		return ""
	}
}

// Field is one key/value pair of a record, in document order.
type Field struct {
	Key   string
	Value gjson.Result
}

// Fields lists the entries of an object in document order. A key repeated in
// the document keeps its first position and takes its last value. Arrays are
// listed by index; scalars have no fields.
func Fields(v gjson.Result) []Field {
	var fields []Field
	switch {
	case v.IsObject():
		index := make(map[string]int)
		v.ForEach(func(key, value gjson.Result) bool {
			if i, seen := index[key.Str]; seen {
				fields[i].Value = value
				return true
			}
			index[key.Str] = len(fields)
			fields = append(fields, Field{Key: key.Str, Value: value})
			return true
		})
	case v.IsArray():
		for i, item := range v.Array() {
			fields = append(fields, Field{Key: strconv.Itoa(i), Value: item})
		}
	}
	return fields
}
