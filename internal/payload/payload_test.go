package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func parse(t *testing.T, s string) gjson.Result {
	t.Helper()
	v, ok := Parse([]byte(s))
	require.True(t, ok, "invalid JSON in test: %s", s)
	return v
}

func TestResolve_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantShape Shape
		wantRaw   string
	}{
		{"bare object", `{"a":1}`, ShapeBare, `{"a":1}`},
		{"array of one", `[{"a":1}]`, ShapeArray, `{"a":1}`},
		{"data array", `{"data":[{"a":1}]}`, ShapeDataArray, `{"a":1}`},
		{"data object", `{"data":{"a":1}}`, ShapeDataObject, `{"a":1}`},
		{"array keeps first only", `[{"a":1},{"b":2}]`, ShapeArray, `{"a":1}`},
		{"array with falsy head", `[null,{"a":1}]`, ShapeArray, `[null,{"a":1}]`},
		{"empty data array", `{"data":[]}`, ShapeDataArray, `[]`},
		{"null data", `{"data":null,"a":1}`, ShapeBare, `{"data":null,"a":1}`},
		{"scalar data", `{"data":"x"}`, ShapeDataObject, `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shape, rec := Resolve(parse(t, tt.body))
			assert.Equal(t, tt.wantShape, shape)
			assert.Equal(t, tt.wantRaw, rec.Raw)
		})
	}
}

func TestResolve_EquivalentEnvelopes(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"a":1}`, `[{"a":1}]`, `{"data":[{"a":1}]}`, `{"data":{"a":1}}`} {
		_, rec := Resolve(parse(t, body))
		assert.Equal(t, `{"a":1}`, rec.Raw, body)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	empty := []string{`null`, `[]`, `{"data":[]}`, `false`, `0`, `""`}
	for _, body := range empty {
		assert.True(t, IsEmpty(parse(t, body)), body)
	}

	nonEmpty := []string{`{}`, `{"a":1}`, `[{}]`, `{"data":{}}`, `{"data":[{"a":1}]}`, `"x"`, `"null"`}
	for _, body := range nonEmpty {
		assert.False(t, IsEmpty(parse(t, body)), body)
	}
}

func TestTruthyAndDisplayable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw         string
		truthy      bool
		displayable bool
	}{
		{`null`, false, false},
		{`false`, false, false},
		{`true`, true, true},
		{`0`, false, false},
		{`12`, true, true},
		{`""`, false, false},
		{`"x"`, true, true},
		{`"null"`, true, false},
		{`"undefined"`, true, false},
		{`{}`, true, true},
		{`[]`, true, true},
	}

	for _, tt := range tests {
		v := parse(t, tt.raw)
		assert.Equal(t, tt.truthy, Truthy(v), "Truthy(%s)", tt.raw)
		assert.Equal(t, tt.displayable, Displayable(v), "Displayable(%s)", tt.raw)
	}

	assert.False(t, Truthy(gjson.Result{}), "missing value")
}

func TestText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pune", Text(parse(t, `"Pune"`)))
	assert.Equal(t, "42", Text(parse(t, `42`)))
	assert.Equal(t, "1000", Text(parse(t, `1e3`)))
	assert.Equal(t, "1.5", Text(parse(t, `1.50`)))
	assert.Equal(t, "490012345678", Text(parse(t, `490012345678`)))
	assert.Equal(t, "true", Text(parse(t, `true`)))
	assert.Equal(t, `{"a":[1,2]}`, Text(parse(t, `{ "a" : [ 1, 2 ] }`)))
	assert.Equal(t, "", Text(parse(t, `null`)))
}

func TestFields_OrderAndDuplicates(t *testing.T) {
	t.Parallel()

	fields := Fields(parse(t, `{"b":1,"a":2,"b":3}`))
	require.Len(t, fields, 2)
	assert.Equal(t, "b", fields[0].Key)
	assert.Equal(t, "3", fields[0].Value.Raw)
	assert.Equal(t, "a", fields[1].Key)

	arr := Fields(parse(t, `["x","y"]`))
	require.Len(t, arr, 2)
	assert.Equal(t, "1", arr[1].Key)

	assert.Empty(t, Fields(parse(t, `"scalar"`)))
}
