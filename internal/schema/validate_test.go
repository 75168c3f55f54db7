package schema

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = New("sample",
	String("name"),
	Email("email"),
	Integer("qty"),
	Number("price"),
	Date("placedAt"),
)

type sample struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Qty      int       `json:"qty"`
	Price    float64   `json:"price"`
	PlacedAt time.Time `json:"placedAt"`
}

func validPayload() map[string]any {
	return map[string]any{
		"name":     "Mouse",
		"email":    "buyer@example.com",
		"qty":      json.Number("2"),
		"price":    json.Number("9.99"),
		"placedAt": "2024-03-01T10:00:00Z",
	}
}

func TestValidate_NormalizesValues(t *testing.T) {
	values, err := testSchema.Validate(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "Mouse", values["name"])
	assert.Equal(t, 2, values["qty"])
	assert.Equal(t, 9.99, values["price"])
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), values["placedAt"])
}

func TestValidate_ReportsFirstViolationInFieldOrder(t *testing.T) {
	payload := validPayload()
	delete(payload, "qty")
	payload["email"] = "not-an-email"

	_, err := testSchema.Validate(payload)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, RuleEmail, verr.Rule)
	assert.Equal(t, `"email" must be a valid email`, verr.Error())
}

func TestValidate_Messages(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
		drop  bool
		want  string
	}{
		{name: "missing", field: "name", drop: true, want: `"name" is required`},
		{name: "empty string", field: "name", value: "", want: `"name" is not allowed to be empty`},
		{name: "wrong type", field: "name", value: json.Number("3"), want: `"name" must be a string`},
		{name: "null string", field: "name", value: nil, want: `"name" must be a string`},
		{name: "fractional integer", field: "qty", value: json.Number("2.5"), want: `"qty" must be an integer`},
		{name: "integer as text", field: "qty", value: "abc", want: `"qty" must be a number`},
		{name: "bool number", field: "price", value: true, want: `"price" must be a number`},
		{name: "unsafe number", field: "price", value: json.Number("1e300"), want: `"price" must be a safe number`},
		{name: "bad date", field: "placedAt", value: "yesterday", want: `"placedAt" must be a valid date`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			if tc.drop {
				delete(payload, tc.field)
			} else {
				payload[tc.field] = tc.value
			}
			_, err := testSchema.Validate(payload)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestValidate_ConvertsNumericStringsAndDates(t *testing.T) {
	payload := validPayload()
	payload["qty"] = " 7 "
	payload["price"] = "12.5"
	payload["placedAt"] = "2024-03-01"

	values, err := testSchema.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, 7, values["qty"])
	assert.Equal(t, 12.5, values["price"])
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), values["placedAt"])

	payload["placedAt"] = json.Number("1709287200000")
	values, err = testSchema.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1709287200000).UTC(), values["placedAt"])
}

func TestValidate_RejectsUnknownKeysAfterFields(t *testing.T) {
	payload := validPayload()
	payload["zeta"] = 1
	payload["id"] = 4

	_, err := testSchema.Validate(payload)
	require.Error(t, err)
	assert.Equal(t, `"id" is not allowed`, err.Error())

	delete(payload, "name")
	_, err = testSchema.Validate(payload)
	assert.Equal(t, `"name" is required`, err.Error())
}

func TestMerge_OverwritesOnlyPresentFields(t *testing.T) {
	rec := sample{ID: 9, Name: "Old", Email: "old@example.com", Qty: 1, Price: 1}

	err := Merge(&rec, Values{"name": "New", "qty": 4})
	require.NoError(t, err)

	assert.Equal(t, sample{ID: 9, Name: "New", Email: "old@example.com", Qty: 4, Price: 1}, rec)
}

func TestNew_PanicsOnDuplicateField(t *testing.T) {
	assert.Panics(t, func() {
		New("dup", String("a"), Integer("a"))
	})
}
