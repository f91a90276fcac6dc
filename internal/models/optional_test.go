package models_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"takeaway/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_TracksPresence(t *testing.T) {
	var body struct {
		Absent  models.Optional[string] `json:"absent"`
		Null    models.Optional[string] `json:"null"`
		Present models.Optional[int]    `json:"present"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"null": null, "present": 3}`), &body))

	assert.False(t, body.Absent.Set)
	assert.True(t, body.Null.Set)
	assert.Nil(t, body.Null.Value)
	assert.True(t, body.Present.Set)
	assert.Equal(t, 3, *body.Present.Value)
}

func TestOptional_TypeErrorsNameTheField(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		typ   reflect.Type
	}{
		{"fraction for integer", `{"sort_order": 1.5}`, "sort_order", reflect.TypeOf(0)},
		{"text for decimal", `{"price": "abc"}`, "price", reflect.TypeOf(decimal.Decimal{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Price     models.Optional[decimal.Decimal] `json:"price"`
				SortOrder models.Optional[int]             `json:"sort_order"`
			}
			err := json.Unmarshal([]byte(tt.body), &body)

			var typeErr *json.UnmarshalTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tt.field, typeErr.Field)
			assert.Equal(t, tt.typ, typeErr.Type)
		})
	}
}

func TestOptional_Apply(t *testing.T) {
	stored := "kept"
	dst := &stored

	models.Optional[string]{}.Apply(&dst)
	assert.Equal(t, "kept", *dst)

	models.Some("new").Apply(&dst)
	assert.Equal(t, "new", *dst)

	models.Null[string]().Apply(&dst)
	assert.Nil(t, dst)
}
