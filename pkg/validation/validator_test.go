package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-blog-api/pkg/validation"
)

type sample struct {
	Name   string `json:"name" validate:"required,notblank,max=10"`
	UserID string `json:"userId" validate:"required,id"`
	Size   int    `form:"size" validate:"omitempty,gte=1,lte=50"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.Configure(v)
	return v
}

func TestToDetails_FieldMessages(t *testing.T) {
	err := newValidator().Struct(sample{Name: "   ", UserID: "nope", Size: 99})

	got := validation.ToDetails(err)
	assert.Equal(t, map[string]string{
		"name":   "must not be blank",
		"userId": "must be a valid id",
		"size":   "must be less than or equal to 50",
	}, got)
}

func TestToDetails_Valid(t *testing.T) {
	err := newValidator().Struct(sample{Name: "Alice", UserID: "01HZX3Q7Y8K2M4N6P8R0S2T4V6", Size: 5})
	assert.NoError(t, err)
	assert.Nil(t, validation.ToDetails(err))
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte("{"), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, validation.ToDetails(err))

	var s struct {
		Name string `json:"name"`
	}
	err = json.Unmarshal([]byte(`{"name": 5}`), &s)
	assert.Equal(t, map[string]string{"name": "must be a string"}, validation.ToDetails(err))
}
