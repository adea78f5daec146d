package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func validForm() propertyForm {
	return propertyForm{
		PropertyID:     "BLR-001",
		Title:          "2BHK near metro",
		City:           "Bengaluru",
		Locality:       "Indiranagar",
		RentPrice:      "25000",
		AreaSqft:       "950",
		Furnishing:     "semi",
		ContactDetails: "call 98xxxxxx21",
		OwnerID:        "owner-1",
	}
}

func TestPropertyFormValidateRequired(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.validateRequired())

	tests := []struct {
		name   string
		mutate func(*propertyForm)
	}{
		{"missing property_id", func(f *propertyForm) { f.PropertyID = "" }},
		{"property_id too long", func(f *propertyForm) { f.PropertyID = "123456789012345678901" }},
		{"missing title", func(f *propertyForm) { f.Title = "" }},
		{"missing rent_price", func(f *propertyForm) { f.RentPrice = "" }},
		{"missing area_sqft", func(f *propertyForm) { f.AreaSqft = "" }},
		{"bad furnishing", func(f *propertyForm) { f.Furnishing = "luxurious" }},
		{"missing owner_id", func(f *propertyForm) { f.OwnerID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			assert.Error(t, form.validateRequired())
		})
	}
}

func TestPropertyFormParseNumbers(t *testing.T) {
	form := validForm()
	rentPrice, areaSqft, err := form.parseNumbers()
	assert.NoError(t, err)
	assert.Equal(t, 25000.0, rentPrice)
	assert.Equal(t, 950, areaSqft)

	form.RentPrice = "-1"
	_, _, err = form.parseNumbers()
	assert.Error(t, err)

	form.RentPrice = "0"
	form.AreaSqft = "12.5"
	_, _, err = form.parseNumbers()
	assert.Error(t, err, "area_sqft must be an integer")

	// empty fields are skipped, not errors (partial update)
	empty := propertyForm{}
	rentPrice, areaSqft, err = empty.parseNumbers()
	assert.NoError(t, err)
	assert.Zero(t, rentPrice)
	assert.Zero(t, areaSqft)
}

func TestValidateFieldLimits(t *testing.T) {
	assert.NoError(t, validateFieldLimits(bson.M{"title": "short", "furnishing": "furnished"}))

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, validateFieldLimits(bson.M{"title": string(long)}))
	assert.Error(t, validateFieldLimits(bson.M{"furnishing": "palatial"}))

	// non-field keys are ignored
	assert.NoError(t, validateFieldLimits(bson.M{"rent_price": 5000.0}))
}
