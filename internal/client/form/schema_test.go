package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRules(t *testing.T) {
	schema := Schema{Fields: []FieldSpec{
		{Name: "email", Label: "Email", Rule: Email},
		{Name: "qr_code_url", Label: "QR Code URL", Rule: URL},
		{Name: "volume_level", Label: "Volume Level", Rule: Numeric},
		{Name: "pincode", Label: "Pincode", Rule: Digits, Length: 6},
		{Name: "remarks", Label: "Remarks", Rule: Text, Optional: true},
	}}

	tests := []struct {
		name     string
		values   Values
		expected Errors
	}{
		{
			name: "all valid",
			values: Values{
				"email":        "ops@example.com",
				"qr_code_url":  "https://pay.example.com/qr/1",
				"volume_level": "5",
				"pincode":      "560001",
			},
			expected: Errors{},
		},
		{
			name: "bad email",
			values: Values{
				"email":        "not-an-email",
				"qr_code_url":  "https://pay.example.com/qr/1",
				"volume_level": "5",
				"pincode":      "560001",
			},
			expected: Errors{"email": "Invalid Email"},
		},
		{
			name: "bad url",
			values: Values{
				"email":        "ops@example.com",
				"qr_code_url":  "ftp://pay.example.com/qr",
				"volume_level": "5",
				"pincode":      "560001",
			},
			expected: Errors{"qr_code_url": "Must be a valid URL"},
		},
		{
			name: "volume not a number",
			values: Values{
				"email":        "ops@example.com",
				"qr_code_url":  "https://pay.example.com/qr/1",
				"volume_level": "loud",
				"pincode":      "560001",
			},
			expected: Errors{"volume_level": "Volume Level must be a number"},
		},
		{
			name:   "blank required fields",
			values: Values{},
			expected: Errors{
				"email":        "Email is required *",
				"qr_code_url":  "QR Code URL is required *",
				"volume_level": "Volume Level is required *",
				"pincode":      "Pincode is required *",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.Validate(tt.values))
		})
	}
}

func TestDefaultsHydrateFromRecord(t *testing.T) {
	schema := Schema{Fields: []FieldSpec{
		{Name: "name", Label: "Name", Rule: Text},
		{Name: "city", Label: "City", Rule: Text},
	}}

	values := schema.Defaults(Values{"name": "Asha", "extra": "dropped"})
	assert.Equal(t, Values{"name": "Asha", "city": ""}, values)
}
