package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "formatted", in: "(555) 123-4567", want: "5551234567"},
		{name: "raw", in: "5551234567", want: "5551234567"},
		{name: "dots and spaces", in: " 555.123.4567 ", want: "5551234567"},
		{name: "letters mixed in", in: "tel:555x123y4567", want: "5551234567"},
		{name: "empty", in: "", wantErr: ErrPhoneRequired},
		{name: "whitespace only", in: "   ", wantErr: ErrPhoneLength},
		{name: "nine digits", in: "555-123-456", wantErr: ErrPhoneLength},
		{name: "eleven digits", in: "1-555-123-4567", wantErr: ErrPhoneLength},
		{name: "non ascii digits", in: "５５５１２３４５６７", wantErr: ErrPhoneLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneShortInputsAlwaysRejected(t *testing.T) {
	digits := "0123456789"
	for n := 1; n < PhoneDigits; n++ {
		in := strings.Join(strings.Split(digits[:n], ""), "-")
		_, err := NormalizePhone(in)
		require.ErrorIs(t, err, ErrPhoneLength, "input %q", in)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))
	assert.Equal(t, "12345", FormatPhone("12345"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******4567", MaskPhone("5551234567"))
	assert.Equal(t, "***", MaskPhone("123"))
	assert.Equal(t, "", MaskPhone(""))
}
