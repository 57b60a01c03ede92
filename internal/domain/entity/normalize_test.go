package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddressText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims and lowers", in: "  Old St ", want: "old st"},
		{name: "collapses ascii whitespace", in: "12\tMain \r\n\f\vSt", want: "12 main st"},
		{name: "empty", in: "   ", want: ""},
		{name: "no-break space is text", in: "Old\u00a0St", want: "old\u00a0st"},
		{name: "no-break space is not trimmed", in: "\u00a0Old St", want: "\u00a0old st"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddressText(tt.in))
		})
	}
}

func TestNormalizeAddressText_SameKeyForEquivalentText(t *testing.T) {
	assert.Equal(t, NormalizeAddressText("old st"), NormalizeAddressText("  OLD   St\t"))
	assert.NotEqual(t, NormalizeAddressText("old st"), NormalizeAddressText("old\u00a0st"))
}
