package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(id uint) *uint { return &id }

func TestMovementRules(t *testing.T) {
	tests := []struct {
		name string
		from *uint
		to   *uint
		qty  int
		want error
	}{
		{"inbound accepted", nil, loc(1), 5, nil},
		{"outbound accepted", loc(1), nil, 5, nil},
		{"transfer accepted", loc(1), loc(2), 5, nil},
		{"no endpoints", nil, nil, 5, ErrMissingEndpoint},
		{"same endpoints", loc(3), loc(3), 5, ErrSameEndpoint},
		{"zero qty", loc(1), nil, 0, ErrInvalidQuantity},
		{"negative qty", nil, loc(1), -3, ErrInvalidQuantity},
		// rule order: endpoint checks run before the quantity check
		{"missing endpoint wins over bad qty", nil, nil, 0, ErrMissingEndpoint},
		{"same endpoint wins over bad qty", loc(2), loc(2), 0, ErrSameEndpoint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Movement(tc.from, tc.to, tc.qty)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSameEndpointComparesValues(t *testing.T) {
	// distinct pointers to equal ids must still be rejected
	a, b := uint(7), uint(7)
	require.ErrorIs(t, Movement(&a, &b, 1), ErrSameEndpoint)
}

func TestFieldValidators(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	assert.Equal(t, "required", v["name"])

	v = Violations{}
	Required("name", "Widget", v)
	MaxLen("name", "Widget", 120, v)
	assert.True(t, v.Empty())

	v = Violations{}
	long := make([]byte, 121)
	for i := range long {
		long[i] = 'x'
	}
	MaxLen("name", string(long), 120, v)
	assert.Contains(t, v["name"], "120")
}
