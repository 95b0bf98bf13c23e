package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogoSelection(t *testing.T) {
	tests := []struct {
		in      string
		want    LogoSelection
		wantErr bool
	}{
		{in: "", want: LogoNone},
		{in: "none", want: LogoNone},
		{in: "Client", want: LogoClientConcept},
		{in: " full ", want: LogoFullConcept},
		{in: "premium", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogoSelection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustLogo(t, got.String()))
		})
	}
}

func mustLogo(t *testing.T, s string) LogoSelection {
	t.Helper()
	l, err := ParseLogoSelection(s)
	require.NoError(t, err)
	return l
}

func TestParseDiscountKind(t *testing.T) {
	for _, kind := range DiscountKinds {
		got, err := ParseDiscountKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParseDiscountKind("bogo")
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	q := ServiceQuantities{Uploads: -3, Photos: 4, Banners: -1, Videos: 0}.Clamp()
	assert.Equal(t, ServiceQuantities{Uploads: 0, Photos: 4, Banners: 0, Videos: 0}, q)

	assert.True(t, ClampAmount(decimal.NewFromInt(-10)).IsZero())
	assert.True(t, ClampAmount(decimal.NewFromInt(10)).Equal(decimal.NewFromInt(10)))
}
