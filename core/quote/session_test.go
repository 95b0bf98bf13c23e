package quote

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneway-quote/core/cost"
	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
)

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("fee-%d", n)
	})
}

func TestSettersClampNegativeCounts(t *testing.T) {
	s := NewSession()
	s.SetUploads(-4)
	s.SetPhotos(12)
	s.SetBanners(-1)
	s.SetVideos(3)

	assert.Equal(t, types.ServiceQuantities{Uploads: 0, Photos: 12, Banners: 0, Videos: 3}, s.Quantities())

	s.SetQuantities(types.ServiceQuantities{Uploads: 5, Photos: -2})
	assert.Equal(t, types.ServiceQuantities{Uploads: 5}, s.Quantities())
}

func TestAddExtraFeeDefaultIDsAreUUIDs(t *testing.T) {
	s := NewSession()
	fee, err := s.AddExtraFee("Express", "50000")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(fee.ID)
	assert.NoError(t, parseErr)
}

func TestAddExtraFee(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		amount  string
		wantErr bool
	}{
		{name: "whole amount", label: "Express", amount: "50000"},
		{name: "zero amount allowed", label: "Bonus", amount: "0"},
		{name: "fractional amount", label: "Aset", amount: "1250.50"},
		{name: "trimmed label", label: "  Revisi  ", amount: "10000"},
		{name: "empty label", label: "   ", amount: "10000", wantErr: true},
		{name: "missing amount", label: "Express", amount: "", wantErr: true},
		{name: "non-numeric amount", label: "Express", amount: "lima ribu", wantErr: true},
		{name: "negative amount", label: "Express", amount: "-1", wantErr: true},
		{name: "negative amount below float precision", label: "Refund", amount: "-1e-400", wantErr: true},
		{name: "positive amount below float precision", label: "Pembulatan", amount: "1e-400"},
		{name: "overlong label", label: strings.Repeat("x", 121), amount: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(sequentialIDs())
			fee, err := s.AddExtraFee(tt.label, tt.amount)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.TypeInput), "got %v", err)
				assert.Empty(t, s.ExtraFees())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "fee-1", fee.ID)
			assert.Equal(t, strings.TrimSpace(tt.label), fee.Label)
			assert.True(t, fee.Amount.Equal(decimal.RequireFromString(tt.amount)))
			assert.Equal(t, []types.ExtraFee{fee}, s.ExtraFees())
		})
	}
}

func TestRemoveExtraFeeKeepsOrder(t *testing.T) {
	s := NewSession(sequentialIDs())
	for _, label := range []string{"A", "B", "C"} {
		_, err := s.AddExtraFee(label, "1000")
		require.NoError(t, err)
	}

	assert.True(t, s.RemoveExtraFee("fee-2"))
	assert.False(t, s.RemoveExtraFee("fee-2"))

	fees := s.ExtraFees()
	require.Len(t, fees, 2)
	assert.Equal(t, "A", fees[0].Label)
	assert.Equal(t, "C", fees[1].Label)
}

func TestExtraFeesReturnsCopy(t *testing.T) {
	s := NewSession(sequentialIDs())
	_, err := s.AddExtraFee("A", "1000")
	require.NoError(t, err)

	fees := s.ExtraFees()
	fees[0].Label = "mutated"
	assert.Equal(t, "A", s.ExtraFees()[0].Label)
}

func TestSwitchingDiscountKindResetsValue(t *testing.T) {
	s := NewSession()
	s.SetUploads(20)
	engine := cost.NewEngine(nil)

	s.SetDiscountKind(types.DiscountNominal)
	s.SetDiscountValue(decimal.NewFromInt(50000))
	assert.True(t, s.Breakdown(engine).Discount.Equal(decimal.NewFromInt(50000)))

	s.SetDiscountKind(types.DiscountPercent)
	assert.Equal(t, types.DiscountPercent, s.Discount().Kind)
	assert.True(t, s.Discount().Value.IsZero())
	assert.True(t, s.Breakdown(engine).Discount.IsZero())

	s.SetDiscountValue(decimal.NewFromInt(10))
	s.SetDiscountKind(types.DiscountPercent)
	assert.True(t, s.Discount().Value.IsZero(), "re-selecting the same mode also resets")
}

func TestSetDiscountValueClampsAndIgnoresNone(t *testing.T) {
	s := NewSession()
	s.SetDiscountValue(decimal.NewFromInt(100))
	assert.True(t, s.Discount().Value.IsZero())

	s.SetDiscountKind(types.DiscountNominal)
	s.SetDiscountValue(decimal.NewFromInt(-500))
	assert.True(t, s.Discount().Value.IsZero())
}

func TestBreakdownUsesSessionState(t *testing.T) {
	s := NewSession(sequentialIDs())
	s.SetUploads(40)
	s.SetBanners(2)
	s.SetVideos(1)
	s.SetLogo(types.LogoClientConcept)
	_, err := s.AddExtraFee("Express", "40000")
	require.NoError(t, err)
	s.SetDiscountKind(types.DiscountNominal)
	s.SetDiscountValue(decimal.NewFromInt(40000))

	b := s.Breakdown(cost.NewEngine(nil))
	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(440000)))
	assert.True(t, b.GrandTotal.Equal(decimal.NewFromInt(400000)))
}

func TestReset(t *testing.T) {
	s := NewSession()
	s.SetClient("Andi Wijaya")
	s.SetShop("Mandiri Jaya Shop")
	s.SetUploads(10)
	s.SetLogo(types.LogoFullConcept)
	_, err := s.AddExtraFee("Express", "1")
	require.NoError(t, err)
	s.SetDiscountKind(types.DiscountPercent)
	s.SetDiscountValue(decimal.NewFromInt(5))

	s.Reset()

	assert.Empty(t, s.Client())
	assert.Empty(t, s.Shop())
	assert.Equal(t, types.ServiceQuantities{}, s.Quantities())
	assert.Equal(t, types.LogoNone, s.Logo())
	assert.Empty(t, s.ExtraFees())
	assert.Equal(t, types.DiscountNone, s.Discount().Kind)
	assert.True(t, s.Breakdown(cost.NewEngine(nil)).GrandTotal.IsZero())
}
