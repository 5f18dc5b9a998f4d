package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteTotalServicePlusAddons(t *testing.T) {
	svc, ok := ServiceByCode("airbnb-2bed")
	require.True(t, ok)
	oven, ok := AddonByCode("inside-oven")
	require.True(t, ok)
	windows, ok := AddonByCode("windows")
	require.True(t, ok)

	total := QuoteTotal("airbnb-2bed", []string{"inside-oven", "windows"})
	assert.Equal(t, svc.BasePriceMinorUnits+oven.PriceMinorUnits+windows.PriceMinorUnits, total)
	assert.Equal(t, int64(18000+3000+4000), total)
}

func TestQuoteTotalIndependentOfAddonOrder(t *testing.T) {
	forward := QuoteTotal("postconstruction-res-3bed", []string{"inside-fridge", "garage", "carpet-cleaning"})
	backward := QuoteTotal("postconstruction-res-3bed", []string{"carpet-cleaning", "garage", "inside-fridge"})
	assert.Equal(t, forward, backward)
}

func TestQuoteTotalNoServiceStillSumsAddons(t *testing.T) {
	// The booking form allows add-ons to be ticked before a service is
	// chosen; the base price contributes 0 but the add-ons still count.
	total := QuoteTotal("", []string{"inside-oven", "basement"})
	assert.Equal(t, int64(3000+3500), total)
}

func TestQuoteTotalUnknownCodesContributeZero(t *testing.T) {
	assert.Equal(t, int64(0), QuoteTotal("no-such-service", []string{"no-such-addon"}))
	assert.Equal(t, int64(14000), QuoteTotal("airbnb-1bed", []string{"no-such-addon"}))
}

func TestQuoteTotalEmptySelection(t *testing.T) {
	assert.Equal(t, int64(0), QuoteTotal("", nil))
}

func TestCatalogLookups(t *testing.T) {
	for _, s := range Services() {
		got, ok := ServiceByCode(s.Code)
		require.True(t, ok, "service %s must resolve", s.Code)
		assert.Equal(t, s, got)
		assert.Positive(t, s.BasePriceMinorUnits)
		assert.NotEmpty(t, s.CategoryLabel)
	}
	for _, a := range Addons() {
		got, ok := AddonByCode(a.Code)
		require.True(t, ok, "addon %s must resolve", a.Code)
		assert.Equal(t, a, got)
		assert.Positive(t, a.PriceMinorUnits)
	}
}

func TestServicesByCategoryKeepsCatalogOrder(t *testing.T) {
	grouped := ServicesByCategory()
	require.Len(t, grouped, 3)

	airbnb := grouped["Airbnb Cleaning"]
	require.Len(t, airbnb, 4)
	assert.Equal(t, "airbnb-1bed", airbnb[0].Code)
	assert.Equal(t, "airbnb-4bed", airbnb[3].Code)
}
