package catalog

// QuoteTotal computes the price of a selection in minor units: the base
// price of the selected service plus the sum of the selected add-ons.
// Unknown codes contribute 0, and an empty service code means no base price
// while add-ons still sum — the booking form relies on this boundary.
// Pure and deterministic; the same math runs client-side for display.
func QuoteTotal(serviceCode string, addonCodes []string) int64 {
	var total int64
	if s, ok := serviceByCode[serviceCode]; ok {
		total += s.BasePriceMinorUnits
	}
	for _, code := range addonCodes {
		if a, ok := addonByCode[code]; ok {
			total += a.PriceMinorUnits
		}
	}
	return total
}
