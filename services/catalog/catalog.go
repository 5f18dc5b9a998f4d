// Package catalog holds the static pricing tables for TidyMate's cleaning
// services and the quote calculator built on them. The tables are the single
// source of truth for prices: the booking page displays from them and the
// checkout recomputes charges from them, so a tampered client total never
// reaches Stripe.
package catalog

// ServiceOffering is one bookable cleaning service. Prices are in minor
// units (cents, CAD) to avoid floating-point money errors.
type ServiceOffering struct {
	Code                string `json:"code"`
	DisplayName         string `json:"name"`
	BasePriceMinorUnits int64  `json:"priceMinorUnits"`
	CrewDescription     string `json:"cleaners"`
	CategoryLabel       string `json:"category"`
}

// AddonOffering is an optional extra added on top of a service.
type AddonOffering struct {
	Code            string `json:"code"`
	DisplayName     string `json:"name"`
	PriceMinorUnits int64  `json:"priceMinorUnits"`
}

var services = []ServiceOffering{
	{Code: "airbnb-1bed", DisplayName: "Airbnb 1 Bedroom", BasePriceMinorUnits: 14000, CrewDescription: "1 Cleaner", CategoryLabel: "Airbnb Cleaning"},
	{Code: "airbnb-2bed", DisplayName: "Airbnb 2 Bedrooms", BasePriceMinorUnits: 18000, CrewDescription: "1 Cleaner", CategoryLabel: "Airbnb Cleaning"},
	{Code: "airbnb-3bed", DisplayName: "Airbnb 3 Bedrooms", BasePriceMinorUnits: 27000, CrewDescription: "2 Cleaners", CategoryLabel: "Airbnb Cleaning"},
	{Code: "airbnb-4bed", DisplayName: "Airbnb 4+ Bedrooms", BasePriceMinorUnits: 32000, CrewDescription: "2 Cleaners", CategoryLabel: "Airbnb Cleaning"},

	{Code: "postconstruction-res-1bed", DisplayName: "Post-Construction Residential 1 Bedroom", BasePriceMinorUnits: 35000, CrewDescription: "1 Cleaner", CategoryLabel: "Post-Construction Residential"},
	{Code: "postconstruction-res-2bed", DisplayName: "Post-Construction Residential 2 Bedrooms", BasePriceMinorUnits: 45000, CrewDescription: "1 Cleaner", CategoryLabel: "Post-Construction Residential"},
	{Code: "postconstruction-res-3bed", DisplayName: "Post-Construction Residential 3 Bedrooms", BasePriceMinorUnits: 65000, CrewDescription: "2 Cleaners", CategoryLabel: "Post-Construction Residential"},
	{Code: "postconstruction-res-4bed", DisplayName: "Post-Construction Residential 4+ Bedrooms", BasePriceMinorUnits: 80000, CrewDescription: "2 Cleaners", CategoryLabel: "Post-Construction Residential"},
	{Code: "postconstruction-res-5bed", DisplayName: "Post-Construction Residential 5+ Bedrooms", BasePriceMinorUnits: 100000, CrewDescription: "3 Cleaners", CategoryLabel: "Post-Construction Residential"},

	{Code: "postconstruction-nonres-small", DisplayName: "Post-Construction Non-Residential Small", BasePriceMinorUnits: 90000, CrewDescription: "2 Cleaners", CategoryLabel: "Post-Construction Commercial"},
	{Code: "postconstruction-nonres-medium", DisplayName: "Post-Construction Non-Residential Medium", BasePriceMinorUnits: 130000, CrewDescription: "3 Cleaners", CategoryLabel: "Post-Construction Commercial"},
	{Code: "postconstruction-nonres-large", DisplayName: "Post-Construction Non-Residential Large", BasePriceMinorUnits: 200000, CrewDescription: "4+ Cleaners", CategoryLabel: "Post-Construction Commercial"},
}

var addons = []AddonOffering{
	{Code: "inside-fridge", DisplayName: "Inside Refrigerator", PriceMinorUnits: 2500},
	{Code: "inside-oven", DisplayName: "Inside Oven", PriceMinorUnits: 3000},
	{Code: "windows", DisplayName: "Window Cleaning", PriceMinorUnits: 4000},
	{Code: "garage", DisplayName: "Garage Cleaning", PriceMinorUnits: 5000},
	{Code: "basement", DisplayName: "Basement Cleaning", PriceMinorUnits: 3500},
	{Code: "carpet-cleaning", DisplayName: "Carpet Deep Clean", PriceMinorUnits: 6000},
}

var (
	serviceByCode = make(map[string]ServiceOffering, len(services))
	addonByCode   = make(map[string]AddonOffering, len(addons))
)

func init() {
	for _, s := range services {
		serviceByCode[s.Code] = s
	}
	for _, a := range addons {
		addonByCode[a.Code] = a
	}
}

// ServiceByCode looks up a service offering.
func ServiceByCode(code string) (ServiceOffering, bool) {
	s, ok := serviceByCode[code]
	return s, ok
}

// AddonByCode looks up an add-on offering.
func AddonByCode(code string) (AddonOffering, bool) {
	a, ok := addonByCode[code]
	return a, ok
}

// Services returns all offerings in catalog order.
func Services() []ServiceOffering {
	out := make([]ServiceOffering, len(services))
	copy(out, services)
	return out
}

// Addons returns all add-ons in catalog order.
func Addons() []AddonOffering {
	out := make([]AddonOffering, len(addons))
	copy(out, addons)
	return out
}

// ServicesByCategory groups offerings by category label, preserving catalog
// order within each group. Feeds the services listing endpoint.
func ServicesByCategory() map[string][]ServiceOffering {
	grouped := make(map[string][]ServiceOffering)
	for _, s := range services {
		grouped[s.CategoryLabel] = append(grouped[s.CategoryLabel], s)
	}
	return grouped
}
