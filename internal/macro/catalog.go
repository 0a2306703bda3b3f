package macro

import "github.com/macroview/macro-dashboard/internal/model"

// FRED series identifiers for the core indicator set
const (
	SeriesRealGDP             = "GDPC1"
	SeriesNominalGDP          = "GDP"
	SeriesUnemploymentRate    = "UNRATE"
	SeriesPrimeAgeEmployment  = "LNS12300060"
	SeriesNonfarmPayrolls     = "PAYEMS"
	SeriesCorePCE             = "PCEPILFE"
	SeriesHourlyEarnings      = "CES0500000003"
	SeriesTreasury10Y         = "DGS10"
	SeriesTreasury3M          = "DTB3"
	SeriesHighYieldSpread     = "BAMLH0A0HYM2"
	SeriesFinancialConditions = "NFCI"
)

// Definition describes one catalog entry: which series to fetch and how to
// derive the displayed value from them.
type Definition struct {
	ID        string
	Name      string
	SeriesIDs []string
	Derive    DeriveFunc
}

// Catalog returns the core macro indicator definitions in display order.
func Catalog() []Definition {
	return []Definition{
		{
			ID:        "real_gdp_growth",
			Name:      "Real GDP Growth (%)",
			SeriesIDs: []string{SeriesRealGDP},
			Derive:    single(QoQAnnualized),
		},
		{
			ID:        "nominal_gdp_growth",
			Name:      "Nominal GDP Growth (%)",
			SeriesIDs: []string{SeriesNominalGDP},
			Derive:    single(QoQAnnualized),
		},
		{
			ID:        "unemployment_rate",
			Name:      "Unemployment Rate (%)",
			SeriesIDs: []string{SeriesUnemploymentRate},
			Derive:    single(Latest),
		},
		{
			ID:        "prime_age_employment_ratio",
			Name:      "Prime-Age E/P Ratio (%)",
			SeriesIDs: []string{SeriesPrimeAgeEmployment},
			Derive:    single(Latest),
		},
		{
			ID:        "payroll_change",
			Name:      "Payroll Change (k)",
			SeriesIDs: []string{SeriesNonfarmPayrolls},
			Derive:    single(MonthChangeScaled),
		},
		{
			ID:        "core_pce_yoy",
			Name:      "Core PCE YoY (%)",
			SeriesIDs: []string{SeriesCorePCE},
			Derive:    single(YoY),
		},
		{
			ID:        "wage_growth_yoy",
			Name:      "Wage Growth YoY (%)",
			SeriesIDs: []string{SeriesHourlyEarnings},
			Derive:    single(YoY),
		},
		{
			ID:        "yield_curve_3m_10y",
			Name:      "Yield Curve 3m–10y",
			SeriesIDs: []string{SeriesTreasury10Y, SeriesTreasury3M},
			Derive:    pair(Spread),
		},
		{
			ID:        "high_yield_spread",
			Name:      "High-Yield Spread",
			SeriesIDs: []string{SeriesHighYieldSpread},
			Derive:    single(Latest),
		},
		{
			ID:        "financial_conditions_index",
			Name:      "Financial Conditions Index",
			SeriesIDs: []string{SeriesFinancialConditions},
			Derive:    single(Latest),
		},
	}
}

// NewIndicator creates a pending indicator from a definition
func (d Definition) NewIndicator() *model.Indicator {
	return &model.Indicator{
		ID:        d.ID,
		Name:      d.Name,
		SeriesIDs: d.SeriesIDs,
		Status:    model.StatusPending,
	}
}
