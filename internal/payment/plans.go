package payment

// Plan is one entry of the public subscription catalog.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Pages         int      `json:"pages"`
	MCQAnalysis   int      `json:"mcq_analysis,omitempty"`
	Duration      string   `json:"duration"`
	Features      []string `json:"features"`
	StripePriceID *string  `json:"stripe_price_id"`
}

// Catalog returns the available plans. Price ids come from configuration;
// the free plan has none.
func (s *Service) Catalog() []Plan {
	return []Plan{
		{
			ID:       "free",
			Name:     "Free",
			Price:    0,
			Pages:    200,
			Duration: "7 days",
			Features: []string{
				"Basic mistake detection",
				"Grammar & spelling check",
				"Limited language support",
			},
			StripePriceID: nil,
		},
		{
			ID:       "basic",
			Name:     "Basic",
			Price:    10,
			Pages:    1500,
			Duration: "per month",
			Features: []string{
				"Advanced mistake detection",
				"Multiple languages",
				"Grammar & spelling check",
				"Email support",
			},
			StripePriceID: s.priceRef("basic"),
		},
		{
			ID:          "standard",
			Name:        "Standard",
			Price:       22,
			Pages:       5000,
			MCQAnalysis: 200,
			Duration:    "per month",
			Features: []string{
				"All Basic features",
				"200 MCQ analysis",
				"Priority processing",
				"Detailed reports",
				"Phone support",
			},
			StripePriceID: s.priceRef("standard"),
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       30,
			Pages:       10000,
			MCQAnalysis: 500,
			Duration:    "per month",
			Features: []string{
				"All Standard features",
				"500 MCQ analysis",
				"Answer key comparison",
				"Bulk processing",
				"API access",
				"24/7 support",
			},
			StripePriceID: s.priceRef("premium"),
		},
	}
}

func (s *Service) priceRef(plan string) *string {
	if id, ok := s.PriceID(plan); ok {
		return &id
	}
	return nil
}
