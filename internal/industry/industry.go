// Package industry holds the industry taxonomy: keyword detection,
// per-industry benchmarks, archetype bands, and tier-specific revenue
// messaging for the dashboard.
package industry

import "strings"

// industryKeywords is ordered; ties in keyword counts resolve to the
// earlier entry so detection stays deterministic.
var industryKeywords = []struct {
	name     string
	keywords []string
}{
	{"SaaS/Tech", []string{"software", "platform", "api", "cloud", "dashboard", "pricing", "free trial", "enterprise", "integration", "saas"}},
	{"E-Commerce", []string{"shop", "cart", "checkout", "shipping", "product", "buy now", "add to cart", "returns", "order"}},
	{"Fintech", []string{"banking", "finance", "investment", "trading", "payment", "transfer", "wallet", "crypto", "fdic"}},
	{"Healthcare/Medical", []string{"doctor", "medical", "clinic", "patient", "appointment", "health", "treatment", "hospital"}},
	{"Dental", []string{"dental", "dentist", "teeth", "orthodontic", "cleaning", "implant", "smile", "oral"}},
	{"Legal", []string{"attorney", "lawyer", "law firm", "legal", "court", "injury", "defense", "litigation"}},
	{"Real Estate", []string{"realtor", "property", "home", "listing", "mls", "mortgage", "buying", "selling", "rental"}},
	{"Restaurant/Food", []string{"menu", "restaurant", "cafe", "food", "cuisine", "reservation", "delivery", "dine"}},
	{"Home Services", []string{"plumbing", "hvac", "roofing", "contractor", "repair", "estimate", "licensed", "emergency"}},
	{"Fitness/Wellness", []string{"gym", "fitness", "workout", "yoga", "membership", "trainer", "wellness", "health"}},
	{"Professional Services", []string{"consulting", "accounting", "advisory", "strategy", "business", "firm"}},
	{"Education/EdTech", []string{"course", "learn", "training", "certification", "student", "enroll", "education"}},
	{"Automotive", []string{"auto", "car", "vehicle", "service", "repair", "dealership", "oil change", "mechanic"}},
	{"Travel/Hospitality", []string{"hotel", "travel", "booking", "vacation", "resort", "flight", "accommodation"}},
	{"Non-Profit", []string{"donate", "mission", "volunteer", "cause", "charity", "foundation", "support"}},
}

// Benchmark is the expected score and average customer value for an
// industry.
type Benchmark struct {
	Benchmark        int `json:"benchmark"`
	AvgCustomerValue int `json:"avg_customer_value"`
}

// General is the fallback industry for anything the taxonomy cannot place.
const General = "General"

var benchmarks = map[string]Benchmark{
	"SaaS/Tech":             {88, 1500},
	"E-Commerce":            {85, 75},
	"Fintech":               {90, 2000},
	"Healthcare/Medical":    {82, 500},
	"Dental":                {80, 400},
	"Legal":                 {85, 3000},
	"Real Estate":           {78, 8000},
	"Restaurant/Food":       {72, 35},
	"Home Services":         {75, 350},
	"Fitness/Wellness":      {76, 80},
	"Professional Services": {82, 2500},
	"Education/EdTech":      {80, 500},
	"Automotive":            {74, 150},
	"Travel/Hospitality":    {77, 200},
	"Non-Profit":            {70, 100},
	"Local Service":         {72, 200},
	General:                 {75, 300},
}

// BenchmarkFor returns the benchmark for an industry, falling back to
// General for anything unregistered.
func BenchmarkFor(industry string) Benchmark {
	if b, ok := benchmarks[industry]; ok {
		return b
	}
	return benchmarks[General]
}

// Known reports whether an industry name is in the benchmark table.
func Known(industry string) bool {
	_, ok := benchmarks[industry]
	return ok
}

// ValidateIndustry cross-checks an AI-suggested industry against keyword
// evidence in the page text. Three or more keyword hits for one industry
// override the suggestion; otherwise a valid suggestion is trusted, and a
// weak keyword match beats an invalid one. With no evidence at all the
// suggestion passes through, defaulting to General when empty.
func ValidateIndustry(suggested, text string) string {
	textLower := strings.ToLower(text)

	bestName := ""
	bestScore := 0
	for _, ind := range industryKeywords {
		matches := 0
		for _, k := range ind.keywords {
			if strings.Contains(textLower, k) {
				matches++
			}
		}
		if matches > bestScore {
			bestName = ind.name
			bestScore = matches
		}
	}

	if bestScore == 0 {
		if suggested == "" {
			return General
		}
		return suggested
	}
	if bestScore >= 3 {
		return bestName
	}
	if Known(suggested) {
		return suggested
	}
	return bestName
}
