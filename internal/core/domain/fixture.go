package domain

// DryRunFixture returns the deterministic example plan served for dry-run
// requests. A fresh value is returned on every call so callers can never
// mutate shared state.
func DryRunFixture() *Plan {
	return &Plan{
		Client: Client{
			BusinessName:     "Green Fork",
			Industry:         "casual restaurant",
			City:             "Albuquerque, NM",
			Zip:              "87106",
			Goal:             GoalFootTraffic,
			MonthlyBudgetUSD: 4000,
			TimeHorizonDays:  30,
		},
		DataSummary: DataSummary{
			FirstParty: FirstPartySummary{
				CRMRecords:       800,
				WebsiteEvents:    6000,
				EmailEngagements: 1200,
			},
			ThirdParty: ThirdPartySummary{
				MarketSizeEst: 45000,
				Notes:         "university neighborhood with lunch rush and seasonal demand",
			},
			KeySignals: []string{
				"High visits on /menu and /order-online pages",
				"Lunch specials show strong midday demand",
			},
		},
		AudienceSegments: []AudienceSegment{
			{
				Name:           "UNM Students & Staff",
				SizeEstimation: 18000,
				Demographics:   Demographics{AgeRange: "18-34", Gender: "all", Geo: "87106"},
				PriorityScore:  92,
				WhyPriority:    "Campus-adjacent; lunch deals & fast service resonate.",
			},
			{
				Name:           "Nearby Professionals (Lunch Crowd)",
				SizeEstimation: 12000,
				Demographics:   Demographics{AgeRange: "25-54", Gender: "all", Geo: "87106, 87110"},
				PriorityScore:  85,
				WhyPriority:    "Weekday foot traffic; value + speed at noon.",
			},
			{
				Name:           "Health-Conscious Locals",
				SizeEstimation: 8000,
				Demographics:   Demographics{AgeRange: "25-44", Gender: "all", Geo: "87106"},
				PriorityScore:  78,
				WhyPriority:    "Brand fit; salads/bowls/veg-forward menu.",
			},
		},
		Personas: []Persona{
			{Name: "Busy Grad", Quote: "I need a quick, healthy lunch between classes."},
			{Name: "Nurse on Break", Quote: "Fast, filling, not greasy."},
		},
		Positioning: Positioning{
			ValueProposition: "Fast, fresh, affordable bowls and salads near campus.",
			KeyMessages: []string{
				"Under-10-minute lunch",
				"Veg-forward options",
				"Student-friendly pricing",
			},
			ProofPoints: []string{
				"4.6★ Google rating",
				"2-minute walk from campus",
			},
			TaglineOptions: []string{
				"Fast. Fresh. Fork.",
				"Campus Fuel, Done Right",
			},
		},
		Targets: Targets{
			Geos:      []string{"87106", "87110"},
			AgeRange:  "18-54",
			Interests: []string{"healthy eating", "salads", "meal prep", "campus life"},
			Keywords: []string{
				"healthy lunch near me",
				"salad bowls",
				"quick lunch 87106",
			},
			LookalikeSeeds: []string{"site_visitors_30d", "instagram_engagers_30d"},
		},
		ChannelsBySegment: []ChannelBySegment{
			{
				Segment:   "UNM Students & Staff",
				Channels:  []Channel{ChannelFacebookInstagram, ChannelBillboards},
				Rationale: "IG Reels + campus-adjacent OOH",
			},
			{
				Segment:   "Nearby Professionals (Lunch Crowd)",
				Channels:  []Channel{ChannelFacebookInstagram, ChannelBillboards},
				Rationale: "FB feed + commuter arterials",
			},
			{
				Segment:   "Health-Conscious Locals",
				Channels:  []Channel{ChannelFacebookInstagram},
				Rationale: "IG content + stories",
			},
		},
		GoalsKPIs: []KPI{
			{
				Name:   "Foot Traffic Uplift",
				Target: "+15% lunch rush visits",
				Why:    "Based on historical midday sales and budget allocation",
			},
			{
				Name:   "Average Ticket Size",
				Target: "$12+",
				Why:    "Healthy upsell with smoothies and wraps",
			},
		},
		Assumptions: []string{
			"Lunch specials remain competitively priced",
			"University semester in session during campaign window",
			"Operational capacity to handle increased rush-hour demand",
		},
		Risks: []string{
			"Semester breaks reduce demand",
			"Competing restaurants with aggressive lunch promotions",
			"Weather events impacting foot traffic",
		},
		PrivacyNotes: PrivacyNotes{PIIPresent: false, ConsentGapNotes: ""},
	}
}

// DryRunMarkdown is the Markdown rendering that accompanies the dry-run
// fixture plan.
const DryRunMarkdown = `# Audience Intelligence Report

## Client Overview

**Business:** Green Fork
**Industry:** casual restaurant
**Location:** Albuquerque, NM (87106)
**Goal:** foot traffic
**Budget:** $4,000/month
**Timeframe:** 30 days

---

## Data Summary

### First-Party Data
- CRM Records: 800
- Website Events: 6,000
- Email Engagements: 1,200

### Third-Party Insights
- Market Size: 45,000
- Notes: university neighborhood with lunch rush and seasonal demand

### Key Signals
- High visits on /menu and /order-online pages
- Lunch specials show strong midday demand

---

## Audience Segments

### 1. UNM Students & Staff (Priority: 92/100)
**Size:** ~18,000
**Demographics:** 18-34, all genders, 87106
**Why Priority:** Campus-adjacent; lunch deals & fast service resonate.

### 2. Nearby Professionals (Lunch Crowd) (Priority: 85/100)
**Size:** ~12,000
**Demographics:** 25-54, all genders, 87106, 87110
**Why Priority:** Weekday foot traffic; value + speed at noon.

### 3. Health-Conscious Locals (Priority: 78/100)
**Size:** ~8,000
**Demographics:** 25-44, all genders, 87106
**Why Priority:** Brand fit; salads/bowls/veg-forward menu.

---

## Personas

### Busy Grad
> "I need a quick, healthy lunch between classes."

### Nurse on Break
> "Fast, filling, not greasy."

---

## Positioning & Messaging

**Value Proposition:** Fast, fresh, affordable bowls and salads near campus.

### Key Messages
- Under-10-minute lunch
- Veg-forward options
- Student-friendly pricing

### Proof Points
- 4.6★ Google rating
- 2-minute walk from campus

### Tagline Options
- Fast. Fresh. Fork.
- Campus Fuel, Done Right

---

## Targets & Keywords

**Geography:** 87106, 87110
**Age Range:** 18-54

**Interests:** healthy eating, salads, meal prep, campus life

**Keywords:** healthy lunch near me, salad bowls, quick lunch 87106

**Lookalike Seeds:** site_visitors_30d, instagram_engagers_30d

---

## Channel Recommendations per Segment

### UNM Students & Staff
**Channels:** Facebook/Instagram, Billboards
**Rationale:** IG Reels + campus-adjacent OOH

### Nearby Professionals (Lunch Crowd)
**Channels:** Facebook/Instagram, Billboards
**Rationale:** FB feed + commuter arterials

### Health-Conscious Locals
**Channels:** Facebook/Instagram
**Rationale:** IG content + stories

---

## Goals & KPIs

| KPI | Target | Why |
|-----|--------|-----|
| Foot Traffic Uplift | +15% lunch rush visits | Based on historical midday sales and budget allocation |
| Average Ticket Size | $12+ | Healthy upsell with smoothies and wraps |

---

## Assumptions & Risks

### Assumptions
- Lunch specials remain competitively priced
- University semester in session during campaign window
- Operational capacity to handle increased rush-hour demand

### Risks
- Semester breaks reduce demand
- Competing restaurants with aggressive lunch promotions
- Weather events impacting foot traffic

---

## Privacy Notes

**PII Present:** No
**Consent Gaps:** None identified

---

*Generated by Audience Intelligence Tool*
`
