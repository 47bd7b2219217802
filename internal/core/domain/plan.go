package domain

// Channel is one of the advertising channels a plan may recommend.
type Channel string

const (
	ChannelBillboards        Channel = "billboards"
	ChannelFacebookInstagram Channel = "facebook_instagram"
	ChannelGoogleSearch      Channel = "google_search"
	ChannelTikTok            Channel = "tiktok"
	ChannelRadio             Channel = "radio"
)

// FirstPartySummary restates the client's first-party data in the plan.
type FirstPartySummary struct {
	CRMRecords       int `json:"crm_records" validate:"gte=0"`
	WebsiteEvents    int `json:"website_events" validate:"gte=0"`
	EmailEngagements int `json:"email_engagements" validate:"gte=0"`
}

// ThirdPartySummary restates the third-party market data in the plan.
type ThirdPartySummary struct {
	MarketSizeEst int    `json:"market_size_est" validate:"gte=0"`
	Notes         string `json:"notes"`
}

// DataSummary is the plan's recap of the data it was generated from.
type DataSummary struct {
	FirstParty FirstPartySummary `json:"first_party"`
	ThirdParty ThirdPartySummary `json:"third_party"`
	KeySignals []string          `json:"key_signals" validate:"min=1"`
}

// Demographics describes who a segment is made of.
type Demographics struct {
	AgeRange string `json:"age_range"`
	Gender   string `json:"gender"`
	Geo      string `json:"geo"`
}

// AudienceSegment is one addressable slice of the client's market.
// Segment names must be unique within a plan; channel recommendations
// refer to segments by name.
type AudienceSegment struct {
	Name           string       `json:"name" validate:"required"`
	SizeEstimation int          `json:"size_estimation" validate:"gte=0"`
	Demographics   Demographics `json:"demographics"`
	PriorityScore  int          `json:"priority_score" validate:"gte=0,lte=100"`
	WhyPriority    string       `json:"why_priority"`
}

// Persona is a short sketch of a representative customer.
type Persona struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

// Positioning captures the messaging strategy of the plan.
type Positioning struct {
	ValueProposition string   `json:"value_proposition"`
	KeyMessages      []string `json:"key_messages" validate:"min=1"`
	ProofPoints      []string `json:"proof_points" validate:"min=1"`
	TaglineOptions   []string `json:"tagline_options" validate:"min=1"`
}

// KPI is one measurable goal with its target and justification.
type KPI struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Why    string `json:"why"`
}

// Targets lists the concrete targeting inputs for campaign setup.
type Targets struct {
	Geos           []string `json:"geos" validate:"min=1"`
	AgeRange       string   `json:"age_range"`
	Interests      []string `json:"interests" validate:"min=1"`
	Keywords       []string `json:"keywords" validate:"min=1"`
	LookalikeSeeds []string `json:"lookalike_seeds" validate:"min=1"`
}

// ChannelBySegment recommends channels for a single audience segment. The
// Segment field must name an entry of the plan's audience_segments.
type ChannelBySegment struct {
	Segment   string    `json:"segment" validate:"required"`
	Channels  []Channel `json:"channels" validate:"min=1,dive,oneof=billboards facebook_instagram google_search tiktok radio"`
	Rationale string    `json:"rationale"`
}

// PrivacyNotes flags personally identifiable information in the source
// data. When PIIPresent is set, ConsentGapNotes must explain the gap.
type PrivacyNotes struct {
	PIIPresent      bool   `json:"pii_present"`
	ConsentGapNotes string `json:"consent_gap_notes"`
}

// Plan is the audience intelligence document produced for a brief. It is
// the JSON artifact persisted for every generated plan.
type Plan struct {
	Client            Client             `json:"client"`
	DataSummary       DataSummary        `json:"data_summary"`
	AudienceSegments  []AudienceSegment  `json:"audience_segments" validate:"min=2,max=5,dive"`
	Personas          []Persona          `json:"personas" validate:"min=2"`
	Positioning       Positioning        `json:"positioning"`
	Targets           Targets            `json:"targets"`
	ChannelsBySegment []ChannelBySegment `json:"channels_by_segment" validate:"min=1,dive"`
	GoalsKPIs         []KPI              `json:"goals_kpis" validate:"min=2"`
	Assumptions       []string           `json:"assumptions" validate:"min=1"`
	Risks             []string           `json:"risks" validate:"min=1"`
	PrivacyNotes      PrivacyNotes       `json:"privacy_notes"`
}
