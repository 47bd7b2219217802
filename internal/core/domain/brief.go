package domain

// Goal is the campaign objective a client can ask for. It is a closed
// enumeration; values outside it are rejected during input validation.
type Goal string

const (
	GoalAwareness   Goal = "awareness"
	GoalFootTraffic Goal = "foot_traffic"
	GoalLeads       Goal = "leads"
	GoalOnlineSales Goal = "online_sales"
)

// Client identifies the business a plan is generated for. The same block
// appears in the client brief and is echoed back in the plan document.
type Client struct {
	BusinessName     string `yaml:"business_name" json:"business_name" validate:"required"`
	Industry         string `yaml:"industry" json:"industry" validate:"required"`
	City             string `yaml:"city" json:"city" validate:"required"`
	Zip              string `yaml:"zip" json:"zip" validate:"required"`
	Goal             Goal   `yaml:"goal" json:"goal" validate:"required,oneof=awareness foot_traffic leads online_sales"`
	MonthlyBudgetUSD int    `yaml:"monthly_budget_usd" json:"monthly_budget_usd" validate:"gte=0"`
	TimeHorizonDays  int    `yaml:"time_horizon_days" json:"time_horizon_days" validate:"gte=7"`
}

// FirstPartyData holds sample-row counts from the client's own systems.
type FirstPartyData struct {
	CRMSampleRows          int `yaml:"crm_sample_rows" json:"crm_sample_rows" validate:"gte=0"`
	WebsiteEventSampleRows int `yaml:"website_event_sample_rows" json:"website_event_sample_rows" validate:"gte=0"`
	EmailEngagementRows    int `yaml:"email_engagement_rows" json:"email_engagement_rows" validate:"gte=0"`
}

// ThirdPartyData holds external market information supplied in the brief.
type ThirdPartyData struct {
	MarketSizeEst int    `yaml:"market_size_est" json:"market_size_est" validate:"gte=0"`
	Notes         string `yaml:"notes" json:"notes,omitempty"`
}

// BriefData groups the first- and third-party data sections of the brief.
type BriefData struct {
	FirstParty FirstPartyData `yaml:"first_party" json:"first_party"`
	ThirdParty ThirdPartyData `yaml:"third_party" json:"third_party"`
}

// Constraints are optional knobs the client may set on plan generation.
type Constraints struct {
	LocalFocus        *bool  `yaml:"local_focus" json:"local_focus,omitempty"`
	MaxSegments       *int   `yaml:"max_segments" json:"max_segments,omitempty" validate:"omitempty,gte=2,lte=5"`
	Tone              string `yaml:"tone" json:"tone,omitempty"`
	RequireJSONThenMD *bool  `yaml:"require_json_then_markdown" json:"require_json_then_markdown,omitempty"`
}

// Attachments carry optional free-text extracts from client systems.
type Attachments struct {
	CRMTopProducts  string `yaml:"crm_top_products" json:"crm_top_products,omitempty"`
	WebsiteTopPages string `yaml:"website_top_pages" json:"website_top_pages,omitempty"`
}

// Brief is the client brief parsed from the submitted YAML document.
type Brief struct {
	Client      Client       `yaml:"client" json:"client"`
	Data        BriefData    `yaml:"data" json:"data"`
	Constraints *Constraints `yaml:"constraints" json:"constraints,omitempty"`
	Attachments *Attachments `yaml:"attachments" json:"attachments,omitempty"`
}
