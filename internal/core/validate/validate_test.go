package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audience-intel/internal/core/domain"
)

func validBrief() *domain.Brief {
	return &domain.Brief{
		Client: domain.Client{
			BusinessName:     "Green Fork",
			Industry:         "casual restaurant",
			City:             "Albuquerque, NM",
			Zip:              "87106",
			Goal:             domain.GoalFootTraffic,
			MonthlyBudgetUSD: 4000,
			TimeHorizonDays:  30,
		},
		Data: domain.BriefData{
			FirstParty: domain.FirstPartyData{CRMSampleRows: 800, WebsiteEventSampleRows: 6000, EmailEngagementRows: 1200},
			ThirdParty: domain.ThirdPartyData{MarketSizeEst: 45000, Notes: "university neighborhood"},
		},
	}
}

func errKind(t *testing.T, err error) *domain.Error {
	t.Helper()
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	return derr
}

func TestInputValid(t *testing.T) {
	require.NoError(t, Input(validBrief()))
}

func TestInputShapeViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Brief)
		field  string
	}{
		{"missing business name", func(b *domain.Brief) { b.Client.BusinessName = "" }, "client.business_name"},
		{"unknown goal", func(b *domain.Brief) { b.Client.Goal = "brand_love" }, "client.goal"},
		{"horizon below a week", func(b *domain.Brief) { b.Client.TimeHorizonDays = 3 }, "client.time_horizon_days"},
		{"negative budget", func(b *domain.Brief) { b.Client.MonthlyBudgetUSD = -1 }, "client.monthly_budget_usd"},
		{"negative crm rows", func(b *domain.Brief) { b.Data.FirstParty.CRMSampleRows = -5 }, "data.first_party.crm_sample_rows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBrief()
			tt.mutate(b)
			derr := errKind(t, Input(b))
			assert.Equal(t, domain.KindInputShape, derr.Kind)

			var fields []string
			for _, fe := range derr.Fields {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestInputZeroBudgetAllowed(t *testing.T) {
	b := validBrief()
	b.Client.MonthlyBudgetUSD = 0
	require.NoError(t, Input(b))
}

func TestOutputValid(t *testing.T) {
	warnings, err := Output(domain.DryRunFixture())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestOutputShapeViolation(t *testing.T) {
	p := domain.DryRunFixture()
	p.AudienceSegments = p.AudienceSegments[:1]

	_, err := Output(p)
	derr := errKind(t, err)
	assert.Equal(t, domain.KindOutputShape, derr.Kind)
	require.NotEmpty(t, derr.Fields)
	assert.Equal(t, "audience_segments", derr.Fields[0].Field)
}

func TestOutputChannelOutsideEnum(t *testing.T) {
	p := domain.DryRunFixture()
	p.ChannelsBySegment[0].Channels = []domain.Channel{"carrier_pigeon"}

	_, err := Output(p)
	assert.Equal(t, domain.KindOutputShape, errKind(t, err).Kind)
}

func TestSegmentReferenceMustExist(t *testing.T) {
	p := domain.DryRunFixture()
	p.ChannelsBySegment[0].Segment = "Ghost Segment"

	_, err := Output(p)
	derr := errKind(t, err)
	assert.Equal(t, domain.KindBusinessRule, derr.Kind)
	assert.Contains(t, derr.Message, "Ghost Segment")
}

func TestSegmentNamesMustBeUnique(t *testing.T) {
	p := domain.DryRunFixture()
	p.AudienceSegments[0].Name = "X"
	p.AudienceSegments[1].Name = "X"
	for i := range p.ChannelsBySegment[:2] {
		p.ChannelsBySegment[i].Segment = "X"
	}

	_, err := Output(p)
	derr := errKind(t, err)
	assert.Equal(t, domain.KindBusinessRule, derr.Kind)
	assert.Contains(t, derr.Message, "unique")
}

func TestMarketSizeWarning(t *testing.T) {
	p := domain.DryRunFixture()
	// fixture segments sum to 38000
	p.DataSummary.ThirdParty.MarketSizeEst = 30000

	warnings, err := Output(p)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "38000")
	assert.Contains(t, warnings[0], "30000")
}

func TestMarketSizeWithinEstimate(t *testing.T) {
	warnings, err := Output(domain.DryRunFixture())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestPrivacyConsentGate(t *testing.T) {
	for _, notes := range []string{"", "   ", "\n\t"} {
		p := domain.DryRunFixture()
		p.PrivacyNotes = domain.PrivacyNotes{PIIPresent: true, ConsentGapNotes: notes}

		_, err := Output(p)
		assert.Equal(t, domain.KindBusinessRule, errKind(t, err).Kind, "notes %q", notes)
	}

	p := domain.DryRunFixture()
	p.PrivacyNotes = domain.PrivacyNotes{PIIPresent: true, ConsentGapNotes: "CRM export lacks consent flags"}
	_, err := Output(p)
	require.NoError(t, err)
}
