// Package validate checks client briefs and plan documents against their
// schemas and enforces the cross-field business rules that shape
// validation alone cannot express.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"audience-intel/internal/core/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report violations under their json field names so error payloads
	// match the wire format of the documents
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Input checks the parsed client brief against its schema. On violation
// it returns a KindInputShape error listing every offending field path.
func Input(b *domain.Brief) error {
	if err := v.Struct(b); err != nil {
		return shapeError(domain.KindInputShape, "client brief failed validation", err)
	}
	return nil
}

// Output checks a plan document, first against its schema and then
// against the cross-field rules. It returns the (possibly empty) warning
// list produced by the soft checks. Schema violations carry
// KindOutputShape; business-rule violations carry KindBusinessRule so
// callers can present the two differently.
func Output(p *domain.Plan) ([]string, error) {
	if err := v.Struct(p); err != nil {
		return nil, shapeError(domain.KindOutputShape, "plan document failed validation", err)
	}
	return crossFields(p)
}

// crossFields runs the business rules over a shape-valid plan. The
// checks are independent of each other; only the market-size check can
// produce a warning, everything else is a hard failure.
func crossFields(p *domain.Plan) ([]string, error) {
	segments := make(map[string]struct{}, len(p.AudienceSegments))
	for _, seg := range p.AudienceSegments {
		segments[seg.Name] = struct{}{}
	}

	for _, rec := range p.ChannelsBySegment {
		if _, ok := segments[rec.Segment]; !ok {
			return nil, domain.NewError(domain.KindBusinessRule,
				fmt.Sprintf("channel recommendation references non-existent segment %q", rec.Segment))
		}
	}

	if len(segments) != len(p.AudienceSegments) {
		return nil, domain.NewError(domain.KindBusinessRule, "segment names must be unique")
	}

	var warnings []string
	total := 0
	for _, seg := range p.AudienceSegments {
		total += seg.SizeEstimation
	}
	if est := p.DataSummary.ThirdParty.MarketSizeEst; total > est {
		warnings = append(warnings,
			fmt.Sprintf("Total segment size (%d) exceeds market size estimate (%d)", total, est))
	}

	if p.PrivacyNotes.PIIPresent && strings.TrimSpace(p.PrivacyNotes.ConsentGapNotes) == "" {
		return nil, domain.NewError(domain.KindBusinessRule,
			"consent_gap_notes must not be empty when pii_present is true")
	}

	return warnings, nil
}

func shapeError(kind domain.Kind, msg string, err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.WrapError(kind, msg, err)
	}
	out := domain.NewError(kind, msg)
	for _, fe := range verrs {
		field := fe.Namespace()
		// drop the leading root struct name ("Brief." / "Plan.")
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out.Fields = append(out.Fields, domain.FieldError{Field: field, Constraint: fe.Tag()})
	}
	return out
}
