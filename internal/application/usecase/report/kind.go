// Package report contains the report aggregation use cases.
package report

import domainerror "github.com/ops-tracker/backend/internal/domain/error"

// Kind identifies one of the report variants. It replaces free-form
// report selectors in requests so dispatch stays a closed set.
type Kind string

const (
	KindWeekly         Kind = "weekly"
	KindMonthly        Kind = "monthly"
	KindProfitability  Kind = "profitability"
	KindTrend          Kind = "trend"
	KindMostProfitable Kind = "most-profitable"
)

// ParseKind validates a report kind selector.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindWeekly, KindMonthly, KindProfitability, KindTrend, KindMostProfitable:
		return Kind(raw), nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportKind,
			"unknown report kind: "+raw,
			domainerror.ErrInvalidReportKind,
		)
	}
}
