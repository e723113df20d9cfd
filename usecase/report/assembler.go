package report

import (
	"slices"
	"strings"

	"github.com/fastygo/newsroom/domain"
)

const listSeparator = ", "

// assemble shapes the aggregates into table rows and computes the summary.
// Statistics are nil when there is nothing to summarise.
func assemble(keyword string, aggregates []domain.VideoAggregate, refs references) ([]domain.ReportRow, *domain.Statistics) {
	if len(aggregates) == 0 {
		return []domain.ReportRow{}, nil
	}

	rows := make([]domain.ReportRow, 0, len(aggregates))
	allClients := map[string]struct{}{}
	var downloads int64

	for _, agg := range aggregates {
		clients := clientNames(agg.AgreementIDs, refs)
		for _, name := range clients {
			allClients[name] = struct{}{}
		}
		downloads += agg.DownloadCount

		rows = append(rows, domain.ReportRow{
			VideoID:       agg.VideoID,
			Title:         deref(agg.Title),
			Tags:          joinOrDash(tagNames(agg.VideoID, refs)),
			RightsType:    deref(agg.LimitType),
			Clients:       joinOrDash(clients),
			DownloadCount: agg.DownloadCount,
		})
	}

	return rows, &domain.Statistics{
		Keyword:   keyword,
		Videos:    len(rows),
		Downloads: downloads,
		Clients:   len(allClients),
	}
}

func clientNames(agreementIDs []int64, refs references) []string {
	var names []string
	for _, aid := range agreementIDs {
		companyID, ok := refs.companyByAgreement[aid]
		if !ok {
			continue
		}
		if name := refs.companyNames[companyID]; name != "" {
			names = append(names, name)
		}
	}
	return sortedUnique(names)
}

func tagNames(videoID int64, refs references) []string {
	var names []string
	for _, tagID := range refs.tagsByVideo[videoID] {
		if name := refs.tagNames[tagID]; name != "" {
			names = append(names, name)
		}
	}
	return sortedUnique(names)
}

func sortedUnique(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return domain.EmptyCell
	}
	return strings.Join(values, listSeparator)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
