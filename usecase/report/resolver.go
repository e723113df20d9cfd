package report

import (
	"context"
	"slices"

	"github.com/fastygo/newsroom/domain"
)

// references holds the id → name lookups needed to render the matched videos.
type references struct {
	companyByAgreement map[int64]int64
	companyNames       map[int64]string
	tagsByVideo        map[int64][]int64
	tagNames           map[int64]string
}

// resolve batches every reference lookup by distinct id set. Ids that do not
// resolve are simply missing from the maps.
func (uc *UseCase) resolve(ctx context.Context, aggregates []domain.VideoAggregate) (references, error) {
	refs := references{
		companyByAgreement: map[int64]int64{},
		companyNames:       map[int64]string{},
		tagsByVideo:        map[int64][]int64{},
		tagNames:           map[int64]string{},
	}

	var agreementIDs, videoIDs []int64
	for _, row := range aggregates {
		agreementIDs = append(agreementIDs, row.AgreementIDs...)
		videoIDs = append(videoIDs, row.VideoID)
	}

	if err := uc.resolveClients(ctx, distinctIDs(agreementIDs), refs); err != nil {
		return references{}, err
	}
	if err := uc.resolveTags(ctx, distinctIDs(videoIDs), refs); err != nil {
		return references{}, err
	}
	return refs, nil
}

func (uc *UseCase) resolveClients(ctx context.Context, agreementIDs []int64, refs references) error {
	if len(agreementIDs) == 0 {
		return nil
	}

	agreements, err := uc.reports.AgreementsByIDs(ctx, agreementIDs)
	if err != nil {
		return err
	}
	var companyIDs []int64
	for _, a := range agreements {
		if a.CompanyID == nil {
			continue
		}
		refs.companyByAgreement[a.ID] = *a.CompanyID
		companyIDs = append(companyIDs, *a.CompanyID)
	}

	companyIDs = distinctIDs(companyIDs)
	if len(companyIDs) == 0 {
		return nil
	}
	companies, err := uc.reports.CompaniesByIDs(ctx, companyIDs)
	if err != nil {
		return err
	}
	for _, c := range companies {
		refs.companyNames[c.ID] = c.Name
	}
	return nil
}

func (uc *UseCase) resolveTags(ctx context.Context, videoIDs []int64, refs references) error {
	if len(videoIDs) == 0 {
		return nil
	}

	connections, err := uc.reports.TagConnectionsByVideoIDs(ctx, videoIDs)
	if err != nil {
		return err
	}
	var tagIDs []int64
	for _, c := range connections {
		if !slices.Contains(refs.tagsByVideo[c.VideoProjectID], c.TagID) {
			refs.tagsByVideo[c.VideoProjectID] = append(refs.tagsByVideo[c.VideoProjectID], c.TagID)
		}
		tagIDs = append(tagIDs, c.TagID)
	}

	tagIDs = distinctIDs(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}
	tags, err := uc.reports.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	for _, t := range tags {
		refs.tagNames[t.ID] = t.Name
	}
	return nil
}

// distinctIDs returns the sorted set of ids, nil for an empty input.
func distinctIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
