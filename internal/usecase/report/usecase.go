package report

import (
	"context"
	"strings"
	"time"

	"ngo-backoffice/internal/domain/access"
	"ngo-backoffice/internal/domain/project"
	domain "ngo-backoffice/internal/domain/report"
	"ngo-backoffice/pkg/media"
)

type Usecase struct {
	reports  domain.Repository
	projects project.Repository
	media    *media.Normalizer
	now      func() time.Time
}

func NewUsecase(reports domain.Repository, projects project.Repository, urls *media.Normalizer) *Usecase {
	return &Usecase{
		reports:  reports,
		projects: projects,
		media:    urls,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) Create(ctx context.Context, projectID uint64, in CreateInput, actor access.Principal) (*ReportDTO, error) {
	if err := access.Check(actor.Role, access.ActionReportCreate); err != nil {
		return nil, err
	}
	if in.BeneficiariesCount < 0 {
		return nil, domain.ErrNegativeBeneficiaries
	}
	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = u.now()
	}
	y, m, d := date.UTC().Date()
	photos := make([]string, 0, len(in.Photos))
	for _, p := range in.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}

	r := &domain.ImpactReport{
		ProjectID:          projectID,
		Title:              strings.TrimSpace(in.Title),
		Description:        strings.TrimSpace(in.Description),
		BeneficiariesCount: in.BeneficiariesCount,
		ActivitiesDone:     strings.TrimSpace(in.ActivitiesDone),
		Photos:             photos,
		GPSLat:             in.GPSLat,
		GPSLng:             in.GPSLng,
		Date:               time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	if actor.UserID != 0 {
		creator := actor.UserID
		r.CreatedByID = &creator
	}
	if err := u.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	return u.toDTO(r), nil
}

// Verify records the verifier's verdict. Reports can be re-verified; the
// latest verdict wins.
func (u *Usecase) Verify(ctx context.Context, id uint64, in VerifyInput, actor access.Principal) (*ReportDTO, error) {
	if err := access.Check(actor.Role, access.ActionReportVerify); err != nil {
		return nil, err
	}
	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := u.now()
	verifier := actor.UserID
	r.Verified = in.Verified
	r.VerifiedByID = &verifier
	r.VerifiedAt = &now
	r.VerificationComment = strings.TrimSpace(in.Comment)
	if err := u.reports.Save(ctx, r); err != nil {
		return nil, err
	}
	return u.toDTO(r), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64, actor access.Principal) (*ReportDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toDTO(r), nil
}

// List returns every report to roles allowed to view everything and only
// reports of managed projects to the rest.
func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]ReportDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	var (
		rows []domain.ImpactReport
		err  error
	)
	if actor.Can(access.ActionViewAll) {
		rows, err = u.reports.List(ctx)
	} else {
		rows, err = u.reports.ListByManager(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]ReportDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *u.toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) toDTO(r *domain.ImpactReport) *ReportDTO {
	return &ReportDTO{
		ID:                  r.ID,
		ProjectID:           r.ProjectID,
		Title:               r.Title,
		Description:         r.Description,
		BeneficiariesCount:  r.BeneficiariesCount,
		ActivitiesDone:      r.ActivitiesDone,
		Photos:              u.media.URLs(r.Photos),
		GPSLat:              r.GPSLat,
		GPSLng:              r.GPSLng,
		Date:                r.Date.UTC().Format("2006-01-02"),
		Verified:            r.Verified,
		VerifiedByID:        r.VerifiedByID,
		VerifiedAt:          r.VerifiedAt,
		VerificationComment: r.VerificationComment,
		CreatedByID:         r.CreatedByID,
		CreatedAt:           r.CreatedAt,
	}
}
