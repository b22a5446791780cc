// AngelaMos | 2026
// service.go

package quickcontact

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(
	ctx context.Context,
	req CreateQuickContactRequest,
) error {
	return s.repo.Create(ctx, &QuickContact{
		Name:    req.Name,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
}

func (s *Service) List(ctx context.Context) ([]QuickContact, error) {
	return s.repo.List(ctx)
}

func (s *Service) Deny(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Approve promotes the contact into an active client project; the repository
// owns the transactional re-read, insert, and delete.
func (s *Service) Approve(
	ctx context.Context,
	id int64,
	req ApproveQuickContactRequest,
) error {
	return s.repo.Approve(ctx, id, ProjectFields{
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		DeliveryDate:       req.DeliveryDate,
		AdvanceToken:       req.BillingDetails,
		ProjectManager:     req.ProjectManager,
		Reference:          req.Reference,
	})
}
