// AngelaMos | 2026
// service.go

package enquiry

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/client"
	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(
	ctx context.Context,
	req CreateEnquiryRequest,
) error {
	return s.repo.Create(ctx, &Enquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Idea:        req.Idea,
		Description: req.Description,
		Reference:   req.Reference,
		Consent:     req.Consent,
	})
}

func (s *Service) List(ctx context.Context) ([]Enquiry, error) {
	return s.repo.List(ctx)
}

// Deny deletes the enquiry outright. A second deny of the same id reports
// NotFound; nothing else changes.
func (s *Service) Deny(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Approve converts the enquiry into an active client project. The existence
// pre-check gives a fast NotFound; the transactional delete inside the
// repository is what actually decides a concurrent race.
func (s *Service) Approve(
	ctx context.Context,
	id int64,
	req ApproveEnquiryRequest,
) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("approve enquiry: %w", core.ErrNotFound)
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	return s.repo.Approve(ctx, id, client.NewProject{
		ClientName:         name,
		ContactEmail:       req.Email,
		ContactPhone:       req.Phone,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		DeliveryDate:       req.DeliveryDate,
		AdvanceToken:       req.BillingDetails,
		ProjectManager:     req.ProjectManager,
		ProjectReference:   req.ProjectReference,
	})
}
