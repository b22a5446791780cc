// AngelaMos | 2026
// service_test.go

package quickcontact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type fakeRepo struct {
	contacts map[int64]QuickContact
	nextID   int64
	approved map[int64]ProjectFields
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		contacts: make(map[int64]QuickContact),
		nextID:   1,
		approved: make(map[int64]ProjectFields),
	}
}

func (f *fakeRepo) Create(_ context.Context, qc *QuickContact) error {
	qc.ID = f.nextID
	qc.CreatedAt = time.Now()
	f.contacts[qc.ID] = *qc
	f.nextID++
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]QuickContact, error) {
	out := make([]QuickContact, 0, len(f.contacts))
	for _, qc := range f.contacts {
		out = append(out, qc)
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.contacts[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeRepo) Approve(
	_ context.Context,
	id int64,
	fields ProjectFields,
) error {
	if _, ok := f.contacts[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.contacts, id)
	f.approved[id] = fields
	return nil
}

func strPtr(s string) *string { return &s }

func TestSubmitAndList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	err := svc.Submit(ctx, CreateQuickContactRequest{
		Name:    "Vikram",
		Phone:   "9812345678",
		Subject: strPtr("SEO audit"),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Vikram" {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestDenyTwiceReportsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Submit(ctx, CreateQuickContactRequest{
		Name:  "Vikram",
		Phone: "9812345678",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.Deny(ctx, 1); err != nil {
		t.Fatalf("deny: %v", err)
	}
	if err := svc.Deny(ctx, 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second deny = %v, want ErrNotFound", err)
	}
}

func TestApproveCarriesProjectFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Submit(ctx, CreateQuickContactRequest{
		Name:  "Vikram",
		Phone: "9812345678",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	err := svc.Approve(ctx, 1, ApproveQuickContactRequest{
		ProjectTitle:       "SEO overhaul",
		ProjectDescription: "Audit and fixes",
		DeliveryDate:       core.NewDate(2026, time.November, 15),
		BillingDetails:     "paid in full",
		ProjectManager:     "Ravi",
		Reference:          strPtr("QC-1"),
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	fields, ok := repo.approved[1]
	if !ok {
		t.Fatal("approve must hand the project fields to the repository")
	}
	if fields.AdvanceToken != "paid in full" {
		t.Errorf("advance token = %q", fields.AdvanceToken)
	}
	if fields.Reference == nil || *fields.Reference != "QC-1" {
		t.Errorf("reference = %v", fields.Reference)
	}
}

func TestApproveMissingContact(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.Approve(context.Background(), 42, ApproveQuickContactRequest{
		ProjectTitle:       "x",
		ProjectDescription: "x",
		DeliveryDate:       core.NewDate(2026, time.November, 15),
		BillingDetails:     "x",
		ProjectManager:     "x",
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("approve = %v, want ErrNotFound", err)
	}
}
