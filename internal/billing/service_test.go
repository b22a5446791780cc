// AngelaMos | 2026
// service_test.go

package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type fakeRepo struct {
	byBillNo map[string]Bill
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byBillNo: make(map[string]Bill), nextID: 1}
}

func (f *fakeRepo) List(_ context.Context) ([]Bill, error) {
	out := make([]Bill, 0, len(f.byBillNo))
	for _, b := range f.byBillNo {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ExistsByBillNo(
	_ context.Context,
	billNo string,
) (bool, error) {
	_, ok := f.byBillNo[billNo]
	return ok, nil
}

func (f *fakeRepo) Create(_ context.Context, b *Bill) error {
	if _, ok := f.byBillNo[b.BillNo]; ok {
		return core.ErrDuplicateKey
	}
	b.ID = f.nextID
	f.nextID++
	f.byBillNo[b.BillNo] = *b
	return nil
}

func strPtr(s string) *string { return &s }

func datePtr(d core.Date) *core.Date { return &d }

func testBill(grandTotal string) CreateBillRequest {
	return CreateBillRequest{
		CustomerName:  strPtr("Mehta Traders"),
		CustomerPhone: strPtr("9811122233"),
		BillPrefix:    strPtr("DG-"),
		BillNoSuffix:  strPtr("0042"),
		Date:          datePtr(core.NewDate(2026, time.April, 1)),
		PaymentMode:   strPtr("UPI"),
		Items: []Item{
			{Service: "Logo design", Rate: "5000", Quantity: 1, Price: "5000"},
		},
		GrandTotal: grandTotal,
	}
}

func TestBillNoJoinsPrefixAndSuffix(t *testing.T) {
	req := testBill("5000")
	if got := req.BillNo(); got != "DG-0042" {
		t.Errorf("bill no = %q, want DG-0042", got)
	}

	req.BillPrefix = nil
	if got := req.BillNo(); got != "0042" {
		t.Errorf("bill no = %q, want 0042", got)
	}
}

func TestCreateParsesGrandTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.Create(context.Background(), testBill(" 5000.50 ")); err != nil {
		t.Fatalf("create: %v", err)
	}

	bill := repo.byBillNo["DG-0042"]
	if bill.TotalAmount == nil || bill.TotalAmount.Float64() != 5000.50 {
		t.Errorf("total = %v, want 5000.50", bill.TotalAmount)
	}
	if bill.CustomerContact == nil || *bill.CustomerContact != "9811122233" {
		t.Errorf("contact = %v", bill.CustomerContact)
	}
}

func TestCreateUnparseableTotalStoredAsNull(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.Create(context.Background(), testBill("five thousand")); err != nil {
		t.Fatalf("create: %v", err)
	}

	bill := repo.byBillNo["DG-0042"]
	if bill.TotalAmount != nil {
		t.Errorf("total = %v, want nil for free-text amount", bill.TotalAmount)
	}
}

func TestCreateDuplicateBillNo(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, testBill("5000")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.Create(ctx, testBill("6000"))
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("duplicate create = %v, want ErrDuplicateKey", err)
	}
}
