// AngelaMos | 2026
// service_test.go

package letter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type fakeRepo struct {
	byRef  map[string]Letter
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byRef: make(map[string]Letter), nextID: 1}
}

func (f *fakeRepo) List(_ context.Context) ([]Letter, error) {
	out := make([]Letter, 0, len(f.byRef))
	for _, l := range f.byRef {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRepo) ExistsByRefNumber(
	_ context.Context,
	ref string,
) (bool, error) {
	_, ok := f.byRef[ref]
	return ok, nil
}

func (f *fakeRepo) Create(_ context.Context, l *Letter) error {
	if _, ok := f.byRef[l.RefNumber]; ok {
		return core.ErrDuplicateKey
	}
	l.ID = f.nextID
	f.nextID++
	f.byRef[l.RefNumber] = *l
	return nil
}

func testLetter(ref string) CreateLetterRequest {
	return CreateLetterRequest{
		Date:      core.NewDate(2026, time.February, 14),
		RefNumber: ref,
		IssuedTo:  "Whom it may concern",
		IssuedBy:  "Operations",
		Subject:   "Experience certificate",
		Content:   "This is to certify...",
	}
}

func TestCreateAndList(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, testLetter("DG/2026/001")); err != nil {
		t.Fatalf("create: %v", err)
	}

	letters, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(letters) != 1 || letters[0].RefNumber != "DG/2026/001" {
		t.Fatalf("letters = %+v", letters)
	}
}

func TestCreateDuplicateRefNumber(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, testLetter("DG/2026/001")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.Create(ctx, testLetter("DG/2026/001"))
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("duplicate create = %v, want ErrDuplicateKey", err)
	}
}
