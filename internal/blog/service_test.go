// AngelaMos | 2026
// service_test.go

package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type fakeRepo struct {
	bySlug map[string]Blog
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bySlug: make(map[string]Blog), nextID: 1}
}

func (f *fakeRepo) List(_ context.Context) ([]Blog, error) {
	out := make([]Blog, 0, len(f.bySlug))
	for _, b := range f.bySlug {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	_, ok := f.bySlug[slug]
	return ok, nil
}

func (f *fakeRepo) Create(_ context.Context, b *Blog) error {
	if _, ok := f.bySlug[b.Slug]; ok {
		return core.ErrDuplicateKey
	}
	b.ID = f.nextID
	f.nextID++
	f.bySlug[b.Slug] = *b
	return nil
}

func (f *fakeRepo) UpdateBySlug(_ context.Context, slug string, b *Blog) error {
	if _, ok := f.bySlug[slug]; !ok {
		return core.ErrNotFound
	}
	delete(f.bySlug, slug)
	f.bySlug[b.Slug] = *b
	return nil
}

func (f *fakeRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := f.bySlug[slug]; !ok {
		return core.ErrNotFound
	}
	delete(f.bySlug, slug)
	return nil
}

func testRequest(slug string) UpsertBlogRequest {
	return UpsertBlogRequest{
		Title:    "Launch post",
		Slug:     slug,
		Excerpt:  "First post",
		Content:  "Hello",
		ImageURL: "https://cdn.example.com/launch.png",
		Date:     core.NewDate(2026, time.January, 10),
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, testRequest("launch")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.Create(ctx, testRequest("launch"))
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("duplicate create = %v, want ErrDuplicateKey", err)
	}
}

func TestUpdateMissingSlug(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Update(context.Background(), "ghost", testRequest("ghost"))
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update = %v, want ErrNotFound", err)
	}
}

func TestUpdateCanRenameSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Create(ctx, testRequest("old-slug")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Update(ctx, "old-slug", testRequest("new-slug")); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, ok := repo.bySlug["old-slug"]; ok {
		t.Error("old slug should be gone after rename")
	}
	if _, ok := repo.bySlug["new-slug"]; !ok {
		t.Error("new slug should exist after rename")
	}
}

func TestDeleteMissingSlug(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete = %v, want ErrNotFound", err)
	}
}
