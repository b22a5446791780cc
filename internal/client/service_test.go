// AngelaMos | 2026
// service_test.go

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type fakeRepo struct {
	projects map[int64]*ActiveClient
}

func (f *fakeRepo) ListActive(_ context.Context) ([]ActiveClient, error) {
	out := []ActiveClient{}
	for _, p := range f.projects {
		if p.Status == StatusActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Complete(_ context.Context, id int64) error {
	p, ok := f.projects[id]
	if !ok {
		return core.ErrNotFound
	}
	p.Status = StatusCompleted
	return nil
}

func TestListActiveFiltersCompleted(t *testing.T) {
	repo := &fakeRepo{projects: map[int64]*ActiveClient{
		1: {ID: 1, ClientName: "Asha", Status: StatusActive},
		2: {ID: 2, ClientName: "Vikram", Status: StatusCompleted},
	}}
	svc := NewService(repo)

	clients, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != 1 {
		t.Fatalf("clients = %+v, want only the active project", clients)
	}
}

func TestCompleteUnknownProject(t *testing.T) {
	svc := NewService(&fakeRepo{projects: map[int64]*ActiveClient{}})

	err := svc.Complete(context.Background(), 99)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("complete = %v, want ErrNotFound", err)
	}
}

func TestCompleteMovesProjectOutOfActiveList(t *testing.T) {
	repo := &fakeRepo{projects: map[int64]*ActiveClient{
		1: {ID: 1, ClientName: "Asha", Status: StatusActive},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Complete(ctx, 1); err != nil {
		t.Fatalf("complete: %v", err)
	}

	clients, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("clients = %+v, want empty after completion", clients)
	}
}
