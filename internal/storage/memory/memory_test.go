package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/storage"
)

func TestItemLifecycle(t *testing.T) {
	ctx := context.Background()
	items := New().Items()

	item := &models.Item{
		Name:        "Groceries",
		PurchasedBy: "alice",
		Amount:      42.50,
		PaidFor:     []string{"alice", "bob"},
	}
	if err := items.Create(ctx, item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if item.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Fatal("Create() did not stamp timestamps")
	}
	if item.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", item.CreatedAt.Location())
	}

	t.Run("get returns the stored document", func(t *testing.T) {
		got, err := items.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got == nil {
			t.Fatal("Get() = nil for existing item")
		}
		if got.Name != "Groceries" || got.Amount != 42.50 {
			t.Errorf("Get() = %+v, want stored fields", got)
		}
	})

	t.Run("update preserves id and creation time", func(t *testing.T) {
		updated, err := items.Update(ctx, item.ID, &models.Item{
			Name:        "Weekly shop",
			PurchasedBy: "alice",
			Amount:      50,
			PaidFor:     []string{"alice"},
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated == nil {
			t.Fatal("Update() = nil for existing item")
		}
		if updated.ID != item.ID {
			t.Errorf("updated ID = %q, want %q", updated.ID, item.ID)
		}
		if !updated.CreatedAt.Equal(item.CreatedAt) {
			t.Errorf("updated CreatedAt = %v, want original %v", updated.CreatedAt, item.CreatedAt)
		}
		if updated.UpdatedAt.Before(updated.CreatedAt) {
			t.Errorf("UpdatedAt %v is before CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
		}
		if updated.Name != "Weekly shop" {
			t.Errorf("updated Name = %q, want %q", updated.Name, "Weekly shop")
		}
	})

	t.Run("delete reports true then false", func(t *testing.T) {
		deleted, err := items.Delete(ctx, item.ID)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if !deleted {
			t.Fatal("Delete() = false for existing item")
		}

		deleted, err = items.Delete(ctx, item.ID)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if deleted {
			t.Error("Delete() = true for already-deleted item")
		}
	})
}

func TestGetAbsent(t *testing.T) {
	ctx := context.Background()
	items := New().Items()

	got, err := items.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v for absent id, want nil", got)
	}
}

func TestUpdateAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	items := New().Items()

	updated, err := items.Update(ctx, "no-such-id", &models.Item{Name: "Ghost"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated != nil {
		t.Errorf("Update() = %+v for absent id, want nil", updated)
	}

	all, err := items.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("List() returned %d items after no-op update, want 0", len(all))
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	items := New().Items()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := items.Create(ctx, &models.Item{Name: name, PurchasedBy: "u", Amount: 1, PaidFor: []string{"u"}}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	all, err := items.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d items, want 3", len(all))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if all[i].Name != w {
			t.Errorf("List()[%d].Name = %q, want %q", i, all[i].Name, w)
		}
	}
}

func TestUserUniqueness(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	if err := users.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name string
		user *models.User
	}{
		{name: "duplicate username", user: &models.User{Username: "alice", Email: "other@example.com"}},
		{name: "duplicate email", user: &models.User{Username: "other", Email: "alice@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := users.Create(ctx, tt.user)
			if !errors.Is(err, storage.ErrConflict) {
				t.Errorf("Create() error = %v, want ErrConflict", err)
			}
		})
	}
}

func TestUserFinders(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	if err := users.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byName, err := users.FindByUsername(ctx, "alice")
	if err != nil || byName == nil {
		t.Fatalf("FindByUsername() = %v, %v; want user", byName, err)
	}
	byEmail, err := users.FindByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("FindByEmail() = %v, %v; want user", byEmail, err)
	}
	missing, err := users.FindByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindByUsername(nobody) = %+v, want nil", missing)
	}
}

func TestItemFinders(t *testing.T) {
	ctx := context.Background()
	items := New().Items()

	seed := []*models.Item{
		{Name: "Groceries", PurchasedBy: "alice", Amount: 20, PaidFor: []string{"alice", "bob"}},
		{Name: "Concert tickets", PurchasedBy: "bob", Amount: 80, PaidFor: []string{"bob"}},
		{Name: "More groceries", PurchasedBy: "alice", Amount: 15, PaidFor: []string{"carol"}},
	}
	for _, it := range seed {
		if err := items.Create(ctx, it); err != nil {
			t.Fatalf("Create(%q) error = %v", it.Name, err)
		}
	}

	t.Run("by purchaser", func(t *testing.T) {
		got, err := items.FindByPurchaser(ctx, "alice")
		if err != nil {
			t.Fatalf("FindByPurchaser() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("FindByPurchaser(alice) returned %d items, want 2", len(got))
		}
	})

	t.Run("paid for", func(t *testing.T) {
		got, err := items.FindPaidFor(ctx, "bob")
		if err != nil {
			t.Fatalf("FindPaidFor() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("FindPaidFor(bob) returned %d items, want 2", len(got))
		}
	})

	t.Run("name search is case-insensitive substring", func(t *testing.T) {
		got, err := items.SearchByName(ctx, "GROCER")
		if err != nil {
			t.Fatalf("SearchByName() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("SearchByName(GROCER) returned %d items, want 2", len(got))
		}
	})
}

func TestGroupFinders(t *testing.T) {
	ctx := context.Background()
	groups := New().Groups()

	seed := []*models.Group{
		{Name: "Roommates", MemberIDs: []string{"alice", "bob"}, AdminIDs: []string{"alice"}},
		{Name: "Lunch crew", MemberIDs: []string{"bob", "carol"}, AdminIDs: []string{"carol"}},
	}
	for _, g := range seed {
		if err := groups.Create(ctx, g); err != nil {
			t.Fatalf("Create(%q) error = %v", g.Name, err)
		}
	}

	byMember, err := groups.FindByMember(ctx, "bob")
	if err != nil {
		t.Fatalf("FindByMember() error = %v", err)
	}
	if len(byMember) != 2 {
		t.Errorf("FindByMember(bob) returned %d groups, want 2", len(byMember))
	}

	byName, err := groups.SearchByName(ctx, "room")
	if err != nil {
		t.Fatalf("SearchByName() error = %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Roommates" {
		t.Errorf("SearchByName(room) = %+v, want the Roommates group", byName)
	}
}

func TestPurchaseFinders(t *testing.T) {
	ctx := context.Background()
	purchases := New().Purchases()

	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	seed := []*models.Purchase{
		{Name: "Weekly shop", UserID: "alice", GroupID: "g1", PurchaseDate: base, TotalAmount: 60},
		{Name: "Night hangout", UserID: "bob", GroupID: "g1", PurchaseDate: base.AddDate(0, 0, 10), TotalAmount: 120},
		{Name: "Road trip", UserID: "alice", GroupID: "g2", PurchaseDate: base.AddDate(0, 0, 20), TotalAmount: 300},
	}
	for _, p := range seed {
		if err := purchases.Create(ctx, p); err != nil {
			t.Fatalf("Create(%q) error = %v", p.Name, err)
		}
	}

	t.Run("by group", func(t *testing.T) {
		got, err := purchases.ListByGroup(ctx, "g1")
		if err != nil {
			t.Fatalf("ListByGroup() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("ListByGroup(g1) returned %d purchases, want 2", len(got))
		}
	})

	t.Run("by user", func(t *testing.T) {
		got, err := purchases.ListByUser(ctx, "alice")
		if err != nil {
			t.Fatalf("ListByUser() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("ListByUser(alice) returned %d purchases, want 2", len(got))
		}
	})

	t.Run("by group within timeframe", func(t *testing.T) {
		got, err := purchases.ListByGroupBetween(ctx, "g1", base.AddDate(0, 0, 5), base.AddDate(0, 0, 15))
		if err != nil {
			t.Fatalf("ListByGroupBetween() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Night hangout" {
			t.Errorf("ListByGroupBetween() = %+v, want only the night hangout", got)
		}
	})

	t.Run("timeframe bounds are inclusive", func(t *testing.T) {
		got, err := purchases.ListByGroupBetween(ctx, "g1", base, base.AddDate(0, 0, 10))
		if err != nil {
			t.Fatalf("ListByGroupBetween() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("ListByGroupBetween() returned %d purchases, want 2 (inclusive bounds)", len(got))
		}
	})
}

func TestPaymentFinders(t *testing.T) {
	ctx := context.Background()
	payments := New().Payments()

	now := time.Now().UTC()
	seed := []*models.Payment{
		{UserID: "alice", GroupID: "g1", Amount: 10, PaymentDate: now},
		{UserID: "bob", GroupID: "g1", Amount: 20, PaymentDate: now},
		{UserID: "alice", GroupID: "g2", Amount: 30, PaymentDate: now},
	}
	for i, p := range seed {
		if err := payments.Create(ctx, p); err != nil {
			t.Fatalf("Create(#%d) error = %v", i, err)
		}
	}

	byGroup, err := payments.ListByGroup(ctx, "g1")
	if err != nil {
		t.Fatalf("ListByGroup() error = %v", err)
	}
	if len(byGroup) != 2 {
		t.Errorf("ListByGroup(g1) returned %d payments, want 2", len(byGroup))
	}

	byUser, err := payments.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("ListByUser(alice) returned %d payments, want 2", len(byUser))
	}
}
