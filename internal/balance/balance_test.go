package balance

import (
	"math"
	"testing"

	"github.com/Wichtowski/whobought/internal/models"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		group     *models.Group
		purchases []models.Purchase
		payments  []models.Payment
		validate  func(t *testing.T, balances []MemberBalance, edges []DebtEdge)
	}{
		{
			name:  "single purchase split two ways",
			group: &models.Group{MemberIDs: []string{"alice", "bob"}},
			purchases: []models.Purchase{
				{UserID: "alice", TotalAmount: 30},
			},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				// Alice paid 30, owes 15: net +15. Bob owes 15: net -15.
				if len(balances) != 2 {
					t.Fatalf("got %d balances, want 2", len(balances))
				}
				alice, bob := balances[0], balances[1]
				if alice.UserID != "alice" || math.Abs(alice.Net-15) > 0.01 {
					t.Errorf("alice = %+v, want net +15", alice)
				}
				if bob.UserID != "bob" || math.Abs(bob.Net+15) > 0.01 {
					t.Errorf("bob = %+v, want net -15", bob)
				}

				if len(edges) != 1 {
					t.Fatalf("got %d edges, want 1", len(edges))
				}
				e := edges[0]
				if e.From != "bob" || e.To != "alice" || math.Abs(e.Amount-15) > 0.01 {
					t.Errorf("edge = %+v, want bob pays alice 15", e)
				}
			},
		},
		{
			name:  "payment reduces what the payer owes",
			group: &models.Group{MemberIDs: []string{"alice", "bob"}},
			purchases: []models.Purchase{
				{UserID: "alice", TotalAmount: 30},
			},
			payments: []models.Payment{
				{UserID: "bob", Amount: 15},
			},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				bob := balances[1]
				if math.Abs(bob.Net) > 0.01 {
					t.Errorf("bob net = %v, want 0 after settling", bob.Net)
				}
				if len(edges) != 0 {
					t.Errorf("got %d edges after full settlement, want 0", len(edges))
				}
			},
		},
		{
			name:  "three members settle with two transfers",
			group: &models.Group{MemberIDs: []string{"alice", "bob", "carol"}},
			purchases: []models.Purchase{
				{UserID: "alice", TotalAmount: 90},
			},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				// Alice: +60. Bob and carol: -30 each.
				if len(edges) != 2 {
					t.Fatalf("got %d edges, want 2: %+v", len(edges), edges)
				}
				for _, e := range edges {
					if e.To != "alice" || math.Abs(e.Amount-30) > 0.01 {
						t.Errorf("edge = %+v, want 30 to alice", e)
					}
				}
			},
		},
		{
			name:  "empty group yields no balances",
			group: &models.Group{},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				if len(balances) != 0 || len(edges) != 0 {
					t.Errorf("got %d balances and %d edges, want none", len(balances), len(edges))
				}
			},
		},
		{
			name:  "purchase by non-member includes the purchaser",
			group: &models.Group{MemberIDs: []string{"alice"}},
			purchases: []models.Purchase{
				{UserID: "dave", TotalAmount: 10},
			},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				if len(balances) != 2 {
					t.Fatalf("got %d balances, want 2 (member + purchaser)", len(balances))
				}
			},
		},
		{
			name:  "zero and negative amounts are ignored",
			group: &models.Group{MemberIDs: []string{"alice", "bob"}},
			purchases: []models.Purchase{
				{UserID: "alice", TotalAmount: 0},
				{UserID: "alice", TotalAmount: -5},
			},
			payments: []models.Payment{
				{UserID: "bob", Amount: -1},
			},
			validate: func(t *testing.T, balances []MemberBalance, edges []DebtEdge) {
				for _, b := range balances {
					if b.Net != 0 {
						t.Errorf("%s net = %v, want 0", b.UserID, b.Net)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, edges := Compute(tt.group, tt.purchases, tt.payments)
			tt.validate(t, balances, edges)
		})
	}
}

func TestNetIsConserved(t *testing.T) {
	group := &models.Group{MemberIDs: []string{"alice", "bob", "carol"}}
	purchases := []models.Purchase{
		{UserID: "alice", TotalAmount: 50},
		{UserID: "bob", TotalAmount: 20},
		{UserID: "carol", TotalAmount: 16},
	}

	balances, _ := Compute(group, purchases, nil)
	var sum float64
	for _, b := range balances {
		sum += b.Net
	}
	if math.Abs(sum) > 0.01 {
		t.Errorf("net balances sum to %v, want 0", sum)
	}
}
