// Package balance computes who owes whom within a group from its purchases
// and payments.
package balance

import (
	"sort"

	"github.com/Wichtowski/whobought/internal/models"
)

// Amounts below this are treated as settled to avoid floating point noise.
const epsilon = 0.01

// MemberBalance is the aggregated position of one group member.
type MemberBalance struct {
	UserID string `json:"user_id"`

	// TotalPaid is everything the member spent on behalf of the group:
	// purchases they made plus payments they contributed.
	TotalPaid float64 `json:"total_paid"`

	// TotalOwed is the member's share of all group purchases.
	TotalOwed float64 `json:"total_owed"`

	// Net is TotalPaid minus TotalOwed. Positive means the group owes the
	// member; negative means the member owes the group.
	Net float64 `json:"net"`
}

// DebtEdge is a suggested transfer that settles part of the group's debts.
type DebtEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Compute aggregates group purchases and payments into per-member balances
// and a minimal set of settling transfers.
//
// Each purchase is split equally among the group's members, with the
// purchaser credited for the full amount. Payments count toward the payer's
// contribution. Results are ordered by user ID so output is stable.
func Compute(group *models.Group, purchases []models.Purchase, payments []models.Payment) ([]MemberBalance, []DebtEdge) {
	positions := make(map[string]*MemberBalance)
	position := func(userID string) *MemberBalance {
		p, ok := positions[userID]
		if !ok {
			p = &MemberBalance{UserID: userID}
			positions[userID] = p
		}
		return p
	}

	for _, id := range group.MemberIDs {
		position(id)
	}

	for _, p := range purchases {
		if p.UserID == "" || p.TotalAmount <= 0 {
			continue
		}
		position(p.UserID).TotalPaid += p.TotalAmount

		members := group.MemberIDs
		if len(members) == 0 {
			members = []string{p.UserID}
		}
		share := p.TotalAmount / float64(len(members))
		for _, id := range members {
			position(id).TotalOwed += share
		}
	}

	for _, p := range payments {
		if p.UserID == "" || p.Amount <= 0 {
			continue
		}
		position(p.UserID).TotalPaid += p.Amount
	}

	balances := make([]MemberBalance, 0, len(positions))
	for _, p := range positions {
		p.Net = p.TotalPaid - p.TotalOwed
		balances = append(balances, *p)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })

	return balances, settle(balances)
}

// settle greedily matches the largest debtor against the largest creditor
// until every balance is within epsilon of zero.
func settle(balances []MemberBalance) []DebtEdge {
	var debtors, creditors []MemberBalance
	for _, b := range balances {
		switch {
		case b.Net < -epsilon:
			debtors = append(debtors, b)
		case b.Net > epsilon:
			creditors = append(creditors, b)
		}
	}
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].Net != debtors[j].Net {
			return debtors[i].Net < debtors[j].Net
		}
		return debtors[i].UserID < debtors[j].UserID
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].Net != creditors[j].Net {
			return creditors[i].Net > creditors[j].Net
		}
		return creditors[i].UserID < creditors[j].UserID
	})

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		owed := -debtors[i].Net
		due := creditors[j].Net

		amount := owed
		if due < amount {
			amount = due
		}
		if amount > epsilon {
			edges = append(edges, DebtEdge{
				From:   debtors[i].UserID,
				To:     creditors[j].UserID,
				Amount: amount,
			})
		}

		debtors[i].Net += amount
		creditors[j].Net -= amount
		if -debtors[i].Net <= epsilon {
			i++
		}
		if creditors[j].Net <= epsilon {
			j++
		}
	}
	return edges
}
