package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MinorDiscrepancyLimit separates minor from major discrepancy groups:
// an accumulated discrepancy under one currency unit still allows
// automatic processing.
var MinorDiscrepancyLimit = decimal.NewFromInt(1)

// StatusPaidSettled marks a sale whose payment was already collected.
const StatusPaidSettled = "cobrado"

const dateOnly = "2006-01-02"

// Channel is a sales channel. Only channels flagged as auto-reconcilable
// take part in group detection; the flag is external policy carried on
// the channel type.
type Channel struct {
	ID               string
	Name             string
	Code             string
	AutoReconcilable bool
}

// Sale is a raw sale row. Date and Price are optional in storage;
// sales missing either never enter a group.
type Sale struct {
	ID               string
	Date             *time.Time
	DatePaid         *time.Time
	Price            *decimal.Decimal
	PaymentMethod    string
	Channel          string
	ReconciliationID *string
	Commission       decimal.Decimal
	Retention        decimal.Decimal
	Shipping         decimal.Decimal
	StatusPaid       string
}

// GroupStatus classifies an auto-reconciliation group by the severity of
// its accumulated discrepancies.
type GroupStatus string

const (
	GroupStatusPerfect GroupStatus = "perfect"
	GroupStatusMinor   GroupStatus = "minor_discrepancy"
	GroupStatusMajor   GroupStatus = "major_discrepancy"
)

// AutoReconciliationGroup clusters same-day, same-channel,
// same-payment-method sales into one candidate for a consolidated
// payment. Groups are transient: they become a persisted payment plus
// updated sale rows only on an explicit process action.
type AutoReconciliationGroup struct {
	ID                string
	Date              time.Time
	PaymentMethod     string
	Channel           string
	Sales             []Sale
	TotalAmount       decimal.Decimal
	Status            GroupStatus
	DiscrepancyAmount decimal.Decimal
	ValidationErrors  []string
}

// Processable reports whether the group may be auto-converted into a
// payment. Major-discrepancy groups always require manual review.
func (g *AutoReconciliationGroup) Processable() bool {
	return g.Status != GroupStatusMajor
}

// DetectGroups filters unreconciled sales down to auto-reconcilable
// channels, clusters them by (date, payment method, channel), validates
// each cluster and classifies its status. Output is newest-first.
func DetectGroups(channels []Channel, sales []Sale) []AutoReconciliationGroup {
	eligible := make(map[string]bool)
	for _, ch := range channels {
		if ch.AutoReconcilable {
			eligible[ch.Name] = true
		}
	}

	groups := make(map[string]*AutoReconciliationGroup)
	var order []string

	for _, sale := range sales {
		if sale.ReconciliationID != nil || !eligible[sale.Channel] {
			continue
		}
		if sale.Date == nil || sale.Price == nil {
			continue
		}

		key := sale.Date.Format(dateOnly) + "__" + sale.PaymentMethod + "__" + sale.Channel

		group, ok := groups[key]
		if !ok {
			group = &AutoReconciliationGroup{
				ID:            key,
				Date:          *sale.Date,
				PaymentMethod: sale.PaymentMethod,
				Channel:       sale.Channel,
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Sales = append(group.Sales, sale)
		group.TotalAmount = group.TotalAmount.Add(*sale.Price)
	}

	out := make([]AutoReconciliationGroup, 0, len(order))
	for _, key := range order {
		group := groups[key]
		validateGroup(group)
		out = append(out, *group)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// ConsolidatedPayment is the single payment row a processed group
// becomes. Its ID lands on every grouped sale as reconciliation_id.
type ConsolidatedPayment struct {
	ID            string
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	Channel       string
	Notes         string
	CreatedAt     time.Time
}

// validateGroup accumulates per-sale validation errors and the total
// discrepancy amount, then classifies the group.
func validateGroup(g *AutoReconciliationGroup) {
	for _, sale := range g.Sales {
		for _, field := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"comisión", sale.Commission},
			{"retención", sale.Retention},
			{"envío", sale.Shipping},
		} {
			if !field.value.IsZero() {
				g.ValidationErrors = append(g.ValidationErrors,
					fmt.Sprintf("venta %s: %s distinta de cero (%s)", sale.ID, field.name, field.value))
				g.DiscrepancyAmount = g.DiscrepancyAmount.Add(field.value.Abs())
			}
		}

		if sale.DatePaid == nil || sale.Date.Format(dateOnly) != sale.DatePaid.Format(dateOnly) {
			g.ValidationErrors = append(g.ValidationErrors,
				fmt.Sprintf("venta %s: fecha de pago distinta de fecha de venta", sale.ID))
		}

		if sale.StatusPaid == StatusPaidSettled {
			g.ValidationErrors = append(g.ValidationErrors,
				fmt.Sprintf("venta %s: ya cobrada", sale.ID))
		}
	}

	switch {
	case len(g.ValidationErrors) == 0:
		g.Status = GroupStatusPerfect
	case g.DiscrepancyAmount.LessThan(MinorDiscrepancyLimit):
		g.Status = GroupStatusMinor
	default:
		g.Status = GroupStatusMajor
	}
}
