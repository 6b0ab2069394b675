package session

import (
	"sort"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Report holds the dashboard figures for a filtered slice of the working
// set: the KPI totals, the daily cash flow series and the expense total per
// category.
type Report struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	NetBalance        decimal.Decimal `json:"netBalance"`
	CashFlow          []CashFlowEntry `json:"cashFlow"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
}

// CashFlowEntry is the summed amount of one transaction type on one date.
type CashFlowEntry struct {
	Date   types.Date             `json:"date"`
	Type   models.TransactionType `json:"type"`
	Amount decimal.Decimal        `json:"amount"`
}

// CategoryTotal is the summed expense amount of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Report aggregates the filtered working set. The net balance is income
// minus expense over the same filtered rows the totals are built from.
func (s *Session) Report(f Filter) Report {
	transactions := s.Transactions(f)

	report := Report{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	type flowKey struct {
		date types.Date
		kind models.TransactionType
	}

	flows := make(map[flowKey]decimal.Decimal)
	expenses := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		amount := t.Amount()

		switch t.Type {
		case models.TypeExpense:
			report.TotalExpense = report.TotalExpense.Add(amount)
			expenses[t.Category] = expenses[t.Category].Add(amount)
		case models.TypeIncome:
			report.TotalIncome = report.TotalIncome.Add(amount)
		}

		key := flowKey{date: t.Date, kind: t.Type}
		flows[key] = flows[key].Add(amount)
	}

	report.NetBalance = report.TotalIncome.Sub(report.TotalExpense)

	report.CashFlow = make([]CashFlowEntry, 0, len(flows))
	for key, amount := range flows {
		report.CashFlow = append(report.CashFlow, CashFlowEntry{Date: key.date, Type: key.kind, Amount: amount})
	}
	sort.Slice(report.CashFlow, func(i, j int) bool {
		if !report.CashFlow[i].Date.Equal(report.CashFlow[j].Date) {
			return report.CashFlow[i].Date.Before(report.CashFlow[j].Date)
		}
		return report.CashFlow[i].Type < report.CashFlow[j].Type
	})

	report.ExpenseByCategory = make([]CategoryTotal, 0, len(expenses))
	for category, amount := range expenses {
		report.ExpenseByCategory = append(report.ExpenseByCategory, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(report.ExpenseByCategory, func(i, j int) bool {
		if !report.ExpenseByCategory[i].Amount.Equal(report.ExpenseByCategory[j].Amount) {
			return report.ExpenseByCategory[i].Amount.LessThan(report.ExpenseByCategory[j].Amount)
		}
		return report.ExpenseByCategory[i].Category < report.ExpenseByCategory[j].Category
	})

	return report
}
