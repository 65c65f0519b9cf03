// file: internals/features/enrollment/service/schedule.go
package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one row of an admission's amortization plan.
type Installment struct {
	InstallmentNo int             `json:"installment_no"`
	DueDate       time.Time       `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
}

// InstallmentPlan is the ordered amortization plan of an admission balance.
type InstallmentPlan []Installment

// BuildInstallmentPlan splits balance into count monthly installments
// starting at start.
//
// An empty plan (not an error) comes back when count < 1 or balance <= 0:
// "no schedule yet" and "nothing left to schedule" are both valid states of
// a working admission form.
//
// Every installment carries the rounded EMI except the last, which takes the
// running remainder so the plan sums to balance exactly despite rounding.
func BuildInstallmentPlan(balance decimal.Decimal, count int, start time.Time) InstallmentPlan {
	if count < 1 || balance.LessThanOrEqual(decimal.Zero) {
		return InstallmentPlan{}
	}

	emi := balance.Div(decimal.NewFromInt(int64(count))).Round(2)

	plan := make(InstallmentPlan, 0, count)
	remaining := balance
	for i := 0; i < count; i++ {
		amount := emi
		if i == count-1 {
			amount = remaining.Round(2)
		}
		plan = append(plan, Installment{
			InstallmentNo: i + 1,
			DueDate:       start.AddDate(0, i, 0),
			Amount:        amount,
		})
		remaining = remaining.Sub(amount)
	}
	return plan
}

// EMI returns the per-installment amount of the plan (zero for an empty plan).
func (p InstallmentPlan) EMI() decimal.Decimal {
	if len(p) == 0 {
		return decimal.Zero
	}
	return p[0].Amount
}

// Sum adds up all installment amounts.
func (p InstallmentPlan) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, ins := range p {
		sum = sum.Add(ins.Amount)
	}
	return sum
}
