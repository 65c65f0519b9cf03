// file: internals/features/enrollment/service/schedule_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBuildInstallmentPlan_SumsExactly(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		balance string
		count   int
		amounts []string
	}{
		{"even split", "12000.00", 12, nil},
		{"uneven thirds", "1000.00", 3, []string{"333.33", "333.33", "333.34"}},
		{"single installment", "750.50", 1, []string{"750.5"}},
		{"rounding down remainder", "100.00", 7, nil},
		{"cents only", "0.05", 2, []string{"0.03", "0.02"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := d(tt.balance)
			plan := BuildInstallmentPlan(balance, tt.count, start)

			require.Len(t, plan, tt.count)
			assert.True(t, plan.Sum().Equal(balance),
				"plan sums to %s, want %s", plan.Sum(), balance)

			for i, ins := range plan {
				assert.Equal(t, i+1, ins.InstallmentNo)
				assert.False(t, ins.Amount.IsNegative())
			}
			if tt.amounts != nil {
				for i, want := range tt.amounts {
					assert.True(t, plan[i].Amount.Equal(d(want)),
						"installment %d = %s, want %s", i+1, plan[i].Amount, want)
				}
			}
		})
	}
}

func TestBuildInstallmentPlan_MonthlyDueDates(t *testing.T) {
	start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	plan := BuildInstallmentPlan(d("300.00"), 3, start)

	require.Len(t, plan, 3)
	assert.Equal(t, start, plan[0].DueDate)
	for i := 1; i < len(plan); i++ {
		assert.Equal(t, start.AddDate(0, i, 0), plan[i].DueDate)
	}
}

func TestBuildInstallmentPlan_Empty(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, BuildInstallmentPlan(d("1000.00"), 0, start))
	assert.Empty(t, BuildInstallmentPlan(d("1000.00"), -3, start))
	assert.Empty(t, BuildInstallmentPlan(decimal.Zero, 6, start))
	assert.Empty(t, BuildInstallmentPlan(d("-50.00"), 6, start))
}

func TestInstallmentPlan_EMI(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	plan := BuildInstallmentPlan(d("1000.00"), 3, start)
	assert.True(t, plan.EMI().Equal(d("333.33")))

	assert.True(t, InstallmentPlan{}.EMI().IsZero())
}

// Scenario: 10000 fees, 1000 discount, 3000 paid now, six installments.
func TestBuildInstallmentPlan_StandardAdmission(t *testing.T) {
	total, balance := ComputeLedger(d("10000.00"), d("1000.00"), d("3000.00"))
	require.True(t, total.Equal(d("9000.00")))
	require.True(t, balance.Equal(d("6000.00")))

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	plan := BuildInstallmentPlan(balance, 6, start)

	require.Len(t, plan, 6)
	assert.True(t, plan.EMI().Equal(d("1000.00")))
	assert.True(t, plan.Sum().Equal(balance))
}
