package booking

// MealPlan is a pricing tier multiplying the nightly rate.
type MealPlan string

const (
	MealPlanNone      MealPlan = "none"
	MealPlanHalfBoard MealPlan = "half_board"
	MealPlanFullBoard MealPlan = "full_board"
)

func (m MealPlan) String() string {
	return string(m)
}

func (m MealPlan) IsValid() bool {
	switch m {
	case MealPlanNone, MealPlanHalfBoard, MealPlanFullBoard:
		return true
	default:
		return false
	}
}

// multiplierPct returns the meal multiplier as an integer percentage so the
// rate calculation stays in exact fixed-point arithmetic.
func (m MealPlan) multiplierPct() int64 {
	switch m {
	case MealPlanHalfBoard:
		return 120
	case MealPlanFullBoard:
		return 140
	default:
		return 100
	}
}

func NewMealPlan(s string) (MealPlan, error) {
	if s == "" {
		return MealPlanNone, nil
	}
	plan := MealPlan(s)
	if !plan.IsValid() {
		return "", ErrInvalidMealPlan
	}
	return plan, nil
}
