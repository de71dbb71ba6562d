package booking

// Quote computes the total price for a stay:
//
//	total = rate × nights × (adults + 0.5·children) × meal multiplier
//
// rounded half-up to two decimal places at the final step only. The whole
// computation is integer arithmetic over cents: the guest factor is carried
// doubled and the meal multiplier as a percentage, giving a single exact
// division by 200.
func Quote(rate Money, stay Stay, guests Guests, plan MealPlan) Money {
	numerator := rate.Cents() * stay.Nights() * guests.halfUnits() * plan.multiplierPct()
	return NewMoney(divRoundHalfUp(numerator, 200))
}

func divRoundHalfUp(numerator, denominator int64) int64 {
	q := numerator / denominator
	r := numerator % denominator
	if 2*r >= denominator {
		q++
	}
	return q
}
