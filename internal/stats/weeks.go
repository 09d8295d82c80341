package stats

// WeekPair is two week numbers whose data was published combined.
type WeekPair [2]int

// SplitCombinedWeeks breaks combined week pairs into the weeks to treat as
// plus-one and the weeks to treat as minus-one: the earlier week of each
// pair lands in plusOne, the later in minusOne.
func SplitCombinedWeeks(pairs []WeekPair) (plusOne, minusOne []int) {
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			plusOne = append(plusOne, pair[0])
			minusOne = append(minusOne, pair[1])
		} else {
			minusOne = append(minusOne, pair[0])
			plusOne = append(plusOne, pair[1])
		}
	}
	return plusOne, minusOne
}
