package phases

// Equivalence records, per phase, which earlier row a row must equal if the
// pattern is periodic with a smaller period than the one searched for.
//
// A negative entry -d at phase i means the row at depth a (a ≡ i) is the
// sub-period image of the row at depth a-d. Non-negative entries carry no
// constraint. Rows2 is only populated when TwoSubPeriods is set, which is
// the case when gcd(period, offset) has two distinct prime factors.
type Equivalence struct {
	Rows          []int
	Rows2         []int
	TwoSubPeriods bool
}

// NewEquivalence builds the sub-period tables for s. When period and offset
// are coprime no smaller period is possible and both tables are all zero.
func NewEquivalence(s Schedule) Equivalence {
	eq := Equivalence{
		Rows:  make([]int, s.Period),
		Rows2: make([]int, s.Period),
	}
	g := GCD(s.Period, s.Offset)
	if g == 1 {
		return eq
	}
	div1 := SmallestDivisor(g)
	s.fillEquivalent(eq.Rows, s.Period/div1)

	div2 := g
	for div2%div1 == 0 {
		div2 /= div1
	}
	if div2 != 1 {
		eq.TwoSubPeriods = true
		s.fillEquivalent(eq.Rows2, s.Period/SmallestDivisor(div2))
	}
	return eq
}

// fillEquivalent follows the Back chain maxFactor times from each phase and
// records how far the landing row is from where a pattern of period
// maxFactor would put it.
func (s Schedule) fillEquivalent(rows []int, maxFactor int) {
	for i := range rows {
		t := i
		for range maxFactor {
			t += s.Back[t%s.Period]
		}
		rows[i] = t - (s.Offset*maxFactor + i)
	}
	// make entries negative where the later row of the pair can be checked
	delta := append([]int(nil), rows...)
	for i, t := range delta {
		if t > 0 && i+t < len(rows) {
			rows[i+t] = -t
		}
	}
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SmallestDivisor returns the smallest divisor of b greater than 1.
func SmallestDivisor(b int) int {
	c := 2
	for b%c != 0 {
		c++
	}
	return c
}
