package search

// accept runs the pruning filters, in order, on the row just placed at
// depth d.
func (e *Engine) accept(d int) bool {
	P := e.p.Period
	row := e.rows[d]

	if e.p.MaxLength > 0 && d > e.p.MaxLength+2*P-1 && row != 0 {
		return false
	}
	if e.p.FullPeriod > 0 && d > e.p.FullPeriod && e.firstFull == 0 && row != 0 {
		return false
	}
	if row&e.fullWidthMask != 0 && e.breaksSubPeriod(d) {
		return false
	}
	if n := len(e.lastNonempty); n > 0 && d == e.lastNonempty[n-1]+2*P && !e.interacts(d) {
		return false
	}
	return e.lookahead(d)
}

// breaksSubPeriod reports whether the row at d differs from its equivalent
// row under every sub-period in effect.
func (e *Engine) breaksSubPeriod(d int) bool {
	ph := e.phase
	eq := e.eq.Rows[ph]
	if eq >= 0 || e.rows[d] == e.rows[d+eq] {
		return false
	}
	if !e.eq.TwoSubPeriods {
		return true
	}
	eq2 := e.eq.Rows2[ph]
	return eq2 < 0 && e.rows[d] != e.rows[d+eq2]
}

// interacts reports whether the new partial starting after the last closed
// ship touches it. If every row in the window evolves as it would under an
// empty row, the two patterns are independent and the branch only repeats
// an earlier ship.
func (e *Engine) interacts(d int) bool {
	P := e.p.Period
	for i := d - P; i > d-2*P; i-- {
		v, ok := e.idx.BlankAbove(e.rows[i], e.rows[i+P])
		if !ok || v != e.rows[i+e.sched.Back[i%P]] {
			return true
		}
	}
	return false
}

// rowAt reads committed rows; rows before the start of the array are empty.
func (e *Engine) rowAt(i int) uint16 {
	if i < 0 {
		return 0
	}
	return e.rows[i]
}

// lookahead checks that the rows one, two and three forward steps ahead of
// depth a can still be completed given the row just placed.
func (e *Engine) lookahead(a int) bool {
	P := e.p.Period
	ph := e.phase
	fwd, dbl, tri := e.sched.Fwd[ph], e.sched.Double[ph], e.sched.Triple[ph]
	x := e.idx

	k11 := x.Key(e.rowAt(a-P-fwd), e.rowAt(a-fwd), e.rows[a])
	if x.Empty(k11) {
		return false
	}
	c11 := x.Candidates(k11)
	c12 := x.Candidates(x.Key(e.rowAt(a-P-dbl), e.rowAt(a-dbl), e.rowAt(a-fwd)))

	var single [1]uint16
	var c13 []uint16
	if tri >= P {
		single[0] = e.rows[a+P-tri]
		c13 = single[:]
	} else {
		c13 = x.Candidates(x.Key(e.rowAt(a-P-tri), e.rowAt(a-tri), e.rowAt(a-dbl)))
	}

	rDbl, rTri := e.rowAt(a-dbl), e.rowAt(a-tri)
	for _, row11 := range c11 {
		for _, row12 := range c12 {
			k22 := x.Key(rDbl, row12, row11)
			if x.Empty(k22) {
				continue
			}
			c22 := x.Candidates(k22)
			for _, row13 := range c13 {
				k23 := x.Key(rTri, row13, row12)
				if x.Empty(k23) {
					continue
				}
				c23 := x.Candidates(k23)
				for _, row22 := range c22 {
					for _, row23 := range c23 {
						if !x.Empty(x.Key(row13, row23, row22)) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}
