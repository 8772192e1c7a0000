package bigint

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
//
// Normalized values have no superfluous high limbs, so a longer limb sequence
// is always the larger value.
func (x *Int) Cmp(y *Int) int {
	lx, ly := x.Len(), y.Len()
	switch {
	case lx < ly:
		return -1
	case lx > ly:
		return 1
	}
	for i := lx - 1; i >= 0; i-- {
		a, b := x.limb(i), y.limb(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Eq reports whether x == y.
func (x *Int) Eq(y *Int) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y.
func (x *Int) Lt(y *Int) bool { return x.Cmp(y) < 0 }

// Le reports whether x <= y.
func (x *Int) Le(y *Int) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x *Int) Gt(y *Int) bool { return x.Cmp(y) > 0 }

// Ge reports whether x >= y.
func (x *Int) Ge(y *Int) bool { return x.Cmp(y) >= 0 }
