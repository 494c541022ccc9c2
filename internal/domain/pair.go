package domain

// PairKey identifies two distinct employees regardless of order.
// Build it with NewPairKey so First is always the smaller id.
type PairKey struct {
	First  EmployeeID
	Second EmployeeID
}

func NewPairKey(a, b EmployeeID) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{First: a, Second: b}
}

// Less orders keys by First, then Second.
func (k PairKey) Less(other PairKey) bool {
	if k.First != other.First {
		return k.First < other.First
	}
	return k.Second < other.Second
}

// PairTotals holds the accumulated days worked together per employee pair.
type PairTotals map[PairKey]int

func (t PairTotals) Add(key PairKey, days int) {
	t[key] += days
}

type ResultPair struct {
	Employee1ID             EmployeeID `json:"employee1_id"`
	Employee2ID             EmployeeID `json:"employee2_id"`
	TotalDaysWorkedTogether int        `json:"total_days_worked_together"`
}

func (r ResultPair) Key() PairKey {
	return NewPairKey(r.Employee1ID, r.Employee2ID)
}

// ProjectOverlap is one project's share of a pair's total.
type ProjectOverlap struct {
	Pair      PairKey   `json:"-"`
	ProjectID ProjectID `json:"project_id"`
	Days      int       `json:"days"`
}
