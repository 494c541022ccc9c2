package domain

import "time"

type EmployeeID int
type ProjectID int

// WorkPeriod is one continuous assignment of an employee to a project.
// Start and End are both inclusive calendar days.
type WorkPeriod struct {
	EmployeeID EmployeeID
	ProjectID  ProjectID
	Start      time.Time
	End        time.Time
}

// OverlapDays returns the number of calendar days both periods hold,
// counting both boundary days. Disjoint periods yield 0.
func OverlapDays(p, q WorkPeriod) int {
	start := maxDay(civilDay(p.Start), civilDay(q.Start))
	end := minDay(civilDay(p.End), civilDay(q.End))

	if start > end {
		return 0
	}

	return int(end-start) + 1
}

// civilDay maps a timestamp to a day number using its calendar date in its
// own location, so a time of day never shifts the count.
func civilDay(t time.Time) int64 {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

func maxDay(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minDay(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
