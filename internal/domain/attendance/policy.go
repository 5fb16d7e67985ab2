package attendance

import "time"

// Policy is the attendance policy handed down by the settings service:
// when the work day starts, how much lateness is tolerated, and what break
// is deducted from worked time.
type Policy struct {
	WorkdayStart string // "HH:MM"
	GraceMinutes int
	BreakMinutes int
	Timezone     string
}

// Location resolves the policy timezone, falling back to UTC.
func (p Policy) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScheduledStart returns the scheduled clock-in instant for the given work day.
func (p Policy) ScheduledStart(day time.Time) time.Time {
	start, err := time.Parse("15:04", p.WorkdayStart)
	if err != nil {
		start, _ = time.Parse("15:04", "09:00")
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		start.Hour(), start.Minute(), 0, 0, day.Location())
}

// StatusFor classifies a clock-in instant: late once the grace period after
// the scheduled start has passed, present otherwise.
func (p Policy) StatusFor(clockIn time.Time) Status {
	graceLimit := p.ScheduledStart(clockIn).Add(time.Duration(p.GraceMinutes) * time.Minute)
	if clockIn.After(graceLimit) {
		return StatusLate
	}
	return StatusPresent
}

// WorkMinutes computes the net worked minutes between in and out after
// deducting the configured break, floored at zero.
func (p Policy) WorkMinutes(in, out time.Time) int {
	mins := int(out.Sub(in).Minutes()) - p.BreakMinutes
	if mins < 0 {
		mins = 0
	}
	return mins
}
