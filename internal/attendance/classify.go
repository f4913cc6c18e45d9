// Package attendance holds the computation engine: pure functions that turn
// raw check-in/check-out timestamps into derived state (status, duration,
// lateness, absence). Nothing here touches the database or the clock; the
// caller passes records, "now" and the reference location in.
package attendance

import (
	"math"
	"strconv"
	"time"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// Stored statuses.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
)

// Display-only refinement of a completed late session.
const StatusHalfDay = "Half-day"

// Roster states for the per-day team view.
const (
	RosterAbsent     = "Absent"
	RosterCheckedIn  = "Checked-in"
	RosterCheckedOut = "Checked-out"
)

// LateCutoffHour is the local hour-of-day at or after which a check-in
// counts as late. 09:00:00 exactly is late.
const LateCutoffHour = 9

// HalfDayMaxHours is the completed-session duration below which a late
// arrival renders as a half day.
const HalfDayMaxHours = 4.0

// IsLate reports whether a check-in at t is late in the given location.
func IsLate(t time.Time, loc *time.Location) bool {
	return t.In(loc).Hour() >= LateCutoffHour
}

// Classify returns the status stored on a record at check-in time.
func Classify(checkIn time.Time, loc *time.Location) string {
	if IsLate(checkIn, loc) {
		return StatusLate
	}
	return StatusPresent
}

// DisplayStatus returns the status a record renders with. A late check-in
// whose completed session ran under HalfDayMaxHours becomes Half-day; this
// is the only place the rule lives, every view goes through here.
func DisplayStatus(rec *domain.Attendance, loc *time.Location) string {
	if !IsLate(rec.CheckInTime, loc) {
		return StatusPresent
	}
	if rec.CheckOutTime != nil && rec.TotalHours != nil && *rec.TotalHours < HalfDayMaxHours {
		return StatusHalfDay
	}
	return StatusLate
}

// Hours converts a check-in/check-out pair to worked hours, rounded to two
// decimals.
func Hours(checkIn, checkOut time.Time) float64 {
	return Round2(checkOut.Sub(checkIn).Hours())
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHours renders an optional hours value with fixed two-decimal
// precision; nil renders as "0.00".
func FormatHours(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
