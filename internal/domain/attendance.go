package domain

import "time"

// Attendance is one user's record for one calendar date. Date carries the
// canonical YYYY-MM-DD form in the service's reference location; the
// (user_id, date) pair is unique at the database level so concurrent
// check-ins cannot create duplicates.
type Attendance struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	UserID       string     `gorm:"size:36;not null;uniqueIndex:idx_attendance_user_date" json:"userId"`
	Date         string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckInTime  time.Time  `gorm:"not null" json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	Status       string     `gorm:"size:16;not null" json:"status"`
	TotalHours   *float64   `json:"totalHours"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Attendance) TableName() string { return "attendances" }

// AttendanceWithUser is the joined row shape used by manager views and the
// export; the user part is a trimmed projection, never the full entity.
type AttendanceWithUser struct {
	Attendance
	UserName       string  `json:"userName"`
	UserEmail      string  `json:"userEmail"`
	UserEmployeeID *string `json:"userEmployeeId"`
	UserDepartment string  `json:"userDepartment"`
}

type AttendanceRepository interface {
	Create(a *Attendance) error
	FindByUserAndDate(userID, date string) (*Attendance, error)
	// CloseOut sets check-out time, total hours and status on the user's
	// open record for date. It must be atomic: the update is guarded by
	// check_out_time IS NULL and reports ErrNoActiveSession when no open
	// record matched.
	CloseOut(userID, date string, checkOut time.Time, totalHours float64, status string) (*Attendance, error)
	// FindOpen returns the user's most recent record without a check-out,
	// any date, or nil.
	FindOpen(userID string) (*Attendance, error)
	ListByUser(userID string) ([]Attendance, error)
	ListByUserBetween(userID, from, to string) ([]Attendance, error)
	ListByDate(date string) ([]Attendance, error)
	// ListWithUsers returns employee-joined rows ordered by date desc;
	// limit <= 0 means no limit, from == "" means no lower bound.
	ListWithUsers(from string, limit int) ([]AttendanceWithUser, error)
	ListByUserWithUser(userID string) ([]AttendanceWithUser, error)
	DeleteAll() error
}
