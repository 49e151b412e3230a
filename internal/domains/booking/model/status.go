package model

// Status tracks a booking through its lifecycle. Any valid status may be written over
// any other; operators routinely correct bookings out of band, so there is no
// transition table to fight them.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether next is a nominal forward step from s. It documents
// the expected lifecycle; status updates deliberately do not enforce it, since
// operators overwrite statuses out of band.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAssigned || next == StatusCancelled
	case StatusAssigned:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted:
		return next == StatusRefunded
	default:
		return false
	}
}

// Terminal reports whether the booking has left the active pipeline.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusAssigned,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusRefunded,
	}
}
