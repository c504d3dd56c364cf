package entity

// Activity is a recorded workout session. Records are immutable once
// inserted; calories are derived at read time and never stored.
//
// UserID references User.ID advisorily, there is no foreign key.
type Activity struct {
	ID       string
	Type     string
	Weight   float64
	Distance float64
	Time     float64
	UserID   string
}
