package models

// User is a customer account.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// Admin is a seeded administrator account.
type Admin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Guest is an entry on the event guest list.
type Guest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	RSVP  string `json:"rsvp"`
	Table string `json:"table"`
}

const (
	RSVPPending   = "Pending"
	RSVPConfirmed = "Confirmed"
)
