package models

// Ticket is a derived record of a successful booking. It never gates
// seat availability; the train's seat matrix is the single source of
// truth for occupancy.
type Ticket struct {
	ID            string `json:"ticketId"`
	UserID        string `json:"userId"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DateOfJourney string `json:"dateOfJourney"`
	TrainID       string `json:"trainId"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
}

// User holds the stored account record. The password never leaves the
// store as anything but a bcrypt hash.
type User struct {
	ID           string `json:"userId"`
	Username     string `json:"userName"`
	PasswordHash string `json:"passwordHash"`
}
