package directory

import "time"

// User is a registered member of the library. Username is the unique key
// within the Directory.
type User struct {
	Username    string
	Firstname   string
	Surname     string
	HouseNumber int
	StreetName  string
	Postcode    string
	Email       string
	DateOfBirth time.Time
}
