package entity

type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleOrganizer UserRole = "Organizer"
	RoleUser      UserRole = "User"
)

// ValidRole reports whether the role is one of the known values
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleAdmin, RoleOrganizer, RoleUser:
		return true
	}
	return false
}

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        string   `db:"phone"`
	Role         UserRole `db:"role"`
	// Activity false means the account was disabled by an admin
	Activity bool `db:"activity"`
}
