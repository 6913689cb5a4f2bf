package domain

// User roles as issued by the auth backend.
const (
	RoleCustomer = "CUSTOMER"
	RoleSeller   = "SELLER"
	RoleAdmin    = "ADMIN"
)

// Session is the signed-in user's auth state. The zero value means
// signed out.
type Session struct {
	Token string
	Name  string
	Email string
	Role  string
}

func (s Session) SignedIn() bool {
	return s.Token != ""
}
