package models

// User is not exposed over HTTP; the password field holds a bcrypt hash.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u InsertUser) Validate() error {
	if err := required("username", u.Username); err != nil {
		return err
	}
	return required("password", u.Password)
}
