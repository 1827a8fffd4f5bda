package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// User is an account that can hold an authenticated session. Write
// access to the gallery additionally requires staff or superuser.
type User struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	PasswordHash []byte    `bson:"password_hash"`
	IsStaff      bool      `bson:"is_staff"`
	IsSuperuser  bool      `bson:"is_superuser"`
	CreatedAt    time.Time `bson:"created_at"`
}

// IsAdmin reports whether the user carries elevated privilege.
func (u *User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	return nil
}

// CheckPassword verifies password against the stored hash. bcrypt's
// comparison is timing-safe.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}
