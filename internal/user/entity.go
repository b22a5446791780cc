// AngelaMos | 2026
// entity.go

package user

// User is a pre-existing account row. This service never creates or updates
// users; it only reads them at login.
type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}
