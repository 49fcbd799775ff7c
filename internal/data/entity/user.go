package entity

type User struct {
	Base
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	Image        *string `db:"image"`
	IsAdmin      bool    `db:"is_admin"`
	IsReviewer   bool    `db:"is_reviewer"`
	IsBanned     bool    `db:"is_banned"`
}
