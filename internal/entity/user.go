package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type User struct {
	Id             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	PasswordDigest string    `db:"password_digest"`
	Role           string    `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// service + repo input model
type CreateUserInput struct {
	Email          string
	PasswordDigest string
	Role           string
}

// Identity is what a verified bearer token says about its holder.
type Identity struct {
	Id    uuid.UUID
	Email string
	Role  string
}

// controller model
type UserOutputModel struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthOutputModel struct {
	User  UserOutputModel `json:"user"`
	Token string          `json:"token"`
}

type CurrentUserOutputModel struct {
	User    UserOutputModel     `json:"user"`
	Company *CompanyOutputModel `json:"company"`
}
