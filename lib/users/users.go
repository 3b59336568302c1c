package users

import (
	"io"

	"github.com/flachnetz/slicemap/lib/jsonx"
	"github.com/flachnetz/slicemap/lib/slicex"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v9"
)

type Level string

const (
	LevelUser  Level = "user"
	LevelAdmin Level = "admin"
)

type User struct {
	ID    int    `json:"id" validate:"gte=0"`
	Name  string `json:"name,omitempty"`
	Level Level  `json:"level" validate:"required,oneof=user admin"`
}

// Promote returns a copy of the user with the admin level.
// The user passed in is not changed.
func Promote(user User) User {
	user.Level = LevelAdmin
	return user
}

// PromoteAll returns new users with the admin level, in the order of the input.
func PromoteAll(users []User) []User {
	return slicex.Map(users, Promote)
}

func IsAdmin(user User) bool {
	return user.Level == LevelAdmin
}

func Admins(users []User) []User {
	return slicex.Filter(users, IsAdmin)
}

var validate = validator.New()

func validateUser(user User) (User, error) {
	if err := validate.Struct(user); err != nil {
		return User{}, errors.WithMessagef(err, "user %d", user.ID)
	}

	return user, nil
}

// Decode reads a json list of users and validates every one of them.
// A failed validation is reported as *slicex.TransformError with the index of the user.
func Decode(reader io.Reader) ([]User, error) {
	users, err := jsonx.Read[[]User](reader)
	if err != nil {
		return nil, errors.WithMessage(err, "decode users")
	}

	return slicex.MapErr(users, validateUser)
}
