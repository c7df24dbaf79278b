package planner

import (
	"database/sql"
	"errors"

	"travel-planner/internal/auth"
	"travel-planner/internal/models"
	"travel-planner/internal/storage"
)

// Register creates a new account. Registering an existing username is a
// silent no-op: the stored credentials are left untouched and no error is
// returned.
func Register(db *storage.DB, username, password, securityAnswer string) error {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	answerHash, err := auth.HashPassword(securityAnswer)
	if err != nil {
		return err
	}
	return db.RegisterUser(username, passwordHash, answerHash)
}

// Authenticate verifies a username/password pair. A missing user or a
// mismatched password both report ok=false; neither is an error.
func Authenticate(db *storage.DB, username, password string) (*models.User, bool, error) {
	user, err := db.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, false, nil
	}
	return user, true, nil
}

// ResetPassword rotates the password for a user who can answer their
// security question. It reports ok=false when the user is unknown or the
// answer does not match; the stored password is never disclosed.
func ResetPassword(db *storage.DB, username, securityAnswer, newPassword string) (bool, error) {
	user, err := db.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if !auth.CheckPassword(securityAnswer, user.SecurityAnswerHash) {
		return false, nil
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return false, err
	}
	if err := db.UpdatePassword(username, newHash); err != nil {
		return false, err
	}
	return true, nil
}
