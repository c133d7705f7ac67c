package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password is stored as a bcrypt hash, never the plaintext.
//
// VerificationCode and VerificationCodeExpiresAt are set only while an email
// verification is pending; a verified user has both cleared.
type User struct {
	ID                        string
	Email                     string
	Username                  string
	PasswordHash              string
	IsVerified                bool
	VerificationCode          *string
	VerificationCodeExpiresAt *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// SetVerificationCode records a freshly issued code and its expiry.
func (u *User) SetVerificationCode(code string, expiresAt time.Time) {
	u.VerificationCode = &code
	u.VerificationCodeExpiresAt = &expiresAt
}

// MarkVerified flips the verified flag and clears any pending code.
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.VerificationCode = nil
	u.VerificationCodeExpiresAt = nil
}
