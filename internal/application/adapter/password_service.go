package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword returns a salted one-way hash of the password.
	// It returns domainerror.ErrPasswordTooLong if the hasher cannot accept the input.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}
