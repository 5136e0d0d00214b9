package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

/* ====================== Password ====================== */

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

/* ====================== Input validation ====================== */

func ValidateRegisterInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Nama wajib diisi")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("Email wajib diisi")
	}
	if !strings.Contains(email, "@") {
		return errors.New("Format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("Password minimal 8 karakter")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Email dan password wajib diisi")
	}
	return nil
}
