package utils

import "github.com/matthewhartstonge/argon2"

var argonConfig = argon2.DefaultConfig()

// HashPassword returns the encoded argon2id hash of password,
// including salt and parameters.
func HashPassword(password string) (string, error) {
	encoded, err := argonConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
