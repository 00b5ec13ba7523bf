package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword gera o hash bcrypt com salt aleatório; duas chamadas com
// a mesma senha produzem hashes diferentes.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword nunca propaga erro: hash malformado conta como senha
// errada (fail closed).
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
