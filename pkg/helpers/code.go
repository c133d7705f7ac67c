package helpers

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenVerificationCode generates a uniformly random 6-digit decimal code in
// the range 100000-999999. The range excludes leading zeros, so the code is
// always exactly six digits long.
func GenVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
