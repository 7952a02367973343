package validators

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsEmailValid(email string) bool {
	return emailRe.MatchString(email)
}

var phoneRe = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

// IsPhoneValid accepts international numbers with common separators.
func IsPhoneValid(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRe.MatchString(cleaned)
}
