package domain

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCountryCode is prepended to local 8-digit Haitian numbers.
const DefaultCountryCode = "509"

// User represents a platform account. Creators are users flagged eligible to
// receive donations.
type User struct {
	ID        int64
	Username  string
	Telephone string
	Prenom    string
	Nom       string
	IsCreator bool
	Active    bool
	CreatedAt time.Time
}

var (
	usernameStrip = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	phoneStrip    = regexp.MustCompile(`[^0-9]`)

	nameCaser = cases.Title(language.French)
)

// NormalizeUsername lowercases the handle and drops every character outside
// [a-zA-Z0-9_].
func NormalizeUsername(raw string) string {
	return strings.ToLower(usernameStrip.ReplaceAllString(raw, ""))
}

// NormalizePhone strips non-digits and prefixes local 8-digit numbers with the
// given country code.
func NormalizePhone(raw, countryCode string) string {
	digits := phoneStrip.ReplaceAllString(raw, "")
	if len(digits) == 8 {
		return countryCode + digits
	}
	return digits
}

// DisplayName returns the public name shown on a profile page: the handle when
// one exists, otherwise the title-cased legal name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	full := strings.TrimSpace(u.Prenom + " " + u.Nom)
	if full == "" {
		return "Utilisateur"
	}
	return nameCaser.String(full)
}
