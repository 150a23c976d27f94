package skills

import "regexp"

// NotFound is the sentinel value for a contact field with no match.
const NotFound = "Not found"

var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Contact holds the contact details found in a resume.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ExtractContact finds the first email address and phone number in raw resume
// text. It must run on the original text: normalization strips the punctuation
// these patterns depend on. Fields with no match carry the NotFound sentinel.
func ExtractContact(raw string) Contact {
	contact := Contact{Email: NotFound, Phone: NotFound}

	if m := emailPattern.FindString(raw); m != "" {
		contact.Email = m
	}
	if m := phonePattern.FindString(raw); m != "" {
		contact.Phone = m
	}

	return contact
}
