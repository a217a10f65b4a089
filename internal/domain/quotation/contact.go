package quotation

import (
	"regexp"
	"strings"

	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/patch"
)

const maxContactField = 255

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)
)

// Contact is the client's identity on a quotation.
type Contact struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	companyName *string
}

func NewContact(firstName, lastName, email, phone string, companyName *string) (Contact, error) {
	c := Contact{
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
		email:       strings.ToLower(strings.TrimSpace(email)),
		phone:       strings.TrimSpace(phone),
		companyName: patch.OptionalText(companyName),
	}

	switch {
	case c.firstName == "":
		return Contact{}, errs.WithField("first_name", ErrFirstNameRequired)
	case len(c.firstName) > maxContactField:
		return Contact{}, errs.WithField("first_name", ErrFieldTooLong)
	case c.lastName == "":
		return Contact{}, errs.WithField("last_name", ErrLastNameRequired)
	case len(c.lastName) > maxContactField:
		return Contact{}, errs.WithField("last_name", ErrFieldTooLong)
	case !emailRegex.MatchString(c.email):
		return Contact{}, errs.WithField("email", ErrInvalidEmail)
	case !phoneRegex.MatchString(c.phone) || countDigits(c.phone) < 7:
		return Contact{}, errs.WithField("phone_number", ErrInvalidPhone)
	case c.companyName != nil && len(*c.companyName) > maxContactField:
		return Contact{}, errs.WithField("company_name", ErrFieldTooLong)
	}
	return c, nil
}

func ReconstructContact(firstName, lastName, email, phone string, companyName *string) Contact {
	return Contact{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phone:       phone,
		companyName: companyName,
	}
}

func (c Contact) FirstName() string    { return c.firstName }
func (c Contact) LastName() string     { return c.lastName }
func (c Contact) Email() string        { return c.email }
func (c Contact) Phone() string        { return c.phone }
func (c Contact) CompanyName() *string { return c.companyName }

func (c Contact) FullName() string {
	return c.firstName + " " + c.lastName
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
