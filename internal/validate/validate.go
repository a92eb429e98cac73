// Package validate holds the stateless form predicates used before login,
// sign-up, checkout and seller onboarding. All failures are field-scoped
// and recoverable; nothing here is a security boundary.
package validate

import (
	"regexp"
	"strings"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

var (
	// Sign-up and sign-in are restricted to one provider by product choice.
	emailRe    = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	digitsOnly = regexp.MustCompile(`\D`)

	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*]`)
)

// FieldErrors maps a form field to its inline error message. An empty map
// means the form passed.
type FieldErrors map[string]string

func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// Email reports whether the address is a well-formed gmail.com address.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Password requires at least 8 characters with one uppercase letter, one
// lowercase letter, one digit and one of !@#$%^&*.
func Password(password string) bool {
	return len(password) >= 8 &&
		upperRe.MatchString(password) &&
		lowerRe.MatchString(password) &&
		digitRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// PasswordHints lists what is still missing from a candidate password, in
// the order the sign-in form displays them.
func PasswordHints(password string) []string {
	var hints []string
	if !upperRe.MatchString(password) {
		hints = append(hints, "Add uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		hints = append(hints, "Add lowercase letter")
	}
	if !specialRe.MatchString(password) {
		hints = append(hints, "Add special character (!@#$%^&*)")
	}
	if !digitRe.MatchString(password) {
		hints = append(hints, "Add number")
	}
	if len(password) < 8 {
		hints = append(hints, "At least 8 characters")
	}
	return hints
}

// Name accepts letters and spaces only, non-empty after trimming.
func Name(name string) bool {
	return strings.TrimSpace(name) != "" && nameRe.MatchString(name)
}

// Phone requires exactly 10 digits once separators are stripped.
func Phone(phone string) bool {
	return len(digitsOnly.ReplaceAllString(phone, "")) == 10
}

func SignIn(req domain.SignInRequest) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !Email(req.Email) {
		errs["email"] = "Email must end with @gmail.com"
	}

	if strings.TrimSpace(req.Password) == "" {
		errs["password"] = "Password is required"
	} else if !Password(req.Password) {
		errs["password"] = "Password must contain: uppercase letter, lowercase letter, special character, number, and be at least 8 characters"
	}

	return errs
}

func SignUp(req domain.SignUpRequest) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	} else if !Name(req.Name) {
		errs["name"] = "Name must contain only letters and spaces"
	}

	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !Email(req.Email) {
		errs["email"] = "Email must end with @gmail.com"
	}

	if strings.TrimSpace(req.Password) == "" {
		errs["password"] = "Password is required"
	} else if !Password(req.Password) {
		errs["password"] = "Password must contain: uppercase letter, lowercase letter, special character, number, and be at least 8 characters"
	}

	if req.RetypePassword != req.Password {
		errs["retype_password"] = "Passwords do not match"
	}

	return errs
}

func Delivery(d domain.DeliveryDetails) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !Phone(d.Phone) {
		errs["phone"] = "Phone number must be exactly 10 digits"
	}
	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(d.PostalCode) == "" {
		errs["postal_code"] = "Postal code is required"
	}

	return errs
}

// SellerDetails validates the first onboarding step. Unlike sign-up, the
// seller form accepts any plausible email domain.
func SellerDetails(app domain.SellerApplication) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(app.BusinessName) == "" {
		errs["business_name"] = "Business name is required"
	}
	if strings.TrimSpace(app.OwnerName) == "" {
		errs["owner_name"] = "Owner name is required"
	}
	if strings.TrimSpace(app.Email) == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(app.Email, "@") || strings.ContainsAny(app.Email, " \t") {
		errs["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(app.PhoneNumber) == "" {
		errs["phone_number"] = "Phone number is required"
	} else if !Phone(app.PhoneNumber) {
		errs["phone_number"] = "Phone number must be 10 digits"
	}
	if strings.TrimSpace(app.Location) == "" {
		errs["location"] = "Location is required"
	}
	if app.BusinessType == "" {
		errs["business_type"] = "Please select a business type"
	}

	return errs
}

// SellerItems validates the second onboarding step.
func SellerItems(app domain.SellerApplication) FieldErrors {
	errs := FieldErrors{}
	if len(app.FoodItems) == 0 {
		errs["items"] = "Please add at least one food item"
	}
	return errs
}
