package address

import (
	"fmt"
	"regexp"
	"strings"
)

// Address is the single delivery address for a session. It is either absent
// or fully populated; partial addresses are never persisted.
type Address struct {
	FullName        string `json:"full_name"`
	PrimaryMobile   string `json:"primary_mobile"`
	AlternateMobile string `json:"alternate_mobile"`
	HouseNo         string `json:"house_no"`
	Village         string `json:"village"`
	Street          string `json:"street"`
	LandMark        string `json:"land_mark"`
}

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// Validate returns field-level error messages. An empty map means the
// address is fully populated and both mobiles look like Indian numbers.
func Validate(a Address) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(a.FullName) == "" {
		errs["full_name"] = "Name is required"
	}

	primary := strings.TrimSpace(a.PrimaryMobile)
	if primary == "" {
		errs["primary_mobile"] = "Primary mobile is required"
	} else if !mobilePattern.MatchString(primary) {
		errs["primary_mobile"] = "Enter valid 10-digit mobile number"
	}

	alternate := strings.TrimSpace(a.AlternateMobile)
	if alternate == "" {
		errs["alternate_mobile"] = "Alternate mobile is required"
	} else if !mobilePattern.MatchString(alternate) {
		errs["alternate_mobile"] = "Enter valid 10-digit mobile number"
	}

	if strings.TrimSpace(a.HouseNo) == "" {
		errs["house_no"] = "House No. is required"
	}
	if strings.TrimSpace(a.Village) == "" {
		errs["village"] = "Village is required"
	}
	if strings.TrimSpace(a.Street) == "" {
		errs["street"] = "Street is required"
	}
	if strings.TrimSpace(a.LandMark) == "" {
		errs["land_mark"] = "Land Mark is required"
	}

	return errs
}

// FullLine renders the address as the single line used in order messages,
// e.g. "1-2-3, Main Road, Morthad, Near Temple, Pin: 503225".
func FullLine(a Address, pinCode string) string {
	return fmt.Sprintf("%s, %s, %s, Near %s, Pin: %s", a.HouseNo, a.Street, a.Village, a.LandMark, pinCode)
}

// Trimmed returns a copy with all fields whitespace-trimmed.
func Trimmed(a Address) Address {
	return Address{
		FullName:        strings.TrimSpace(a.FullName),
		PrimaryMobile:   strings.TrimSpace(a.PrimaryMobile),
		AlternateMobile: strings.TrimSpace(a.AlternateMobile),
		HouseNo:         strings.TrimSpace(a.HouseNo),
		Village:         strings.TrimSpace(a.Village),
		Street:          strings.TrimSpace(a.Street),
		LandMark:        strings.TrimSpace(a.LandMark),
	}
}
