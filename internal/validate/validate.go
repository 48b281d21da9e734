package validate

// Validator bundles the checks and canonicalization for one field rule.
// Optional rules accept the empty string as "no value supplied".
type Validator struct {
	// Valid reports whether a raw value satisfies the rule.
	Valid func(string) bool

	// Normalize canonicalizes a raw value for comparison. Nil means identity.
	Normalize func(string) string

	// Format produces the storage form. Nil means store as entered.
	Format func(string) string

	// Optional marks rules where the empty string bypasses validation.
	Optional bool

	// Reason is the user-facing rejection message.
	Reason string
}

// Accepts applies the optional-empty rule before the shape check.
func (v Validator) Accepts(value string) bool {
	if value == "" {
		return v.Optional
	}
	return v.Valid(value)
}

// Canonical returns the form of value that should be stored.
func (v Validator) Canonical(value string) string {
	if value == "" || v.Format == nil {
		return value
	}
	return v.Format(value)
}

// RUT validates the checksum-based national ID. Mandatory: an empty value
// is rejected because the ID column is the business key.
func RUT() Validator {
	return Validator{
		Valid:     ValidRUT,
		Normalize: NormalizeRUT,
		Format:    FormatRUT,
		Reason:    "invalid RUT (check digit mismatch or wrong shape)",
	}
}

// Email validates the address shape. Optional.
func Email() Validator {
	return Validator{
		Valid:    ValidEmail,
		Optional: true,
		Reason:   "invalid email address",
	}
}

// Phone validates the digit count after separator stripping. Optional.
func Phone() Validator {
	return Validator{
		Valid:    ValidPhone,
		Optional: true,
		Reason:   "invalid phone number (7-15 digits)",
	}
}
