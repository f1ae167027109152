package model

// AddressType distinguishes shipping from billing addresses.
type AddressType string

const (
	AddressTypeShipping AddressType = "SHIPPING"
	AddressTypeBilling  AddressType = "BILLING"
)

// ValidAddressType reports whether t is a known address type.
func ValidAddressType(t AddressType) bool {
	return t == AddressTypeShipping || t == AddressTypeBilling
}

// Address belongs to a user. At most one address per (user, type) carries
// IsDefault; saving a new default clears the previous one atomically.
type Address struct {
	ID        int64
	UserID    int64
	Street    string
	Apartment string
	ZipCode   string
	City      string
	Country   string
	Type      AddressType
	IsDefault bool
}
