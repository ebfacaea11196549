// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is the three-digit item category code stored in band files.
// The value determines how the decrypted details must be interpreted.
type Category string

const (
	// Login represents website credentials.
	Login Category = "001"
	// CreditCard represents payment card information.
	CreditCard Category = "002"
	// SecureNote represents free-form secret text.
	SecureNote Category = "003"
	// Identity represents personal identity details.
	Identity Category = "004"
	// Password represents a standalone password without a username.
	Password Category = "005"
	// Tombstone marks a deleted item kept for sync bookkeeping.
	Tombstone Category = "099"

	SoftwareLicense Category = "100"
	BankAccount     Category = "101"
	Database        Category = "102"
	DriverLicense   Category = "103"
	OutdoorLicense  Category = "104"
	Membership      Category = "105"
	Passport        Category = "106"
	Rewards         Category = "107"
	SSN             Category = "108"
	Router          Category = "109"
	Server          Category = "110"
	Email           Category = "111"
)

var categoryNames = map[Category]string{
	Login:           "Login",
	CreditCard:      "Credit Card",
	SecureNote:      "Secure Note",
	Identity:        "Identity",
	Password:        "Password",
	Tombstone:       "Tombstone",
	SoftwareLicense: "Software License",
	BankAccount:     "Bank Account",
	Database:        "Database",
	DriverLicense:   "Driver License",
	OutdoorLicense:  "Outdoor License",
	Membership:      "Membership",
	Passport:        "Passport",
	Rewards:         "Reward Program",
	SSN:             "Social Security Number",
	Router:          "Wireless Router",
	Server:          "Server",
	Email:           "Email Account",
}

// String returns the human-readable category name, or the raw code when it
// is not known.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
