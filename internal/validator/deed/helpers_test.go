package deed_test

import (
	"deedcheck/internal/validator/deed"
)

// forgedRelinquishment returns a deed that fails every fraud rule: an unregistered,
// notarized relinquishment signed years after the signatory died.
func forgedRelinquishment() *deed.Record {
	return &deed.Record{
		DocumentType:  "Relinquishment Deed",
		DocumentDate:  "2025-01-10",
		PropertyValue: 750000,
		IsNotarized:   true,
		Signatories: []deed.Signatory{
			{Name: "Goradhanbhai Suthar", DeathDate: "2016-03-15"},
		},
	}
}

// registeredSale returns a deed that passes every builtin rule.
func registeredSale() *deed.Record {
	reg := "REG123"
	return &deed.Record{
		DocumentType:       "Sale Deed",
		DocumentDate:       "2020-06-01",
		PropertyValue:      500000,
		RegistrationNumber: &reg,
		Signatories: []deed.Signatory{
			{Name: "Living Seller"},
			{Name: "Late Seller", DeathDate: "2020-05-30"},
		},
	}
}

func findValidator(key string) *deed.BuiltinValidator {
	for _, v := range deed.AllBuiltinValidators() {
		if v.RuleKey() == key {
			return v
		}
	}
	return nil
}
