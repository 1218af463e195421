// Command demo prints one example verdict from each check.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"deedcheck/internal/validator/deed"
)

func main() {
	if err := render(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// yesNo renders a verdict flag as True or False.
func yesNo(b bool) string {
	return cases.Title(language.English).String(strconv.FormatBool(b))
}

func render(w io.Writer) error {
	posthumous, err := deed.DetectPosthumousSignature("Goradhanbhai Suthar", "2016-03-15", "2025-01-10", deed.DefaultGracePeriodDays)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Dead Man Alive Fraud Detection ===")
	fmt.Fprintf(w, "Signatory: %s\n", posthumous.Signatory)
	fmt.Fprintf(w, "Fraudulent: %s\n", yesNo(posthumous.IsFraudulent))
	fmt.Fprintf(w, "Days After Death: %d\n", posthumous.DaysAfterDeath)
	fmt.Fprintf(w, "Legal Risk: %s\n", posthumous.LegalRisk)
	fmt.Fprintf(w, "Statute: %s\n", posthumous.Statute)
	fmt.Fprintf(w, "Recommendation: %s\n", posthumous.Recommendation)
	fmt.Fprintln(w)

	registration, err := deed.ValidateSection17Compliance("Relinquishment Deed", 750000, nil, true)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Section 17 Compliance Check ===")
	fmt.Fprintf(w, "Legal Status: %s\n", registration.LegalStatus)
	fmt.Fprintf(w, "Compliant: %s\n", yesNo(registration.Compliant))
	fmt.Fprintf(w, "Statute: %s\n", registration.Section)
	_, err = fmt.Fprintf(w, "Explanation: %s\n", registration.Explanation)
	return err
}
