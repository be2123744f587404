package stock

const (
	ReasonMissingOrNull     = "missing-or-null"
	ReasonInvalidDateFormat = "invalid-date-format"
	ReasonNonNumeric        = "non-numeric"
)

type ColumnError struct {
	Column string `json:"column"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type ValidationResult struct {
	IsValid bool          `json:"isValid"`
	Errors  []ColumnError `json:"errors"`
}

// ValidateRow checks the date and every numeric column of a normalized row.
// All failing columns are reported, Date first and then NumericColumns order.
func ValidateRow(row map[string]string) ValidationResult {
	errs := []ColumnError{}

	date, ok := row[string(ColumnDate)]
	switch {
	case !ok || date == "":
		errs = append(errs, ColumnError{Column: ColumnDate.String(), Value: date, Reason: ReasonMissingOrNull})
	default:
		if _, valid := ParseDate(date); !valid {
			errs = append(errs, ColumnError{Column: ColumnDate.String(), Value: date, Reason: ReasonInvalidDateFormat})
		}
	}

	for _, col := range NumericColumns {
		value, ok := row[string(col)]
		if !ok || value == "" {
			errs = append(errs, ColumnError{Column: col.String(), Value: value, Reason: ReasonMissingOrNull})
			continue
		}
		if _, err := parseNumber(value); err != nil {
			errs = append(errs, ColumnError{Column: col.String(), Value: value, Reason: ReasonNonNumeric})
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
