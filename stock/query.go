package stock

import "time"

// MissingParamError is returned before any store access when a required
// query parameter is absent.
type MissingParamError struct {
	Message string
}

func (e *MissingParamError) Error() string {
	return e.Message
}

func missingParam(msg string) error {
	return &MissingParamError{Message: msg}
}

// requireDateRange reports the first absent date bound.
func requireDateRange(p QueryParams) error {
	switch {
	case p.StartDate == "" && p.EndDate == "":
		return missingParam("Both start_date and end_date are required")
	case p.StartDate == "":
		return missingParam("start_date is required")
	case p.EndDate == "":
		return missingParam("end_date is required")
	}
	return nil
}

func requireSymbolAndDateRange(p QueryParams) error {
	switch {
	case p.Symbol == "" && p.StartDate == "" && p.EndDate == "":
		return missingParam("Symbol, start_date, and end_date are required")
	case p.Symbol == "":
		return missingParam("Symbol is required")
	}
	return requireDateRange(p)
}

// toFilter parses the date bounds. An unparseable bound is left unset rather
// than rejected.
func toFilter(p QueryParams) Filter {
	f := Filter{Symbol: p.Symbol}
	if start, ok := ParseDate(p.StartDate); ok {
		f.Start = &start
	}
	if end, ok := ParseDate(p.EndDate); ok {
		f.End = &end
	}
	return f
}

func cacheKey(op string, f Filter) string {
	return op + ":" + formatBound(f.Start) + ":" + formatBound(f.End) + ":" + f.Symbol
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
