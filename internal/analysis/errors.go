package analysis

// Code identifies a fatal pipeline failure.
type Code string

const (
	CodeMissingInput         Code = "MISSING_INPUT"
	CodeDescriptionNotFound  Code = "DESCRIPTION_NOT_FOUND"
	CodeTickerNotFound       Code = "TICKER_NOT_FOUND"
	CodePriceDataUnavailable Code = "PRICE_DATA_UNAVAILABLE"
)

// Error is a coded, user-presentable pipeline failure. Competitor
// extraction and per-candidate resolution failures are absorbed inside
// the pipeline and never surface as an Error.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrMissingInput         = &Error{CodeMissingInput, "No company name provided."}
	ErrDescriptionNotFound  = &Error{CodeDescriptionNotFound, "Could not find company description."}
	ErrTickerNotFound       = &Error{CodeTickerNotFound, "Could not find ticker symbol."}
	ErrPriceDataUnavailable = &Error{CodePriceDataUnavailable, "Could not fetch stock prices."}
)
