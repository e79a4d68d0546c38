package consoleurl

import "errors"

// Error definitions. Every error returned by this package wraps one of these,
// so callers can branch with errors.Is.
var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrUnsupportedPageType = errors.New("unsupported page type")
	ErrUnrecognizedFormat  = errors.New("unrecognized url format")
	ErrNoChangeRequested   = errors.New("no cluster or namespace selected, staying on the current page")
	ErrNotConsolePage      = errors.New("kubectl is only available from a console page")
)
