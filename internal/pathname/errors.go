package pathname

import "github.com/pkg/errors"

// ErrNullArgument is returned when a required input is absent.
var ErrNullArgument = errors.New("pathname: required argument is absent")

// Reasons carried by InvalidArgumentError. Each URI precondition has its own.
const (
	ReasonURINotAbsolute    = "URI is not absolute"
	ReasonURIOpaque         = "URI is not hierarchical"
	ReasonURINotFileScheme  = `URI scheme is not "file"`
	ReasonURIHasAuthority   = "URI has an authority component"
	ReasonURIHasFragment    = "URI has a fragment component"
	ReasonURIHasQuery       = "URI has a query component"
	ReasonURIEmptyPath      = "URI path component is empty"
	ReasonURIMalformed      = "URI is malformed"
	ReasonChildAbsent       = "child is absent"
	ReasonChildNotRelative  = "child name must be relative"
	ReasonParentPathIsEmpty = "parent path is empty"
)

// InvalidArgumentError reports a caller input that has the wrong shape.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "pathname: invalid argument: " + e.Reason
}

func invalidArgument(reason string) error {
	return &InvalidArgumentError{Reason: reason}
}
