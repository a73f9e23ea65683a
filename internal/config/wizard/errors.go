package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errInterfaceRequired = errors.New("interface name is required")
	errPathRequired      = errors.New("path is required")
	errPathNotAbsolute   = errors.New("path must be absolute")
)
