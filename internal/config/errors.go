package config

import "errors"

// ErrNoValidConfiguration indicates the persisted configuration is absent
// or malformed. Modes that require pre-existing state treat this as fatal
// with a remediation message; clean treats it as "nothing recorded".
var ErrNoValidConfiguration = errors.New("no valid configuration")
