package style

// ErrCaseStyle reports an unknown casing-convention tag in a config file.
type ErrCaseStyle struct {
	Tag string
}

func (e *ErrCaseStyle) Error() string {
	return f("'%v' is not a case style", e.Tag)
}

// ErrConfigValue reports a config key bound to a value of the wrong type
// or out of range.
type ErrConfigValue struct {
	Key string
	Err error
}

func (e *ErrConfigValue) Error() string {
	return f("config key '%v': %v", e.Key, e.Err)
}

func (e *ErrConfigValue) Unwrap() error {
	return e.Err
}
