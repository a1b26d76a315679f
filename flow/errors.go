package flow

// These errors are build errors: they abort one compilation and are
// returned to the caller.  Nothing in this package panics on bad
// input.

// UnknownKind occurs when a Decision's Kind has no registered
// builder.
type UnknownKind struct {
	Id   string
	Kind string
}

func (e UnknownKind) Error() string {
	return `unsupported decision kind "` + e.Kind + `" for decision "` + e.Id + `"`
}

// NoInputs occurs when an expression-kind Decision declares no
// inputs, which would leave its expression without a key.
type NoInputs struct {
	Id string
}

func (e NoInputs) Error() string {
	return `expression decision "` + e.Id + `" has no inputs`
}

// BadFunction occurs when function checking is on and a
// function-kind Decision's source doesn't compile.
type BadFunction struct {
	Id  string
	Err error
}

func (e BadFunction) Error() string {
	return `function decision "` + e.Id + `" doesn't compile: ` + e.Err.Error()
}
