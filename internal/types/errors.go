package types

import "fmt"

type Error struct {
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	return fmt.Sprintf("%+v: %+v", err.Code, err.Context)
}

// Is matches errors by code, ignoring context, so callers may branch with
// errors.Is against the exported sentinels.
func (err Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == err.Code
}

func NewError(code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}

// These are the error codes callers are expected to branch on.

var (
	// ErrUnknownAttribute indicates an operation named an attribute that was
	// never registered.
	ErrUnknownAttribute = Error{Code: "registry.unknownAttribute"}
	// ErrUnknownType indicates a declaration named a value type that was
	// never registered.
	ErrUnknownType = Error{Code: "casting.unknownType"}
	// ErrCannotCoerce indicates a value outside its type's accepted domain.
	ErrCannotCoerce = Error{Code: "casting.cannotCoerce"}
	// ErrVirtualAttribute indicates an export of an attribute that has no
	// storage column.
	ErrVirtualAttribute = Error{Code: "records.virtualAttribute"}
)
