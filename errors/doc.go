/*
Package errors implements the registered error codes of the swap core.

Every failure returned by a handler wraps one of the root errors declared
here. A root error carries a unique code, and the code range it belongs to
defines its Kind:

	20-29 decoding
	30-39 authentication
	40-49 temporal
	50-59 state conflict
	60-69 balance
	70-79 authorization
	80-89 input

Anything else is internal.

Use ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to
attach a stacktrace. If you wrap multiple times, only the first wrap records
the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the full stack trace
*/
package errors
