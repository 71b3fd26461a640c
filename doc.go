// doc.go — package documentation for eraro
//
// Package eraro builds errors tagged with a stable code, a templated message,
// contextual details and a clean call point. A Factory is configured once per
// package and then raises errors from raw codes, from detail maps, or by
// wrapping existing errors:
//
//	var errs = eraro.New(
//	    eraro.WithPackage("billing"),
//	    eraro.WithCallerLocation(eraro.Here()),
//	    eraro.WithMessages(map[eraro.Code]string{
//	        "no_invoice": "invoice <%= id %> not found",
//	    }),
//	)
//
//	err := errs.Make("no_invoice", eraro.KV("id", 42))
//	// err.Error() == "billing: invoice 42 not found"
//
// # Call Shapes
//
// Factory.Make accepts positional arguments and resolves them into an
// Invocation (see Resolve):
//
//	+--------------------------------------+-------------------------------------+
//	| Call                                 | Meaning                             |
//	+--------------------------------------+-------------------------------------+
//	| Make(code, msg, details)             | raw error                           |
//	| Make(code, details)                  | raw error, message from the catalog |
//	| Make(err, code?, msg?, details?)     | wrap err                            |
//	| Make(taggedErr)                      | returns taggedErr unchanged         |
//	+--------------------------------------+-------------------------------------+
//
// Factory.Build takes a Raw or Wrapping value directly when the call site
// already knows which one it wants.
//
// # Messages
//
// The template is the explicit message, else the catalog entry for the code,
// else the wrapped error's message, else the code. Markers of the form
// <%= expr %> are replaced with detail values; expr is a key, optionally
// followed by one .field and one [index]. The code itself is always available
// as <%= code %>. Unsupported expressions never panic: the message then ends
// with "TEMPLATE ERROR: ..." describing the problem.
//
// # Wrapping
//
// Wrapping keeps the wrapped error reachable through Unwrap (errors.Is/As work),
// records it under the orig$ and message$ details unless the caller set them,
// and records errmsg and errline (the wrapped error's call point). Exported fields
// of foreign error structs and the extra fields of wrapped *Error values are
// carried over (see Error.Extra). Wrapping an *Error returns it unchanged
// unless the factory was built WithOverride(true).
//
// # Call Points
//
// Every produced error carries a stack text. Its call point is the first frame
// not located in this library, in the factory's declaring file
// (WithCallerLocation) or matching a configured marker. Stacks of
// github.com/pkg/errors and github.com/go-errors/errors values are read as
// well, so wrapping them reports where they were created.
//
// # Concurrency
//
// A Factory is immutable after New and safe for concurrent use. Produced
// errors are immutable too; map accessors return copies.
package eraro
