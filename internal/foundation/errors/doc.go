// Package errors provides the classified error primitives shared by doclinks.
//
// A ClassifiedError carries a category, a severity, a retry strategy and
// structured context. Errors are built through the fluent ErrorBuilder:
//
//	err := errors.ConfigError("redirects file is unreadable").
//		WithContext("path", path).
//		Build()
//
// Other error types (for instance the docerror union) participate in CLI
// exit-code mapping by implementing Categorized.
package errors
