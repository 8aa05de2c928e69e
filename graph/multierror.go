package graph

import "github.com/hashicorp/go-multierror"

// joinErrors aggregates zero or more invariant violations into a single
// error via hashicorp/go-multierror, so SanityCheck reports every breach
// in one call instead of failing fast on the first (Testable Property 1).
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, err := range errs {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
