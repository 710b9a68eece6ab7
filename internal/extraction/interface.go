package extraction

import "context"

// UseCase is the extraction agent contract. Given raw tabular input it
// returns the deduplicated, ordered list of product identifiers the report
// is about. Implementations must validate the model output at this boundary:
// a malformed answer is the zero-extraction case, never an error.
type UseCase interface {
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
