package driver

import "context"

// Driver runs one batch over the corpus: every logical document is loaded,
// composed into a request, sent to the generator, and filed back to disk.
// PolishFile is the single-file pipeline used by watch mode.
type Driver interface {
	Run(ctx context.Context) error
	PolishFile(ctx context.Context, path string) error
}
