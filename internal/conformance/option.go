package conformance

import (
	"io"
	"log"

	"github.com/spf13/afero"
)

type Option func(*Runner)

// WithFs sets the file system that case files are loaded from.
func WithFs(fs afero.Fs) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithLogger sets the logger that progress is reported to.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// WithOutput sets the writer that the report is written to by RunFiles.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.out = out
	}
}
