package chromlgs

import "io"

type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// stackedReadCloser reads from the outermost reader and, on Close, closes
// every layer from the outside in. The first error encountered is returned.
type stackedReadCloser struct {
	io.Reader
	layers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var first error
	for _, c := range s.layers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
