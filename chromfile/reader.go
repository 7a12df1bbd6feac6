package chromfile

import (
	"bufio"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/chromlgs"
	"github.com/carbocation/pfx"
)

// Reader yields the data lines of a chrom file. Blank lines and lines whose
// first non-space character is '#' are skipped. Lines may be of any length.
type Reader struct {
	path   string
	closer io.Closer
	br     *bufio.Reader
	done   bool
	err    error
}

// Open opens a chrom file from a local path or gs:// URL. Compressed inputs
// are decompressed transparently. client may be nil for local paths.
func Open(path string, client *storage.Client) (*Reader, error) {
	rc, err := chromlgs.OpenInput(path, client)
	if err != nil {
		return nil, err
	}

	r := NewReader(rc)
	r.path = path
	r.closer = rc

	return r, nil
}

// NewReader reads chrom records from r. Closing the Reader does not close r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Reader) Err() error {
	return r.err
}

// Read returns the next record, or nil once the input is exhausted or an error
// occurred. Check Err after Read returns nil.
func (r *Reader) Read() *Record {
	for !r.done {
		raw, err := r.br.ReadString('\n')
		if err == io.EOF {
			r.done = true
		} else if err != nil {
			r.done = true
			r.err = pfx.Err(err)
			return nil
		}

		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}

		cols := strings.Fields(line)
		rec := &Record{ID: cols[ProteinID]}
		if len(cols) > ChromLabel {
			rec.Chrom = cols[ChromLabel]
		}

		return rec
	}

	return nil
}
