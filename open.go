package chromlgs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// AutoDelimiter asks OpenDelimited to sniff the delimiter from the data.
const AutoDelimiter = "auto"

// NewClientIfNeeded returns a Google Storage client if any of the paths is a
// gs:// URL, and nil otherwise, so purely local runs never need credentials.
func NewClientIfNeeded(ctx context.Context, paths ...string) (*storage.Client, error) {
	for _, path := range paths {
		if IsGoogleStoragePath(path) {
			client, err := storage.NewClient(ctx)
			if err != nil {
				return nil, pfx.Err(err)
			}
			return client, nil
		}
	}

	return nil, nil
}

// OpenInput opens a local path or gs:// URL and transparently decompresses it.
// Closing the result releases both the decompressor and the underlying file.
func OpenInput(path string, client *storage.Client) (io.ReadCloser, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, _, err := MaybeOpenSeekerFromGoogleStorage(expanded, client)
	if err != nil {
		return nil, err
	}

	r, err := MaybeDecompressReadCloser(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &stackedReadCloser{Reader: r, layers: []io.Closer{r, f}}, nil
}

// OpenDelimited is OpenInput for delimited tables. If delimiter is
// AutoDelimiter the delimiter is detected from the decompressed data and the
// input is reopened from the start.
func OpenDelimited(path string, client *storage.Client, delimiter string) (io.ReadCloser, rune, error) {
	if delimiter != AutoDelimiter {
		delim, err := ParseDelimiter(delimiter)
		if err != nil {
			return nil, 0, err
		}
		rc, err := OpenInput(path, client)
		return rc, delim, err
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, 0, err
	}

	f, _, err := MaybeOpenSeekerFromGoogleStorage(expanded, client)
	if err != nil {
		return nil, 0, err
	}

	r, err := MaybeDecompressReadCloser(f)
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	delim := DetermineDelimiter(r)
	r.Close()

	// The decompressed reader cannot seek, so rewind the raw input and
	// decompress again.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, 0, pfx.Err(err)
	}
	r, err = MaybeDecompressReadCloser(f)
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return &stackedReadCloser{Reader: r, layers: []io.Closer{r, f}}, delim, nil
}
