package chromfile

import (
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Load reads every record from r into a chromosome map and a whole-file ID
// set. Lines with fewer than two columns are skipped.
func Load(r *Reader) (*ChromMap, IDSet, error) {
	chroms := NewChromMap()
	all := make(IDSet)

	for rec := r.Read(); rec != nil; rec = r.Read() {
		if !rec.HasChrom() {
			continue
		}
		chroms.Add(rec.Chrom, rec.ID)
		all.Add(rec.ID)
	}

	if err := r.Err(); err != nil {
		return nil, nil, err
	}

	return chroms, all, nil
}

// LoadIDs reads the first column of every data line in r. Unlike Load, lines
// that carry only an ID are kept.
func LoadIDs(r *Reader) (IDSet, error) {
	ids := make(IDSet)

	for rec := r.Read(); rec != nil; rec = r.Read() {
		ids.Add(rec.ID)
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// LoadFile opens path and Loads it.
func LoadFile(path string, client *storage.Client) (*ChromMap, IDSet, error) {
	r, err := Open(path, client)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	chroms, all, err := Load(r)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}

	log.Printf("Read %d IDs on %d chromosomes from %s\n", all.Len(), chroms.Len(), path)

	return chroms, all, nil
}

// LoadIDsFile opens path and returns its ID set.
func LoadIDsFile(path string, client *storage.Client) (IDSet, error) {
	r, err := Open(path, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	ids, err := LoadIDs(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	log.Printf("Read %d IDs from %s\n", ids.Len(), path)

	return ids, nil
}
