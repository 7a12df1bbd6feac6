package presence

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Row is one orthology group as read from the table.
type Row struct {
	GeneGroup string `csv:"gene_group"`
	COWGene   string `csv:"COW_gene"`
	SROGene   string `csv:"SRO_gene"`
	CFRGene   string `csv:"CFR_gene"`
}

func (r Row) Gene(sp Species) string {
	switch sp {
	case COW:
		return r.COWGene
	case SRO:
		return r.SROGene
	case CFR:
		return r.CFRGene
	}
	return Missing
}

// IsPresent reports whether the row's ortholog for sp is found in ids.
func (r Row) IsPresent(sp Species, ids Sets) bool {
	gene := r.Gene(sp)
	return gene != Missing && ids[sp].Has(gene)
}

// Header is the first line of the annotated table.
func Header() string {
	cols := []string{GeneGroupColumn}
	for _, sp := range AllSpecies() {
		cols = append(cols, sp.GeneColumn(), sp.PresentColumn())
	}
	return strings.Join(cols, "\t")
}

// requiredColumns is the order in which RowReader projects each line.
func requiredColumns() []string {
	out := []string{GeneGroupColumn}
	for _, sp := range AllSpecies() {
		out = append(out, sp.GeneColumn())
	}
	return out
}

// RowReader streams an orthology table. Lines are split on the delimiter
// with no quote handling, and the required fields are picked out by the
// positions resolved from the header line.
type RowReader struct {
	br      *bufio.Reader
	delim   string
	cols    Columns
	line    int
	pending []string // header still to be handed out by Read
}

// NewRowReader consumes and resolves the header line. It fails if the table
// is empty or lacks a required column.
func NewRowReader(r io.Reader, delim rune) (*RowReader, error) {
	rr := &RowReader{
		br:    bufio.NewReader(r),
		delim: string(delim),
	}

	line, err := rr.readLine()
	if err == io.EOF {
		return nil, fmt.Errorf("orthology table is empty; expected a header line")
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	if rr.cols, err = ResolveColumns(strings.Split(line, rr.delim)); err != nil {
		return nil, pfx.Err(err)
	}
	rr.pending = requiredColumns()

	return rr, nil
}

func (rr *RowReader) Columns() Columns {
	return rr.cols
}

// readLine returns the next line without its line ending, or io.EOF.
func (rr *RowReader) readLine() (string, error) {
	line, err := rr.br.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.EOF
	} else if err != nil && err != io.EOF {
		return "", err
	}
	rr.line++

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Read satisfies gocsv.CSVReader. The first call returns the required column
// names; each later call returns the required fields of the next non-blank
// line in that same order.
func (rr *RowReader) Read() ([]string, error) {
	if rr.pending != nil {
		header := rr.pending
		rr.pending = nil
		return header, nil
	}

	for {
		line, err := rr.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}

		fields := strings.Split(line, rr.delim)
		positions := append([]int{rr.cols.GeneGroup}, rr.cols.Gene[:]...)
		out := make([]string, len(positions))
		for i, pos := range positions {
			if pos >= len(fields) {
				return nil, fmt.Errorf("line %d has %d fields, but column %q is field %d", rr.line, len(fields), requiredColumns()[i], pos+1)
			}
			out[i] = fields[pos]
		}

		return out, nil
	}
}

// ReadAll satisfies gocsv.CSVReader.
func (rr *RowReader) ReadAll() ([][]string, error) {
	out := make([][]string, 0)
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// records replays a fixed set of records to gocsv.
type records [][]string

func (r *records) Read() ([]string, error) {
	if len(*r) == 0 {
		return nil, io.EOF
	}
	rec := (*r)[0]
	*r = (*r)[1:]
	return rec, nil
}

func (r *records) ReadAll() ([][]string, error) {
	out := *r
	*r = nil
	return out, nil
}

// Next decodes the next row, returning io.EOF after the last one.
func (rr *RowReader) Next() (Row, error) {
	if rr.pending != nil {
		if _, err := rr.Read(); err != nil {
			return Row{}, err
		}
	}

	rec, err := rr.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	} else if err != nil {
		return Row{}, pfx.Err(err)
	}

	decoded := make([]Row, 0, 1)
	in := records{requiredColumns(), rec}
	if err := gocsv.UnmarshalCSV(&in, &decoded); err != nil {
		return Row{}, pfx.Err(err)
	}
	if len(decoded) != 1 {
		return Row{}, fmt.Errorf("line %d: decoded %d rows, expected 1", rr.line, len(decoded))
	}

	return decoded[0], nil
}

// ReadRows reads every row of an orthology table.
func ReadRows(r io.Reader, delim rune) ([]Row, Columns, error) {
	rr, err := NewRowReader(r, delim)
	if err != nil {
		return nil, Columns{}, err
	}

	rows := make([]Row, 0)
	if err := gocsv.UnmarshalCSV(rr, &rows); err != nil {
		return nil, rr.Columns(), pfx.Err(err)
	}

	return rows, rr.Columns(), nil
}

// Annotate reads the orthology table from r and writes one line per row to w
// flagging, per species, whether the row's gene is in that species' ID set.
// The returned Counts tally presence across all rows.
func Annotate(r io.Reader, delim rune, ids Sets, w io.Writer) (Counts, error) {
	rr, err := NewRowReader(r, delim)
	if err != nil {
		return Counts{}, err
	}

	return WriteAnnotated(w, rr, ids)
}

// WriteAnnotated writes the header and then annotates each row as it is read
// from rr, tallying as it goes.
func WriteAnnotated(w io.Writer, rr *RowReader, ids Sets) (Counts, error) {
	var counts Counts

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header())

	for {
		row, err := rr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			bw.Flush()
			return counts, err
		}

		bw.WriteString(row.GeneGroup)
		for _, sp := range AllSpecies() {
			present := counts.Add(sp, row.Gene(sp), row.IsPresent(sp, ids))
			fmt.Fprintf(bw, "\t%s\t%d", row.Gene(sp), present)
		}
		bw.WriteByte('\n')
		counts.Rows++
	}

	if err := bw.Flush(); err != nil {
		return counts, pfx.Err(err)
	}

	return counts, nil
}
