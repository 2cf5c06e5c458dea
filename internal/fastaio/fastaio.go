// Package fastaio loads FASTA records into sequence.Sequence values,
// handling the multi-file id-prefixing and duplicate-detection rules
// the CLI requires before an alignment can start.
package fastaio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sumofpairs/multialign/internal/alphabet"
	"github.com/sumofpairs/multialign/internal/sequence"
)

// rawRecord is one FASTA record before alphabet decoding, tagged with
// the file it came from so multi-file loads can prefix ids.
type rawRecord struct {
	id     string
	desc   string
	bases  strings.Builder
	source string
}

// LoadFiles reads every FASTA record across paths, strips skipChars from
// each body, prefixes ids with their source path when len(paths) > 1,
// and decodes every record against a. It returns a DuplicateIDError
// (wrapped, one per duplicate) if any id collides after sorting, and a
// TooFewRecordsError if fewer than two records were loaded in total.
func LoadFiles(paths []string, a *alphabet.Alphabet, skipChars string) (*sequence.Store, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	var all []rawRecord
	for _, path := range paths {
		records, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		if len(paths) > 1 {
			for i := range records {
				records[i].id = fmt.Sprintf("%s:%s", filepath.Clean(path), records[i].id)
			}
		}
		all = append(all, records...)
	}

	if len(all) < 2 {
		return nil, &sequence.TooFewRecordsError{Count: len(all)}
	}

	if dupErr := checkDuplicates(all); dupErr != nil {
		return nil, dupErr
	}

	records := make([]*sequence.Sequence, len(all))
	for i, raw := range all {
		body := stripChars(raw.bases.String(), skipChars)
		seq, err := sequence.New(raw.id, raw.desc, a, body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", raw.source, err)
		}
		records[i] = seq
	}

	return sequence.NewStore(records), nil
}

func stripChars(body, skipChars string) string {
	if skipChars == "" {
		return body
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(skipChars, r) {
			return -1
		}
		return r
	}, body)
}

// checkDuplicates sorts ids and reports every distinct duplicate,
// mirroring the "every duplicate is reported" contract in full rather
// than bailing on the first collision found.
func checkDuplicates(records []rawRecord) error {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.id
	}
	sort.Strings(ids)

	var dups []string
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] && (len(dups) == 0 || dups[len(dups)-1] != ids[i]) {
			dups = append(dups, ids[i])
		}
	}
	if len(dups) == 0 {
		return nil
	}

	errs := make([]error, len(dups))
	for i, id := range dups {
		errs[i] = &sequence.DuplicateIDError{ID: id}
	}
	return fmt.Errorf("duplicate record ids: %w", errors.Join(errs...))
}

func parseFile(path string) ([]rawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return parseFASTA(file, path)
}

func parseFASTA(r io.Reader, source string) ([]rawRecord, error) {
	var records []rawRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var current *rawRecord

	flush := func() {
		// A header with no body line is a valid length-0 record, not a
		// record to discard — the data model places no lower bound on
		// |s|, and dropping it here would make the documented empty-
		// alignment case unreachable from the CLI.
		if current != nil {
			records = append(records, *current)
		}
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			current = &rawRecord{id: parts[0], source: source}
			if len(parts) > 1 {
				current.desc = parts[1]
			}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%s: sequence data before any header", source)
		}
		current.bases.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return records, nil
}
