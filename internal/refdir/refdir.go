// Package refdir loads the wild-type reference protein sequences, one
// FASTA record per gene, from a configured directory.
package refdir

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amrwatch/analyzer/internal/seq"
)

// References indexes wild-type sequences by gene name. Read-only after
// Load, so it is safe to share across worker goroutines.
type References map[string]seq.Sequence

// Get returns the reference for a gene.
func (r References) Get(gene string) (seq.Sequence, bool) {
	s, ok := r[gene]
	return s, ok
}

// Genes returns the number of loaded references.
func (r References) Genes() int {
	return len(r)
}

// Load reads every .fasta/.fa file under dir. The first whitespace-
// delimited token of each header is the gene name; sequences are
// validated against the amino-acid alphabet on load so alignment never
// sees malformed references.
func Load(dir string) (References, error) {
	paths, err := fastaPaths(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no reference FASTA files under %s", dir)
	}

	refs := make(References)
	for _, path := range paths {
		if err := loadFile(path, refs); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

func fastaPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read reference dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".fasta", ".fa", ".faa":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

func loadFile(path string, refs References) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open reference %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var (
		gene string
		body strings.Builder
	)
	flush := func() error {
		if gene == "" {
			return nil
		}
		ref := seq.Sequence{Gene: gene, Residues: strings.ToUpper(body.String())}
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("reference %s in %s: %w", gene, path, err)
		}
		if _, dup := refs[gene]; dup {
			return fmt.Errorf("duplicate reference for gene %s in %s", gene, path)
		}
		refs[gene] = ref
		body.Reset()
		return nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return fmt.Errorf("empty FASTA header in %s", path)
			}
			gene = fields[0]
			continue
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan reference %s: %w", path, err)
	}
	return flush()
}
