package source

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/erbsland-dev/elcl-go/types"
)

// MaxLineLength is the hard per-line byte cap from spec §6.6; ReadLine refuses to return a longer line.
const MaxLineLength = 4000

// fileSource reads one document line-by-line from the local filesystem.
type fileSource struct {
	path   string
	id     types.SourceIdentifier
	file   *os.File
	reader *bufio.Reader
	atEnd  bool
}

// NewFileSource opens path lazily; Open must be called before reading.
func NewFileSource(path string) Source {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &fileSource{path: path, id: types.SourceIdentifier{Name: "file", Path: abs}}
}

func (s *fileSource) Identifier() types.SourceIdentifier { return s.id }

func (s *fileSource) Open() error {
	f, err := os.Open(s.path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", s.path)
	}
	s.file = f
	s.reader = bufio.NewReaderSize(f, MaxLineLength+1)
	return nil
}

func (s *fileSource) IsOpen() bool { return s.file != nil }

func (s *fileSource) AtEnd() bool { return s.atEnd }

func (s *fileSource) ReadLine() ([]byte, error) {
	if s.atEnd {
		return nil, io.EOF
	}
	line, err := s.reader.ReadBytes('\n')
	if len(line) > MaxLineLength+1 {
		return nil, errors.Errorf("line exceeds maximum length of %d bytes", MaxLineLength)
	}
	if err == io.EOF {
		s.atEnd = true
		if len(line) == 0 {
			return nil, io.EOF
		}
		return line, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading line")
	}
	if _, perr := s.reader.Peek(1); perr == io.EOF {
		s.atEnd = true
	}
	return line, nil
}

func (s *fileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Resolver turns an `@include` text plus the including source identifier into an ordered list of sources, the
// abstract SourceResolver contract from spec §4.9. A resolver must fail with a plain error (the driver wraps it
// as KindSyntax) rather than return an empty slice for a pattern that matches nothing unexpected.
type Resolver interface {
	Resolve(includeText string, from types.SourceIdentifier) ([]Source, error)
}

// FileResolver is the default resolver: it accepts `file:`-prefixed or bare relative/absolute paths, supports at
// most one `*` glob in the filename and at most one `**` directory wildcard, and sorts results with directories
// before files at each level using Unicode collation (spec §4.9).
type FileResolver struct {
	// BaseDir anchors relative include paths whose including source has no filesystem path; otherwise the
	// including document's directory is used.
	BaseDir string
	collator *collate.Collator
}

// NewFileResolver returns a FileResolver rooted at baseDir (used for includes given as bare relative paths whose
// including source has no filesystem path of its own, e.g. in-memory root sources).
func NewFileResolver(baseDir string) *FileResolver {
	return &FileResolver{BaseDir: baseDir, collator: collate.New(language.Und)}
}

// MaxIncludeSources bounds how many sources a single include directive may expand to (spec §6.6).
const MaxIncludeSources = 100

func (r *FileResolver) Resolve(includeText string, from types.SourceIdentifier) ([]Source, error) {
	pattern := strings.TrimPrefix(includeText, "file:")
	base := r.BaseDir
	if !filepath.IsAbs(pattern) && from.Path != "" {
		base = filepath.Dir(from.Path)
	}
	full := pattern
	if !filepath.IsAbs(pattern) {
		full = filepath.Join(base, pattern)
	}
	if strings.Count(strings.Replace(full, "**", "", 1), "*") > 1 {
		return nil, errors.Errorf("include pattern has more than one wildcard: %q", includeText)
	}
	matches, err := r.glob(full)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("include pattern matches no files: %q", includeText)
	}
	if len(matches) > MaxIncludeSources {
		return nil, errors.Errorf("include pattern matches more than %d files: %q", MaxIncludeSources, includeText)
	}
	out := make([]Source, len(matches))
	for i, m := range matches {
		out[i] = NewFileSource(m)
	}
	return out, nil
}

// glob expands pattern, which may contain a single `**` directory wildcard in addition to filepath.Glob's usual
// single-level `*`/`?`/`[...]` syntax, and sorts the result directories-before-files, then collated.
func (r *FileResolver) glob(pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
		}
		r.sortEntries(matches)
		return matches, nil
	}
	idx := strings.Index(pattern, "**")
	root := filepath.Dir(pattern[:idx])
	rest := strings.TrimPrefix(pattern[idx+2:], string(filepath.Separator))
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		matches, globErr := filepath.Glob(filepath.Join(path, rest))
		if globErr != nil {
			return nil
		}
		out = append(out, matches...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %q", root)
	}
	r.sortEntries(out)
	return out, nil
}

// sortEntries orders matches with directories before files at each level, then collated lexicographic order
// within each group, matching the documented (if loosely specified beyond ASCII) default-resolver sort (spec
// §4.9, §9 Open Questions).
func (r *FileResolver) sortEntries(matches []string) {
	sort.SliceStable(matches, func(i, j int) bool {
		a := strings.Split(filepath.Clean(matches[i]), string(filepath.Separator))
		b := strings.Split(filepath.Clean(matches[j]), string(filepath.Separator))
		k := 0
		for k < len(a)-1 && k < len(b)-1 && a[k] == b[k] {
			k++
		}
		iDir := k < len(a)-1 || isDir(matches[i])
		jDir := k < len(b)-1 || isDir(matches[j])
		if iDir != jDir {
			return iDir
		}
		return r.collator.CompareString(a[k], b[k]) < 0
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
