// Package source defines the pluggable input surface a parse pulls raw document bytes from (component K's
// interface side), plus an in-memory implementation used for tests and embedded configuration strings.
package source

import (
	"bytes"
	"io"

	"github.com/erbsland-dev/elcl-go/types"
)

// Source is one document's raw byte supply (spec §6.1). Identifier must be stable and comparable across an entire
// parse so the driver can detect include loops by exact (name, path) match.
type Source interface {
	Identifier() types.SourceIdentifier
	Open() error
	IsOpen() bool
	AtEnd() bool
	// ReadLine reads one line, including its terminator, returning it or io.EOF once the source is exhausted.
	ReadLine() ([]byte, error)
	Close() error
}

// memorySource is an in-memory Source over a byte slice, split lazily on read.
type memorySource struct {
	id     types.SourceIdentifier
	reader *bytes.Reader
	data   []byte
	open   bool
	atEnd  bool
}

// NewMemorySource wraps data (the full document text) as a Source identified by name.
func NewMemorySource(name string, data []byte) Source {
	return &memorySource{id: types.SourceIdentifier{Name: name}, data: data}
}

func (s *memorySource) Identifier() types.SourceIdentifier { return s.id }

func (s *memorySource) Open() error {
	s.reader = bytes.NewReader(s.data)
	s.open = true
	s.atEnd = len(s.data) == 0
	return nil
}

func (s *memorySource) IsOpen() bool { return s.open }

func (s *memorySource) AtEnd() bool { return s.atEnd }

func (s *memorySource) ReadLine() ([]byte, error) {
	if s.atEnd {
		return nil, io.EOF
	}
	var line []byte
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			s.atEnd = true
			if len(line) == 0 {
				return nil, io.EOF
			}
			return line, nil
		}
		line = append(line, b)
		if b == '\n' {
			return line, nil
		}
		if b == '\r' {
			next, err := s.reader.ReadByte()
			if err == nil {
				if next == '\n' {
					line = append(line, next)
				} else {
					_ = s.reader.UnreadByte()
				}
			}
			return line, nil
		}
	}
}

func (s *memorySource) Close() error {
	s.open = false
	return nil
}
