package textfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"

	"segview/text"
)

var (
	// ErrNotRegularFile signals that the named path is not a regular file.
	ErrNotRegularFile = errors.New("textfile: not a regular file")
	// ErrInvalidUTF8 signals invalid UTF-8 file content.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8 in file")
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Load reads a file, which must be a UTF-8 text file, and returns its
// complete content as one immutable buffer.
func Load(name string) (*text.Buffer, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	tracer().Debugf("loaded %q, %d bytes", name, len(raw))
	return text.New(string(raw)), nil
}

// Stream is a fragment-wise file load.
//
// Fragments are broadcast to all subscribers as immutable buffers, in file
// order. The usual sequence is StreamFile, Subscribe, Start. The stream
// finishes when the whole file has been read or an error occurs; Wait blocks
// for that and reports the error, if any.
type Stream struct {
	size  int64
	frag  int64
	file  *os.File
	cast  *caster.Caster
	start sync.Once
	done  chan struct{}
	err   error // written once before done is closed
}

// StreamFile opens a file for fragment-wise loading. Opening is synchronous;
// reading begins when Start is called, after subscribers have attached.
//
// Clients may indicate a recommended fragment length in bytes. A fragSize of
// 0 (or one outside sensible bounds) lets StreamFile pick a default based on
// the file size. Fragments are cut only at UTF-8 rune boundaries, so a
// fragment may exceed fragSize by up to three bytes.
func StreamFile(name string, fragSize int64) (*Stream, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(fi.Size())
	}
	if fragSize <= 0 { // empty file; any positive size terminates immediately
		fragSize = 64
	}
	s := &Stream{
		size: fi.Size(),
		frag: fragSize,
		file: file,
		cast: caster.New(nil), // we will broadcast buffers as fragments are loaded
		done: make(chan struct{}),
	}
	tracer().Debugf("streaming %q, %d bytes, fragments of ~%d", name, fi.Size(), fragSize)
	return s, nil
}

// Start launches the background reader. Fragments broadcast only to
// subscribers attached at delivery time, so subscribe before starting.
// Subsequent calls are no-ops.
func (s *Stream) Start() {
	s.start.Do(func() {
		go s.loadFragments(s.file, s.frag)
	})
}

// Size returns the file size in bytes.
func (s *Stream) Size() int64 {
	return s.size
}

// Subscribe registers a consumer of fragment buffers. The returned channel
// delivers fragments in file order and is closed when the stream finishes.
// The cancel function unsubscribes early.
//
// Subscribing after the stream finished yields an immediately-closed channel;
// late subscribers do not replay earlier fragments.
func (s *Stream) Subscribe() (<-chan *text.Buffer, func()) {
	out := make(chan *text.Buffer, 1)
	src, ok := s.cast.Sub(nil, 1)
	if !ok {
		close(out)
		return out, func() {}
	}
	go func() {
		defer close(out)
		for m := range src {
			if buf, ok := m.(*text.Buffer); ok {
				out <- buf
			}
		}
	}()
	return out, func() { s.cast.Unsub(src) }
}

// Wait blocks until the stream has finished and returns the first error
// encountered, or nil for a complete load.
func (s *Stream) Wait() error {
	<-s.done
	return s.err
}

func (s *Stream) loadFragments(file *os.File, fragSize int64) {
	defer func() {
		s.cast.Close()
		close(s.done)
		file.Close()
	}()
	r := bufio.NewReader(file)
	for {
		frag := make([]byte, fragSize)
		n, err := io.ReadFull(r, frag)
		if err == io.EOF {
			return
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			s.err = err
			return
		}
		frag = frag[:n]
		if frag, err = completeTrailingRune(r, frag); err != nil {
			s.err = err
			return
		}
		if !utf8.Valid(frag) {
			s.err = ErrInvalidUTF8
			return
		}
		s.cast.Pub(text.New(string(frag)))
	}
}

// completeTrailingRune extends frag with the remaining bytes of a UTF-8 rune
// that the fragment cut in the middle.
func completeTrailingRune(r *bufio.Reader, frag []byte) ([]byte, error) {
	i := len(frag) - 1
	for i >= 0 && !utf8.RuneStart(frag[i]) {
		i--
	}
	if i < 0 {
		return nil, ErrInvalidUTF8
	}
	need := runeLenFromLead(frag[i])
	for len(frag)-i < need {
		b, err := r.ReadByte()
		if err == io.EOF {
			break // truncated trailing rune; utf8.Valid will reject it
		}
		if err != nil {
			return nil, err
		}
		frag = append(frag, b)
	}
	return frag, nil
}

func runeLenFromLead(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	}
	return 4
}

// defaultFragSize picks a fragment length for a file of the given size.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}
