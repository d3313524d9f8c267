// Package filescan opens and line-scans a single file for marks, using
// internal/commentscan to find comment ranges and internal/markscan to
// find marks inside them.
package filescan

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"

	"github.com/utakotoba/doto/internal/commentscan"
	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/langsyntax"
	"github.com/utakotoba/doto/internal/markscan"
)

// OutcomeKind reports how a file scan concluded.
type OutcomeKind int

const (
	Completed OutcomeKind = iota
	Skipped
	Cancelled
)

// Outcome is the result of scanning one file.
type Outcome struct {
	Kind   OutcomeKind
	Reason domain.SkipReason // valid when Kind == Skipped
}

// binarySniffSize is how many leading bytes are inspected for a NUL byte
// when classifying a file as binary.
const binarySniffSize = 8192

// minReadBufferSize is the smallest read buffer ScanFile will honor.
const minReadBufferSize = 8 * 1024

// ScanFile scans path for marks, appending them to output (and reporting
// progress/cancellation) and returns how the scan concluded. path is
// shared (not copied) into every Mark produced, so callers should pass a
// pointer that outlives the result.
func ScanFile(
	sharedPath *string,
	language string,
	readBufferSize int,
	re *regexp.Regexp,
	isCancelled func() bool,
	progress domain.ProgressReporter,
	output func(domain.Mark),
) (Outcome, error) {
	path := *sharedPath
	spec, ok := langsyntax.ForPath(path)
	if !ok {
		return Outcome{Kind: Skipped, Reason: domain.SkipUnsupportedSyntax}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Outcome{Kind: Skipped, Reason: domain.SkipIO}, err
	}
	defer f.Close()

	if binary, err := looksBinary(f); err != nil {
		return Outcome{Kind: Skipped, Reason: domain.SkipIO}, err
	} else if binary {
		return Outcome{Kind: Skipped, Reason: domain.SkipBinary}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Outcome{Kind: Skipped, Reason: domain.SkipIO}, err
	}

	bufSize := readBufferSize
	if bufSize < minReadBufferSize {
		bufSize = minReadBufferSize
	}
	reader := bufio.NewReaderSize(f, bufSize)

	state := commentscan.NewBlockState()
	var lineNo uint32

	for {
		if isCancelled() {
			return Outcome{Kind: Cancelled}, nil
		}

		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			if lineNo < ^uint32(0) {
				lineNo++
			}
			scanLine(sharedPath, language, line, lineNo, &state, spec, re, progress, output)
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return Outcome{Kind: Skipped, Reason: domain.SkipIO}, readErr
		}
	}

	return Outcome{Kind: Completed}, nil
}

func scanLine(
	sharedPath *string,
	language string,
	line []byte,
	lineNo uint32,
	state *commentscan.BlockState,
	spec langsyntax.SyntaxSpec,
	re *regexp.Regexp,
	progress domain.ProgressReporter,
	output func(domain.Mark),
) {
	commentscan.FindCommentRanges(line, state, spec, func(start, end int) {
		kind, column, ok := markscan.Find(line, start, end, spec, re)
		if !ok {
			return
		}
		m := domain.Mark{
			Path:     sharedPath,
			Line:     lineNo,
			Column:   uint32(column),
			MarkKind: kind,
			Language: language,
		}
		output(m)
		if progress != nil {
			progress.OnMatch(m)
		}
	})
}

func looksBinary(f *os.File) (bool, error) {
	buf := make([]byte, binarySniffSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	return bytes.IndexByte(buf[:n], 0) >= 0, nil
}
