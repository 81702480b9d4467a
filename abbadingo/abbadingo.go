// Package abbadingo reads and writes labeled string samples in the Abbadingo One format.
//
// The first line holds the number of strings and the alphabet size. Every following line is
//
//	<label> <length> <symbol> <symbol> ...
//
// where label is 1 (accepting), 0 (rejecting) or -1 (unknown) and symbols are integers
// in [0, alphabet size). The number of strings must match the header count, and the alphabet
// size may not exceed MaxAlphabetSize.
package abbadingo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geange/apta"
)

// Header is the first line of an Abbadingo file.
type Header struct {
	Count        int
	AlphabetSize int
}

// Alphabet Returns the symbols 0 .. AlphabetSize-1.
func (h Header) Alphabet() []apta.Symbol {
	symbols := make([]apta.Symbol, h.AlphabetSize)
	for i := range symbols {
		symbols[i] = i
	}
	return symbols
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("abbadingo: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MaxAlphabetSize is the largest alphabet size Read accepts. An automaton allocates a
// transition row entry per symbol and state, so the header bounds memory use.
const MaxAlphabetSize = 1 << 16

// preallocLimit caps how many strings Read reserves room for up front. The header count is
// still enforced, it just does not drive the allocation.
const preallocLimit = 1 << 16

var (
	ErrMissingHeader    = errors.New("missing header")
	ErrLengthMismatch   = errors.New("length does not match number of symbols")
	ErrCountMismatch    = errors.New("number of strings does not match header count")
	ErrAlphabetTooLarge = errors.New("alphabet size exceeds limit")
)

// Read Parses an Abbadingo sample. Blank lines are skipped. Symbols are not checked against
// the alphabet size; that is left to the consumer of the dataset. A file holding more or fewer
// strings than its header announces fails with ErrCountMismatch.
func Read(r io.Reader) (apta.Dataset, Header, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header Header
	var dataset apta.Dataset
	seenHeader := false
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if !seenHeader {
			h, err := parseHeader(text)
			if err != nil {
				return nil, Header{}, &ParseError{Line: line, Err: err}
			}
			header = h
			dataset = make(apta.Dataset, 0, min(h.Count, preallocLimit))
			seenHeader = true
			continue
		}

		instance, err := parseInstance(text)
		if err != nil {
			return nil, Header{}, &ParseError{Line: line, Err: err}
		}
		if len(dataset) == header.Count {
			return nil, Header{}, &ParseError{Line: line, Err: fmt.Errorf("%w: header announces %d", ErrCountMismatch, header.Count)}
		}
		dataset = append(dataset, instance)
	}
	if err := scanner.Err(); err != nil {
		return nil, Header{}, err
	}
	if !seenHeader {
		return nil, Header{}, &ParseError{Line: line, Err: ErrMissingHeader}
	}
	if len(dataset) != header.Count {
		return nil, Header{}, &ParseError{Line: line, Err: fmt.Errorf("%w: header announces %d, read %d", ErrCountMismatch, header.Count, len(dataset))}
	}
	return dataset, header, nil
}

// ReadFile Parses the Abbadingo file at path.
func ReadFile(path string) (apta.Dataset, Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer file.Close()

	return Read(file)
}

func parseHeader(text string) (Header, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Header{}, fmt.Errorf("header needs 2 fields, got %d", len(fields))
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return Header{}, fmt.Errorf("invalid string count %q", fields[0])
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil || size < 0 {
		return Header{}, fmt.Errorf("invalid alphabet size %q", fields[1])
	}
	if size > MaxAlphabetSize {
		return Header{}, fmt.Errorf("%w: %d > %d", ErrAlphabetTooLarge, size, MaxAlphabetSize)
	}
	return Header{Count: count, AlphabetSize: size}, nil
}

func parseInstance(text string) (apta.StringInstance, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return apta.StringInstance{}, fmt.Errorf("need label and length, got %q", text)
	}

	var label apta.Label
	switch fields[0] {
	case "1":
		label = apta.ACCEPTING
	case "0":
		label = apta.REJECTING
	case "-1":
		label = apta.UNKNOWN
	default:
		return apta.StringInstance{}, fmt.Errorf("unknown string label %q", fields[0])
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil || length < 0 {
		return apta.StringInstance{}, fmt.Errorf("invalid string length %q", fields[1])
	}
	if length != len(fields)-2 {
		return apta.StringInstance{}, fmt.Errorf("%w: length %d, %d symbols", ErrLengthMismatch, length, len(fields)-2)
	}

	symbols := make([]apta.Symbol, length)
	for i, field := range fields[2:] {
		symbol, err := strconv.Atoi(field)
		if err != nil {
			return apta.StringInstance{}, fmt.Errorf("invalid symbol %q", field)
		}
		symbols[i] = symbol
	}
	return apta.StringInstance{Symbols: symbols, Label: label}, nil
}

// Write Writes the dataset in Abbadingo format, in dataset order.
func Write(w io.Writer, dataset apta.Dataset, alphabetSize int) error {
	writer := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(writer, "%d %d\n", len(dataset), alphabetSize); err != nil {
		return err
	}
	for _, instance := range dataset {
		var sb strings.Builder
		switch instance.Label {
		case apta.ACCEPTING:
			sb.WriteString("1")
		case apta.REJECTING:
			sb.WriteString("0")
		default:
			sb.WriteString("-1")
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(len(instance.Symbols)))
		for _, symbol := range instance.Symbols {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(symbol))
		}
		sb.WriteByte('\n')
		if _, err := writer.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return writer.Flush()
}
