/*
 * Copyright 2024 PISA developers
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package warc

import (
	"fmt"
	"io"
)

// ErrorKind discriminates the closed set of parse failures. Every failed
// parse attempt reports exactly one of these; there are no other error
// conditions in the record parser.
type ErrorKind int8

const (
	// InvalidVersion means no line matched the version pattern before
	// end of stream, or the first line of a strict parse didn't.
	InvalidVersion ErrorKind = iota
	// InvalidField means a header line lacked a valid "name: value" split.
	InvalidField
	// MissingMandatoryFields means the header block parsed but the record
	// lacks WARC-Type or Content-Length.
	MissingMandatoryFields
	// IncompleteRecord means fewer content bytes were available than
	// declared by Content-Length.
	IncompleteRecord
	// InvalidContentLength means the Content-Length value is not a
	// non-negative decimal integer.
	InvalidContentLength
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidVersion:
		return "invalid version"
	case InvalidField:
		return "invalid field"
	case MissingMandatoryFields:
		return "missing mandatory fields"
	case IncompleteRecord:
		return "incomplete record"
	case InvalidContentLength:
		return "invalid content length"
	default:
		return "unknown"
	}
}

// ParseError is the error type returned for malformed records. It carries
// the offending line where one exists so callers can report it.
//
// A ParseError caused by stream exhaustion unwraps to io.EOF, so
// errors.Is(err, io.EOF) tells a read loop that no further parse attempt
// can succeed on this stream.
type ParseError struct {
	kind  ErrorKind
	line  string
	atEOF bool
}

func newParseError(kind ErrorKind, line string) *ParseError {
	return &ParseError{kind: kind, line: line}
}

func newParseErrorEOF(kind ErrorKind, line string) *ParseError {
	return &ParseError{kind: kind, line: line, atEOF: true}
}

// Kind returns the error discriminator.
func (e *ParseError) Kind() ErrorKind { return e.kind }

// Line returns the offending line with the trailing newline stripped.
// It is empty for kinds that carry no line.
func (e *ParseError) Line() string { return e.line }

func (e *ParseError) Error() string {
	switch e.kind {
	case InvalidVersion, InvalidField:
		return fmt.Sprintf("warc: %s in line %q", e.kind, e.line)
	case InvalidContentLength:
		return fmt.Sprintf("warc: %s %q", e.kind, e.line)
	default:
		return fmt.Sprintf("warc: %s", e.kind)
	}
}

func (e *ParseError) Unwrap() error {
	if e.atEOF {
		return io.EOF
	}
	return nil
}
