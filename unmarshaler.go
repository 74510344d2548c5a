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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	whatwgurl "github.com/nlnwa/whatwg-url/url"
	log "github.com/sirupsen/logrus"
)

// Unmarshaler reads WARC records off a buffered stream.
//
// Unmarshal is the strict entry point: the stream must be positioned at the
// start of a record (leading blank lines are tolerated). Resync is the
// recovering entry point: it discards input until the next version line and
// parses the record found there.
//
// After any ParseError the stream may be left in the middle of a record.
// In particular a MissingMandatoryFields error leaves the declared content
// block unconsumed, so a caller that wants to continue must use Resync for
// the next attempt instead of assuming the cursor is record aligned.
//
// The stream is exclusively owned by the running call; no two parse
// attempts may run concurrently against the same reader.
type Unmarshaler interface {
	Unmarshal(b *bufio.Reader) (*Record, *Validation, error)
	Resync(b *bufio.Reader) (*Record, *Validation, error)
}

type unmarshaler struct {
	opts             *options
	warcFieldsParser *warcFieldsParser
}

func NewUnmarshaler(opts ...Option) *unmarshaler {
	o := newOptions(opts...)
	return &unmarshaler{
		opts:             o,
		warcFieldsParser: &warcFieldsParser{o},
	}
}

func (u *unmarshaler) Unmarshal(b *bufio.Reader) (*Record, *Validation, error) {
	return u.unmarshal(b, false)
}

func (u *unmarshaler) Resync(b *bufio.Reader) (*Record, *Validation, error) {
	return u.unmarshal(b, true)
}

// unmarshal runs one parse attempt: version line, header block, validity
// check, content block, trailer. The first failing stage aborts the attempt;
// a single attempt never retries internally.
func (u *unmarshaler) unmarshal(b *bufio.Reader, recovering bool) (*Record, *Validation, error) {
	validation := &Validation{}
	pos := &position{}

	version, err := u.readVersion(b, pos, recovering, validation)
	if err != nil {
		return nil, validation, err
	}

	fields, err := u.warcFieldsParser.parse(b, pos)
	if err != nil {
		return nil, validation, err
	}

	record := &Record{version: version, headers: fields}
	if !record.Valid() {
		// The declared content block, if any, is not consumed here: the
		// headers gave no trustworthy length. The stream is mid-record
		// after this error and only Resync can realign it.
		return nil, validation, newParseError(MissingMandatoryFields, "")
	}

	if u.opts.targetURICheck && fields.Has(WarcTargetURI) {
		if _, err := whatwgurl.Parse(fields.Get(WarcTargetURI)); err != nil {
			validation.AddError(fmt.Errorf("target uri %q: %w", fields.Get(WarcTargetURI), err))
		}
	}

	length, perr := parseContentLength(fields.Get(ContentLength))
	if perr != nil {
		return nil, validation, perr
	}
	if length > 0 {
		content := make([]byte, length)
		if _, err := io.ReadFull(b, content); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, validation, newParseErrorEOF(IncompleteRecord, "")
			}
			return nil, validation, err
		}
		record.content = content
	}

	if err := skipTrailer(b); err != nil {
		return nil, validation, err
	}
	return record, validation, nil
}

// readVersion scans for the record's version line: a line that, after
// trimming surrounding whitespace, starts with "WARC/" followed by at least
// one character. In strict mode leading blank lines are skipped and the
// first non-blank line must match; in recovering mode every non-matching
// line is discarded until a match or end of stream.
func (u *unmarshaler) readVersion(b *bufio.Reader, pos *position, recovering bool, validation *Validation) (string, error) {
	discarded := 0
	for {
		line, err := readLine(b, pos)
		if err != nil {
			if err == io.EOF {
				return "", newParseErrorEOF(InvalidVersion, "")
			}
			return "", err
		}
		trimmed := strings.Trim(line, sphtcrlf)
		if strings.HasPrefix(trimmed, versionPrefix) && len(trimmed) > len(versionPrefix) {
			if discarded > 0 {
				log.Debugf("resynchronized after discarding %d lines", discarded)
				validation.AddError(fmt.Errorf("discarded %d lines before version line", discarded))
			}
			return trimmed[len(versionPrefix):], nil
		}
		if recovering {
			discarded++
			continue
		}
		if trimmed == "" {
			continue
		}
		return "", newParseError(InvalidVersion, strings.TrimRight(line, crlf))
	}
}

// readLine reads the next line from b with the trailing newline stripped.
// A final line without a newline before end of stream still counts as a
// line; io.EOF is returned only when no bytes remain.
func readLine(b *bufio.Reader, pos *position) (string, error) {
	l, err := b.ReadString(lf)
	if err != nil {
		if err == io.EOF && len(l) > 0 {
			pos.incrLineNumber()
			return l, nil
		}
		return "", err
	}
	pos.incrLineNumber()
	return strings.TrimSuffix(l, "\n"), nil
}

// skipTrailer advances past the separator between this record and the next
// by skipping every consecutive CR and LF, so both bare LF and CRLF record
// termination are handled. End of stream is a valid trailer.
func skipTrailer(b *bufio.Reader) error {
	for {
		c, err := b.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if c[0] != cr && c[0] != lf {
			return nil
		}
		if _, err := b.Discard(1); err != nil {
			return err
		}
	}
}

func parseContentLength(value string) (int64, *ParseError) {
	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil || length < 0 {
		return 0, newParseError(InvalidContentLength, value)
	}
	return length, nil
}
