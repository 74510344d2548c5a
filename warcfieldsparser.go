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
	"io"
	"strings"
)

// warcFieldsParser parses the header block of a record: colon separated
// lines up to the blank line terminating the block.
type warcFieldsParser struct {
	opts *options
}

// parse reads header lines until a blank line (empty or a lone carriage
// return) or end of stream. Each line is split at the first colon; name and
// value are trimmed and the name lowercased before insertion. A line without
// a colon, or with an empty name or value, fails with an InvalidField error
// carrying that line.
//
// End of stream before the blank line is not an error at this stage; the
// caller's validity check decides whether the resulting record is usable.
func (p *warcFieldsParser) parse(b *bufio.Reader, pos *position) (Fields, error) {
	fields := Fields{}
	for {
		line, err := readLine(b, pos)
		if err != nil {
			if err == io.EOF {
				return fields, nil
			}
			return nil, err
		}
		if line == "" || line == "\r" {
			return fields, nil
		}

		raw := strings.TrimRight(line, crlf)
		fv := strings.SplitN(line, ":", 2)
		if len(fv) != 2 {
			return nil, newParseError(InvalidField, raw)
		}
		name := strings.Trim(fv[0], sphtcrlf)
		value := strings.Trim(fv[1], sphtcrlf)
		if name == "" || value == "" {
			return nil, newParseError(InvalidField, raw)
		}
		fields.Set(name, value)
	}
}
