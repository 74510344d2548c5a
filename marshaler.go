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

	"github.com/google/uuid"
)

// Allow overriding of record id generation for tests.
var newRecordID = func() string {
	return "<" + uuid.New().URN() + ">"
}

// warcSerializer re-emits valid response records in WARC wire format with
// CRLF line endings, producing a filtered archive that parses back into the
// same records. A record without a WARC-Record-ID is assigned a fresh
// urn:uuid one on output.
type warcSerializer struct {
}

func (s *warcSerializer) Marshal(w io.Writer, record *Record) (int64, error) {
	if !record.ValidResponse() {
		return 0, nil
	}

	// Write record version
	n, err := fmt.Fprintf(w, "%s%s%s", versionPrefix, record.Version(), crlf)
	bytesWritten := int64(n)
	if err != nil {
		return bytesWritten, err
	}

	// Write header fields
	if !record.headers.Has(WarcRecordID) {
		n, err = fmt.Fprintf(w, "%s: %s%s", WarcRecordID, newRecordID(), crlf)
		bytesWritten += int64(n)
		if err != nil {
			return bytesWritten, err
		}
	}
	bw, err := record.headers.Write(w)
	bytesWritten += bw
	if err != nil {
		return bytesWritten, err
	}

	// Write separator
	n, err = io.WriteString(w, crlf)
	bytesWritten += int64(n)
	if err != nil {
		return bytesWritten, err
	}

	// Write content block and record trailer
	n, err = w.Write(record.Content())
	bytesWritten += int64(n)
	if err != nil {
		return bytesWritten, err
	}
	n, err = io.WriteString(w, crlfcrlf)
	bytesWritten += int64(n)
	return bytesWritten, err
}
