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
)

const (
	sphtcrlf = " \t\r\n"  // Space, Tab, Carriage return, Newline
	cr       = '\r'       // Carriage return
	lf       = '\n'       // Newline
	crlf     = "\r\n"     // Carriage return, Newline
	crlfcrlf = "\r\n\r\n" // Carriage return, Newline, Carriage return, Newline
)

// versionPrefix starts the first line of every record.
const versionPrefix = "WARC/"

// Well known header field names as stored in Fields, i.e. lowercased.
const (
	ContentLength = "content-length"
	ContentType   = "content-type"
	WarcDate      = "warc-date"
	WarcRecordID  = "warc-record-id"
	WarcTargetURI = "warc-target-uri"
	WarcTrecID    = "warc-trec-id"
	WarcType      = "warc-type"
)

const typeResponse = "response"

// Record is one parsed WARC record: the version line suffix, the header
// fields and the raw content block. A Record is populated by an Unmarshaler
// and is not modified by this package afterwards.
type Record struct {
	version string
	headers Fields
	content []byte
}

// Version returns the text following the "WARC/" prefix of the version line.
func (r *Record) Version() string { return r.version }

// Header returns the record's header fields.
func (r *Record) Header() Fields { return r.headers }

// Content returns the raw content block. No decoding of any kind is applied.
func (r *Record) Content() []byte { return r.content }

// Type returns the value of the WARC-Type field.
func (r *Record) Type() string { return r.headers.Get(WarcType) }

// TargetURI returns the value of the WARC-Target-URI field.
func (r *Record) TargetURI() string { return r.headers.Get(WarcTargetURI) }

// TrecID returns the value of the WARC-TREC-ID field.
func (r *Record) TrecID() string { return r.headers.Get(WarcTrecID) }

// Valid reports whether the record carries the mandatory fields
// WARC-Type and Content-Length.
func (r *Record) Valid() bool {
	return r.headers.Has(WarcType) && r.headers.Has(ContentLength)
}

// ValidResponse reports whether the record is a valid response record,
// i.e. it is Valid, carries WARC-Target-URI and WARC-TREC-ID and its
// type is "response".
func (r *Record) ValidResponse() bool {
	return r.Valid() &&
		r.headers.Has(WarcTargetURI) &&
		r.headers.Has(WarcTrecID) &&
		r.Type() == typeResponse
}

func (r *Record) String() string {
	return fmt.Sprintf("WARC record: version: %s, type: %s, id: %s", r.version, r.Type(), r.headers.Get(WarcRecordID))
}
