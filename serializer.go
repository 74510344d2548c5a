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
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Serializer is the interface that wraps the Marshal function.
//
// Marshal converts a record to the serializer's output form and returns the
// number of bytes written. Records that are not valid response records are
// skipped: Marshal writes nothing and returns 0.
type Serializer interface {
	Marshal(w io.Writer, record *Record) (int64, error)
}

// Serializer names accepted by NewSerializer.
const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatWARC = "warc"
)

// NewSerializer returns the serializer registered under the given format
// name, or an error for an unsupported name.
func NewSerializer(format string) (Serializer, error) {
	switch format {
	case FormatTSV:
		return &tsvSerializer{}, nil
	case FormatJSON:
		return &jsonSerializer{}, nil
	case FormatWARC:
		return &warcSerializer{}, nil
	default:
		return nil, fmt.Errorf("warc: unsupported format: %s", format)
	}
}

// tsvSerializer emits one "trecid <TAB> url <TAB> content" line per valid
// response record. Because lines delimit records, newline characters in the
// content are replaced by the literal sequence \u000A.
type tsvSerializer struct {
}

func (s *tsvSerializer) Marshal(w io.Writer, record *Record) (int64, error) {
	if !record.ValidResponse() {
		return 0, nil
	}
	content := strings.ReplaceAll(string(record.Content()), "\n", `\u000A`)
	n, err := fmt.Fprintf(w, "%s\t%s\t%s\n", record.TrecID(), record.TargetURI(), content)
	return int64(n), err
}

// jsonSerializer emits one JSON object per line for every valid response
// record.
type jsonSerializer struct {
}

type jsonRecord struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Body  string `json:"body"`
}

func (s *jsonSerializer) Marshal(w io.Writer, record *Record) (int64, error) {
	if !record.ValidResponse() {
		return 0, nil
	}
	b, err := json.Marshal(jsonRecord{
		Title: record.TrecID(),
		URL:   record.TargetURI(),
		Body:  string(record.Content()),
	})
	if err != nil {
		return 0, err
	}
	b = append(b, lf)
	n, err := w.Write(b)
	return int64(n), err
}
