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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Valid(t *testing.T) {
	tests := []struct {
		name              string
		headers           Fields
		wantValid         bool
		wantValidResponse bool
	}{
		{"warcinfo record",
			Fields{"warc-type": "warcinfo", "content-length": "0"},
			true, false},
		{"response record with all mandatory fields",
			Fields{
				"warc-type":       "response",
				"content-length":  "0",
				"warc-target-uri": "http://example.com/",
				"warc-trec-id":    "clueweb09-en0000-00-00000",
			},
			true, true},
		{"response record without trec id",
			Fields{
				"warc-type":       "response",
				"content-length":  "0",
				"warc-target-uri": "http://example.com/",
			},
			true, false},
		{"request record with response fields",
			Fields{
				"warc-type":       "request",
				"content-length":  "0",
				"warc-target-uri": "http://example.com/",
				"warc-trec-id":    "clueweb09-en0000-00-00000",
			},
			true, false},
		{"missing warc-type",
			Fields{"content-length": "0"},
			false, false},
		{"missing content-length",
			Fields{"warc-type": "response"},
			false, false},
		{"no fields at all",
			Fields{},
			false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &Record{version: "1.0", headers: tt.headers}
			assert.Equal(t, tt.wantValid, record.Valid())
			assert.Equal(t, tt.wantValidResponse, record.ValidResponse())
		})
	}
}

func TestRecord_accessors(t *testing.T) {
	record := &Record{
		version: "0.18",
		headers: Fields{
			"warc-type":       "response",
			"content-length":  "4",
			"warc-target-uri": "http://example.com/",
			"warc-trec-id":    "clueweb09-en0000-00-00000",
		},
		content: []byte("BODY"),
	}

	assert.Equal(t, "0.18", record.Version())
	assert.Equal(t, "response", record.Type())
	assert.Equal(t, "http://example.com/", record.TargetURI())
	assert.Equal(t, "clueweb09-en0000-00-00000", record.TrecID())
	assert.Equal(t, []byte("BODY"), record.Content())
}
