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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_warcSerializer_Marshal_roundTrip(t *testing.T) {
	record := &Record{
		version: "1.0",
		headers: Fields{
			"warc-type":       "response",
			"content-length":  "12",
			"warc-target-uri": "http://example.com/",
			"warc-trec-id":    "clueweb09-en0000-00-00000",
			"warc-record-id":  "<urn:uuid:5262e3ba-a830-45f2-85ad-cc5c90a213d9>",
		},
		content: []byte("BODY\r\n\r\nDATA"),
	}

	s := &warcSerializer{}
	buf := &bytes.Buffer{}
	n, err := s.Marshal(buf, record)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	u := NewUnmarshaler()
	got, _, err := u.Unmarshal(bufio.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, record.Version(), got.Version())
	assert.Equal(t, record.Header(), got.Header())
	assert.Equal(t, record.Content(), got.Content())
}

func Test_warcSerializer_Marshal_generatesRecordID(t *testing.T) {
	defer func(f func() string) { newRecordID = f }(newRecordID)
	newRecordID = func() string { return "<urn:uuid:00000000-0000-0000-0000-000000000000>" }

	record := validResponseRecord("")

	s := &warcSerializer{}
	buf := &bytes.Buffer{}
	_, err := s.Marshal(buf, record)
	require.NoError(t, err)

	// The source record is not mutated; the id only appears on the wire.
	assert.False(t, record.Header().Has(WarcRecordID))

	u := NewUnmarshaler()
	got, _, err := u.Unmarshal(bufio.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, "<urn:uuid:00000000-0000-0000-0000-000000000000>", got.Header().Get(WarcRecordID))
}
