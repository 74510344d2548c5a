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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarcFileReader_Next(t *testing.T) {
	input := trecResponse("clueweb09-en0000-00-00000", "AAAA") +
		trecResponse("clueweb09-en0000-00-00001", "BBBB")

	wf := NewReader(strings.NewReader(input))

	first, _, err := wf.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb09-en0000-00-00000", first.TrecID())

	second, _, err := wf.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb09-en0000-00-00001", second.TrecID())
	assert.Equal(t, int64(len(input)), wf.Offset())

	_, _, err = wf.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWarcFileReader_Next_resynchronizesAfterError(t *testing.T) {
	input := trecResponse("clueweb09-en0000-00-00000", "AAAA") +
		"garbage\nmore garbage\n" +
		trecResponse("clueweb09-en0000-00-00001", "BBBB")

	wf := NewReader(strings.NewReader(input))

	first, _, err := wf.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb09-en0000-00-00000", first.TrecID())

	_, _, err = wf.Next()
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, InvalidVersion, parseErr.Kind())

	// The call after an error recovers on the next record boundary.
	second, _, err := wf.Next()
	require.NoError(t, err)
	assert.Equal(t, "clueweb09-en0000-00-00001", second.TrecID())
	assert.Equal(t, "BBBB", string(second.Content()))

	_, _, err = wf.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNewWarcFileReader(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.warc")
	require.NoError(t, os.WriteFile(fileName, []byte(warcinfoRecord()), 0644))

	wf, err := NewWarcFileReader(fileName)
	require.NoError(t, err)
	defer func() { assert.NoError(t, wf.Close()) }()

	record, _, err := wf.Next()
	require.NoError(t, err)
	assert.Equal(t, "0.18", record.Version())
	assert.True(t, record.Valid())

	_, _, err = wf.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNewWarcFileReader_missingFile(t *testing.T) {
	_, err := NewWarcFileReader(filepath.Join(t.TempDir(), "no-such-file.warc"))
	assert.Error(t, err)
}
