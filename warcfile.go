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
	"os"

	"github.com/pisa-engine/warcpp/internal/countingreader"
)

// WarcFileReader reads records sequentially from a WARC file or stream.
// After a parse error, the next call to Next resynchronizes to the next
// version line instead of assuming the cursor is record aligned.
type WarcFileReader struct {
	file           io.Closer
	countingReader *countingreader.Reader
	bufferedReader *bufio.Reader
	unmarshaler    Unmarshaler
	resync         bool
}

// NewWarcFileReader opens the named WARC file for reading. The name "-"
// reads from stdin.
func NewWarcFileReader(filename string, opts ...Option) (*WarcFileReader, error) {
	if filename == "-" {
		return NewReader(os.Stdin, opts...), nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	wf := NewReader(file, opts...)
	wf.file = file
	return wf, nil
}

// NewReader returns a WarcFileReader reading from r. The reader does not
// own r; Close is a no-op unless the WarcFileReader was opened by filename.
func NewReader(r io.Reader, opts ...Option) *WarcFileReader {
	o := newOptions(opts...)
	c := countingreader.New(r)
	return &WarcFileReader{
		countingReader: c,
		bufferedReader: bufio.NewReaderSize(c, o.bufferSize),
		unmarshaler:    NewUnmarshaler(opts...),
	}
}

// Next returns the next record from the stream. At end of stream it returns
// io.EOF. On a malformed record it returns the ParseError and arranges for
// the following call to resynchronize to the next version line, so a caller
// may simply log the error and call Next again.
func (wf *WarcFileReader) Next() (*Record, *Validation, error) {
	if _, err := wf.bufferedReader.Peek(1); err != nil {
		return nil, nil, err
	}

	var record *Record
	var validation *Validation
	var err error
	if wf.resync {
		record, validation, err = wf.unmarshaler.Resync(wf.bufferedReader)
	} else {
		record, validation, err = wf.unmarshaler.Unmarshal(wf.bufferedReader)
	}
	wf.resync = err != nil
	return record, validation, err
}

// Offset returns the stream position of the next unconsumed byte.
func (wf *WarcFileReader) Offset() int64 {
	return wf.countingReader.N() - int64(wf.bufferedReader.Buffered())
}

func (wf *WarcFileReader) Close() error {
	if wf.file != nil {
		return wf.file.Close()
	}
	return nil
}
