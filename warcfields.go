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
	"sort"
	"strings"
)

// Fields is the header field mapping of a record. Field names are
// normalized to lowercase at insertion time so that lookup is case
// insensitive. Names are unique; setting an existing name overwrites
// the prior value.
type Fields map[string]string

// Get gets the value associated with the given field name.
// If the field doesn't exist, Get returns "".
func (f Fields) Get(name string) string {
	return f[strings.ToLower(name)]
}

// Has reports whether the field exists.
func (f Fields) Has(name string) bool {
	_, ok := f[strings.ToLower(name)]
	return ok
}

// Set sets the field to value, replacing any existing value.
func (f Fields) Set(name string, value string) {
	f[strings.ToLower(name)] = value
}

// Delete removes the field.
func (f Fields) Delete(name string) {
	delete(f, strings.ToLower(name))
}

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write writes the fields in wire format, one "name: value" line per
// field, sorted by name for deterministic output.
func (f Fields) Write(w io.Writer) (bytesWritten int64, err error) {
	var n int
	for _, name := range f.Names() {
		n, err = fmt.Fprintf(w, "%s: %s\r\n", name, f[name])
		bytesWritten += int64(n)
		if err != nil {
			return
		}
	}
	return
}

func (f Fields) String() string {
	sb := &strings.Builder{}
	if _, err := f.Write(sb); err != nil {
		panic(err)
	}
	return sb.String()
}
