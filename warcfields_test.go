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

func TestFields(t *testing.T) {
	f := Fields{}
	f.Set("WARC-Type", "response")
	f.Set("Content-Length", "42")

	assert.True(t, f.Has("warc-type"))
	assert.True(t, f.Has("WARC-TYPE"))
	assert.Equal(t, "response", f.Get("Warc-Type"))
	assert.Equal(t, "", f.Get("no-such-field"))

	f.Set("warc-type", "request")
	assert.Equal(t, "request", f.Get("WARC-Type"))

	f.Delete("WARC-Type")
	assert.False(t, f.Has("warc-type"))
}

func TestFields_Write(t *testing.T) {
	f := Fields{
		"warc-type":      "response",
		"content-length": "42",
	}

	// Output is sorted by name for deterministic serialization.
	want := "content-length: 42\r\nwarc-type: response\r\n"
	assert.Equal(t, want, f.String())
	assert.Equal(t, []string{"content-length", "warc-type"}, f.Names())
}
