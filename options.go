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

type options struct {
	targetURICheck bool
	bufferSize     int
}

// Option configures deserialization and serialization of WARC records.
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func defaultOptions() options {
	return options{
		targetURICheck: true,
		bufferSize:     64 * 1024,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &o
}

// WithTargetURICheck decides if the WARC-Target-URI field is checked for
// well-formedness. A failed check is reported as a validation warning,
// never as a parse error.
// Defaults to true.
func WithTargetURICheck(check bool) Option {
	return newFuncOption(func(o *options) {
		o.targetURICheck = check
	})
}

// WithBufferSize sets the read buffer size used by WarcFileReader.
// Defaults to 64kB.
func WithBufferSize(size int) Option {
	return newFuncOption(func(o *options) {
		o.bufferSize = size
	})
}
