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

/*
Package warc parses WARC records out of sequential streams such as the
ClueWeb/TREC web corpora and recovers from corrupted records by
resynchronizing on the next record boundary.

# Parse WARC records

The [Unmarshaler] parses single records off a buffered stream. It is
initialized with [NewUnmarshaler]. Unmarshal expects the stream to be
positioned at the start of a record; Resync scans forward to the next
version line first, which is how a caller recovers after a [ParseError].

The [WarcFileReader] reads whole files (or stdin) and drives the
strict/recovering choice automatically. It is initialized with
[NewWarcFileReader].

# Errors

All malformed-record conditions are reported as a [ParseError] with an
exhaustive [ErrorKind]. A parse error never aborts the stream: the caller
decides whether to log and resynchronize or to stop. A ParseError caused by
stream exhaustion unwraps to io.EOF.

# Serialize records

A [Serializer] converts valid response records to an output form: tab
separated lines, JSON objects or filtered WARC wire format. It is obtained
from [NewSerializer].
*/
package warc
