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

package extract

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/klauspost/compress/gzip"
	"github.com/prometheus/tsdb/fileutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	warc "github.com/pisa-engine/warcpp"
)

type conf struct {
	format   string
	fileName string
	outName  string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "extract <input> [output]",
		Short: "Parse a WARC file and output records in a selected text format",
		Long: `Parse a WARC file and output valid response records in a selected text
format. Use - as input to read from stdin; if output is missing, records are
written to stdout. Because lines delimit records in the tsv output, any
newline characters in the content are replaced by a \u000A sequence.

Parse errors are logged and the reader resynchronizes to the next record
instead of aborting. An output file ending in .gz is gzip compressed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.fileName = args[0]
			if len(args) > 1 {
				c.outName = args[1]
			}
			return runE(c)
		},
	}

	cmd.Flags().StringVarP(&c.format, "format", "f", warc.FormatTSV, "output format (tsv, json or warc)")

	return cmd
}

func runE(c *conf) error {
	records, failed, err := Extract(c.fileName, c.outName, c.format)
	if err != nil {
		return err
	}
	summary := color.New(color.FgGreen)
	if failed > 0 {
		summary = color.New(color.FgRed)
	}
	_, _ = summary.Fprintf(os.Stderr, "Records: %d, parse errors: %d\n", records, failed)
	return nil
}

// Extract parses the named WARC input and writes serialized records to
// outName, where "" or "-" means stdout. It returns the number of records
// parsed and the number of malformed records skipped.
func Extract(fileName string, outName string, format string) (records int, failed int, err error) {
	serializer, err := warc.NewSerializer(format)
	if err != nil {
		return 0, 0, err
	}

	wf, err := warc.NewWarcFileReader(fileName)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = wf.Close() }()

	out, finish, err := openOutput(outName)
	if err != nil {
		return 0, 0, err
	}

	for {
		record, validation, err := wf.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *warc.ParseError
			if errors.As(err, &parseErr) {
				failed++
				log.Warnf("skipping record at offset %d: %v", wf.Offset(), parseErr)
				if errors.Is(err, io.EOF) {
					break
				}
				continue
			}
			return records, failed, err
		}
		if len(*validation) > 0 {
			log.Debug(validation)
		}
		if _, err := serializer.Marshal(out, record); err != nil {
			return records, failed, err
		}
		records++
	}
	return records, failed, finish()
}

// Output files are written under a temporary name and atomically renamed
// into place when extraction completes.
const openFileSuffix = ".open"

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	f, err := os.Create(name + openFileSuffix)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	bw := bufio.NewWriter(w)
	finish := func() error {
		if err := bw.Flush(); err != nil {
			return err
		}
		if gz != nil {
			if err := gz.Close(); err != nil {
				return err
			}
		}
		if err := f.Close(); err != nil {
			return err
		}
		return fileutil.Rename(f.Name(), name)
	}
	return bw, finish, nil
}
