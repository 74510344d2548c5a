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

package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pisa-engine/warcpp/cmd/warcextract/cmd/extract"
)

const warcSuffix = ".warc"

// extractWorker runs queued extractions on a fixed number of goroutines.
type extractWorker struct {
	outDir string
	format string

	mu      sync.Mutex
	pending map[string]bool
	jobs    chan string
}

func newExtractWorker(outDir string, format string, concurrency int) *extractWorker {
	w := &extractWorker{
		outDir:  outDir,
		format:  format,
		pending: make(map[string]bool),
		jobs:    make(chan string),
	}
	for i := 0; i < concurrency; i++ {
		go w.run()
	}
	return w
}

// Queue schedules a WARC file for extraction after the given delay.
// Repeated events for a file already queued collapse into one job; the
// delay lets a file being written settle before it is read.
func (w *extractWorker) Queue(fileName string, delay time.Duration) {
	if !strings.HasSuffix(fileName, warcSuffix) {
		return
	}
	w.mu.Lock()
	if w.pending[fileName] {
		w.mu.Unlock()
		return
	}
	w.pending[fileName] = true
	w.mu.Unlock()

	time.AfterFunc(delay, func() {
		w.jobs <- fileName
	})
}

func (w *extractWorker) run() {
	for fileName := range w.jobs {
		w.mu.Lock()
		delete(w.pending, fileName)
		w.mu.Unlock()

		outName := w.outputName(fileName)
		records, failed, err := extract.Extract(fileName, outName, w.format)
		if err != nil {
			log.Errorf("extracting %v: %v", fileName, err)
			continue
		}
		log.Infof("extracted %v to %v: %d records, %d parse errors", fileName, outName, records, failed)
	}
}

func (w *extractWorker) outputName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), warcSuffix)
	return filepath.Join(w.outDir, base+"."+w.format)
}
