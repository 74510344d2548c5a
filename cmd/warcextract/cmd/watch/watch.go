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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	warc "github.com/pisa-engine/warcpp"
)

type conf struct {
	outDir     string
	format     string
	watchDepth int
	dirs       []string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "watch <dir>...",
		Short: "Watch directories and extract new WARC files as they appear",
		Long: `Watch directories and extract every WARC file created or modified in
them. Directories may also be configured with the warcdir config key.
Extracted output is named after the input file and written to the output
directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.dirs = args
			if len(c.dirs) == 0 {
				c.dirs = viper.GetStringSlice("warcdir")
			}
			if len(c.dirs) == 0 {
				return errors.New("no directories to watch")
			}
			return runE(c)
		},
	}

	cmd.Flags().StringVarP(&c.outDir, "output-dir", "o", ".", "directory for extracted output")
	cmd.Flags().StringVarP(&c.format, "format", "f", warc.FormatTSV, "output format (tsv, json or warc)")
	cmd.Flags().IntVar(&c.watchDepth, "depth", 4, "how deep into subdirectories to watch")

	return cmd
}

func runE(c *conf) error {
	w := &watcher{
		worker:     newExtractWorker(c.outDir, c.format, 2),
		watchDepth: c.watchDepth,
	}
	return w.watch(c.dirs)
}

type watcher struct {
	fsWatcher  *fsnotify.Watcher
	worker     *extractWorker
	watchDepth int
}

const queueDelay = 10 * time.Second

func (w *watcher) watch(dirs []string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.fsWatcher.Close()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				if strings.HasSuffix(event.Name, "~") {
					continue
				}

				if event.Op&fsnotify.Write == fsnotify.Write {
					log.Debugf("modified file: %v", event.Name)
					w.worker.Queue(event.Name, queueDelay)
				} else if event.Op&fsnotify.Create == fsnotify.Create {
					fStat, statErr := os.Stat(event.Name)
					if statErr != nil {
						log.Error(statErr)
						continue
					}

					if fStat.Mode().IsDir() {
						if watchErr := w.fsWatcher.Add(event.Name); watchErr != nil {
							log.Errorf("could not watch new directory '%v': %v", event.Name, watchErr)
						}
						continue
					}
					w.worker.Queue(event.Name, queueDelay)
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Error(err)
			}
		}
	}()

	for _, wd := range dirs {
		if err := w.addAndExtractDir(wd, 0); err != nil {
			return err
		}
	}
	<-done
	return nil
}

// Recursively add a directory to the watcher and queue the WARC files
// already in it.
func (w *watcher) addAndExtractDir(path string, currentDepth int) error {
	if err := w.fsWatcher.Add(path); err != nil {
		return err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), "~") {
			continue
		}

		name := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if currentDepth < w.watchDepth {
				if err := w.addAndExtractDir(name, currentDepth+1); err != nil {
					return err
				}
			}
			continue
		}
		w.worker.Queue(name, 0)
	}
	return nil
}
