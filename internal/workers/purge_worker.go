// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/service"
)

// purgeWorker periodically hard-deletes blobs that were soft-deleted
// longer than retention ago. Deletion on the API only flags a row; this
// worker is the part that actually reclaims the space.
type purgeWorker struct {
	fileService service.FileService

	interval  time.Duration
	retention time.Duration

	stop chan struct{}
	wg   sync.WaitGroup

	logger *logger.Logger
}

func NewPurgeWorker(fileService service.FileService, interval, retention time.Duration, logger *logger.Logger) Worker {
	return &purgeWorker{
		fileService: fileService,
		interval:    interval,
		retention:   retention,
		stop:        make(chan struct{}),
		logger:      logger,
	}
}

func (w *purgeWorker) Run() {
	w.logger.Info().
		Dur("interval", w.interval).
		Dur("retention", w.retention).
		Msg("purge worker started")

	w.wg.Add(1)
	go w.loop()
}

func (w *purgeWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
	w.logger.Info().Msg("purge worker stopped")
}

func (w *purgeWorker) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *purgeWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	purged, err := w.fileService.PurgeDeletedFiles(ctx, w.retention)
	if err != nil {
		w.logger.Err(err).Str("func", "*purgeWorker.purge").Msg("purge run failed")
		return
	}

	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("purge run completed")
	}
}
