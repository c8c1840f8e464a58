package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DownloadItem is a material or exam file to fetch.
type DownloadItem struct {
	Title string
	URL   string
}

// DownloadProgress reports the state of one file download.
type DownloadProgress struct {
	Title   string
	Path    string
	Written int64
	Total   int64
	Status  string // "downloading", "complete", "error"
	Error   error
}

// ErrClosed is returned by downloads started after Close.
var ErrClosed = errors.New("downloader closed")

// Downloader saves material and exam files into a directory. Close cancels
// transfers in flight and waits for them before closing the progress
// channel.
type Downloader struct {
	dir          string
	client       *http.Client
	maxParallel  int
	progressChan chan DownloadProgress

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

func NewDownloader(dir string) *Downloader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Downloader{
		dir:          dir,
		client:       &http.Client{Timeout: 5 * time.Minute},
		maxParallel:  3,
		progressChan: make(chan DownloadProgress, 100),
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (d *Downloader) WithClient(client *http.Client) *Downloader {
	d.client = client
	return d
}

func (d *Downloader) Dir() string {
	return d.dir
}

// GetProgressChannel returns the channel for receiving download progress updates
func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadAll fetches items with at most three transfers in flight.
func (d *Downloader) DownloadAll(ctx context.Context, items []DownloadItem) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, d.maxParallel)
	errorChan := make(chan error, len(items))

	for _, item := range items {
		wg.Add(1)
		go func(item DownloadItem) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if _, err := d.Download(ctx, item); err != nil {
				errorChan <- fmt.Errorf("%s: %w", item.Title, err)
			}
		}(item)
	}

	wg.Wait()
	close(errorChan)

	var errs []error
	for err := range errorChan {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Download fetches one file and returns where it was saved.
func (d *Downloader) Download(ctx context.Context, item DownloadItem) (string, error) {
	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return "", ErrClosed
	}
	d.inflight.Add(1)
	d.mu.RUnlock()
	defer d.inflight.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(d.ctx, cancel)
	defer stop()

	target := filepath.Join(d.dir, FileName(item))
	err := d.download(ctx, item, target)
	if err != nil {
		d.sendProgress(DownloadProgress{Title: item.Title, Path: target, Status: "error", Error: err})
		return "", err
	}
	return target, nil
}

func (d *Downloader) download(ctx context.Context, item DownloadItem, target string) error {
	if item.URL == "" {
		return fmt.Errorf("no download link: %w", ErrNotFound)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	tmp, err := os.CreateTemp(d.dir, ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	counter := &progressWriter{
		onWrite: func(written int64) {
			d.sendProgress(DownloadProgress{
				Title:   item.Title,
				Path:    target,
				Written: written,
				Total:   resp.ContentLength,
				Status:  "downloading",
			})
		},
	}
	written, err := io.Copy(io.MultiWriter(tmp, counter), resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return err
	}

	d.sendProgress(DownloadProgress{
		Title:   item.Title,
		Path:    target,
		Written: written,
		Total:   written,
		Status:  "complete",
	})
	return nil
}

// FileName picks the saved file name: the last segment of the link when it
// has an extension, the sanitized title otherwise.
func FileName(item DownloadItem) string {
	if u, err := url.Parse(item.URL); err == nil {
		base := path.Base(u.Path)
		if path.Ext(base) != "" && base != "." && base != "/" {
			return sanitize(base)
		}
	}
	name := sanitize(item.Title)
	if name == "" {
		name = "download"
	}
	return name + ".pdf"
}

func sanitize(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

type progressWriter struct {
	written int64
	onWrite func(written int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	w.onWrite(w.written)
	return len(p), nil
}

// sendProgress sends a progress update (non-blocking)
func (d *Downloader) sendProgress(progress DownloadProgress) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.progressChan <- progress:
	default:
	}
}

// Close stops transfers in flight, waits for them and closes the progress
// channel. It is safe to call more than once.
func (d *Downloader) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.inflight.Wait()
	close(d.progressChan)
}
