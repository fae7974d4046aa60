package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gifsaver/pkg/errors"
	"gifsaver/pkg/logger"
	"gifsaver/pkg/storage"
)

// Job is a single file to fetch
type Job struct {
	URL  string
	Dest string
}

// Result describes a finished download
type Result struct {
	Job      Job
	Size     int64
	Duration time.Duration
}

// Downloader fetches media files and persists them to disk. A download
// returns only after the file is fully written and renamed into place.
type Downloader struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// New creates a downloader whose requests time out after timeout
func New(timeout time.Duration, log logger.Logger) *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			"Accept":     "image/gif,image/*;q=0.9,*/*;q=0.8",
			"User-Agent": "gifsaver/1.0",
		},
		logger: logger.OrDefault(log),
	}
}

// SetHeader sets a header sent with every media request
func (d *Downloader) SetHeader(key, value string) {
	d.headers[key] = value
}

// Download fetches url and writes the body to dest, replacing any existing
// file. It returns the number of bytes written.
func (d *Downloader) Download(ctx context.Context, url, dest string) (int64, error) {
	result, err := d.Run(ctx, Job{URL: url, Dest: dest})
	return result.Size, err
}

// Run executes job
func (d *Downloader) Run(ctx context.Context, job Job) (Result, error) {
	start := time.Now()
	result := Result{Job: job}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.URL, nil)
	if err != nil {
		return result, &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Err:     err,
		}
	}
	for key, value := range d.headers {
		req.Header.Set(key, value)
	}

	d.logger.DebugWithFields("downloading media", map[string]interface{}{
		"url":  job.URL,
		"dest": job.Dest,
	})

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.ErrorWithFields("media request failed", map[string]interface{}{
			"url":   job.URL,
			"error": err.Error(),
		})
		return result, errors.Network("media request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.WarnWithFields("media request rejected", map[string]interface{}{
			"url":    job.URL,
			"status": resp.StatusCode,
		})
		return result, &errors.Error{
			Type:    errors.FromStatusCode(resp.StatusCode),
			Message: fmt.Sprintf("unexpected status downloading %s: %s", job.URL, http.StatusText(resp.StatusCode)),
			Code:    resp.StatusCode,
		}
	}

	body := &trackingReader{r: resp.Body}
	written, err := storage.WriteFileAtomic(job.Dest, body)
	result.Size = written
	result.Duration = time.Since(start)
	if err != nil {
		if body.err != nil {
			err = errors.Network("failed to read media body", body.err)
		} else if !errors.IsType(err, errors.ErrorTypeFileSystem) {
			err = errors.FileSystem("failed to write media file", err)
		}
		d.logger.ErrorWithFields("media download failed", map[string]interface{}{
			"url":   job.URL,
			"dest":  job.Dest,
			"error": err.Error(),
		})
		return result, err
	}

	d.logger.DebugWithFields("media saved", map[string]interface{}{
		"dest":     job.Dest,
		"size":     written,
		"duration": result.Duration,
	})

	return result, nil
}

// trackingReader remembers the first read error so a failed copy can be
// attributed to the network rather than the disk
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
