// Package remote pushes evaluation results to a Prometheus remote write endpoint.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
	"rpncalc/series"
)

const writePath = "/api/v1/write"

type Writer struct {
	url        *url.URL
	labels     []*prometheus.Label
	httpClient http.Client
}

// NewWriter targets the remote write API below baseUrl. Every sample is
// labelled according to selector, e.g. rpncalc_result{source="repl"}.
func NewWriter(baseUrl string, selector string) (*Writer, error) {
	parsedUrl, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}
	if parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, errors.New(fmt.Sprintf("invalid remote write url: %v", baseUrl))
	}
	parsedUrl.Path = path.Join(parsedUrl.Path, writePath)

	ts, err := series.ParseSelector(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid series %v: %w", selector, err)
	}

	return &Writer{
		url:    parsedUrl,
		labels: ts.Labels,
		httpClient: http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (w *Writer) request(value float64, at time.Time) *prometheus.WriteRequest {
	return &prometheus.WriteRequest{
		Timeseries: []*prometheus.TimeSeries{{
			Labels: w.labels,
			Samples: []*prometheus.Sample{{
				Value:     value,
				Timestamp: at.UnixMilli(),
			}},
		}},
		Metadata: []*prometheus.MetricMetadata{{
			Type: prometheus.MetricMetadata_GAUGE,
		}},
	}
}

// Push sends a single sample.
func (w *Writer) Push(ctx context.Context, value float64, at time.Time) error {
	data, err := proto.Marshal(w.request(value, at))
	if err != nil {
		return err
	}
	encoded := snappy.Encode(nil, data)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url.String(), bytes.NewReader(encoded))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-protobuf")
	req.Header.Set("Content-Encoding", "snappy")
	req.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusBadRequest {
			// out of order or duplicate sample, nothing to retry
			log.Println("remote write rejected sample, ignoring it")
			return nil
		}

		return errors.New(fmt.Sprintf("unexpected remote write status code: %v", resp.StatusCode))
	}

	return nil
}
