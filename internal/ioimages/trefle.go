// Package ioimages finds plant images in the Trefle service and stores
// them in the catalog.
package ioimages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/images"
)

type trefle struct {
	baseURL string
	token   string
	client  *http.Client
}

// trefleResponse is the part of /plants/search answer herbdb uses.
type trefleResponse struct {
	Data []struct {
		ID             int    `json:"id"`
		CommonName     string `json:"common_name"`
		ScientificName string `json:"scientific_name"`
		ImageURL       string `json:"image_url"`
	} `json:"data"`
}

// NewTrefle creates a Lookup that queries Trefle REST API.
func NewTrefle(cfg config.ImagesConfig) images.Lookup {
	return &trefle{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (t *trefle) Find(
	ctx context.Context,
	scientificName, commonName string,
) (*images.Candidate, error) {
	for _, name := range []string{scientificName, commonName} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		res, err := t.search(ctx, name)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// search returns the first record that has an image.
func (t *trefle) search(
	ctx context.Context,
	name string,
) (*images.Candidate, error) {
	q := url.Values{}
	q.Set("token", t.token)
	q.Set("q", name)
	u := t.baseURL + "/plants/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, RequestError(name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, RequestError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ResponseError(name, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(name, err)
	}

	var tr trefleResponse
	if err = (gnfmt.GNjson{}).Decode(body, &tr); err != nil {
		return nil, ResponseError(name, resp.StatusCode,
			fmt.Errorf("decode: %w", err))
	}

	slog.Debug("Trefle search", "q", name, "records", len(tr.Data))
	for _, d := range tr.Data {
		if d.ImageURL == "" {
			continue
		}
		return &images.Candidate{
			Ref:            strconv.Itoa(d.ID),
			ScientificName: d.ScientificName,
			CommonName:     d.CommonName,
			ImageURL:       d.ImageURL,
		}, nil
	}
	return nil, nil
}
