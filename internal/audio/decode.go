package audio

import (
	"bytes"
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

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// maxTrackBytes bounds a downloaded track.
const maxTrackBytes = 64 << 20

// opener produces a fresh decoded stream of a track.
type opener func(ctx context.Context) (beep.StreamSeekCloser, beep.Format, error)

// decode picks a decoder by file extension. rc is closed on failure.
func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(rc)
	case ".mp3":
		streamer, format, err = mp3.Decode(rc)
	case ".flac":
		streamer, format, err = flac.Decode(rc)
	default:
		_ = rc.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = rc.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", ext, err)
	}
	return streamer, format, nil
}

// readSeekNopCloser keeps Seek visible to decoders that loop by seeking.
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

func fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if len(body) > maxTrackBytes {
		return nil, fmt.Errorf("fetch %s: track larger than %d bytes", rawURL, maxTrackBytes)
	}
	return body, nil
}

func urlOpener(client *http.Client, rawURL string) opener {
	return func(ctx context.Context) (beep.StreamSeekCloser, beep.Format, error) {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("parse track url: %w", err)
		}
		ext := path.Ext(u.Path)
		body, err := fetch(ctx, client, rawURL)
		if err != nil {
			return nil, beep.Format{}, err
		}
		return decode(readSeekNopCloser{bytes.NewReader(body)}, ext)
	}
}

func fileOpener(filePath string) opener {
	return func(context.Context) (beep.StreamSeekCloser, beep.Format, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, beep.Format{}, err
		}
		return decode(f, filepath.Ext(filePath))
	}
}
