package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/nets"
)

// Source is program text and where it came from.
type Source struct {
	Location string
	Text     string
}

const maxSourceSize = 64 << 20

var ErrTooLarge = errors.New("source too large")

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Load func(ctx context.Context, location string) (Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret Source, err error) {
		ret.Location = location

		var r io.Reader
		switch {

		case location == "-":
			r = stdin

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
			if err != nil {
				return ret, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return ret, err
			}
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return ret, fmt.Errorf("fetch %s: %s", location, resp.Status)
			}
			logger.DebugContext(ctx, "fetched source",
				"url", location,
				"length", resp.ContentLength,
			)
			r = resp.Body

		default:
			f, err := os.Open(location)
			if err != nil {
				return ret, err
			}
			defer f.Close()
			r = f

		}

		content, err := io.ReadAll(io.LimitReader(r, maxSourceSize+1))
		if err != nil {
			return ret, fmt.Errorf("read %s: %w", location, err)
		}
		if len(content) > maxSourceSize {
			return ret, fmt.Errorf("%s: %w", location, ErrTooLarge)
		}
		ret.Text = string(content)
		return ret, nil
	}
}
