package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

// MaxSize bounds how many bytes are read from any single source.
const MaxSize = 64 << 20

var ErrTooLarge = errors.New("source too large")

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Read returns the content named by name: "-" for stdin, an http or https URL,
// or a file path. Relative paths not found in the working directory are
// looked up in the configured search paths.
type Read func(ctx context.Context, name string) ([]byte, error)

func (Module) Read(
	stdin Stdin,
	client nets.HTTPClient,
	searchPaths bfconfigs.SearchPaths,
	logger logs.Logger,
) Read {
	return func(ctx context.Context, name string) (ret []byte, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("read %s: %w", name, err)
			}
		}()

		switch {

		case name == "-":
			return readLimited(stdin, MaxSize)

		case strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://"):
			logger.DebugContext(ctx, "fetch source", "url", name)
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("http status %s", resp.Status)
			}
			return readLimited(resp.Body, MaxSize)

		}

		path, err := locate(name, searchPaths)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readLimited(f, MaxSize)
	}
}

func locate(name string, searchPaths []string) (string, error) {
	_, err := os.Stat(name)
	if err == nil || filepath.IsAbs(name) || !errors.Is(err, fs.ErrNotExist) {
		return name, nil
	}
	for _, dir := range searchPaths {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return name, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, ErrTooLarge
	}
	return content, nil
}
