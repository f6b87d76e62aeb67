package dataset

import (
	"os"
	"strings"

	"github.com/tinywasm/fetch"

	"github.com/tinywasm/chart/errs"
)

// Load reads the table source at path, which is either a local file or an
// http(s) URL.
func Load(path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return loadURL(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New("load:", err)
	}
	return data, nil
}

type urlResult struct {
	data []byte
	err  error
}

// loadURL fetches a remote table, bridging the callback-style client into
// a blocking call.
func loadURL(path string) ([]byte, error) {
	done := make(chan urlResult, 1)
	fetch.Get(path).Send(func(resp *fetch.Response, err error) {
		done <- urlResponse(path, resp, err)
	})
	r := <-done
	return r.data, r.err
}

// urlResponse turns one fetch callback into a Load result, rejecting
// every status but 200.
func urlResponse(path string, resp *fetch.Response, err error) urlResult {
	if err != nil {
		return urlResult{err: errs.New("load:", path, ':', err)}
	}
	if resp.Status != 200 {
		return urlResult{err: errs.New("load:", path, ": status", resp.Status)}
	}
	return urlResult{data: resp.Body()}
}
