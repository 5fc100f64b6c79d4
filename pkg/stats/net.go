package stats

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Log receives progress lines for downloads and table extraction.
var Log = log.New(io.Discard, "", 0)

// Sleep to not hammer the census site!
var downloadDelay = 250 * time.Millisecond

func download(url string) ([]byte, error) {
	Log.Printf("Download: '%s'", url)

	time.Sleep(downloadDelay)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
