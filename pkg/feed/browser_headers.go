package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains browser Accept-Language values, boards are served in korean
var acceptLanguages = []string{
	"ko-KR,ko;q=0.9",
	"ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
	"ko,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,ko;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching.
// some board hosts reject requests without them
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Connection", "keep-alive")
}
