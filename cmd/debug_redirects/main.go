package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"url-reconciler/core/canonical"
	"url-reconciler/core/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_redirects <url>...")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	rc := cfg.Resolver

	for _, raw := range os.Args[1:] {
		fmt.Printf("=== %s ===\n", raw)

		var hops []string
		client := &http.Client{
			Timeout: rc.Timeout(),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				hops = append(hops, req.URL.String())
				if len(via) > rc.MaxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}

		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
		if err != nil {
			fmt.Printf("Invalid URL: %v\n\n", err)
			continue
		}
		req.Header.Set("User-Agent", rc.UserAgent)
		req.Header.Set("Accept", rc.Accept)
		req.Header.Set("Accept-Language", rc.AcceptLanguage)

		resp, err := client.Do(req)
		for i, hop := range hops {
			fmt.Printf("  hop %d: %s\n", i+1, hop)
		}
		if err != nil {
			fmt.Printf("Error: %v\n\n", err)
			continue
		}
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()

		final := resp.Request.URL.String()
		fmt.Printf("Status:    %d\n", resp.StatusCode)
		fmt.Printf("Final:     %s\n", final)
		fmt.Printf("Canonical: %s\n", canonical.Canonicalize(final))
		fmt.Printf("Host:      %s\n\n", canonical.Host(final))
	}
}
