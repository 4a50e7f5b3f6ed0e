package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Hits the health endpoint continuously and, with ADMIN_TOKEN set, the
// protected ones now and then. Without a token those must answer 401.
const defaultBaseURL = "http://localhost:8080"

var protected = []string{"/sync", "/export", "/backup"}

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	token := os.Getenv("ADMIN_TOKEN")

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(baseURL, "/health", "") })
		}
		if rand.Intn(50) == 0 {
			path := protected[rand.Intn(len(protected))]
			wg.Go(func() { doRequest(baseURL, path, token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(baseURL, path, token string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", path, "->", resp.Status)
	resp.Body.Close()
}
