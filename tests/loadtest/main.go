package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8080"
	numWorkers   = 25
	testDuration = 10 * time.Second
	numUsers     = 50
)

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== reddit-stats Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Users: %d\n\n", numWorkers, testDuration, numUsers)

	fmt.Print("Waiting for server... ")
	if !waitForServer() {
		fmt.Println("server not reachable, aborting")
		return
	}
	fmt.Println("ok")

	// Prime one snapshot payload so workers can exercise /snapshot too.
	share := fetchShare("loadtest_user_0")
	if share == "" {
		fmt.Println("warning: no share payload available, /snapshot will be skipped")
	}

	results := make(chan result, 10_000)
	var wg sync.WaitGroup
	var stop atomic.Bool

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(worker)))
			for !stop.Load() {
				if share != "" && rng.Intn(3) == 0 {
					results <- hit("/snapshot", url.Values{"s": {share}})
				} else {
					user := fmt.Sprintf("loadtest_user_%d", rng.Intn(numUsers))
					results <- hit("/stats", url.Values{"user": {user}})
				}
			}
		}(i)
	}

	collected := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := collected[r.endpoint]
			if !ok {
				s = &stats{}
				collected[r.endpoint] = s
			}
			s.count++
			if r.err || r.status >= 400 {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(testDuration)
	stop.Store(true)
	wg.Wait()
	close(results)
	<-done

	report(collected)
}

func waitForServer() bool {
	for i := 0; i < 20; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}
		time.Sleep(500 * time.Millisecond)
	}
	return false
}

func fetchShare(user string) string {
	resp, err := httpClient.Get(baseURL + "/stats?user=" + url.QueryEscape(user))
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	var body struct {
		Share string `json:"share"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil || json.Unmarshal(raw, &body) != nil {
		return ""
	}
	return body.Share
}

func hit(endpoint string, query url.Values) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + endpoint + "?" + query.Encode())
	latency := time.Since(start)
	if err != nil {
		return result{endpoint: endpoint, latency: latency, err: true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint: endpoint, status: resp.StatusCode, latency: latency}
}

func report(collected map[string]*stats) {
	endpoints := make([]string, 0, len(collected))
	for e := range collected {
		endpoints = append(endpoints, e)
	}
	sort.Strings(endpoints)

	fmt.Println("\n--- Results ---")
	for _, e := range endpoints {
		s := collected[e]
		sort.Slice(s.latencies, func(i, j int) bool { return s.latencies[i] < s.latencies[j] })
		fmt.Printf("%-10s requests=%d errors=%d rps=%.0f p50=%s p95=%s p99=%s\n",
			e, s.count, s.errors, float64(s.count)/testDuration.Seconds(),
			percentile(s.latencies, 50), percentile(s.latencies, 95), percentile(s.latencies, 99))
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
