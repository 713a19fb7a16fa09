package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var maxBoats int = 1000
var httpHostPort string = "127.0.0.1:1080"
var jwtSecret string = "change-me"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func signToken(userID string) string {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  fmt.Sprintf("%s@bench.local", userID),
		"name":   "Bench User",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		log.Fatal("failed to sign bench token:", err)
	}
	return signed
}

func postJSON(token string, path string, body map[string]any) map[string]any {
	buf, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewReader(buf))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("request failed:", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return out
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()

	token := signToken("bench-user")

	start := time.Now()

	var wg sync.WaitGroup
	sem := make(chan struct{}, 32)

	for i := 0; i < maxBoats; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			boat := postJSON(token, "/api/boats", map[string]any{
				"name": fmt.Sprintf("Bench Boat %d", i),
			})
			boatID, _ := boat["id"].(string)
			if boatID == "" {
				return
			}

			dueIn := rnd.Intn(60) - 10 // some past due, some beyond the window
			postJSON(token, fmt.Sprintf("/api/boats/%s/components", boatID), map[string]any{
				"name":                "Engine",
				"nextServiceDate":     time.Now().AddDate(0, 0, dueIn).Format("2006-01-02"),
				"serviceIntervalDays": 90,
			})

			req, _ := http.NewRequest("GET", fmt.Sprintf("http://%s/api/boats/%s/alerts", httpHostPort, boatID), nil)
			req.Header.Set("Authorization", "Bearer "+token)
			alertResp, err := http.DefaultClient.Do(req)
			if err == nil {
				alertResp.Body.Close()
			}
		}(i)
	}

	wg.Wait()
	fmt.Printf("seeded and scanned %d boats in %v\n", maxBoats, time.Since(start))
}
