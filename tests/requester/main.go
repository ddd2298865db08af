package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var periods = []string{"today", "yesterday", "this_month", "last_month", "this_year", "last_year", "all"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	var url string
	switch rand.Intn(4) {
	case 0:
		url = baseURL + "/orders"
	case 1:
		url = baseURL + "/orders/" + randomID(8)
	case 2:
		url = baseURL + "/order-log/" + randomID(8)
	default:
		url = baseURL + "/stats/" + periods[rand.Intn(len(periods))]
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
