package web

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Stalyer/six-cities/internal/core/domain"
)

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		offerType domain.OfferType
		want      string
	}{
		{domain.OfferTypeApartment, "Apartment"},
		{domain.OfferTypeRoom, "Private room"},
		{domain.OfferTypeHouse, "House"},
		{domain.OfferTypeHotel, "Hotel"},
		{domain.OfferType("bungalow"), "Bungalow"},
	}

	for _, tt := range tests {
		t.Run(string(tt.offerType), func(t *testing.T) {
			if got := typeLabel(tt.offerType); got != tt.want {
				t.Errorf("typeLabel(%q) = %q, want %q", tt.offerType, got, tt.want)
			}
		})
	}
}

// Запускать с -race: подписи типов строятся из разных горутин запросов.
func TestTypeLabel_ConcurrentCalls(t *testing.T) {
	types := []domain.OfferType{domain.OfferTypeApartment, domain.OfferTypeHotel, domain.OfferType("bungalow")}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				offerType := types[(g+i)%len(types)]
				if got := typeLabel(offerType); got == "" {
					t.Errorf("empty label for %q", offerType)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestPages_ConcurrentRenders(t *testing.T) {
	app := newTestApp(t, time.Second)
	app.get(t, "/")

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				resp, err := app.client.Get(app.server.URL + "/?city=Amsterdam")
				if err != nil {
					errs <- err.Error()
					return
				}
				doc, err := goquery.NewDocumentFromReader(resp.Body)
				resp.Body.Close()
				if err != nil {
					errs <- err.Error()
					return
				}
				if got := strings.TrimSpace(doc.Find(".place-card__type").First().Text()); got != "Apartment" {
					errs <- "unexpected type label " + got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
