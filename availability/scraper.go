// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package availability

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/outbound"
	"github.com/danielhkuo/courtcaptain/tally"
)

// slotSelector lists the elements reservation pages commonly use for slots.
const slotSelector = ".slot, .time-slot, .slot-label, .reservation-time, time, [data-time]"

// Scraper reads open slots from the club's reservation pages, one request
// per court.
type Scraper struct {
	baseURL string
	cookie  string
	http    *outbound.Client
}

func NewScraper(baseURL, cookie string) *Scraper {
	return &Scraper{
		baseURL: baseURL,
		cookie:  cookie,
		http: outbound.New("reservations", 10*time.Second, outbound.Backoff{
			MaxRetries:      1,
			InitialInterval: 250 * time.Millisecond,
			MaxInterval:     time.Second,
		}),
	}
}

// ForDay fetches every court concurrently. A court whose page cannot be
// fetched or parsed gets an empty list; the others are unaffected.
func (s *Scraper) ForDay(ctx context.Context, day models.Day) models.Optional[models.AvailabilityMap] {
	avail := make(models.AvailabilityMap, len(models.AllCourts))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, court := range models.AllCourts {
		wg.Add(1)
		go func(court string) {
			defer wg.Done()

			slots, err := s.court(ctx, day, court)
			if err != nil {
				slog.Warn("failed to scrape court", "court", court, "day", day, "error", err, "breaker", s.http.State().String())
				slots = []string{}
			}

			mu.Lock()
			avail[court] = slots
			mu.Unlock()
		}(court)
	}

	wg.Wait()
	return models.Some(avail)
}

func (s *Scraper) court(ctx context.Context, day models.Day, court string) ([]string, error) {
	header := http.Header{}
	if s.cookie != "" {
		header.Set("Cookie", s.cookie)
	}

	body, err := s.http.Get(ctx, s.pageURL(day, court), header)
	if err != nil {
		return nil, err
	}

	return ExtractSlots(body)
}

// pageURL appends day and court to the base URL, keeping any query it has.
func (s *Scraper) pageURL(day models.Day, court string) string {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return s.baseURL
	}
	q := u.Query()
	q.Set("day", string(day))
	q.Set("court", court)
	u.RawQuery = q.Encode()
	return u.String()
}

// ExtractSlots pulls slot labels out of a reservation page. Elements matching
// slotSelector are preferred, using data-time over text. When none yield a
// label, the page text is scanned for time ranges.
func ExtractSlots(page []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var raw []string
	doc.Find(slotSelector).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("data-time"); ok && strings.TrimSpace(v) != "" {
			raw = append(raw, v)
			return
		}
		raw = append(raw, spacedText(sel))
	})

	slots := NormalizeSlots(raw)
	if len(slots) > 0 {
		return slots, nil
	}

	text := spacedText(doc.Selection)
	var found []string
	for _, m := range tally.RangePattern.FindAllStringSubmatch(text, -1) {
		found = append(found, tally.FormatRange(m))
	}

	return NormalizeSlots(found), nil
}

// spacedText joins the selection's text nodes with single spaces, so
// adjacent cells like <td>Court 5</td><td>9-10am</td> stay apart.
// Script and style contents are skipped.
func spacedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				if t := strings.TrimSpace(c.Text()); t != "" {
					parts = append(parts, t)
				}
			case "script", "style", "#comment":
			default:
				walk(c)
			}
		})
	}
	walk(sel)
	return whitespace.ReplaceAllString(strings.Join(parts, " "), " ")
}
