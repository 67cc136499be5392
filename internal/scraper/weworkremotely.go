package scraper

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"genzjobs/internal/domain"
)

var wwrFeeds = []string{
	"https://weworkremotely.com/categories/remote-programming-jobs.rss",
	"https://weworkremotely.com/categories/remote-devops-sysadmin-jobs.rss",
	"https://weworkremotely.com/categories/remote-customer-support-jobs.rss",
}

type WeWorkRemotely struct {
	feeds   []string
	client  *http.Client
	parser  *gofeed.Parser
	maxJobs int
}

func NewWeWorkRemotely(maxJobs int) *WeWorkRemotely {
	return &WeWorkRemotely{
		feeds:   wwrFeeds,
		client:  &http.Client{Timeout: 15 * time.Second},
		parser:  gofeed.NewParser(),
		maxJobs: maxJobs,
	}
}

func (w *WeWorkRemotely) Name() domain.Source { return domain.SourceWWR }

func (w *WeWorkRemotely) Fetch(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job

	for _, feedURL := range w.feeds {
		if len(jobs) >= w.maxJobs {
			break
		}

		feed, err := w.fetchFeed(ctx, feedURL)
		if err != nil {
			return jobs, err
		}

		for _, item := range feed.Items {
			if len(jobs) >= w.maxJobs {
				break
			}
			if job, ok := w.parse(item); ok {
				jobs = append(jobs, job)
			}
		}
	}

	return jobs, nil
}

func (w *WeWorkRemotely) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weworkremotely: HTTP %d", resp.StatusCode)
	}

	return w.parser.Parse(resp.Body)
}

// Feed items are titled "Company: Job Title".
func (w *WeWorkRemotely) parse(item *gofeed.Item) (domain.Job, bool) {
	if item.GUID == "" || item.Title == "" {
		return domain.Job{}, false
	}

	company, title := splitWWRTitle(item.Title)
	if title == "" {
		return domain.Job{}, false
	}

	var postedAt *time.Time
	if item.PublishedParsed != nil {
		postedAt = item.PublishedParsed
	}

	return domain.Job{
		ExternalID:  "weworkremotely_" + hashGUID(item.GUID),
		Source:      domain.SourceWWR,
		Title:       title,
		Company:     company,
		Location:    "Remote",
		JobType:     DetectJobType(title + " " + item.Description),
		Description: item.Description,
		Skills:      ExtractSkills(item.Description+" "+title, techSkills),
		Remote:      true,
		ApplyURL:    item.Link,
		PostedAt:    postedAt,
		ScrapedAt:   time.Now().UTC(),
	}, true
}

func splitWWRTitle(raw string) (company, title string) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return "", strings.TrimSpace(raw)
}

func hashGUID(guid string) string {
	hash := md5.Sum([]byte(guid))
	return fmt.Sprintf("%x", hash)[:12]
}
