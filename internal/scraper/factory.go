package scraper

import (
	"fmt"

	"genzjobs/internal/config"
	"genzjobs/internal/domain"
)

// FromConfig builds a scraper for every configured source name.
func FromConfig(cfg config.ScraperConfig) ([]Scraper, error) {
	scrapers := make([]Scraper, 0, len(cfg.Sources))
	for _, name := range cfg.Sources {
		switch domain.Source(name) {
		case domain.SourceRemotive:
			scrapers = append(scrapers, NewRemotive(cfg.MaxJobsPerSource))
		case domain.SourceArbeitnow:
			scrapers = append(scrapers, NewArbeitnow(cfg.MaxJobsPerSource))
		case domain.SourceJSearch:
			scrapers = append(scrapers, NewJSearch(cfg.JSearchAPIKey, cfg.MaxJobsPerSource, cfg.RequestDelay))
		case domain.SourceUSAJobs:
			scrapers = append(scrapers, NewUSAJobs(cfg.USAJobsAPIKey, cfg.USAJobsEmail, cfg.MaxJobsPerSource, cfg.RequestDelay))
		case domain.SourceApprenticeship:
			scrapers = append(scrapers, NewApprenticeship(cfg.MaxJobsPerSource, cfg.RequestDelay))
		case domain.SourceWWR:
			scrapers = append(scrapers, NewWeWorkRemotely(cfg.MaxJobsPerSource))
		default:
			return nil, fmt.Errorf("unknown source: %s", name)
		}
	}
	return scrapers, nil
}
