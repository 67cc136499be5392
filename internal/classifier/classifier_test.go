package classifier

import (
	"reflect"
	"testing"

	"genzjobs/internal/domain"
)

func TestClassifyJobNoSignals(t *testing.T) {
	result := ClassifyJob(domain.Job{Title: "", Description: ""})

	if result.Level != LevelMid {
		t.Fatalf("expected MID got %q", result.Level)
	}
	if !reflect.DeepEqual(result.AudienceTags, []AudienceTag{AudienceMidCareer}) {
		t.Fatalf("expected [mid_career] got %v", result.AudienceTags)
	}
	if result.Confidence != 0.3 {
		t.Fatalf("expected confidence 0.3 got %v", result.Confidence)
	}
}

func TestClassifyJobSingleSignalPenalty(t *testing.T) {
	result := ClassifyJob(domain.Job{Title: "VP of Engineering"})

	if result.Level != LevelExecutive {
		t.Fatalf("expected EXECUTIVE got %q", result.Level)
	}
	if result.Signals.TitleMatch != "vp" {
		t.Fatalf("expected title match vp got %q", result.Signals.TitleMatch)
	}
	// Only the title fired: 10/10 scaled by the single-source penalty.
	if result.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9 got %v", result.Confidence)
	}
}

func TestClassifyJobTieBreak(t *testing.T) {
	// Years puts 8 points on MID; salary (5) and description (3) put 8 on
	// SENIOR. MID is declared earlier, so it must keep the win.
	job := domain.Job{
		Description: "5 years of experience. Extensive experience with distributed systems.",
		SalaryMin:   intPtr(100000),
		SalaryMax:   intPtr(140000),
	}
	result := ClassifyJob(job)

	if result.Level != LevelMid {
		t.Fatalf("expected MID on tie got %q", result.Level)
	}
	if result.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5 got %v", result.Confidence)
	}
}

func TestClassifyJobDualTagging(t *testing.T) {
	// SENIOR 10 (title), MID 8 (years), EXECUTIVE 5 (salary), ENTRY 3
	// (description): confidence 10/26 is below 0.5 and the top-two gap is 2,
	// so the runner-up's tag joins the set.
	job := domain.Job{
		Title:       "Senior Engineer",
		Description: "4 years of experience required. Training provided.",
		SalaryMin:   intPtr(250000),
	}
	result := ClassifyJob(job)

	if result.Level != LevelSenior {
		t.Fatalf("expected SENIOR got %q", result.Level)
	}
	if result.Confidence != 0.38 {
		t.Fatalf("expected confidence 0.38 got %v", result.Confidence)
	}
	if len(result.AudienceTags) != 2 {
		t.Fatalf("expected two tags got %v", result.AudienceTags)
	}
	if !containsTag(result.AudienceTags, AudienceSenior) || !containsTag(result.AudienceTags, AudienceMidCareer) {
		t.Fatalf("expected senior and mid_career got %v", result.AudienceTags)
	}
}

func TestClassifyJobIdempotent(t *testing.T) {
	job := domain.Job{
		Title:       "Senior Backend Developer",
		Description: "7+ years of experience. Deep expertise in Go.",
		SalaryMin:   intPtr(140000),
		SalaryMax:   intPtr(180000),
		Company:     "Acme",
	}

	first := ClassifyJobWithCompany(job)
	second := ClassifyJobWithCompany(job)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestClassifyJobWithCompanyRetailOverride(t *testing.T) {
	job := domain.Job{
		Title:       "Store Manager",
		Description: "",
		Company:     "McDonald's",
		SalaryMin:   intPtr(35000),
		SalaryMax:   intPtr(40000),
	}
	result := ClassifyJobWithCompany(job)

	if result.Level != LevelEntry {
		t.Fatalf("expected ENTRY got %q", result.Level)
	}
	if !reflect.DeepEqual(result.AudienceTags, []AudienceTag{AudienceGenZ}) {
		t.Fatalf("expected [genz] got %v", result.AudienceTags)
	}
	if result.Confidence < 0.7 {
		t.Fatalf("expected confidence >= 0.7 got %v", result.Confidence)
	}
	found := false
	for _, s := range result.Signals.DescriptionSignals {
		if s == "retail/service manager context" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected retail/service diagnostic in %v", result.Signals.DescriptionSignals)
	}
}

func TestClassifyJobWithCompanyNoOverride(t *testing.T) {
	tests := []struct {
		name string
		job  domain.Job
	}{
		{
			"non-retail employer",
			domain.Job{Title: "Store Manager", Company: "Acme Robotics", SalaryMin: intPtr(35000)},
		},
		{
			"general manager exempt",
			domain.Job{Title: "General Manager", Company: "Chipotle"},
		},
		{
			"salary above entry",
			domain.Job{Title: "Store Manager", Company: "Walmart", SalaryMin: intPtr(90000)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := ClassifyJob(tc.job)
			got := ClassifyJobWithCompany(tc.job)
			if !reflect.DeepEqual(base, got) {
				t.Fatalf("expected base result %+v got %+v", base, got)
			}
		})
	}
}
