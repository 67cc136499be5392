package scraper

import (
	"context"
	"reflect"
	"testing"
	"time"

	"genzjobs/internal/domain"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"finds skills in order",
			"We use Go and Python on AWS with Docker.",
			[]string{"python", "aws", "docker", "go"},
		},
		{"empty text", "", nil},
		{"no hits", "We sell flowers.", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSkills(tc.text, techSkills)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestParseSalaryString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		min  int
		max  int
		ok   bool
	}{
		{"k range", "$70k - $90k", 70000, 90000, true},
		{"plain range", "60000-80000 USD", 60000, 80000, true},
		{"single value", "85000", 85000, 85000, true},
		{"nothing numeric", "competitive", 0, 0, false},
		{"empty", "", 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			min, max := ParseSalaryString(tc.in)
			if !tc.ok {
				if min != nil || max != nil {
					t.Fatalf("expected no values, got %v %v", min, max)
				}
				return
			}
			if min == nil || max == nil {
				t.Fatal("expected values")
			}
			if *min != tc.min || *max != tc.max {
				t.Fatalf("expected %d-%d got %d-%d", tc.min, tc.max, *min, *max)
			}
		})
	}
}

func TestDetectJobType(t *testing.T) {
	tests := []struct {
		text string
		want domain.JobType
	}{
		{"Software Engineering Intern", domain.JobTypeInternship},
		{"6 month contract role", domain.JobTypeContract},
		{"part-time barista", domain.JobTypePartTime},
		{"freelance designer", domain.JobTypeFreelance},
		{"temporary warehouse help, temp position", domain.JobTypeTemporary},
		{"staff engineer", domain.JobTypeFullTime},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			if got := DetectJobType(tc.text); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("zero delay returns immediately", func(t *testing.T) {
		start := time.Now()
		rateLimit(context.Background(), 0)
		if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
			t.Fatalf("expected immediate return, waited %s", elapsed)
		}
	})

	t.Run("cancelled context cuts the delay short", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		rateLimit(ctx, time.Minute)
		if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
			t.Fatalf("expected cancelled context to end the wait, waited %s", elapsed)
		}
	})

	t.Run("waits out a short delay", func(t *testing.T) {
		start := time.Now()
		rateLimit(context.Background(), 20*time.Millisecond)
		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Fatalf("expected at least 20ms wait, waited %s", elapsed)
		}
	})
}
