package domain

import (
	"math"
	"time"
)

const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// CareerSnapshot is the part of a career record the aggregator needs.
type CareerSnapshot struct {
	Status    CareerStatus
	StartDate time.Time
	EndDate   *time.Time
	IsCurrent bool
}

// CareerStatistics is derived on every request and never stored.
type CareerStatistics struct {
	TotalCareers    int        `json:"total_careers"`
	ApprovedCareers int        `json:"approved_careers"`
	PendingCareers  int        `json:"pending_careers"`
	RejectedCareers int        `json:"rejected_careers"`
	TotalExperience Experience `json:"total_experience"`
}

// Experience is a day total folded into years and months using 365 and 30 day units.
// It is an approximation, not calendar arithmetic.
type Experience struct {
	Years     int `json:"years"`
	Months    int `json:"months"`
	TotalDays int `json:"total_days"`
}

// ComputeStatistics counts records by review outcome.
func ComputeStatistics(records []CareerSnapshot) CareerStatistics {
	stats := CareerStatistics{TotalCareers: len(records)}
	for _, r := range records {
		switch {
		case r.Status == CareerApproved:
			stats.ApprovedCareers++
		case r.Status == CareerRejected:
			stats.RejectedCareers++
		case r.Status.IsPending():
			stats.PendingCareers++
		}
	}
	return stats
}

// ComputeTotalExperience sums whole days per record and folds the total.
// Current records run until now. Each span is the absolute difference
// rounded up to a whole day.
func ComputeTotalExperience(records []CareerSnapshot, now time.Time) Experience {
	total := 0
	for _, r := range records {
		total += spanDays(r, now)
	}
	return ExperienceFromDays(total)
}

// ExperienceFromDays folds a day count into years and months.
func ExperienceFromDays(days int) Experience {
	return Experience{
		Years:     days / daysPerYear,
		Months:    (days % daysPerYear) / daysPerMonth,
		TotalDays: days,
	}
}

func spanDays(r CareerSnapshot, now time.Time) int {
	end := now
	if !r.IsCurrent {
		if r.EndDate == nil {
			return 0
		}
		end = *r.EndDate
	}
	diff := end.Sub(r.StartDate)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
