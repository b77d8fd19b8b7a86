package tutorprofile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainerrors "tutorlink/contexts/class-marketplace/tutor-profile-service/domain/errors"
	httptransport "tutorlink/contexts/class-marketplace/tutor-profile-service/transport/http"
)

func submitTestCV(t *testing.T, module Module, userID string, subject string, rate float64) httptransport.TutorProfileDTO {
	t.Helper()
	profile, err := module.Handler.SubmitCVHandler(context.Background(), userID, httptransport.SubmitCVRequest{
		FullName:   "Tutor " + userID,
		Avatar:     "https://cdn.example/" + userID + ".png",
		Subject:    subject,
		City:       "Ho Chi Minh",
		HourlyRate: rate,
	})
	if err != nil {
		t.Fatalf("submit cv failed: %v", err)
	}
	return profile
}

func approveProfile(t *testing.T, module Module, tutorID string) {
	t.Helper()
	_, err := module.Handler.ReviewProfileHandler(
		context.Background(), "admin-1", tutorID, httptransport.ReviewProfileRequest{Verdict: "APPROVED"})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
}

func TestSubmitCVStartsPending(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	profile := submitTestCV(t, module, "user-1", "Math", 120)

	if profile.Status != "PENDING" {
		t.Fatalf("new profile should be pending, got %s", profile.Status)
	}
	if profile.TutorID == "" {
		t.Fatal("profile should get an id")
	}
}

func TestSubmitCVRequiresBasics(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	_, err := module.Handler.SubmitCVHandler(context.Background(), "user-1", httptransport.SubmitCVRequest{
		FullName: "No Avatar",
	})
	if !errors.Is(err, domainerrors.ErrInvalidProfileInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResubmitKeepsIDAndResetsToPending(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	first := submitTestCV(t, module, "user-1", "Math", 120)
	approveProfile(t, module, first.TutorID)

	second := submitTestCV(t, module, "user-1", "Physics", 150)
	if second.TutorID != first.TutorID {
		t.Fatalf("resubmission should keep the tutor id, got %s vs %s", second.TutorID, first.TutorID)
	}
	if second.Status != "PENDING" {
		t.Fatalf("resubmission should return to pending, got %s", second.Status)
	}
	if second.Subject != "Physics" {
		t.Fatalf("resubmission should replace fields, got %s", second.Subject)
	}
}

func TestReviewRejectsUnknownVerdict(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	profile := submitTestCV(t, module, "user-1", "Math", 120)

	_, err := module.Handler.ReviewProfileHandler(
		context.Background(), "admin-1", profile.TutorID, httptransport.ReviewProfileRequest{Verdict: "MAYBE"})
	if !errors.Is(err, domainerrors.ErrInvalidReviewVerdict) {
		t.Fatalf("expected invalid verdict, got %v", err)
	}
}

func TestReviewRecordsReviewer(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	profile := submitTestCV(t, module, "user-1", "Math", 120)

	reviewed, err := module.Handler.ReviewProfileHandler(
		context.Background(), "cskh-1", profile.TutorID, httptransport.ReviewProfileRequest{Verdict: "approved"})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if reviewed.Status != "APPROVED" {
		t.Fatalf("expected approved, got %s", reviewed.Status)
	}
	if reviewed.ApprovedAt == "" {
		t.Fatal("review should stamp the decision time")
	}
}

func TestReviewUnknownProfile(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	_, err := module.Handler.ReviewProfileHandler(
		context.Background(), "admin-1", "missing", httptransport.ReviewProfileRequest{Verdict: "APPROVED"})
	if !errors.Is(err, domainerrors.ErrProfileNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchReturnsOnlyApproved(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	approved := submitTestCV(t, module, "user-1", "Math", 120)
	approveProfile(t, module, approved.TutorID)
	submitTestCV(t, module, "user-2", "Math", 100)

	result, err := module.Handler.SearchTutorsHandler(context.Background(), httptransport.SearchTutorsRequest{
		Subject: "math",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].TutorID != approved.TutorID {
		t.Fatalf("only approved profiles should surface, got %+v", result.Items)
	}
}

func TestSearchFiltersByRateRange(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	cheap := submitTestCV(t, module, "user-1", "Math", 80)
	approveProfile(t, module, cheap.TutorID)
	pricey := submitTestCV(t, module, "user-2", "Math", 300)
	approveProfile(t, module, pricey.TutorID)

	result, err := module.Handler.SearchTutorsHandler(context.Background(), httptransport.SearchTutorsRequest{
		RateMin: 100,
		RateMax: 400,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].TutorID != pricey.TutorID {
		t.Fatalf("rate filter should keep one profile, got %+v", result.Items)
	}
}

func TestSearchPaginates(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	for i := 0; i < 12; i++ {
		profile := submitTestCV(t, module, fmt.Sprintf("user-%d", i), "Math", 100)
		approveProfile(t, module, profile.TutorID)
	}

	first, err := module.Handler.SearchTutorsHandler(context.Background(), httptransport.SearchTutorsRequest{Page: 1})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(first.Items) != 10 {
		t.Fatalf("first page should hold ten profiles, got %d", len(first.Items))
	}

	second, err := module.Handler.SearchTutorsHandler(context.Background(), httptransport.SearchTutorsRequest{Page: 2})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(second.Items) != 2 {
		t.Fatalf("second page should hold the remainder, got %d", len(second.Items))
	}
}

func TestPendingQueueShrinksAfterReview(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	first := submitTestCV(t, module, "user-1", "Math", 120)
	submitTestCV(t, module, "user-2", "Physics", 150)

	pending, err := module.Handler.ListPendingHandler(context.Background())
	if err != nil {
		t.Fatalf("pending list failed: %v", err)
	}
	if len(pending.Items) != 2 {
		t.Fatalf("expected two pending profiles, got %d", len(pending.Items))
	}

	approveProfile(t, module, first.TutorID)
	pending, err = module.Handler.ListPendingHandler(context.Background())
	if err != nil {
		t.Fatalf("pending list failed: %v", err)
	}
	if len(pending.Items) != 1 {
		t.Fatalf("reviewed profile should leave the queue, got %d", len(pending.Items))
	}
}

func TestGetTutorNotFound(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	_, err := module.Handler.GetTutorHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrProfileNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
