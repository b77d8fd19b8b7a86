package entities

import "testing"

func TestVisibilityForStatusPinsPublicToApproved(t *testing.T) {
	statuses := []ClassStatus{
		ClassStatusPendingApproval,
		ClassStatusApprovedVisible,
		ClassStatusRejected,
		ClassStatusAwaitingPayments,
		ClassStatusDone,
	}
	for _, status := range statuses {
		visibility := VisibilityForStatus(status)
		if status == ClassStatusApprovedVisible && visibility != VisibilityPublic {
			t.Fatalf("approved posting should be PUBLIC, got %s", visibility)
		}
		if status != ClassStatusApprovedVisible && visibility != VisibilityPrivate {
			t.Fatalf("%s posting should be PRIVATE, got %s", status, visibility)
		}
	}
}

func TestVisibleToTutorsExcludesClaimedPostings(t *testing.T) {
	class := ClassPosting{
		Status:     ClassStatusApprovedVisible,
		Visibility: VisibilityPublic,
	}
	if !class.VisibleToTutors() {
		t.Fatal("approved public posting without a tutor should be visible")
	}

	class.SelectedTutorID = "tutor-1"
	if class.VisibleToTutors() {
		t.Fatal("posting with a selected tutor must not be tutor-visible")
	}
}

func TestVisibleToTutorsIgnoresStalePublicFlag(t *testing.T) {
	class := ClassPosting{
		Status:     ClassStatusAwaitingPayments,
		Visibility: VisibilityPublic,
	}
	if class.VisibleToTutors() {
		t.Fatal("non-approved posting must not be tutor-visible even if flagged PUBLIC")
	}
}

func TestIsTerminal(t *testing.T) {
	for status, want := range map[ClassStatus]bool{
		ClassStatusPendingApproval:  false,
		ClassStatusApprovedVisible:  false,
		ClassStatusAwaitingPayments: false,
		ClassStatusRejected:         true,
		ClassStatusDone:             true,
	} {
		if got := (ClassPosting{Status: status}).IsTerminal(); got != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestValidateBasics(t *testing.T) {
	class := ClassPosting{
		StudentID:     "student-1",
		Subject:       "Math",
		Grade:         "10",
		Schedule:      "Mon/Wed 19:00",
		TuitionAmount: 150,
	}
	if !class.ValidateBasics() {
		t.Fatal("complete posting should validate")
	}

	broken := class
	broken.TuitionAmount = 0
	if broken.ValidateBasics() {
		t.Fatal("zero tuition should not validate")
	}

	broken = class
	broken.Subject = "  "
	if broken.ValidateBasics() {
		t.Fatal("blank subject should not validate")
	}
}
