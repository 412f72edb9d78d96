package booking

import "testing"

func TestStatusesMutuallyReachable(t *testing.T) {
	statuses := []Status{StatusPending, StatusApproved, StatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			if !CanTransition(from, to) {
				t.Fatalf("expected %s -> %s allowed", from, to)
			}
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	if CanTransition(StatusPending, Status("archived")) {
		t.Fatalf("expected unknown target status rejected")
	}
	if CanTransition(Status("archived"), StatusPending) {
		t.Fatalf("expected unknown source status rejected")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Fatalf("expected %s valid", s)
		}
	}
	if ValidStatus(Status("cancelled")) {
		t.Fatalf("expected cancelled invalid")
	}
	if ValidStatus(Status("")) {
		t.Fatalf("expected empty status invalid")
	}
}
