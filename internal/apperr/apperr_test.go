package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("recharge: %w", NotFound("wallet for vendor %s not found", "919"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found, got %s", KindOf(err))
	}
}

func TestKindOfUntypedDefaultsToInternal(t *testing.T) {
	if KindOf(errors.New("pq: connection refused")) != KindInternal {
		t.Fatalf("untyped errors must classify as internal")
	}
}

func TestMessageHidesInternalDetail(t *testing.T) {
	err := Internal(errors.New("dial tcp: refused"), "wallet store failure")
	if Message(err) != "internal error" {
		t.Fatalf("internal cause leaked: %q", Message(err))
	}
	if Message(Conflict("wallet already exists")) != "wallet already exists" {
		t.Fatalf("public message lost")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          InvalidArgument("amount is mandatory"),
		http.StatusNotFound:            NotFound("vendor not found"),
		http.StatusConflict:            Conflict("wallet already exists"),
		http.StatusPreconditionFailed:  FailedPrecondition("vendor profile is not activated"),
		http.StatusInternalServerError: errors.New("boom"),
	}
	for want, err := range cases {
		if got := HTTPStatus(err); got != want {
			t.Fatalf("status for %v: want %d got %d", err, want, got)
		}
	}
	if HTTPStatus(Aborted("contention")) != http.StatusConflict {
		t.Fatalf("aborted should map to conflict status")
	}
}
