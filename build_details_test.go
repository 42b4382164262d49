package formtools

import "testing"

func TestVersion(t *testing.T) {
	if got := Version(); got != "dev" {
		t.Errorf("Version() = %q, want %q for source builds", got, "dev")
	}
}
