package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/summary"
)

func spent(amount string) summary.Summary {
	txs := []models.Transaction{tx("x", "2024-05-01", models.KindExpense, "Food", amount)}
	return summary.Compute(txs, decimal.NewFromInt(100), may15)
}

func TestRegistryAlert(t *testing.T) {
	t.Run("edge_triggered_per_session", func(t *testing.T) {
		r := NewRegistry()
		r.Start("s1", "alice")

		steps := []struct {
			amount string
			fire   bool
		}{
			{"50", false}, {"80", false}, {"120", true}, {"80", false}, {"120", true}, {"130", false},
		}
		for i, step := range steps {
			if got := r.EvaluateAlert("s1", "alice", spent(step.amount)); got != step.fire {
				t.Errorf("step %d (%s): fire = %v, want %v", i, step.amount, got, step.fire)
			}
		}
	})

	t.Run("sessions_are_independent", func(t *testing.T) {
		r := NewRegistry()
		over := spent("120")

		if !r.EvaluateAlert("s1", "alice", over) {
			t.Error("first session should fire")
		}
		if !r.EvaluateAlert("s2", "alice", over) {
			t.Error("a new session starts armed")
		}
		if r.EvaluateAlert("s1", "alice", over) {
			t.Error("first session already fired")
		}
	})

	t.Run("restart_rearms", func(t *testing.T) {
		r := NewRegistry()
		over := spent("120")
		r.EvaluateAlert("s1", "alice", over)
		r.Start("s1", "alice")
		if !r.EvaluateAlert("s1", "alice", over) {
			t.Error("restarted session should be armed")
		}
	})
}

func TestRegistryEnd(t *testing.T) {
	r := NewRegistry()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.Start("s1", "alice")
	r.End("s1", now.Add(time.Hour))

	if r.Len() != 0 {
		t.Errorf("expected no live sessions, got %d", r.Len())
	}
	if !r.Ended("s1") {
		t.Error("s1 should be ended")
	}
	if r.Ended("s2") {
		t.Error("s2 was never ended")
	}

	now = now.Add(2 * time.Hour)
	if r.Ended("s1") {
		t.Error("ended marker should lapse once the token has expired")
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	over := spent("120")

	var wg sync.WaitGroup
	fired := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fired <- r.EvaluateAlert("shared", "alice", over)
		}()
	}
	wg.Wait()
	close(fired)

	count := 0
	for f := range fired {
		if f {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one alert, got %d", count)
	}
}
