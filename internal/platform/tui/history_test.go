package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

type fakeHistory struct {
	runs []storage.Run
	err  error
}

func (f fakeHistory) RecentRuns(gameID string, limit int) ([]storage.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs, nil
}

func (f fakeHistory) ResultCounts(gameID string) ([]storage.ResultCount, error) {
	counts := map[string]int{}
	for _, r := range f.runs {
		counts[r.Result]++
	}
	var out []storage.ResultCount
	for _, res := range []string{"timed_out", "won"} {
		if counts[res] > 0 {
			out = append(out, storage.ResultCount{Result: res, Count: counts[res]})
		}
	}
	return out, nil
}

func sampleRuns() []storage.Run {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Run{
		{GameID: "memory", Player: "ana", Result: "won", Level: 3, Matched: 8, Duration: 95 * time.Second, CreatedAt: at},
		{GameID: "memory", Player: "bo", Result: "timed_out", Level: 2, Matched: 1, Duration: 80 * time.Second, CreatedAt: at},
		{GameID: "memory", Result: "timed_out", Level: 1, Duration: 20 * time.Second, CreatedAt: at},
	}
}

func TestHistoryFilterCycles(t *testing.T) {
	m := NewHistoryModel(fakeHistory{runs: sampleRuns()}, "memory", 10, 100, 30)
	if m.Filter() != "" || len(m.VisibleRuns()) != 3 {
		t.Fatalf("filter %q shows %d runs", m.Filter(), len(m.VisibleRuns()))
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	want := []struct {
		filter string
		n      int
	}{{"won", 1}, {"timed_out", 2}, {"", 3}}

	var model tea.Model = m
	for _, w := range want {
		model, _ = model.Update(tab)
		h := model.(HistoryModel)
		if h.Filter() != w.filter || len(h.VisibleRuns()) != w.n {
			t.Errorf("filter %q shows %d runs, want %q/%d", h.Filter(), len(h.VisibleRuns()), w.filter, w.n)
		}
	}
}

func TestHistoryView(t *testing.T) {
	m := NewHistoryModel(fakeHistory{runs: sampleRuns()}, "memory", 10, 100, 30)
	out := m.View()
	for _, s := range []string{"RUN HISTORY", "ana", "time's up: 2", "won: 1"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestHistoryEmptyAndError(t *testing.T) {
	empty := NewHistoryModel(fakeHistory{}, "memory", 10, 100, 30)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty journal message missing")
	}

	broken := NewHistoryModel(fakeHistory{err: errors.New("locked")}, "memory", 10, 100, 30)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("journal error not shown")
	}
}

func TestRunRow(t *testing.T) {
	row := RunRow(sampleRuns()[2])
	if row[1] != "-" || row[2] != "time's up" || row[3] != "1" || row[5] != "20s" {
		t.Errorf("row = %v", row)
	}
}
