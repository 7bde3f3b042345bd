package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hailam/chesscore/internal/perft"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadPerft(t *testing.T) {
	s := openTemp(t)

	rec := &PerftRecord{
		FEN:     startFEN,
		Depth:   2,
		Nodes:   400,
		Divide:  []perft.Entry{{Move: "a2a3", Nodes: 20}, {Move: "a2a4", Nodes: 20}},
		Elapsed: 3 * time.Millisecond,
	}
	if err := s.SavePerft(rec); err != nil {
		t.Fatalf("SavePerft: %v", err)
	}
	if rec.RunID == "" || rec.RecordedAt.IsZero() {
		t.Errorf("SavePerft did not stamp the record: %+v", rec)
	}

	got, err := s.LoadPerft(startFEN, 2)
	if err != nil {
		t.Fatalf("LoadPerft: %v", err)
	}
	if diff := cmp.Diff(rec, got, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
		t.Errorf("loaded record differs (-want +got):\n%s", diff)
	}
}

func TestLoadPerftNotFound(t *testing.T) {
	s := openTemp(t)
	if _, err := s.LoadPerft(startFEN, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadPerft on an empty store = %v, want ErrNotFound", err)
	}
}

func TestListAndDeletePerft(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer s.Close()

	for depth, nodes := range []uint64{1, 20, 400, 8902} {
		if err := s.SavePerft(&PerftRecord{FEN: startFEN, Depth: depth, Nodes: nodes}); err != nil {
			t.Fatalf("SavePerft depth %d: %v", depth, err)
		}
	}
	if err := s.SavePerft(&PerftRecord{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Depth: 1, Nodes: 5}); err != nil {
		t.Fatalf("SavePerft: %v", err)
	}

	recs, err := s.ListPerft(startFEN)
	if err != nil {
		t.Fatalf("ListPerft: %v", err)
	}
	var nodes []uint64
	for _, r := range recs {
		nodes = append(nodes, r.Nodes)
	}
	if diff := cmp.Diff([]uint64{1, 20, 400, 8902}, nodes); diff != "" {
		t.Errorf("ListPerft nodes (-want +got):\n%s", diff)
	}

	if err := s.DeletePerft(startFEN, 3); err != nil {
		t.Fatalf("DeletePerft: %v", err)
	}
	if _, err := s.LoadPerft(startFEN, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted record still loads: %v", err)
	}
}

func TestNodesPerSecond(t *testing.T) {
	r := &PerftRecord{Nodes: 1000, Elapsed: time.Second / 2}
	if got := r.NodesPerSecond(); got != 2000 {
		t.Errorf("NodesPerSecond = %v, want 2000", got)
	}
	if (&PerftRecord{Nodes: 10}).NodesPerSecond() != 0 {
		t.Error("untimed record should report 0")
	}
}

func TestGetDataDirOverride(t *testing.T) {
	base := filepath.Join(t.TempDir(), "override")
	t.Setenv(DataDirEnv, base)

	dir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir: %v", err)
	}
	if want := filepath.Join(base, "perft-db"); dir != want {
		t.Errorf("GetDatabaseDir = %s, want %s", dir, want)
	}
}

func TestPlatformDataHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("APPDATA", "")

	tests := []struct {
		goos string
		want string
	}{
		{"darwin", filepath.Join(home, "Library", "Application Support")},
		{"linux", filepath.Join(home, ".local", "share")},
		{"windows", filepath.Join(home, "AppData", "Roaming")},
	}
	for _, tc := range tests {
		got, err := platformDataHome(tc.goos)
		if err != nil {
			t.Fatalf("%s: %v", tc.goos, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.goos, got, tc.want)
		}
	}

	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	if got, _ := platformDataHome("linux"); got != xdg {
		t.Errorf("XDG_DATA_HOME ignored: got %s", got)
	}
}
