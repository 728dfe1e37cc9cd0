package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/dodgeball/internal/app"
	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	outcomes := []dodgeball.Outcome{dodgeball.HumanWins, dodgeball.AIWins, dodgeball.Draw}
	for i, o := range outcomes {
		_, err := store.SaveRound(RoundRecord{
			Outcome:    o.String(),
			Duration:   time.Duration(i+1) * time.Second,
			HumanBalls: 100 - i,
			AIBalls:    10 - i,
			HumanSpeed: 20,
			AISpeed:    20,
			HumanSize:  50,
			AISize:     50,
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Outcome != "draw" || rounds[2].Outcome != "human_wins" {
		t.Errorf("Rounds not newest first: %v, %v", rounds[0].Outcome, rounds[2].Outcome)
	}
	if rounds[0].Duration != 3*time.Second {
		t.Errorf("Expected duration 3s, got %v", rounds[0].Duration)
	}
	if rounds[2].HumanBalls != 100 || rounds[2].AIBalls != 10 {
		t.Errorf("Ball counts not preserved: %+v", rounds[2])
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSaveRoundAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundRecord{Outcome: "draw"})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a UUID, got %q: %v", id, err)
	}

	// Explicit IDs are kept and must be unique
	if _, err := store.SaveRound(RoundRecord{ID: id, Outcome: "draw"}); err == nil {
		t.Error("Expected duplicate ID to fail")
	}
}

func TestStoreRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundRecord{Outcome: "draw", Duration: time.Duration(i) * time.Second})
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Duration != 4*time.Second {
		t.Errorf("Expected the last saved round first, got %v", rounds[0].Duration)
	}
}

func TestStoreTally(t *testing.T) {
	store := openTestStore(t)

	// Empty history
	tally, err := store.Tally()
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Total() != 0 || tally.FastestWin != 0 || !tally.LastPlayed.IsZero() {
		t.Errorf("Expected empty tally, got %+v", tally)
	}

	records := []RoundRecord{
		{Outcome: "human_wins", Duration: 5 * time.Second},
		{Outcome: "human_wins", Duration: 2500 * time.Millisecond},
		{Outcome: "ai_wins", Duration: time.Second},
		{Outcome: "draw", Duration: time.Minute},
	}
	for _, r := range records {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	tally, err = store.Tally()
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Wins != 2 || tally.Losses != 1 || tally.Draws != 1 {
		t.Errorf("Unexpected tally: %+v", tally)
	}
	if tally.Total() != 4 {
		t.Errorf("Expected total 4, got %d", tally.Total())
	}
	if tally.FastestWin != 2500*time.Millisecond {
		t.Errorf("Expected fastest win 2.5s, got %v", tally.FastestWin)
	}
	if tally.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Outcome: "draw"})
	store.SaveRound(RoundRecord{Outcome: "ai_wins"})

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.RecentRounds(10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
}

func TestStoreRecordRound(t *testing.T) {
	store := openTestStore(t)

	var recorder app.RoundRecorder = store
	err := recorder.RecordRound(app.RoundSummary{
		Outcome:    dodgeball.AIWins,
		Duration:   1234 * time.Millisecond,
		HumanBalls: 97,
		AIBalls:    9,
		HumanSpeed: 25,
		AISpeed:    15,
		HumanSize:  40,
		AISize:     60,
	})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	rounds, err := store.RecentRounds(1)
	if err != nil || len(rounds) != 1 {
		t.Fatalf("RecentRounds() = %v, %v", rounds, err)
	}
	r := rounds[0]
	if r.Outcome != "ai_wins" || r.Duration != 1234*time.Millisecond {
		t.Errorf("Unexpected record: %+v", r)
	}
	if r.HumanSpeed != 25 || r.AISpeed != 15 || r.HumanSize != 40 || r.AISize != 60 {
		t.Errorf("Settings not preserved: %+v", r)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
