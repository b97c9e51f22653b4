package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/repository"
)

// ── test helpers ──

type resultFixture struct {
	svc      ResultService
	lanes    *mockLaneRepo
	events   *mockEventRepo
	swimmers *mockSwimmerRepo
}

func setupTestResultService(t *testing.T) *resultFixture {
	t.Helper()

	users := newMockUserRepo()
	swimmers := newMockSwimmerRepo()
	events := newMockEventRepo()
	lanes := newMockLaneRepo(swimmers, users)

	repo := &repository.Repository{
		User:    users,
		Club:    newMockClubRepo(),
		Swimmer: swimmers,
		Event:   events,
		Lane:    lanes,
	}

	f := &resultFixture{
		svc:      NewResultService(repo, zap.NewNop()),
		lanes:    lanes,
		events:   events,
		swimmers: swimmers,
	}
	if err := events.Create(context.Background(), &model.Event{
		EventID:     "event-a",
		Title:       "Campeonato de Club",
		ScheduledAt: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		ClubID:      "club-1",
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return f
}

// addTimedLane seeds a swimmer plus a lane with a recorded time, bypassing
// the heat workflow; the aggregator only reads the lane rows.
func (f *resultFixture) addTimedLane(t *testing.T, heat, laneNum int, name string, birthYear int, gender string, timeMs int64) string {
	t.Helper()

	swimmer := &model.Swimmer{
		Name:      name,
		BirthDate: time.Date(birthYear, 3, 10, 0, 0, 0, 0, time.UTC),
		Gender:    gender,
		ClubID:    "club-1",
	}
	if err := f.swimmers.Create(context.Background(), swimmer); err != nil {
		t.Fatalf("seed swimmer: %v", err)
	}

	ms := timeMs
	sid := swimmer.SwimmerID
	err := f.lanes.BatchCreate(context.Background(), []model.Lane{{
		EventID:     "event-a",
		HeatNumber:  heat,
		LaneNumber:  laneNum,
		SwimmerID:   &sid,
		CoachID:     "coach-1",
		FinalTimeMs: &ms,
	}})
	if err != nil {
		t.Fatalf("seed lane: %v", err)
	}
	return swimmer.SwimmerID
}

func findBoard(t *testing.T, boards []dto.BoardResponse, code, gender string) *dto.BoardResponse {
	t.Helper()
	for i := range boards {
		if boards[i].CategoryCode == code && boards[i].Gender == gender {
			return &boards[i]
		}
	}
	t.Fatalf("board (%s, %s) not found in %d boards", code, gender, len(boards))
	return nil
}

// ── ComputeResults ──

func TestResultService_EmptyEvent(t *testing.T) {
	f := setupTestResultService(t)

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	if len(boards) != 0 {
		t.Errorf("expected no boards, got %d", len(boards))
	}
}

func TestResultService_EventNotFound(t *testing.T) {
	f := setupTestResultService(t)

	if _, err := f.svc.ComputeResults(context.Background(), "nonexistent"); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

// Exact ties keep heat/lane input order and still consume distinct
// positions: 29.8, 29.8, 31.2 ranks 1, 2, 3.
func TestResultService_TiesKeepStableOrder(t *testing.T) {
	f := setupTestResultService(t)

	// Same bracket (born 2014 → Infantil B1 in 2026), all male.
	first := f.addTimedLane(t, 1, 1, "Mario", 2014, model.GenderMale, 29800)
	second := f.addTimedLane(t, 1, 2, "Pablo", 2014, model.GenderMale, 29800)
	f.addTimedLane(t, 1, 3, "Diego", 2014, model.GenderMale, 31200)

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}

	entries := boards[0].Entries
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Position != i+1 {
			t.Errorf("entry %d: position = %d, want %d", i, e.Position, i+1)
		}
	}
	if entries[0].SwimmerID != first || entries[1].SwimmerID != second {
		t.Errorf("tie broke input order: got %s then %s", entries[0].SwimmerID, entries[1].SwimmerID)
	}
	if entries[2].TimeMs != 31200 {
		t.Errorf("slowest time = %d, want 31200", entries[2].TimeMs)
	}
}

func TestResultService_BucketsByCategoryAndGender(t *testing.T) {
	f := setupTestResultService(t)

	// Event year 2026: born 2014 → Infantil B1, born 2018 → Mínima 1.
	f.addTimedLane(t, 1, 1, "Mario", 2014, model.GenderMale, 30000)
	f.addTimedLane(t, 1, 2, "Lucía", 2014, model.GenderFemale, 29000)
	f.addTimedLane(t, 1, 3, "Carmen", 2018, model.GenderFemale, 41000)

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	if len(boards) != 3 {
		t.Fatalf("expected 3 boards, got %d", len(boards))
	}

	b := findBoard(t, boards, "infantil_b1", model.GenderFemale)
	if len(b.Entries) != 1 || b.Entries[0].SwimmerName != "Lucía" {
		t.Errorf("unexpected Infantil B1 female board: %+v", b.Entries)
	}
	if b.Label != "Infantil B1 Femenino" {
		t.Errorf("label = %q", b.Label)
	}
}

// Boards come back youngest bracket first, male before female inside a
// bracket.
func TestResultService_BoardDisplayOrder(t *testing.T) {
	f := setupTestResultService(t)

	f.addTimedLane(t, 1, 1, "Veterana", 2000, model.GenderFemale, 28000)
	f.addTimedLane(t, 1, 2, "Lucía", 2014, model.GenderFemale, 29000)
	f.addTimedLane(t, 1, 3, "Mario", 2014, model.GenderMale, 30000)
	f.addTimedLane(t, 1, 4, "Pequeño", 2020, model.GenderMale, 50000)

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}

	type bg struct{ code, gender string }
	var got []bg
	for _, b := range boards {
		got = append(got, bg{b.CategoryCode, b.Gender})
	}
	want := []bg{
		{"pre_minima", model.GenderMale},
		{"infantil_b1", model.GenderMale},
		{"infantil_b1", model.GenderFemale},
		{"mayores", model.GenderFemale},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d boards, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("board %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// Swimmer rows predating the gender column rank as male.
func TestResultService_MissingGenderDefaultsToMale(t *testing.T) {
	f := setupTestResultService(t)

	f.addTimedLane(t, 1, 1, "Legado", 2014, "", 30000)

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	if boards[0].Gender != model.GenderMale {
		t.Errorf("gender = %q, want %q", boards[0].Gender, model.GenderMale)
	}
}

// A timed lane whose swimmer row is gone is skipped, not fatal.
func TestResultService_DanglingSwimmerSkipped(t *testing.T) {
	f := setupTestResultService(t)

	f.addTimedLane(t, 1, 1, "Mario", 2014, model.GenderMale, 30000)

	ghost := "swimmer-ghost"
	ms := int64(28000)
	if err := f.lanes.BatchCreate(context.Background(), []model.Lane{{
		EventID:     "event-a",
		HeatNumber:  1,
		LaneNumber:  2,
		SwimmerID:   &ghost,
		CoachID:     "coach-1",
		FinalTimeMs: &ms,
	}}); err != nil {
		t.Fatalf("seed dangling lane: %v", err)
	}

	boards, err := f.svc.ComputeResults(context.Background(), "event-a")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	if len(boards) != 1 || len(boards[0].Entries) != 1 {
		t.Fatalf("expected 1 board with 1 entry, got %+v", boards)
	}
	if boards[0].Entries[0].SwimmerName != "Mario" {
		t.Errorf("surviving entry = %q", boards[0].Entries[0].SwimmerName)
	}
}

// Classification follows the event's scheduled year, not today's.
func TestResultService_ClassifiesByEventYear(t *testing.T) {
	f := setupTestResultService(t)

	if err := f.events.Create(context.Background(), &model.Event{
		EventID:     "event-next",
		Title:       "Campeonato 2027",
		ScheduledAt: time.Date(2027, 6, 20, 0, 0, 0, 0, time.UTC),
		ClubID:      "club-1",
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	swimmer := &model.Swimmer{
		Name:      "Mario",
		BirthDate: time.Date(2014, 3, 10, 0, 0, 0, 0, time.UTC),
		Gender:    model.GenderMale,
		ClubID:    "club-1",
	}
	if err := f.swimmers.Create(context.Background(), swimmer); err != nil {
		t.Fatalf("seed swimmer: %v", err)
	}
	ms := int64(30000)
	sid := swimmer.SwimmerID
	if err := f.lanes.BatchCreate(context.Background(), []model.Lane{{
		EventID:     "event-next",
		HeatNumber:  1,
		LaneNumber:  1,
		SwimmerID:   &sid,
		CoachID:     "coach-1",
		FinalTimeMs: &ms,
	}}); err != nil {
		t.Fatalf("seed lane: %v", err)
	}

	boards, err := f.svc.ComputeResults(context.Background(), "event-next")
	if err != nil {
		t.Fatalf("ComputeResults failed: %v", err)
	}
	// 2027 − 2014 = 13 → Infantil B2, one bracket up from the 2026 event.
	if len(boards) != 1 || boards[0].CategoryCode != "infantil_b2" {
		t.Fatalf("expected infantil_b2 board, got %+v", boards)
	}
}
