package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"time4swim/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListByClub(_ context.Context, clubID string, role string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.ClubID != clubID {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []string) ([]model.User, error) {
	var result []model.User
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

// ── Mock ClubRepository ──

type mockClubRepo struct {
	clubs map[string]*model.Club
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{clubs: make(map[string]*model.Club)}
}

func (m *mockClubRepo) Create(_ context.Context, club *model.Club) error {
	if club.ClubID == "" {
		club.ClubID = "club-" + club.Name
	}
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) GetByID(_ context.Context, id string) (*model.Club, error) {
	if c, ok := m.clubs[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClubRepo) List(_ context.Context) ([]model.Club, error) {
	var result []model.Club
	for _, c := range m.clubs {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockClubRepo) Update(_ context.Context, club *model.Club) error {
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.clubs, id)
	return nil
}

// ── Mock SwimmerRepository ──

type mockSwimmerRepo struct {
	swimmers map[string]*model.Swimmer
	seq      int
}

func newMockSwimmerRepo() *mockSwimmerRepo {
	return &mockSwimmerRepo{swimmers: make(map[string]*model.Swimmer)}
}

func (m *mockSwimmerRepo) Create(_ context.Context, swimmer *model.Swimmer) error {
	if swimmer.SwimmerID == "" {
		m.seq++
		swimmer.SwimmerID = fmt.Sprintf("swimmer-%03d", m.seq)
	}
	m.swimmers[swimmer.SwimmerID] = swimmer
	return nil
}

func (m *mockSwimmerRepo) GetByID(_ context.Context, id string) (*model.Swimmer, error) {
	if s, ok := m.swimmers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSwimmerRepo) ListByClub(_ context.Context, clubID string, offset, limit int) ([]model.Swimmer, int64, error) {
	var all []model.Swimmer
	for _, s := range m.swimmers {
		if s.ClubID == clubID {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SwimmerID < all[j].SwimmerID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockSwimmerRepo) ListByIDs(_ context.Context, ids []string) ([]model.Swimmer, error) {
	var result []model.Swimmer
	for _, id := range ids {
		if s, ok := m.swimmers[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSwimmerRepo) Update(_ context.Context, swimmer *model.Swimmer) error {
	m.swimmers[swimmer.SwimmerID] = swimmer
	return nil
}

func (m *mockSwimmerRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.swimmers, id)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
	seq    int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.EventID == "" {
		m.seq++
		event.EventID = fmt.Sprintf("event-%03d", m.seq)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, clubID string, offset, limit int) ([]model.Event, int64, error) {
	var all []model.Event
	for _, e := range m.events {
		if clubID != "" && e.ClubID != clubID {
			continue
		}
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EventID < all[j].EventID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEventRepo) ListUpcoming(_ context.Context, clubID string) ([]model.Event, error) {
	var result []model.Event
	now := time.Now()
	for _, e := range m.events {
		if clubID != "" && e.ClubID != clubID {
			continue
		}
		if e.ScheduledAt.Before(now.AddDate(0, 0, -1)) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledAt.Before(result[j].ScheduledAt) })
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.events, id)
	return nil
}

// ── Mock LaneRepository ──
//
// Slice-backed so insertion order is observable: the real repository orders
// by (heat_number, lane_number) and ListTimedByEvent preloads the swimmer,
// both of which are reproduced here.

type mockLaneRepo struct {
	lanes    []*model.Lane
	swimmers *mockSwimmerRepo
	users    *mockUserRepo
	seq      int
}

func newMockLaneRepo(swimmers *mockSwimmerRepo, users *mockUserRepo) *mockLaneRepo {
	return &mockLaneRepo{swimmers: swimmers, users: users}
}

func (m *mockLaneRepo) BatchCreate(_ context.Context, lanes []model.Lane) error {
	for i := range lanes {
		if lanes[i].LaneID == "" {
			m.seq++
			lanes[i].LaneID = fmt.Sprintf("lane-%03d", m.seq)
		}
		stored := lanes[i]
		m.lanes = append(m.lanes, &stored)
	}
	return nil
}

func (m *mockLaneRepo) GetByID(_ context.Context, id string) (*model.Lane, error) {
	for _, l := range m.lanes {
		if l.LaneID == id {
			m.hydrate(l)
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLaneRepo) ListByEvent(_ context.Context, eventID string) ([]model.Lane, error) {
	var result []model.Lane
	for _, l := range m.lanes {
		if l.EventID == eventID {
			m.hydrate(l)
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].HeatNumber != result[j].HeatNumber {
			return result[i].HeatNumber < result[j].HeatNumber
		}
		return result[i].LaneNumber < result[j].LaneNumber
	})
	return result, nil
}

func (m *mockLaneRepo) ListByEventHeat(_ context.Context, eventID string, heatNumber int) ([]model.Lane, error) {
	var result []model.Lane
	for _, l := range m.lanes {
		if l.EventID == eventID && l.HeatNumber == heatNumber {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLaneRepo) ListTimedByEvent(_ context.Context, eventID string) ([]model.Lane, error) {
	var result []model.Lane
	for _, l := range m.lanes {
		if l.EventID == eventID && l.FinalTimeMs != nil {
			m.hydrate(l)
			result = append(result, *l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].HeatNumber != result[j].HeatNumber {
			return result[i].HeatNumber < result[j].HeatNumber
		}
		return result[i].LaneNumber < result[j].LaneNumber
	})
	return result, nil
}

func (m *mockLaneRepo) GetByEventSwimmer(_ context.Context, eventID, swimmerID string) (*model.Lane, error) {
	for _, l := range m.lanes {
		if l.EventID == eventID && l.SwimmerID != nil && *l.SwimmerID == swimmerID {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLaneRepo) Update(_ context.Context, lane *model.Lane) error {
	for i, l := range m.lanes {
		if l.LaneID == lane.LaneID {
			m.lanes[i] = lane
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLaneRepo) DeleteByEvent(_ context.Context, eventID string) error {
	var kept []*model.Lane
	for _, l := range m.lanes {
		if l.EventID != eventID {
			kept = append(kept, l)
		}
	}
	m.lanes = kept
	return nil
}

func (m *mockLaneRepo) countByEvent(eventID string) int {
	n := 0
	for _, l := range m.lanes {
		if l.EventID == eventID {
			n++
		}
	}
	return n
}

func (m *mockLaneRepo) hydrate(l *model.Lane) {
	if l.SwimmerID != nil && m.swimmers != nil {
		if s, ok := m.swimmers.swimmers[*l.SwimmerID]; ok {
			l.Swimmer = s
		}
	}
	if m.users != nil {
		if u, ok := m.users.users[l.CoachID]; ok {
			l.Coach = u
		}
	}
}
