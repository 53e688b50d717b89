package store

import (
	"CityGuide/models"
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps every collection in process memory. Writes are lost on restart.
type MemoryStore struct {
	mu sync.RWMutex

	users   map[int]models.User
	cities  map[int]models.City
	places  map[int]models.Place
	reviews map[int]models.Review

	userOrder   []int
	cityOrder   []int
	placeOrder  []int
	reviewOrder []int

	nextUserID   int
	nextCityID   int
	nextPlaceID  int
	nextReviewID int

	now func() time.Time
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[int]models.User),
		cities:       make(map[int]models.City),
		places:       make(map[int]models.Place),
		reviews:      make(map[int]models.Review),
		nextUserID:   1,
		nextCityID:   1,
		nextPlaceID:  1,
		nextReviewID: 1,
		now:          time.Now,
	}
}

func (m *MemoryStore) InsertUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return models.User{}, ErrDuplicate
		}
	}
	user.ID = m.nextUserID
	m.nextUserID++
	m.users[user.ID] = user
	m.userOrder = append(m.userOrder, user.ID)
	return user, nil
}

func (m *MemoryStore) GetUser(_ context.Context, id int) (models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.userOrder {
		if u := m.users[id]; u.Username == username {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (m *MemoryStore) InsertCity(_ context.Context, city models.City) (models.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	city.ID = m.nextCityID
	m.nextCityID++
	m.cities[city.ID] = city
	m.cityOrder = append(m.cityOrder, city.ID)
	return city, nil
}

func (m *MemoryStore) GetCity(_ context.Context, id int) (models.City, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cities[id]
	return c, ok, nil
}

// GetCityByName matches names case-insensitively.
func (m *MemoryStore) GetCityByName(_ context.Context, name string) (models.City, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.cityOrder {
		if c := m.cities[id]; strings.EqualFold(c.Name, name) {
			return c, true, nil
		}
	}
	return models.City{}, false, nil
}

func (m *MemoryStore) ListCities(_ context.Context) ([]models.City, error) {
	return m.filterCities(func(models.City) bool { return true }), nil
}

func (m *MemoryStore) ListFeaturedCities(_ context.Context) ([]models.City, error) {
	return m.filterCities(func(c models.City) bool { return c.IsFeatured }), nil
}

func (m *MemoryStore) filterCities(keep func(models.City) bool) []models.City {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.City, 0, len(m.cityOrder))
	for _, id := range m.cityOrder {
		if c := m.cities[id]; keep(c) {
			res = append(res, c)
		}
	}
	return res
}

func (m *MemoryStore) InsertPlace(_ context.Context, place models.Place) (models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	place.ID = m.nextPlaceID
	m.nextPlaceID++
	m.places[place.ID] = clonePlace(place)
	m.placeOrder = append(m.placeOrder, place.ID)
	return place, nil
}

func (m *MemoryStore) GetPlace(_ context.Context, id int) (models.Place, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.places[id]
	if !ok {
		return models.Place{}, false, nil
	}
	return clonePlace(p), true, nil
}

func (m *MemoryStore) ListPlaces(_ context.Context) ([]models.Place, error) {
	return m.filterPlaces(func(models.Place) bool { return true }), nil
}

func (m *MemoryStore) ListPlacesByCity(_ context.Context, cityID int) ([]models.Place, error) {
	return m.filterPlaces(func(p models.Place) bool { return p.CityID == cityID }), nil
}

func (m *MemoryStore) ListFeaturedPlaces(_ context.Context) ([]models.Place, error) {
	return m.filterPlaces(func(p models.Place) bool { return p.IsFeatured }), nil
}

func (m *MemoryStore) filterPlaces(keep func(models.Place) bool) []models.Place {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Place, 0, len(m.placeOrder))
	for _, id := range m.placeOrder {
		if p := m.places[id]; keep(p) {
			res = append(res, clonePlace(p))
		}
	}
	return res
}

// InsertReview stores the review and updates the place aggregates under the
// same lock. A missing place leaves the review counter untouched.
func (m *MemoryStore) InsertReview(_ context.Context, review models.Review) (models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	place, ok := m.places[review.PlaceID]
	if !ok {
		return models.Review{}, ErrNotFound
	}
	review.ID = m.nextReviewID
	m.nextReviewID++
	review.CreatedAt = m.now().UTC()
	m.reviews[review.ID] = review
	m.reviewOrder = append(m.reviewOrder, review.ID)

	applyReview(&place, review.Rating)
	m.places[place.ID] = place
	return review, nil
}

func (m *MemoryStore) ListReviews(_ context.Context, placeID int) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Review, 0)
	for _, id := range m.reviewOrder {
		if r := m.reviews[id]; r.PlaceID == placeID {
			res = append(res, r)
		}
	}
	return res, nil
}

// clonePlace copies the slices so callers cannot mutate stored state.
func clonePlace(p models.Place) models.Place {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}
