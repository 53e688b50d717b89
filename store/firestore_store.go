package store

import (
	"CityGuide/models"
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	citiesCollection   = "cities"
	placesCollection   = "places"
	reviewsCollection  = "reviews"
	countersCollection = "counters"
)

// FirestoreStore persists entities in Firestore. Document IDs are the decimal
// entity ids, allocated from counters/{collection} inside a transaction.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

// placeDocument adds the location fields used for geo queries.
type placeDocument struct {
	models.Place
	Geohash  string         `firestore:"geohash,omitempty"`
	Location *latlng.LatLng `firestore:"location,omitempty"`
}

func newPlaceDocument(p models.Place) placeDocument {
	doc := placeDocument{Place: p}
	lat, lng, ok := parseCoordinates(p.Latitude, p.Longitude)
	if ok {
		doc.Geohash = geohash.Encode(lat, lng)
		doc.Location = &latlng.LatLng{Latitude: lat, Longitude: lng}
	}
	return doc
}

func parseCoordinates(latitude, longitude *string) (float64, float64, bool) {
	if latitude == nil || longitude == nil {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(*latitude), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(*longitude), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func docID(id int) string {
	return strconv.Itoa(id)
}

// nextID reads and advances the counter of a collection. It must run before
// any write in the transaction.
func (s *FirestoreStore) nextID(tx *firestore.Transaction, collection string) (int, error) {
	ref := s.client.Collection(countersCollection).Doc(collection)
	next := int64(1)
	snap, err := tx.Get(ref)
	switch {
	case err == nil:
		v, err := snap.DataAt("next")
		if err != nil {
			return 0, err
		}
		if n, ok := v.(int64); ok {
			next = n
		}
	case isNotFound(err):
	default:
		return 0, err
	}
	return int(next), nil
}

func (s *FirestoreStore) advance(tx *firestore.Transaction, collection string, used int) error {
	ref := s.client.Collection(countersCollection).Doc(collection)
	return tx.Set(ref, map[string]interface{}{"next": int64(used + 1)})
}

func (s *FirestoreStore) insert(ctx context.Context, collection string, build func(id int) interface{}) (int, error) {
	var assigned int
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		id, err := s.nextID(tx, collection)
		if err != nil {
			return err
		}
		if err := s.advance(tx, collection, id); err != nil {
			return err
		}
		assigned = id
		return tx.Create(s.client.Collection(collection).Doc(docID(id)), build(id))
	})
	return assigned, err
}

func getDoc[T any](ctx context.Context, client *firestore.Client, collection string, id int) (T, bool, error) {
	var out T
	snap, err := client.Collection(collection).Doc(docID(id)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return out, false, nil
		}
		return out, false, err
	}
	if err := snap.DataTo(&out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

// collect drains a query and returns documents ordered by id.
func collect[T any](iter *firestore.DocumentIterator, idOf func(T) int) ([]T, error) {
	defer iter.Stop()
	res := make([]T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	sort.SliceStable(res, func(i, j int) bool { return idOf(res[i]) < idOf(res[j]) })
	return res, nil
}

func cityID(c models.City) int     { return c.ID }
func placeID(p placeDocument) int  { return p.ID }
func reviewID(r models.Review) int { return r.ID }

func placesOf(docs []placeDocument) []models.Place {
	res := make([]models.Place, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.Place)
	}
	return res
}

func (s *FirestoreStore) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		q := s.client.Collection(usersCollection).Where("username", "==", user.Username).Limit(1)
		existing, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrDuplicate
		}
		id, err := s.nextID(tx, usersCollection)
		if err != nil {
			return err
		}
		if err := s.advance(tx, usersCollection, id); err != nil {
			return err
		}
		user.ID = id
		return tx.Create(s.client.Collection(usersCollection).Doc(docID(id)), user)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, id int) (models.User, bool, error) {
	return getDoc[models.User](ctx, s.client, usersCollection, id)
}

func (s *FirestoreStore) GetUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	iter := s.client.Collection(usersCollection).Where("username", "==", username).Limit(1).Documents(ctx)
	users, err := collect(iter, func(u models.User) int { return u.ID })
	if err != nil || len(users) == 0 {
		return models.User{}, false, err
	}
	return users[0], true, nil
}

func (s *FirestoreStore) InsertCity(ctx context.Context, city models.City) (models.City, error) {
	id, err := s.insert(ctx, citiesCollection, func(id int) interface{} {
		city.ID = id
		return city
	})
	if err != nil {
		return models.City{}, err
	}
	city.ID = id
	return city, nil
}

func (s *FirestoreStore) GetCity(ctx context.Context, id int) (models.City, bool, error) {
	return getDoc[models.City](ctx, s.client, citiesCollection, id)
}

// GetCityByName scans the cities; Firestore has no case-insensitive equality.
func (s *FirestoreStore) GetCityByName(ctx context.Context, name string) (models.City, bool, error) {
	cities, err := s.ListCities(ctx)
	if err != nil {
		return models.City{}, false, err
	}
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, true, nil
		}
	}
	return models.City{}, false, nil
}

func (s *FirestoreStore) ListCities(ctx context.Context) ([]models.City, error) {
	return collect(s.client.Collection(citiesCollection).Documents(ctx), cityID)
}

func (s *FirestoreStore) ListFeaturedCities(ctx context.Context) ([]models.City, error) {
	return collect(s.client.Collection(citiesCollection).Where("isFeatured", "==", true).Documents(ctx), cityID)
}

func (s *FirestoreStore) InsertPlace(ctx context.Context, place models.Place) (models.Place, error) {
	id, err := s.insert(ctx, placesCollection, func(id int) interface{} {
		place.ID = id
		return newPlaceDocument(place)
	})
	if err != nil {
		return models.Place{}, err
	}
	place.ID = id
	return place, nil
}

func (s *FirestoreStore) GetPlace(ctx context.Context, id int) (models.Place, bool, error) {
	doc, ok, err := getDoc[placeDocument](ctx, s.client, placesCollection, id)
	return doc.Place, ok, err
}

func (s *FirestoreStore) ListPlaces(ctx context.Context) ([]models.Place, error) {
	docs, err := collect(s.client.Collection(placesCollection).Documents(ctx), placeID)
	if err != nil {
		return nil, err
	}
	return placesOf(docs), nil
}

func (s *FirestoreStore) ListPlacesByCity(ctx context.Context, cityID int) ([]models.Place, error) {
	docs, err := collect(s.client.Collection(placesCollection).Where("cityId", "==", cityID).Documents(ctx), placeID)
	if err != nil {
		return nil, err
	}
	return placesOf(docs), nil
}

func (s *FirestoreStore) ListFeaturedPlaces(ctx context.Context) ([]models.Place, error) {
	docs, err := collect(s.client.Collection(placesCollection).Where("isFeatured", "==", true).Documents(ctx), placeID)
	if err != nil {
		return nil, err
	}
	return placesOf(docs), nil
}

// InsertReview creates the review and rewrites the place aggregates in one transaction.
func (s *FirestoreStore) InsertReview(ctx context.Context, review models.Review) (models.Review, error) {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		placeRef := s.client.Collection(placesCollection).Doc(docID(review.PlaceID))
		snap, err := tx.Get(placeRef)
		if err != nil {
			if isNotFound(err) {
				return ErrNotFound
			}
			return err
		}
		var place placeDocument
		if err := snap.DataTo(&place); err != nil {
			return err
		}
		id, err := s.nextID(tx, reviewsCollection)
		if err != nil {
			return err
		}
		if err := s.advance(tx, reviewsCollection, id); err != nil {
			return err
		}
		review.ID = id
		review.CreatedAt = s.now().UTC()
		applyReview(&place.Place, review.Rating)
		if err := tx.Set(placeRef, place); err != nil {
			return err
		}
		return tx.Create(s.client.Collection(reviewsCollection).Doc(docID(id)), review)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Review{}, ErrNotFound
		}
		return models.Review{}, err
	}
	return review, nil
}

func (s *FirestoreStore) ListReviews(ctx context.Context, placeID int) ([]models.Review, error) {
	return collect(s.client.Collection(reviewsCollection).Where("placeId", "==", placeID).Documents(ctx), reviewID)
}
