package trips_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripventure/tripventure-go/internal/auth"
	"github.com/tripventure/tripventure-go/internal/dto"
	"github.com/tripventure/tripventure-go/internal/storage"
	"github.com/tripventure/tripventure-go/internal/trips"
)

func newCatalogue(t *testing.T) (*storage.Store, *auth.Store, *trips.Store) {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	a, err := auth.NewStore(st)
	require.NoError(t, err)
	s, err := trips.NewStore(st, a)
	require.NoError(t, err)
	return st, a, s
}

func loginDemo(t *testing.T, a *auth.Store) {
	t.Helper()
	require.True(t, a.Login(auth.DemoEmail, auth.DemoPassword).Success)
}

func tripInput() dto.CreateTripInput {
	return dto.CreateTripInput{
		Name:        "ทริปทดสอบ",
		Description: "รายละเอียดทริปทดสอบ",
		Province:    "ภูเก็ต",
		Images:      []string{"https://example.com/a.jpg"},
		Tags:        []string{"ทะเล", "ภูเก็ต"},
	}
}

func TestNewStore_SeedsTenTrips(t *testing.T) {
	_, _, s := newCatalogue(t)

	all := s.SearchTrips("")
	require.Len(t, all, 10)
	for i, trip := range all {
		// Seed ids are the fixed literals "1".."10", in order.
		assert.Equal(t, strconv.Itoa(i+1), trip.ID)
		assert.Equal(t, auth.DemoUserID, trip.UserID)
		assert.True(t, trip.UpdatedAt.Equal(trip.CreatedAt))
		assert.NotEmpty(t, trip.ShortDescription)
	}
}

func TestNewStore_KeepsPersistedCollection(t *testing.T) {
	st, a, s := newCatalogue(t)
	loginDemo(t, a)

	created, err := s.CreateTrip(tripInput())
	require.NoError(t, err)

	reloaded, err := trips.NewStore(st, a)
	require.NoError(t, err)
	assert.Len(t, reloaded.SearchTrips(""), 11)

	got, err := reloaded.GetTripByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestNewStore_MalformedPayloadFallsBackToSeed(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	a, err := auth.NewStore(st)
	require.NoError(t, err)

	path := filepath.Join(st.Dir(), storage.KeyTrips+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := trips.NewStore(st, a)
	require.NoError(t, err)
	assert.Len(t, s.SearchTrips(""), 10)

	// The seed catalogue replaced the broken snapshot on disk.
	reloaded, err := trips.NewStore(st, a)
	require.NoError(t, err)
	assert.Len(t, reloaded.SearchTrips(""), 10)
}

func TestSearchTrips_EmptyQueryReturnsAllInOrder(t *testing.T) {
	_, _, s := newCatalogue(t)

	assert.Equal(t, s.SearchTrips(""), s.SearchTrips("   "))
	all := s.SearchTrips("")
	require.Len(t, all, 10)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "5", all[4].ID)
}

func TestSearchTrips_MatchesProvinceNameDescriptionAndTags(t *testing.T) {
	_, _, s := newCatalogue(t)

	chiangMai := s.SearchTrips("เชียงใหม่")
	require.Len(t, chiangMai, 1)
	assert.Equal(t, "5", chiangMai[0].ID)

	// OR across fields: ธรรมชาติ appears only as a tag.
	nature := s.SearchTrips("ธรรมชาติ")
	assert.Len(t, nature, 6)

	assert.Empty(t, s.SearchTrips("ไม่มีทางเจอ"))
}

func TestSearchTrips_CaseInsensitive(t *testing.T) {
	_, _, s := newCatalogue(t)

	lower := s.SearchTrips("bts")
	require.Len(t, lower, 1)
	assert.Equal(t, "2", lower[0].ID)
	assert.Equal(t, lower, s.SearchTrips("BTS"))
}

func TestGetTripByID(t *testing.T) {
	_, _, s := newCatalogue(t)

	trip, err := s.GetTripByID("3")
	require.NoError(t, err)
	assert.Equal(t, "ชลบุรี", trip.Province)

	_, err = s.GetTripByID("no-such-id")
	require.ErrorIs(t, err, trips.ErrNotFound)
}

func TestGetUserTrips(t *testing.T) {
	_, a, s := newCatalogue(t)

	assert.Len(t, s.GetUserTrips(auth.DemoUserID), 10)
	assert.Empty(t, s.GetUserTrips("someone-else"))

	require.True(t, a.Register("alice@example.com", "secret").Success)
	created, err := s.CreateTrip(tripInput())
	require.NoError(t, err)

	owned := s.GetUserTrips(a.CurrentUser().ID)
	require.Len(t, owned, 1)
	assert.Equal(t, created.ID, owned[0].ID)
}

func TestCreateTrip_Unauthenticated(t *testing.T) {
	_, _, s := newCatalogue(t)

	_, err := s.CreateTrip(tripInput())
	require.ErrorIs(t, err, trips.ErrUnauthenticated)
	assert.Len(t, s.SearchTrips(""), 10, "nothing should be appended")
}

func TestCreateTrip_StampsOwnerAndTimestamps(t *testing.T) {
	_, a, s := newCatalogue(t)
	loginDemo(t, a)

	created, err := s.CreateTrip(tripInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, auth.DemoUserID, created.UserID)
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt), "createdAt and updatedAt start equal")

	got, err := s.GetTripByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestCreateTrip_DerivesShortDescription(t *testing.T) {
	_, a, s := newCatalogue(t)
	loginDemo(t, a)

	in := tripInput()
	in.Description = strings.Repeat("word ", 50)
	in.ShortDescription = ""

	created, err := s.CreateTrip(in)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(created.ShortDescription, "..."))
	assert.Less(t, len([]rune(created.ShortDescription)), len([]rune(in.Description)))
}

func TestUpdateTrip_Unauthenticated(t *testing.T) {
	_, _, s := newCatalogue(t)

	name := "ชื่อใหม่"
	_, err := s.UpdateTrip("1", dto.UpdateTripInput{Name: &name})
	require.ErrorIs(t, err, trips.ErrUnauthenticated)
}

func TestUpdateTrip_NotFoundBeforeOwnership(t *testing.T) {
	_, a, s := newCatalogue(t)
	require.True(t, a.Register("alice@example.com", "secret").Success)

	name := "ชื่อใหม่"
	_, err := s.UpdateTrip("no-such-id", dto.UpdateTripInput{Name: &name})
	require.ErrorIs(t, err, trips.ErrNotFound)
}

func TestUpdateTrip_NonOwnerForbidden(t *testing.T) {
	_, a, s := newCatalogue(t)
	require.True(t, a.Register("alice@example.com", "secret").Success)

	before, err := s.GetTripByID("1")
	require.NoError(t, err)

	name := "ชื่อใหม่"
	_, err = s.UpdateTrip("1", dto.UpdateTripInput{Name: &name})
	require.ErrorIs(t, err, trips.ErrForbidden)

	after, err := s.GetTripByID("1")
	require.NoError(t, err)
	assert.Equal(t, before.Name, after.Name, "forbidden update must not change the trip")
	assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestUpdateTrip_MergesFieldsAndRefreshesUpdatedAt(t *testing.T) {
	_, a, s := newCatalogue(t)
	loginDemo(t, a)

	before, err := s.GetTripByID("1")
	require.NoError(t, err)

	name := "ชื่อใหม่"
	updated, err := s.UpdateTrip("1", dto.UpdateTripInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "ชื่อใหม่", updated.Name)
	assert.Equal(t, before.Description, updated.Description, "unset fields stay put")
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.UserID, updated.UserID)
	assert.True(t, updated.CreatedAt.Equal(before.CreatedAt), "createdAt is immutable")
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt), "updatedAt must be refreshed")
}

func TestDeleteTrip_UnknownID(t *testing.T) {
	_, a, s := newCatalogue(t)
	loginDemo(t, a)

	require.ErrorIs(t, s.DeleteTrip("no-such-id"), trips.ErrNotFound)
}

func TestDeleteTrip_NonOwnerForbidden(t *testing.T) {
	_, a, s := newCatalogue(t)
	require.True(t, a.Register("alice@example.com", "secret").Success)

	require.ErrorIs(t, s.DeleteTrip("1"), trips.ErrForbidden)
	assert.Len(t, s.SearchTrips(""), 10)
}

func TestDeleteTrip_RemovesAndPersists(t *testing.T) {
	st, a, s := newCatalogue(t)
	loginDemo(t, a)

	require.NoError(t, s.DeleteTrip("1"))
	assert.Len(t, s.SearchTrips(""), 9)
	_, err := s.GetTripByID("1")
	require.ErrorIs(t, err, trips.ErrNotFound)

	reloaded, err := trips.NewStore(st, a)
	require.NoError(t, err)
	assert.Len(t, reloaded.SearchTrips(""), 9)
}

func TestTrips_PersistedRoundTrip(t *testing.T) {
	st, a, s := newCatalogue(t)
	loginDemo(t, a)

	_, err := s.CreateTrip(tripInput())
	require.NoError(t, err)

	before, err := json.Marshal(s.SearchTrips(""))
	require.NoError(t, err)

	reloaded, err := trips.NewStore(st, a)
	require.NoError(t, err)
	after, err := json.Marshal(reloaded.SearchTrips(""))
	require.NoError(t, err)

	assert.JSONEq(t, string(before), string(after), "reload must yield the identical ordered collection")
}
