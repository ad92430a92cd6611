package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/dunerides/internal/db"
	domsession "github.com/kailas-cloud/dunerides/internal/domain/session"
)

type mockStore struct {
	data    map[string][]byte
	err     error
	lastKey string
	calls   int
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.calls++
	m.lastKey = key
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func readySource(s *mockStore) *StoreSource {
	src := NewStoreSource(s, "", nil)
	src.MarkReady()
	return src
}

func TestStoreSource_NotReadyIsResolving(t *testing.T) {
	st := &mockStore{}
	src := NewStoreSource(st, "", nil)

	got := src.Session(context.Background(), "tok")
	assert.True(t, got.Loading)
	assert.Zero(t, st.calls, "store must not be queried before ready")
	assert.False(t, src.Ready())
}

func TestStoreSource_EmptyToken(t *testing.T) {
	st := &mockStore{}
	got := readySource(st).Session(context.Background(), "")

	assert.False(t, got.Loading)
	assert.Nil(t, got.User)
	assert.Zero(t, st.calls)
}

func TestStoreSource_Found(t *testing.T) {
	st := &mockStore{data: map[string][]byte{
		"session:tok": []byte(`{"id":"u1","email":"r@example.com","name":"Rider","role":"admin"}`),
	}}

	got := readySource(st).Session(context.Background(), "tok")
	require.NotNil(t, got.User)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, domsession.RoleAdmin, got.User.Role)
	assert.Equal(t, "session:tok", st.lastKey)
}

func TestStoreSource_CustomPrefix(t *testing.T) {
	st := &mockStore{data: map[string][]byte{"sess/tok": []byte(`{"id":"u1"}`)}}
	src := NewStoreSource(st, "sess/", nil)
	src.MarkReady()

	got := src.Session(context.Background(), "tok")
	require.NotNil(t, got.User)
}

func TestStoreSource_Missing(t *testing.T) {
	got := readySource(&mockStore{}).Session(context.Background(), "nope")
	assert.False(t, got.Loading)
	assert.Nil(t, got.User)
}

func TestStoreSource_TransientErrorIsResolving(t *testing.T) {
	st := &mockStore{err: &db.Error{Op: db.OpGet, Err: errors.New("i/o timeout")}}
	got := readySource(st).Session(context.Background(), "tok")
	assert.True(t, got.Loading)
}

func TestStoreSource_CorruptRecord(t *testing.T) {
	st := &mockStore{data: map[string][]byte{
		"session:bad":   []byte(`{not json`),
		"session:no-id": []byte(`{"name":"ghost"}`),
	}}
	src := readySource(st)

	for _, tok := range []string{"bad", "no-id"} {
		got := src.Session(context.Background(), tok)
		assert.False(t, got.Loading, tok)
		assert.Nil(t, got.User, tok)
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(domsession.Authenticated(domsession.User{ID: "dev"}))
	got := src.Session(context.Background(), "")
	require.NotNil(t, got.User)
	assert.Equal(t, "dev", got.User.ID)
}
