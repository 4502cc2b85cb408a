package persistence

import (
	"errors"
	"testing"

	cfg "github.com/automoto/superkick/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := New(&memStore{})
	if got := s.Load(); got != Defaults() {
		t.Fatalf("got=%+v want=%+v", got, Defaults())
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := &memStore{}
	s := New(store)

	want := SavedSettings{Haptics: false, ShowTrails: false}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := store.items[cfg.Settings.StorageKey]; !ok {
		t.Fatalf("nothing stored under %q", cfg.Settings.StorageKey)
	}
	if got := New(store).Load(); got != want {
		t.Fatalf("got=%+v want=%+v", got, want)
	}
}

func TestLoadCorruptFallsBack(t *testing.T) {
	store := &memStore{items: map[string][]byte{cfg.Settings.StorageKey: []byte("{not json")}}
	if got := New(store).Load(); got != Defaults() {
		t.Fatalf("got=%+v want defaults", got)
	}
}

func TestLoadErrorFallsBack(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk gone")}
	if got := New(store).Load(); got != Defaults() {
		t.Fatalf("got=%+v want defaults", got)
	}
}

func TestSaveErrorIsWrapped(t *testing.T) {
	cause := errors.New("read-only")
	err := New(&memStore{saveErr: cause}).Save(Defaults())
	if !errors.Is(err, cause) {
		t.Fatalf("err: got=%v want wrapping %v", err, cause)
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var s *Settings
	if err := s.Save(Defaults()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Load(); got != Defaults() {
		t.Fatalf("load: %+v", got)
	}
	if err := New(nil).Save(SavedSettings{}); err != nil {
		t.Fatalf("save: %v", err)
	}
}
