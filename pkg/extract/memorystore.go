package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// MemoryObject is one object held by MemoryStore.
type MemoryObject struct {
	Data         []byte
	Metadata     map[string]string
	LastModified time.Time
}

// MemoryStore is an in-memory ObjectStore for tests.
type MemoryStore struct {
	Objects map[string]MemoryObject
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Objects: make(map[string]MemoryObject)}
}

// Put adds an object with content only.
func (m *MemoryStore) Put(key string, data []byte) {
	m.Objects[key] = MemoryObject{Data: data}
}

// PutWithMetadata adds an object with metadata and a modification time.
func (m *MemoryStore) PutWithMetadata(key string, data []byte, metadata map[string]string, modified time.Time) {
	m.Objects[key] = MemoryObject{Data: data, Metadata: metadata, LastModified: modified}
}

// List implements ObjectStore.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]ObjectInfo, error) {
	var keys []string
	for key := range m.Objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	objects := make([]ObjectInfo, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, ObjectInfo{Key: key, LastModified: m.Objects[key].LastModified})
	}
	return objects, nil
}

// Get implements ObjectStore.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	obj, ok := m.Objects[key]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", key)
	}
	return obj.Data, nil
}

// Metadata implements ObjectStore.
func (m *MemoryStore) Metadata(_ context.Context, key string) (map[string]string, error) {
	obj, ok := m.Objects[key]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", key)
	}
	return obj.Metadata, nil
}

// Path implements ObjectStore.
func (m *MemoryStore) Path(key string) string {
	return "mem://" + key
}

var _ ObjectStore = (*MemoryStore)(nil)
