package types

import (
	"sort"
	"sync"
)

type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}, 0),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	var res interface{}
	present := false

	wmap.lock.RLock()
	if res, present = wmap.data[id]; !present {
		res = nil
	}
	wmap.lock.RUnlock()

	return res
}

func (wmap *SyncMap) Set(id string, item interface{}) {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// Keys returns the ids in ascending order.
func (wmap *SyncMap) Keys() []string {
	wmap.lock.RLock()
	keys := make([]string, 0, len(wmap.data))
	for k := range wmap.data {
		keys = append(keys, k)
	}
	wmap.lock.RUnlock()

	sort.Strings(keys)
	return keys
}

// Each calls fn on a copy of the current entries, so fn may modify the map.
func (wmap *SyncMap) Each(fn func(id string, item interface{})) {
	wmap.lock.RLock()
	entries := make(map[string]interface{}, len(wmap.data))
	for k, v := range wmap.data {
		entries[k] = v
	}
	wmap.lock.RUnlock()

	for k, v := range entries {
		fn(k, v)
	}
}
