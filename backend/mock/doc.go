// Package mock provides test doubles for the search capabilities.
//
// MockIndexedBackend, MockLiveBackend and MockDiscoverer satisfy the
// interfaces consumed by search.Searcher without running any external tool
// or touching the filesystem. Behavior is injected through function fields,
// and every double records its calls so tests can assert which backends a
// query mode reached.
//
// # Usage in Tests
//
//	indexed := mock.NewMockIndexedBackend("/home/x/doc.txt")
//	live := mock.NewMockLiveBackend().
//	    WithSearchMountsFunc(func(ctx context.Context, term string, mounts []core.MountPoint) core.BackendResult {
//	        return core.OK([]string{"/media/usb/doc_copy.txt"})
//	    })
//	discoverer := mock.NewMockDiscoverer("/media/usb")
//
//	searcher, _ := search.NewSearcher(indexed, live, discoverer)
//	paths, _ := searcher.Search(ctx, "doc")
//
//	// Check call counts
//	count := indexed.IndexedCalls()
//
// # Default Behavior
//
//   - MockIndexedBackend: returns the paths it was created with, for both calls
//   - MockLiveBackend: returns an Ok result with no paths
//   - MockDiscoverer: returns the mount points it was created with
package mock
