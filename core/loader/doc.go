// Package loader provides the feature loading system of serve mode.
//
// Each feature implements the Feature interface and registers its routes when
// loaded. The Manager keeps the registry and loads the enabled features in the
// order they were registered.
//
//	mgr := loader.NewManager()
//	mgr.Register(compare.NewFeature(...))
//	names, err := mgr.LoadAll(app)
package loader
