// Package metrics exposes enumeration progress as Prometheus metrics.
//
// A Recorder owns its own registry, so several recorders (e.g. one per test)
// never collide. It implements domain.Observer:
//
//	rec := metrics.NewRecorder()
//	e, _ := domain.New(cfg, domain.WithObserver(rec))
//	rec.SetDomainSize(e.Sizes())
//	http.Handle("/metrics", rec.Handler())
package metrics
