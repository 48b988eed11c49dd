package di_test

import (
	"testing"

	"github.com/sghaida/userdi/di"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func connCtor() (connector, error) { return &fakeConn{DSN: "postgres"}, nil }

func finderCtor(c connector) (finder, error) { return &fakeFinder{Conn: c}, nil }

func newBenchConn(b *testing.B) *di.Component[connector] {
	b.Helper()

	c, err := di.Provide(connKey, connCtor)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func newBenchFinder(b *testing.B) *di.Component[finder] {
	b.Helper()

	f, err := di.Inject(finderKey, newBenchConn(b), finderCtor)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

/*
   Benchmarks
*/

func BenchmarkProvide_NoDependencies(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = di.Provide(connKey, connCtor)
	}
}

func BenchmarkInject_SingleDependency(b *testing.B) {
	conn := newBenchConn(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.Inject(finderKey, conn, finderCtor)
	}
}

func BenchmarkProvide_DuplicateKey(b *testing.B) {
	conn := newBenchConn(b)
	ctor := func() (finder, error) { return &fakeFinder{}, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.Provide(finderKey, ctor, conn, conn) // error path
	}
}

func BenchmarkHas(b *testing.B) {
	f := newBenchFinder(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Has(connKey)
	}
}

func BenchmarkGetAs(b *testing.B) {
	f := newBenchFinder(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.GetAs[connector](f, connKey)
	}
}

func BenchmarkTryGetAs_Success(b *testing.B) {
	f := newBenchFinder(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.TryGetAs[connector](f, connKey)
	}
}

func BenchmarkTryGetAs_Missing(b *testing.B) {
	f := newBenchFinder(b)
	missing := di.Key("missing")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.TryGetAs[connector](f, missing)
	}
}

func BenchmarkClone(b *testing.B) {
	f := newBenchFinder(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Clone()
	}
}

func BenchmarkLookup(b *testing.B) {
	reg := di.NewMapRegistry().Provide("database.connection_string", "postgres://")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.Lookup[string](reg, nil, "database.connection_string")
	}
}
