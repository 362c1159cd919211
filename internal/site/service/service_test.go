package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/growthverse/site/internal/site/service"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/internal/site/store/drivers/sqlite"
	"github.com/growthverse/site/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full core over a fresh in-memory store, the same shape the
// app package assembles in production.
type testEnv struct {
	kv        *sqlite.Store
	store     *store.Collections
	signer    *jwtx.Signer
	directory *service.Directory
	sessions  *service.SessionManager
	comments  *service.Comments
	contact   *service.Contact
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	require.NoError(t, kv.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collections := store.NewCollections(kv, "growthverse")
	signer := jwtx.NewSigner("test-secret", "growthverse")

	directory := &service.Directory{Store: collections, Logger: logger}
	sessions := service.NewSessionManager(directory, collections, signer, logger)

	return &testEnv{
		kv:        kv,
		store:     collections,
		signer:    signer,
		directory: directory,
		sessions:  sessions,
		comments:  &service.Comments{Sessions: sessions, Store: collections, Logger: logger},
		contact:   &service.Contact{Sessions: sessions, Store: collections, Logger: logger},
	}
}

// restart simulates a process restart sharing the same storage: a fresh
// session manager restoring from the persisted slot.
func (e *testEnv) restart(t *testing.T) *service.SessionManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewSessionManager(e.directory, e.store, e.signer, logger)
}
