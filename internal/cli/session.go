package cli

import (
	"context"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/store"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
	"github.com/idilsaglam/todos/internal/store/sqlitestore"
	"github.com/idilsaglam/todos/internal/todos"
)

// session is a mounted store plus whatever must be closed afterwards.
type session struct {
	store *todos.Store
	close func() error
}

func (o *RootOptions) openSession(ctx context.Context) (*session, error) {
	var (
		kv      store.KV
		closeFn = func() error { return nil }
	)
	switch o.cfg.Storage {
	case config.StorageSQLite:
		path := o.cfg.Data
		if path == "" {
			p, err := sqlitestore.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		db, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		kv, closeFn = db, db.Close
	default:
		path := o.cfg.Data
		if path == "" {
			p, err := jsonstore.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		kv = jsonstore.Open(path)
	}

	adapter := store.NewAdapter(kv, o.cfg.Key, o.log)
	st, err := todos.Mount(adapter, todos.Options{Logger: o.log})
	if err != nil {
		_ = closeFn()
		return nil, err
	}
	o.log.Debug("store mounted", "key", adapter.Key(), "todos", st.Len())
	return &session{store: st, close: closeFn}, nil
}
