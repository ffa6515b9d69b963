package config

import (
	"context"
	"fmt"

	"github.com/Chalhotra/LibMgmt/store/postgresstore"
)

// OpenStore opens the connection pool selected by DB_ADAPTER and builds the store on it.
// The returned close function releases the pool.
func OpenStore(ctx context.Context, settings Settings, options ...postgresstore.Option) (postgresstore.Store, func(), error) {
	switch settings.DBAdapter {
	case AdapterSQL:
		db, err := NewSQLDB(ctx, settings.DatabaseURL)
		if err != nil {
			return postgresstore.Store{}, nil, err
		}

		s, err := postgresstore.NewStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return postgresstore.Store{}, nil, err
		}

		return s, func() { _ = db.Close() }, nil

	case AdapterSQLX:
		db, err := NewSQLX(ctx, settings.DatabaseURL)
		if err != nil {
			return postgresstore.Store{}, nil, err
		}

		s, err := postgresstore.NewStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return postgresstore.Store{}, nil, err
		}

		return s, func() { _ = db.Close() }, nil

	case AdapterPGX:
		pool, err := NewPGXPool(ctx, settings.DatabaseURL)
		if err != nil {
			return postgresstore.Store{}, nil, err
		}

		s, err := postgresstore.NewStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return postgresstore.Store{}, nil, err
		}

		return s, pool.Close, nil

	default:
		return postgresstore.Store{}, nil, fmt.Errorf("%w: unknown adapter %q", ErrInvalidSettings, settings.DBAdapter)
	}
}
