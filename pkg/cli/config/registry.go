package config

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/repository/firestore"
	"github.com/m-mizutani/sitecloner/pkg/repository/gcs"
	"github.com/m-mizutani/sitecloner/pkg/repository/memory"
	kvsql "github.com/m-mizutani/sitecloner/pkg/repository/sql"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendGCS       = "gcs"
	BackendSQL       = "sql"
)

// Registry selects the key-value store that keeps the site registry.
type Registry struct {
	backend string

	firestoreProjectID  string
	firestoreDatabaseID string
	firestoreCollection string

	gcsBucket string
	gcsPrefix string

	sqlDriver string
	sqlDSN    string `masq:"secret"`
	sqlTable  string
}

func (x *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry-backend",
			Usage:       "Registry backend [memory|firestore|gcs|sql]",
			Category:    "Registry",
			Value:       BackendMemory,
			Destination: &x.backend,
			Sources:     cli.EnvVars("SITECLONER_REGISTRY_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Registry",
			Destination: &x.firestoreProjectID,
			Sources:     cli.EnvVars("SITECLONER_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Registry",
			Value:       "(default)",
			Destination: &x.firestoreDatabaseID,
			Sources:     cli.EnvVars("SITECLONER_FIRESTORE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection of the registry document",
			Category:    "Registry",
			Value:       firestore.DefaultCollection,
			Destination: &x.firestoreCollection,
			Sources:     cli.EnvVars("SITECLONER_FIRESTORE_COLLECTION"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket",
			Category:    "Registry",
			Destination: &x.gcsBucket,
			Sources:     cli.EnvVars("SITECLONER_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object prefix in the bucket",
			Category:    "Registry",
			Destination: &x.gcsPrefix,
			Sources:     cli.EnvVars("SITECLONER_GCS_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "sql-driver",
			Usage:       "SQL driver [postgres|sqlite3]",
			Category:    "Registry",
			Value:       kvsql.DriverSQLite,
			Destination: &x.sqlDriver,
			Sources:     cli.EnvVars("SITECLONER_SQL_DRIVER"),
		},
		&cli.StringFlag{
			Name:        "sql-dsn",
			Usage:       "SQL data source name",
			Category:    "Registry",
			Destination: &x.sqlDSN,
			Sources:     cli.EnvVars("SITECLONER_SQL_DSN"),
		},
		&cli.StringFlag{
			Name:        "sql-table",
			Usage:       "SQL table of the key-value store",
			Category:    "Registry",
			Value:       kvsql.DefaultTable,
			Destination: &x.sqlTable,
			Sources:     cli.EnvVars("SITECLONER_SQL_TABLE"),
		},
	}
}

// NewKVStore opens the selected backend. The returned closer releases its
// connections and is never nil.
func (x *Registry) NewKVStore(ctx context.Context) (interfaces.KVStore, io.Closer, error) {
	switch x.backend {
	case BackendMemory, "":
		return memory.New(), nopCloser{}, nil

	case BackendFirestore:
		if x.firestoreProjectID == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for firestore backend")
		}
		store, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID,
			firestore.WithCollection(x.firestoreCollection),
		)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil

	case BackendGCS:
		if x.gcsBucket == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "gcs-bucket is required for gcs backend")
		}
		store, err := gcs.New(ctx, x.gcsBucket, x.gcsPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil

	case BackendSQL:
		if x.sqlDSN == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "sql-dsn is required for sql backend")
		}
		store, err := kvsql.Open(ctx, x.sqlDriver, x.sqlDSN, kvsql.WithTable(x.sqlTable))
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "unknown registry backend", goerr.V("backend", x.backend))
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (x Registry) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("backend", x.backend)}
	switch x.backend {
	case BackendFirestore:
		attrs = append(attrs,
			slog.String("projectID", x.firestoreProjectID),
			slog.String("databaseID", x.firestoreDatabaseID),
			slog.String("collection", x.firestoreCollection),
		)
	case BackendGCS:
		attrs = append(attrs,
			slog.String("bucket", x.gcsBucket),
			slog.String("prefix", x.gcsPrefix),
		)
	case BackendSQL:
		attrs = append(attrs,
			slog.String("driver", x.sqlDriver),
			slog.Int("dsn.len", len(x.sqlDSN)),
			slog.String("table", x.sqlTable),
		)
	}
	return slog.GroupValue(attrs...)
}
