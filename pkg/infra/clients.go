package infra

import (
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
)

type Clients struct {
	github      interfaces.GitHub
	edgeCompute interfaces.EdgeCompute
	bqClient    interfaces.BigQuery
	kvStore     interfaces.KVStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) EdgeCompute() interfaces.EdgeCompute {
	return x.edgeCompute
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) KVStore() interfaces.KVStore {
	return x.kvStore
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithEdgeCompute(client interfaces.EdgeCompute) Option {
	return func(x *Clients) {
		x.edgeCompute = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithKVStore(store interfaces.KVStore) Option {
	return func(x *Clients) {
		x.kvStore = store
	}
}
