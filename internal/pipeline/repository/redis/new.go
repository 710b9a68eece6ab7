package redis

import (
	"salesreport-srv/internal/pipeline/repository"
	"salesreport-srv/pkg/log"
	pkgRedis "salesreport-srv/pkg/redis"
)

type implRepository struct {
	client pkgRedis.IRedis
	l      log.Logger
}

func New(client pkgRedis.IRedis, l log.Logger) repository.LogRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
