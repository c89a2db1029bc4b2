package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"
)

// SQLService is satisfied by both database backends. The runtime registers
// exactly one of them.
type SQLService interface {
	Db() *gorm.DB
}

type serviceRegistry interface {
	Service(id string) context.Service
}

// resolveDB returns the gorm handle from whichever backend is registered,
// preferring Postgres.
func resolveDB(reg serviceRegistry) (*gorm.DB, error) {
	if svc := reg.Service(POSTGRES_SVC); svc != nil {
		if sqlSvc, ok := svc.(SQLService); ok {
			return sqlSvc.Db(), nil
		}
	}
	if svc := reg.Service(SQLITE_SVC); svc != nil {
		if sqlSvc, ok := svc.(SQLService); ok {
			return sqlSvc.Db(), nil
		}
	}
	return nil, errors.New("no database service registered")
}
