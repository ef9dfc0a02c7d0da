package repository

import (
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Provider ProviderRepository
	Admin    AdminRepository
	Session  SessionRepository
}

func NewRepositories(db *sqlx.DB, mongoDB *mongo.Database) *Repositories {
	return &Repositories{
		Provider: NewProviderRepository(mongoDB),
		Admin:    NewAdminRepository(db),
		Session:  NewSessionRepository(db),
	}
}
