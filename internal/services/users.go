// Package services contains the provisioning logic behind the CLI. This file
// implements UserService, which turns a (username, password) pair into a
// stored credential record.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/dbx"
	"github.com/dmitrijs2005/mordor-tools/internal/logging"
	"github.com/dmitrijs2005/mordor-tools/internal/models"
	"github.com/dmitrijs2005/mordor-tools/internal/repomanager"
)

// Hasher turns a plaintext password into a self-describing digest.
type Hasher interface {
	Hash(password string) (string, error)
}

// UserService provisions credential records.
type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      Hasher
	log         logging.Logger
}

// NewUserService constructs a UserService bound to one store connection.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, h Hasher, log logging.Logger) *UserService {
	return &UserService{db: db, repomanager: m, hasher: h, log: log}
}

// AddUser hashes password and inserts (username, digest) with a single
// statement, returning the id the store assigned.
//
// No existence check is made and no transaction is opened: a duplicate
// username comes back as the store's own constraint error.
func (s *UserService) AddUser(ctx context.Context, username, password string) (int64, error) {
	log := s.log.With("username", username)

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}
	log.Debug(ctx, "password hashed")

	user := &models.User{Username: username, PasswordHash: digest}
	id, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		log.Debug(ctx, "insert failed", "error", err)
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	log.Info(ctx, "user created", "id", id)
	return id, nil
}
