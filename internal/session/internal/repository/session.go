// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobboard/internal/session/internal/domain"
	"github.com/ecodeclub/jobboard/internal/session/internal/repository/dao"
)

var (
	ErrSessionNotFound = dao.ErrSessionNotFound
	// ErrInvalidSession 持久化的数据不完整或者角色非法
	ErrInvalidSession = errors.New("本地会话数据非法")
)

type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	dao dao.SessionDAO
}

func NewSessionRepository(d dao.SessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

func (r *sessionRepository) Load(ctx context.Context) (domain.Session, error) {
	row, err := r.dao.Get(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	s, err := domain.NewSession(domain.Identity{
		ID:    row.UserID,
		Name:  row.Name,
		Email: row.Email,
		Role:  domain.ParseRole(row.Role),
	}, row.Token)
	if err != nil {
		return domain.Session{}, ErrInvalidSession
	}
	return s, nil
}

func (r *sessionRepository) Save(ctx context.Context, s domain.Session) error {
	return r.dao.Save(ctx, dao.LocalSession{
		UserID: s.Identity.ID,
		Name:   s.Identity.Name,
		Email:  s.Identity.Email,
		Role:   s.Identity.Role.String(),
		Token:  s.Token,
	})
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.dao.Delete(ctx)
}
