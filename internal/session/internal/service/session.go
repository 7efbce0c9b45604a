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

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecodeclub/jobboard/internal/jobapi"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/session/internal/domain"
	"github.com/ecodeclub/jobboard/internal/session/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const loginFailedMsg = "Login failed. Please check your credentials."

// Service 进程内唯一的会话，所有模块都从这里读
//
//go:generate mockgen -source=./session.go -destination=../../mocks/session.mock.go -package=sessmocks Service
type Service interface {
	Login(ctx context.Context, c domain.Credentials) (domain.Session, error)
	// Logout 幂等
	Logout(ctx context.Context) error
	// Current 返回快照，ok 为 false 表示没有登录
	Current() (domain.Session, bool)
	// Restore 启动的时候从本地存储恢复会话
	Restore(ctx context.Context) error
	// Invalidate 对端返回 401 之后调用，只有 token 仍然是当前会话的 token 才会清理
	Invalidate(ctx context.Context, token string) error
}

type store struct {
	client jobapi.Client
	repo   repository.SessionRepository
	expiry tokenExpiry
	logger *elog.Component

	// writeMu 保证持久化和内存切换是一个整体
	writeMu sync.Mutex
	mu      sync.RWMutex
	cur     domain.Session
}

func NewService(client jobapi.Client, repo repository.SessionRepository) Service {
	return newStore(client, repo, time.Now)
}

func newStore(client jobapi.Client, repo repository.SessionRepository, nowFunc func() time.Time) *store {
	return &store{
		client: client,
		repo:   repo,
		expiry: tokenExpiry{nowFunc: nowFunc},
		logger: elog.DefaultLogger.With(elog.FieldComponent("session")),
	}
}

func (s *store) Login(ctx context.Context, c domain.Credentials) (domain.Session, error) {
	if err := c.Validate(); err != nil {
		return domain.Session{}, err
	}
	resp, err := s.client.Login(ctx, jobapi.LoginReq{Email: c.Email, Password: c.Password})
	if err != nil {
		return domain.Session{}, &bizerr.Error{
			Kind:  bizerr.ErrAuth,
			Msg:   bizerr.Message(err, loginFailedMsg),
			Cause: err,
		}
	}
	sess, err := domain.NewSession(domain.Identity{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
		Role:  domain.ParseRole(resp.User.Role),
	}, resp.Token)
	if err != nil {
		s.logger.Warn("职位服务返回了不完整的会话", elog.String("role", resp.User.Role))
		return domain.Session{}, &bizerr.Error{Kind: bizerr.ErrAuth, Msg: loginFailedMsg, Cause: err}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	// 先落盘，成功了才切换内存
	if err = s.repo.Save(ctx, sess); err != nil {
		return domain.Session{}, &bizerr.Error{Kind: bizerr.ErrAuth, Msg: loginFailedMsg, Cause: err}
	}
	s.swap(sess)
	return sess, nil
}

func (s *store) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	err := s.repo.Clear(ctx)
	// 内存里面一定要清掉，避免继续带着旧 token 发请求
	s.swap(domain.Session{})
	if err != nil {
		s.logger.Error("清理本地会话失败", elog.FieldErr(err))
	}
	return err
}

func (s *store) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, s.cur.LoggedIn()
}

func (s *store) Restore(ctx context.Context) error {
	sess, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return nil
	case errors.Is(err, repository.ErrInvalidSession):
		s.logger.Warn("丢弃不完整的本地会话")
		return s.repo.Clear(ctx)
	case err != nil:
		return err
	}
	if s.expiry.Expired(sess.Token) {
		s.logger.Info("本地会话已经过期", elog.String("uid", sess.Identity.ID))
		return s.repo.Clear(ctx)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.swap(sess)
	return nil
}

func (s *store) Invalidate(ctx context.Context, token string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	cur, _ := s.Current()
	if token == "" || cur.Token != token {
		return nil
	}
	s.logger.Info("凭证失效，清理会话", elog.String("uid", cur.Identity.ID))
	err := s.repo.Clear(ctx)
	s.swap(domain.Session{})
	return err
}

func (s *store) swap(sess domain.Session) {
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
}
