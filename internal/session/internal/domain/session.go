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

package domain

import (
	"regexp"
	"strings"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
)

type Role uint8

const (
	RoleUnknown Role = iota
	RoleEmployer
	RoleJobseeker
)

// ParseRole 职位服务返回的角色名
func ParseRole(s string) Role {
	switch s {
	case "employer":
		return RoleEmployer
	case "jobseeker":
		return RoleJobseeker
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleEmployer:
		return "employer"
	case RoleJobseeker:
		return "jobseeker"
	default:
		return "unknown"
	}
}

type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Session 要么是完整的（有 token 且角色合法），要么是零值，也就是没登录
type Session struct {
	Identity Identity
	Token    string
}

var errPartialSession = bizerr.Auth("会话数据不完整")

// NewSession 拒绝任何不完整的输入
func NewSession(identity Identity, token string) (Session, error) {
	if token == "" || identity.ID == "" {
		return Session{}, errPartialSession
	}
	if identity.Role != RoleEmployer && identity.Role != RoleJobseeker {
		return Session{}, errPartialSession
	}
	return Session{Identity: identity, Token: token}, nil
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func (s Session) Role() Role {
	return s.Identity.Role
}

type Credentials struct {
	Email    string
	Password string
}

const minPasswordLen = 6

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate 登录表单的本地校验，不通过的不会发到网络上
func (c Credentials) Validate() error {
	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		return bizerr.Validation("Email is required")
	case !emailRegexp.MatchString(email):
		return bizerr.Validation("Please enter a valid email")
	case c.Password == "":
		return bizerr.Validation("Password is required")
	case len(c.Password) < minPasswordLen:
		return bizerr.Validation("Password must be at least 6 characters")
	}
	return nil
}
