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

package web

import "github.com/ecodeclub/jobboard/internal/session/internal/domain"

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

func newSession(s domain.Session) Session {
	if !s.LoggedIn() {
		return Session{}
	}
	return Session{
		LoggedIn: true,
		ID:       s.Identity.ID,
		Name:     s.Identity.Name,
		Email:    s.Identity.Email,
		Role:     s.Identity.Role.String(),
	}
}
