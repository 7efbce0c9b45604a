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
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry 只看 token 自己声明的过期时间，不校验签名，签名由职位服务负责
type tokenExpiry struct {
	nowFunc func() time.Time
}

// Expired 不是 JWT 或者没有 exp 的 token 一律当作没有过期
func (t tokenExpiry) Expired(token string) bool {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !t.nowFunc().Before(claims.ExpiresAt.Time)
}
