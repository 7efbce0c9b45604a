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

package bizerr

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误分类，调用方统一用 errors.Is 判断
var (
	// ErrAuth 凭证缺失、非法或者过期，重新登录可以恢复
	ErrAuth = errors.New("认证失败")
	// ErrValidation 本地输入不合法，永远不会发到网络上
	ErrValidation = errors.New("参数校验失败")
	// ErrNotFound 引用的职位或者申请已经不存在，不重试
	ErrNotFound = errors.New("资源不存在")
	// ErrTransfer 网络或者服务端故障，由用户重新点击来重试
	ErrTransfer = errors.New("传输失败")
	// ErrConflict 服务端拒绝了状态变更
	ErrConflict = errors.New("状态冲突")
)

// Error 携带了给用户看的 Msg
type Error struct {
	Kind error
	// Msg 用户可见的提示，可能来自服务端
	Msg string
	// Status 对端返回的 HTTP 状态码，本地错误为 0
	Status int
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil && e.Msg != "":
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Msg, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	case e.Msg != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	default:
		return fmt.Sprint(e.Kind)
	}
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Auth(msg string) error {
	return &Error{Kind: ErrAuth, Msg: msg}
}

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func Transfer(msg string, cause error) error {
	return &Error{Kind: ErrTransfer, Msg: msg, Cause: cause}
}

// FromStatus 按照对端返回的状态码归类
func FromStatus(status int, msg string) error {
	var kind error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrAuth
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status == http.StatusConflict:
		kind = ErrConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity ||
		status == http.StatusRequestEntityTooLarge || status == http.StatusUnsupportedMediaType:
		kind = ErrValidation
	default:
		kind = ErrTransfer
	}
	return &Error{Kind: kind, Msg: msg, Status: status}
}

// Message 返回用户可见的提示，没有的话就用 fallback
func Message(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Msg != "" {
		return be.Msg
	}
	return fallback
}

// Kind 返回 err 所属的分类，不属于任何分类的返回 nil
func Kind(err error) error {
	for _, k := range []error{ErrAuth, ErrValidation, ErrNotFound, ErrConflict, ErrTransfer} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Wrap 保留 err 的分类和状态码，对端没有给提示的时候用 fallback
// 没有分类的错误当作传输失败
func Wrap(err error, fallback string) error {
	if err == nil {
		return nil
	}
	kind := Kind(err)
	if kind == nil {
		kind = ErrTransfer
	}
	res := &Error{Kind: kind, Msg: Message(err, fallback), Cause: err}
	var be *Error
	if errors.As(err, &be) {
		res.Status = be.Status
	}
	return res
}
