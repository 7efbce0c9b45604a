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

package jobapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/go-resty/resty/v2"
)

// Client 职位服务（含登录）的客户端
// 所有错误都已经按照 bizerr 归类
//
//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=jobapimocks Client
type Client interface {
	Login(ctx context.Context, req LoginReq) (LoginResp, error)
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (Job, error)
	PostJob(ctx context.Context, token string, job Job) (Job, error)
	// Apply 投递简历，不会重试
	Apply(ctx context.Context, token, jobID string, resume ResumeFile, idempotencyKey string) (Message, error)
	EmployerDashboard(ctx context.Context, token string) ([]Job, error)
	JobseekerDashboard(ctx context.Context, token string) ([]Application, error)
	// UpdateStatus 修改申请状态，不会重试
	UpdateStatus(ctx context.Context, token, applicationID string, req StatusReq) (Message, error)
}

// RetryConfig 只作用于幂等的读请求
type RetryConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxInterval time.Duration `yaml:"maxInterval"`
	MaxRetries  int           `yaml:"maxRetries"`
}

var _ Client = (*RestyClient)(nil)

// RestyClient 基于 resty 的实现，BaseURL 由调用方在 resty.Client 上设置好
type RestyClient struct {
	client *resty.Client
	retry  RetryConfig
}

func NewRestyClient(client *resty.Client, cfg RetryConfig) *RestyClient {
	return &RestyClient{
		client: client,
		retry:  cfg,
	}
}

func (c *RestyClient) Login(ctx context.Context, req LoginReq) (LoginResp, error) {
	var res LoginResp
	err := c.do(ctx, "login", c.request("").SetBody(req).SetResult(&res),
		http.MethodPost, "/auth/login")
	return res, err
}

func (c *RestyClient) ListJobs(ctx context.Context) ([]Job, error) {
	var res []Job
	err := c.read(ctx, "list_jobs", func() *resty.Request {
		return c.request("").SetResult(&res)
	}, "/jobs")
	return res, err
}

func (c *RestyClient) GetJob(ctx context.Context, id string) (Job, error) {
	var res Job
	err := c.read(ctx, "get_job", func() *resty.Request {
		return c.request("").SetPathParam("id", id).SetResult(&res)
	}, "/jobs/{id}")
	return res, err
}

func (c *RestyClient) PostJob(ctx context.Context, token string, job Job) (Job, error) {
	var res Job
	err := c.do(ctx, "post_job", c.request(token).SetBody(job).SetResult(&res),
		http.MethodPost, "/jobs")
	return res, err
}

func (c *RestyClient) Apply(ctx context.Context, token, jobID string,
	resume ResumeFile, idempotencyKey string) (Message, error) {
	var res Message
	req := c.request(token).
		SetPathParam("id", jobID).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetMultipartField("resume", resume.Name, resume.MimeType, bytes.NewReader(resume.Content)).
		SetResult(&res)
	err := c.do(ctx, "apply", req, http.MethodPost, "/jobs/{id}/apply")
	return res, err
}

func (c *RestyClient) EmployerDashboard(ctx context.Context, token string) ([]Job, error) {
	var res []Job
	err := c.read(ctx, "employer_dashboard", func() *resty.Request {
		return c.request(token).SetResult(&res)
	}, "/dashboard/employer")
	return res, err
}

func (c *RestyClient) JobseekerDashboard(ctx context.Context, token string) ([]Application, error) {
	var res []Application
	err := c.read(ctx, "jobseeker_dashboard", func() *resty.Request {
		return c.request(token).SetResult(&res)
	}, "/dashboard/jobseeker")
	return res, err
}

func (c *RestyClient) UpdateStatus(ctx context.Context, token, applicationID string,
	req StatusReq) (Message, error) {
	var res Message
	err := c.do(ctx, "update_status", c.request(token).
		SetPathParam("id", applicationID).
		SetBody(req).
		SetResult(&res), http.MethodPut, "/applications/{id}/status")
	return res, err
}

func (c *RestyClient) request(token string) *resty.Request {
	req := c.client.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// read 读请求，只有传输失败才会重试
func (c *RestyClient) read(ctx context.Context, op string,
	build func() *resty.Request, path string) error {
	if c.retry.MaxRetries <= 0 {
		return c.do(ctx, op, build(), http.MethodGet, path)
	}
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.retry.Interval,
		c.retry.MaxInterval, int32(c.retry.MaxRetries))
	if err != nil {
		return bizerr.Transfer("", err)
	}
	for {
		err = c.do(ctx, op, build(), http.MethodGet, path)
		if err == nil || !errors.Is(err, bizerr.ErrTransfer) || ctx.Err() != nil {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		select {
		case <-ctx.Done():
			return bizerr.Transfer("", ctx.Err())
		case <-time.After(next):
		}
	}
}

func (c *RestyClient) do(ctx context.Context, op string, req *resty.Request, method, path string) error {
	start := time.Now()
	var errBody Message
	resp, err := req.SetContext(ctx).SetError(&errBody).Execute(method, path)
	if err != nil {
		observe(op, "network", start)
		return bizerr.Transfer("", err)
	}
	observe(op, strconv.Itoa(resp.StatusCode()), start)
	if resp.IsError() {
		return bizerr.FromStatus(resp.StatusCode(), errBody.Message)
	}
	if !resp.IsSuccess() {
		return bizerr.FromStatus(resp.StatusCode(), "")
	}
	return nil
}
