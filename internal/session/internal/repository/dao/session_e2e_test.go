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

//go:build e2e

package dao

import (
	"context"
	"testing"

	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MySQLSessionDAOTestSuite 切换到 mysql 存储之后的行为要和 sqlite 一致
type MySQLSessionDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao SessionDAO
}

func (s *MySQLSessionDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), InitTables(s.db))
	s.dao = NewGORMSessionDAO(s.db)
}

func (s *MySQLSessionDAOTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `local_sessions`").Error
	require.NoError(s.T(), err)
}

func (s *MySQLSessionDAOTestSuite) TestSaveAndOverwrite() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.dao.Save(ctx, LocalSession{UserID: "u1", Role: "jobseeker", Token: "t1"}))
	require.NoError(t, s.dao.Save(ctx, LocalSession{UserID: "u2", Role: "employer", Token: "t2"}))
	got, err := s.dao.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, "employer", got.Role)
	assert.Equal(t, "t2", got.Token)
	assert.True(t, got.Utime > 0)

	var cnt int64
	require.NoError(t, s.db.Model(&LocalSession{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	require.NoError(t, s.dao.Delete(ctx))
	_, err = s.dao.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMySQLSessionDAO(t *testing.T) {
	suite.Run(t, new(MySQLSessionDAOTestSuite))
}
